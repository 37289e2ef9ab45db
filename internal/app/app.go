// Package app implements the application layer for roam.
package app

import (
	"context"
	"io"
	"net"
	"net/http"
	"os"

	"go.trai.ch/roam/internal/adapters/httpapi"   //nolint:depguard // Wired in app layer
	"go.trai.ch/roam/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/roam/internal/build"
	"go.trai.ch/roam/internal/core/domain"
	"go.trai.ch/roam/internal/core/ports"
	"go.trai.ch/roam/internal/engine/mirror"
	"go.trai.ch/roam/internal/engine/snapshot"
	"golang.org/x/sync/errgroup"
)

// ServiceName names the service in spans and trace resources.
const ServiceName = "roam"

// MetricsRegistry records service metrics and exposes them over HTTP.
type MetricsRegistry interface {
	ports.Metrics
	Handler() http.Handler
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	openSource   ports.SourceOpener
	openPlayer   ports.PlayerOpener
	newWatcher   ports.WatcherFactory
	newDebouncer ports.DebouncerFactory
	tracer       ports.Tracer
	metrics      MetricsRegistry

	listener net.Listener
	traceOut io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	logger ports.Logger,
	openSource ports.SourceOpener,
	openPlayer ports.PlayerOpener,
	newWatcher ports.WatcherFactory,
	newDebouncer ports.DebouncerFactory,
	tracer ports.Tracer,
	metrics MetricsRegistry,
) *App {
	return &App{
		configLoader: loader,
		logger:       logger,
		openSource:   openSource,
		openPlayer:   openPlayer,
		newWatcher:   newWatcher,
		newDebouncer: newDebouncer,
		tracer:       tracer,
		metrics:      metrics,
		traceOut:     os.Stderr,
	}
}

// WithListener makes Serve use ln instead of listening on the configured address.
func (a *App) WithListener(ln net.Listener) *App {
	a.listener = ln
	return a
}

// WithTraceOutput sets where exported spans are written when tracing is enabled.
func (a *App) WithTraceOutput(w io.Writer) *App {
	a.traceOut = w
	return a
}

// Serve runs the mirror until ctx is done: it loads the source, serves the
// snapshot over HTTP, and follows the source and player files for changes.
func (a *App) Serve(ctx context.Context, cfg domain.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if setter, ok := a.logger.(interface{ SetJSON(bool) }); ok && cfg.LogJSON {
		setter.SetJSON(true)
	}

	if cfg.Trace {
		shutdown, err := telemetry.Setup(a.traceOut, ServiceName, build.Version)
		if err != nil {
			return err
		}
		defer func() { _ = shutdown(context.WithoutCancel(ctx)) }()
	}

	cache := snapshot.NewCache(a.logger, a.metrics)
	pipeline := mirror.NewPipeline(a.openSource(cfg.Source), cache, a.logger, a.metrics, a.tracer)
	gateway := mirror.NewGateway(pipeline)

	// A failed initial load is logged and the empty snapshot is served until the
	// file becomes readable.
	_, _ = pipeline.Reload(ctx)

	var player *mirror.PlayerTracker
	if cfg.Player != "" {
		player = mirror.NewPlayerTracker(a.openPlayer(cfg.Player), a.logger)
		_ = player.Reload(ctx)
	}

	opts := httpapi.Options{
		Snapshots:      cache,
		Mutator:        gateway,
		Logger:         a.logger,
		Metrics:        a.metrics,
		MetricsHandler: a.metrics.Handler(),
		Public:         cfg.Public,
		ServiceName:    ServiceName,
	}
	if player != nil {
		opts.Player = player
	}
	server := httpapi.New(opts)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if a.listener != nil {
			return server.ServeListener(gctx, a.listener)
		}
		return server.Serve(gctx, cfg.Listen)
	})

	g.Go(func() error {
		return a.follow(gctx, cfg.Source, cfg, pipeline.ReloadFunc(gctx))
	})

	if player != nil {
		g.Go(func() error {
			return a.follow(gctx, cfg.Player, cfg, player.ReloadFunc(gctx))
		})
	}

	return g.Wait()
}

func (a *App) follow(ctx context.Context, path string, cfg domain.Config, reload func()) error {
	w, err := a.newWatcher()
	if err != nil {
		return err
	}
	d := a.newDebouncer(cfg.Debounce, reload)
	return mirror.Follow(ctx, w, path, d, a.logger)
}
