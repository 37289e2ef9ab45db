// Package httpapi serves the mirror snapshot, the player position, and the
// connection mutation endpoints over HTTP.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.trai.ch/roam/internal/core/domain"
	"go.trai.ch/roam/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// SnapshotReader returns the snapshot currently being served.
type SnapshotReader interface {
	Read() *domain.Snapshot
}

// Mutator applies connection mutations.
type Mutator interface {
	AddEdge(ctx context.Context, from, to string) (domain.MutationResult, error)
	RemoveEdge(ctx context.Context, from, to string) (domain.MutationResult, error)
}

// PositionReader returns the last known player position.
type PositionReader interface {
	Current() domain.PlayerPosition
}

// Options configures a Server.
type Options struct {
	Snapshots SnapshotReader
	Mutator   Mutator
	// Player may be nil, in which case the position is always unknown.
	Player  PositionReader
	Logger  ports.Logger
	Metrics ports.Metrics
	// MetricsHandler serves /metrics. Nil disables the route.
	MetricsHandler http.Handler
	// Public is the static asset directory. Empty disables static serving.
	Public string
	// ServiceName names the HTTP spans.
	ServiceName string
}

// Server is the snapshot HTTP server.
type Server struct {
	engine    *gin.Engine
	snapshots SnapshotReader
	mutator   Mutator
	player    PositionReader
	logger    ports.Logger
	metrics   ports.Metrics
}

// New builds the router for opts.
func New(opts Options) *Server {
	s := &Server{
		engine:    gin.New(),
		snapshots: opts.Snapshots,
		mutator:   opts.Mutator,
		player:    opts.Player,
		logger:    opts.Logger,
		metrics:   opts.Metrics,
	}

	s.engine.Use(gin.Recovery(), requestLogger(opts.Logger))
	if opts.ServiceName != "" {
		s.engine.Use(otelgin.Middleware(opts.ServiceName))
	}

	s.engine.GET("/map.json", s.getMap)
	s.engine.GET("/player.json", s.getPlayer)
	s.engine.GET("/healthz", s.getHealth)
	s.engine.POST("/api/connection/add", s.mutation(s.mutator.AddEdge))
	s.engine.POST("/api/connection/remove", s.mutation(s.mutator.RemoveEdge))
	if opts.MetricsHandler != nil {
		s.engine.GET("/metrics", gin.WrapH(opts.MetricsHandler))
	}
	s.engine.NoRoute(staticHandler(opts.Public))

	return s
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Serve listens on addr and serves until ctx is done.
func (s *Server) Serve(ctx context.Context, addr string) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return errors.Join(domain.ErrServerFailed, zerr.With(zerr.Wrap(err, "listen"), "addr", addr))
	}
	return s.ServeListener(ctx, ln)
}

// ServeListener serves on ln until ctx is done, then shuts down gracefully.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info(fmt.Sprintf("serving on http://%s", ln.Addr()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Join(domain.ErrServerFailed, zerr.Wrap(err, "serve"))
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Join(domain.ErrServerFailed, zerr.Wrap(err, "shutdown"))
	}
	return nil
}

func requestLogger(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info(fmt.Sprintf("%s %s %d %s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start).Round(time.Microsecond)))
	}
}

func staticHandler(public string) gin.HandlerFunc {
	if public == "" {
		return func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		}
	}
	files := http.FileServer(gin.Dir(public, false))
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		files.ServeHTTP(c.Writer, c.Request)
	}
}
