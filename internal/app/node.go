package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/roam/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/roam/internal/adapters/jsonstore" //nolint:depguard // Wired in app layer
	"go.trai.ch/roam/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/roam/internal/adapters/metrics"   //nolint:depguard // Wired in app layer
	"go.trai.ch/roam/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/roam/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/roam/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			jsonstore.SourceNodeID,
			jsonstore.PlayerNodeID,
			watcher.WatcherNodeID,
			watcher.DebouncerNodeID,
			telemetry.TracerNodeID,
			metrics.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	openSource, err := graft.Dep[ports.SourceOpener](ctx)
	if err != nil {
		return nil, err
	}

	openPlayer, err := graft.Dep[ports.PlayerOpener](ctx)
	if err != nil {
		return nil, err
	}

	newWatcher, err := graft.Dep[ports.WatcherFactory](ctx)
	if err != nil {
		return nil, err
	}

	newDebouncer, err := graft.Dep[ports.DebouncerFactory](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	registry, err := graft.Dep[*metrics.Registry](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, openSource, openPlayer, newWatcher, newDebouncer, tracer, registry), nil
}
