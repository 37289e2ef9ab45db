package watcher

import (
	"context"
	"time"

	"github.com/grindlemire/graft"
	"go.trai.ch/roam/internal/adapters/logger"
	"go.trai.ch/roam/internal/core/ports"
)

const (
	// WatcherNodeID is the unique identifier for the file watcher factory Graft node.
	WatcherNodeID graft.ID = "adapter.watcher"
	// DebouncerNodeID is the unique identifier for the debouncer factory Graft node.
	DebouncerNodeID graft.ID = "adapter.debouncer"
)

func init() {
	graft.Register(graft.Node[ports.WatcherFactory]{
		ID:        WatcherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.WatcherFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return func() (ports.Watcher, error) {
				return NewWatcher(log)
			}, nil
		},
	})

	graft.Register(graft.Node[ports.DebouncerFactory]{
		ID:        DebouncerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DebouncerFactory, error) {
			return func(window time.Duration, fn func()) ports.Debouncer {
				return NewDebouncer(window, fn)
			}, nil
		},
	})
}
