package jsonstore

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/roam/internal/core/ports"
)

const (
	// SourceNodeID is the unique identifier for the source store opener Graft node.
	SourceNodeID graft.ID = "adapter.source_store"
	// PlayerNodeID is the unique identifier for the player file opener Graft node.
	PlayerNodeID graft.ID = "adapter.player_source"
)

func init() {
	graft.Register(graft.Node[ports.SourceOpener]{
		ID:        SourceNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceOpener, error) {
			return func(path string) ports.SourceStore {
				return NewFileStore(path)
			}, nil
		},
	})

	graft.Register(graft.Node[ports.PlayerOpener]{
		ID:        PlayerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PlayerOpener, error) {
			return func(path string) ports.PlayerSource {
				return NewPlayerFile(path)
			}, nil
		},
	})
}
