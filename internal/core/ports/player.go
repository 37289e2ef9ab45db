package ports

import (
	"context"

	"go.trai.ch/roam/internal/core/domain"
)

// PlayerSource reads the player position file.
//
//go:generate mockgen -source=player.go -destination=mocks/mock_player.go -package=mocks
type PlayerSource interface {
	// Path returns the location of the player file.
	Path() string

	// Load reads and parses the player file.
	Load(ctx context.Context) (domain.PlayerPosition, error)
}

// PlayerOpener returns the player source for the file at path.
type PlayerOpener func(path string) PlayerSource
