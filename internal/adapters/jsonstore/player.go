package jsonstore

import (
	"context"
	"errors"
	"os"

	"go.trai.ch/roam/internal/core/domain"
	"go.trai.ch/roam/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PlayerSource = (*PlayerFile)(nil)

// PlayerFile reads the player position file.
type PlayerFile struct {
	path string
}

// NewPlayerFile creates a reader for the player file at path.
func NewPlayerFile(path string) *PlayerFile {
	return &PlayerFile{path: path}
}

// Path returns the location of the player file.
func (p *PlayerFile) Path() string {
	return p.path
}

// Load reads the current player position.
func (p *PlayerFile) Load(ctx context.Context) (domain.PlayerPosition, error) {
	if err := ctx.Err(); err != nil {
		return domain.PlayerPosition{}, err
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		return domain.PlayerPosition{}, errors.Join(
			domain.ErrPlayerUnreadable,
			zerr.With(zerr.Wrap(err, "read player file"), "path", p.path),
		)
	}

	return domain.ParsePlayer(data)
}
