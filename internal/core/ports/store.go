package ports

import (
	"context"

	"go.trai.ch/roam/internal/core/domain"
)

// SourceStore reads and writes the durable connections document.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SourceStore interface {
	// Path returns the location of the document.
	Path() string

	// Load reads and parses the document fresh from durable storage.
	// The returned source carries the digest of the bytes that were read.
	Load(ctx context.Context) (*domain.Source, error)

	// Save replaces the document atomically and records the digest of the written bytes on src.
	// On failure the previous document is left intact.
	Save(ctx context.Context, src *domain.Source) error
}

// SourceOpener returns the store for the document at path.
type SourceOpener func(path string) SourceStore
