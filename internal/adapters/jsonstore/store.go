// Package jsonstore persists the connections document and reads the player file.
package jsonstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/roam/internal/core/domain"
	"go.trai.ch/roam/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceStore = (*FileStore)(nil)

// FileStore reads and writes the source document at a fixed path.
type FileStore struct {
	path string
}

// NewFileStore creates a store for the document at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the location of the document.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads and parses the document fresh from disk.
func (s *FileStore) Load(ctx context.Context) (*domain.Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Join(domain.ErrSourceUnreadable, zerr.With(zerr.Wrap(err, "read source"), "path", s.path))
	}

	src, err := domain.ParseSource(data)
	if err != nil {
		return nil, err
	}
	src.Digest = Digest(data)
	return src, nil
}

// Save writes the document atomically: readers see either the previous or the new
// content, never a partial write.
func (s *FileStore) Save(ctx context.Context, src *domain.Source) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := src.Encode()
	if err != nil {
		return errors.Join(domain.ErrPersistFailed, err)
	}

	if err := writeAtomic(s.path, data); err != nil {
		return errors.Join(domain.ErrPersistFailed, zerr.With(err, "path", s.path))
	}
	src.Digest = Digest(data)
	return nil
}

// Digest identifies raw document bytes.
func Digest(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "create source directory")
	}

	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return zerr.Wrap(err, "create temp file")
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return zerr.Wrap(err, "write temp file")
	}

	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return zerr.Wrap(err, "sync temp file")
	}

	if err := tmpFile.Close(); err != nil {
		return zerr.Wrap(err, "close temp file")
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "chmod temp file")
	}

	if err := os.Rename(tmpName, path); err != nil {
		return zerr.Wrap(err, "replace source")
	}
	return nil
}
