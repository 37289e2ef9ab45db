// Package config provides the configuration loader for roam.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/roam/internal/core/domain"
	"go.trai.ch/roam/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// minSafeDebounce is the window below which partially written files are likely to be read.
const minSafeDebounce = 10 * time.Millisecond

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration at path on top of domain.DefaultConfig.
// Relative paths in the file are resolved against the file's directory.
func (l *Loader) Load(path string, required bool) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	// #nosec G304 -- path is chosen by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, errors.Join(domain.ErrConfigReadFailed, zerr.With(zerr.Wrap(err, "read config"), "path", path))
	}

	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return cfg, errors.Join(domain.ErrConfigParseFailed, zerr.With(zerr.Wrap(err, "decode yaml"), "path", path))
	}

	if err := l.apply(&cfg, &file, filepath.Dir(path)); err != nil {
		return cfg, errors.Join(domain.ErrConfigParseFailed, zerr.With(err, "path", path))
	}
	return cfg, nil
}

func (l *Loader) apply(cfg *domain.Config, file *File, baseDir string) error {
	if file.Listen != "" {
		cfg.Listen = file.Listen
	}
	cfg.Source = resolvePath(baseDir, file.Source)
	cfg.Player = resolvePath(baseDir, file.Player)
	cfg.Public = resolvePath(baseDir, file.Public)

	if file.Debounce != "" {
		d, err := time.ParseDuration(file.Debounce)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "parse debounce"), "debounce", file.Debounce)
		}
		if d > 0 && d < minSafeDebounce && l.Logger != nil {
			l.Logger.Warn("debounce " + d.String() + " is below " + minSafeDebounce.String() + "; partially written files may be read")
		}
		cfg.Debounce = d
	}

	if file.Log.JSON != nil {
		cfg.LogJSON = *file.Log.JSON
	}
	if file.Trace != nil {
		cfg.Trace = *file.Trace
	}
	return nil
}

func resolvePath(baseDir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}
