package app

import (
	"time"

	"go.trai.ch/roam/internal/core/domain"
)

// ConfigOverrides carries command line values that take precedence over the
// config file. Nil fields leave the file value in place.
type ConfigOverrides struct {
	Listen   *string
	Source   *string
	Player   *string
	Public   *string
	Debounce *time.Duration
	LogJSON  *bool
	Trace    *bool
}

// ResolveConfig loads the config file at path, applies overrides, and validates
// the result. An empty path looks for the default file and tolerates its absence.
func (a *App) ResolveConfig(path string, o ConfigOverrides) (domain.Config, error) {
	required := path != ""
	if path == "" {
		path = domain.DefaultConfigFile
	}

	cfg, err := a.configLoader.Load(path, required)
	if err != nil {
		return domain.Config{}, err
	}

	apply(&cfg.Listen, o.Listen)
	apply(&cfg.Source, o.Source)
	apply(&cfg.Player, o.Player)
	apply(&cfg.Public, o.Public)
	apply(&cfg.Debounce, o.Debounce)
	apply(&cfg.LogJSON, o.LogJSON)
	apply(&cfg.Trace, o.Trace)

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

func apply[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
