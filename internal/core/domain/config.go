package domain

import (
	"errors"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// Config holds the runtime settings of the mirror service.
type Config struct {
	// Listen is the address the snapshot server binds to.
	Listen string
	// Source is the path of the connections document.
	Source string
	// Player is the path of the player position file. Empty disables the player endpoint.
	Player string
	// Public is the directory of static UI assets. Empty disables static serving.
	Public string
	// Debounce is the quiet period after the last change event before a reload.
	Debounce time.Duration
	// LogJSON switches the logger to JSON output.
	LogJSON bool
	// Trace exports spans to stderr.
	Trace bool
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Listen:   DefaultListen,
		Debounce: DefaultDebounce,
	}
}

// Validate checks that the configuration can run a server.
func (c Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Source) == "":
		return errors.Join(ErrConfigInvalid, zerr.With(zerr.New("source path is required"), "field", "source"))
	case strings.TrimSpace(c.Listen) == "":
		return errors.Join(ErrConfigInvalid, zerr.With(zerr.New("listen address is required"), "field", "listen"))
	case c.Debounce <= 0:
		return errors.Join(ErrConfigInvalid, zerr.With(zerr.New("debounce must be positive"), "debounce", c.Debounce.String()))
	}
	return nil
}
