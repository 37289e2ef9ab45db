package mirror

import (
	"context"
	"sync/atomic"

	"go.trai.ch/roam/internal/core/domain"
	"go.trai.ch/roam/internal/core/ports"
)

// PlayerTracker holds the last good player position read from the player file.
type PlayerTracker struct {
	source  ports.PlayerSource
	logger  ports.Logger
	current atomic.Pointer[domain.PlayerPosition]
}

// NewPlayerTracker creates a tracker for source. A nil source always reports an
// unknown position.
func NewPlayerTracker(source ports.PlayerSource, logger ports.Logger) *PlayerTracker {
	t := &PlayerTracker{source: source, logger: logger}
	t.current.Store(&domain.PlayerPosition{})
	return t
}

// Enabled reports whether a player file is tracked.
func (t *PlayerTracker) Enabled() bool {
	return t.source != nil
}

// Current returns the last good position.
func (t *PlayerTracker) Current() domain.PlayerPosition {
	return *t.current.Load()
}

// Reload reads the player file. A failed read is logged and keeps the previous position.
func (t *PlayerTracker) Reload(ctx context.Context) error {
	if t.source == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	pos, err := t.source.Load(ctx)
	if err != nil {
		t.logger.Error(err)
		return err
	}
	t.current.Store(&pos)
	return nil
}

// ReloadFunc returns a callback running Reload, for use with a debouncer.
func (t *PlayerTracker) ReloadFunc(ctx context.Context) func() {
	return func() {
		_ = t.Reload(ctx)
	}
}
