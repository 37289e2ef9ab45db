package mirror

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/roam/internal/core/ports"
)

// Follow watches path and triggers d on every modification until ctx is done.
// It triggers once after the watch is established, so a change landing between
// an earlier load and Start is not missed.
// Removal or rename of the file is logged; the last state is kept until the file
// is written again.
func Follow(ctx context.Context, w ports.Watcher, path string, d ports.Debouncer, logger ports.Logger) error {
	if err := w.Start(ctx, path); err != nil {
		_ = w.Stop()
		return err
	}
	stop := context.AfterFunc(ctx, func() { _ = w.Stop() })
	defer func() {
		stop()
		d.Stop()
		_ = w.Stop()
	}()

	d.Trigger()

	name := filepath.Base(path)
	for ev := range w.Events() {
		if ev.Operation.Modifies() {
			d.Trigger()
			continue
		}
		logger.Warn(fmt.Sprintf("%s: %s event, keeping last state", name, ev.Operation))
	}
	return nil
}
