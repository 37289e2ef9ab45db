package mirror_test

import (
	"context"
	"errors"
	"iter"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/roam/internal/core/domain"
	"go.trai.ch/roam/internal/core/ports"
	"go.trai.ch/roam/internal/core/ports/mocks"
	"go.trai.ch/roam/internal/engine/mirror"
	"go.uber.org/mock/gomock"
)

// chanWatcher replays events pushed by the test.
type chanWatcher struct {
	events   chan ports.WatchEvent
	stopOnce sync.Once
	started  string
	startErr error
}

func newChanWatcher() *chanWatcher {
	return &chanWatcher{events: make(chan ports.WatchEvent, 8)}
}

func (w *chanWatcher) Start(_ context.Context, path string) error {
	w.started = path
	return w.startErr
}

func (w *chanWatcher) Stop() error {
	w.stopOnce.Do(func() { close(w.events) })
	return nil
}

func (w *chanWatcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for ev := range w.events {
			if !yield(ev) {
				return
			}
		}
	}
}

func TestFollow_TriggersOnModification(t *testing.T) {
	ctrl := gomock.NewController(t)
	debouncer := mocks.NewMockDebouncer(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	w := newChanWatcher()
	w.events <- ports.WatchEvent{Path: "/data/world.json", Operation: ports.OpWrite}
	w.events <- ports.WatchEvent{Path: "/data/world.json", Operation: ports.OpCreate}
	w.events <- ports.WatchEvent{Path: "/data/world.json", Operation: ports.OpRemove}
	require.NoError(t, w.Stop())

	// One trigger once the watch is up, then one per modification.
	debouncer.EXPECT().Trigger().Times(3)
	debouncer.EXPECT().Stop()
	logger.EXPECT().Warn("world.json: remove event, keeping last state")

	err := mirror.Follow(context.Background(), w, "/data/world.json", debouncer, logger)
	require.NoError(t, err)
	assert.Equal(t, "/data/world.json", w.started)
}

func TestFollow_EndsWithContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	debouncer := mocks.NewMockDebouncer(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	debouncer.EXPECT().Trigger()
	debouncer.EXPECT().Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- mirror.Follow(ctx, newChanWatcher(), "world.json", debouncer, logger)
	}()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Follow did not return after cancel")
	}
}

func TestFollow_StartFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := newChanWatcher()
	w.startErr = errors.Join(domain.ErrWatchFailed, errors.New("no such directory"))

	err := mirror.Follow(context.Background(), w, "world.json", mocks.NewMockDebouncer(ctrl), mocks.NewMockLogger(ctrl))
	require.ErrorIs(t, err, domain.ErrWatchFailed)
}
