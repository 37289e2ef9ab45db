// Package watcher implements file watching and debouncing of change bursts.
package watcher

import (
	"sync"
	"time"

	"go.trai.ch/roam/internal/core/ports"
)

var _ ports.Debouncer = (*Debouncer)(nil)

// State is the position of a Debouncer in its Idle → Pending → Firing → Idle cycle.
type State uint8

const (
	// StateIdle means no callback is scheduled or running.
	StateIdle State = iota
	// StatePending means a callback is scheduled for the end of the window.
	StatePending
	// StateFiring means the callback is running and nothing is scheduled.
	StateFiring
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateFiring:
		return "firing"
	default:
		return "unknown"
	}
}

// Debouncer coalesces rapid change events into a single callback run.
// It holds at most one pending timer; a trigger while pending moves the deadline.
type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	gen      uint64
	running  int
	window   time.Duration
	callback func()
}

// NewDebouncer creates a new debouncer with the given time window and callback.
func NewDebouncer(window time.Duration, callback func()) *Debouncer {
	return &Debouncer{
		window:   window,
		callback: callback,
	}
}

// State reports the current state. A trigger during a run is Pending.
func (d *Debouncer) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch {
	case d.timer != nil:
		return StatePending
	case d.running > 0:
		return StateFiring
	default:
		return StateIdle
	}
}

// Trigger records a change and restarts the quiet period.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	// A timer that already expired but has not taken the lock sees a stale generation.
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.window, func() { d.fire(gen) })
}

// fire is called when the debounce window expires.
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || d.timer == nil {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.running++
	d.mu.Unlock()

	d.run()
}

// Flush immediately runs a pending callback and blocks until it completes.
// It does nothing when no callback is pending.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer == nil {
		d.mu.Unlock()
		return
	}
	d.timer.Stop()
	d.timer = nil
	d.gen++
	d.running++
	d.mu.Unlock()

	d.run()
}

// Stop discards a pending callback. A run in progress is not interrupted.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}

func (d *Debouncer) run() {
	defer func() {
		d.mu.Lock()
		d.running--
		d.mu.Unlock()
	}()

	if d.callback != nil {
		d.callback()
	}
}
