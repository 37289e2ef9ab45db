package ports

import (
	"context"
	"iter"
	"time"
)

// WatchOp represents the type of file system operation.
type WatchOp uint8

const (
	// OpCreate indicates the file was created or moved into place.
	OpCreate WatchOp = iota
	// OpWrite indicates the file was modified.
	OpWrite
	// OpRemove indicates the file was removed.
	OpRemove
	// OpRename indicates the file was renamed away.
	OpRename
)

// String returns the name of the operation.
func (op WatchOp) String() string {
	switch op {
	case OpCreate:
		return "create"
	case OpWrite:
		return "write"
	case OpRemove:
		return "remove"
	case OpRename:
		return "rename"
	default:
		return "unknown"
	}
}

// Modifies reports whether the operation may have changed the file's content.
func (op WatchOp) Modifies() bool {
	return op == OpCreate || op == OpWrite
}

// WatchEvent represents a file system event from the watcher.
type WatchEvent struct {
	// Path is the path of the watched file.
	Path string
	// Operation is the type of change that occurred.
	Operation WatchOp
}

// Watcher defines the interface for watching a single file for changes.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the file at path.
	// It returns an error if the watcher fails to start.
	Start(ctx context.Context, path string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of file system events. It ends when the watcher stops.
	Events() iter.Seq[WatchEvent]
}

// WatcherFactory creates a new, unstarted watcher.
type WatcherFactory func() (Watcher, error)

// Debouncer coalesces bursts of triggers into a single callback run.
type Debouncer interface {
	// Trigger records a change and (re)starts the quiet period.
	Trigger()
	// Flush runs a pending callback immediately and waits for it.
	Flush()
	// Stop discards a pending callback.
	Stop()
}

// DebouncerFactory creates a debouncer that calls fn once the window passes without a trigger.
type DebouncerFactory func(window time.Duration, fn func()) Debouncer
