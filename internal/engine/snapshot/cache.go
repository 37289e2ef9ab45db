// Package snapshot holds the current mirror snapshot behind a lock-free read and a
// serialized replace.
package snapshot

import (
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.trai.ch/roam/internal/core/domain"
	"go.trai.ch/roam/internal/core/ports"
)

// Cache is the single owner of the served snapshot.
type Cache struct {
	current atomic.Pointer[domain.Snapshot]
	mu      sync.Mutex
	logger  ports.Logger
	metrics ports.Metrics
	now     func() time.Time
}

// NewCache creates a cache holding the empty snapshot.
func NewCache(logger ports.Logger, metrics ports.Metrics) *Cache {
	c := &Cache{
		logger:  logger,
		metrics: metrics,
		now:     time.Now,
	}
	c.current.Store(domain.EmptySnapshot())
	return c
}

// Read returns the current snapshot. It never blocks.
func (c *Cache) Read() *domain.Snapshot {
	return c.current.Load()
}

// Replace installs a snapshot of edges and locations unless its fingerprint equals
// the current one. The first call always installs, so locations of a source
// without walk connections are served. It reports whether the snapshot changed.
func (c *Cache) Replace(edges domain.EdgeSet, locations map[string]json.RawMessage) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.current.Load()
	if prev.Generation() > 0 && edges.Fingerprint() == prev.Fingerprint() {
		return false, nil
	}

	next, err := domain.NewSnapshot(edges, locations, prev.Generation()+1, c.now())
	if err != nil {
		return false, err
	}
	c.current.Store(next)

	delta := next.Edges().Len() - prev.Edges().Len()
	c.logger.Info(fmt.Sprintf("connections updated: %d (%+d)", next.Edges().Len(), delta))
	c.metrics.SetSnapshotSize(next.Edges().Len(), next.LocationCount())
	return true, nil
}
