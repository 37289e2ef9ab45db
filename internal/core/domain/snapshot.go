package domain

import (
	"encoding/json"
	"maps"
	"time"

	"go.trai.ch/zerr"
)

// Snapshot is the immutable unit of cached state served to consumers.
// It is replaced as a whole and never modified after NewSnapshot returns.
type Snapshot struct {
	edges       EdgeSet
	fingerprint string
	locations   map[string]json.RawMessage
	body        []byte
	generation  uint64
	loadedAt    time.Time
}

type snapshotBody struct {
	Connections []Edge                     `json:"connections"`
	Locations   map[string]json.RawMessage `json:"locations"`
}

// NewSnapshot builds a snapshot and pre-encodes its response body.
func NewSnapshot(edges EdgeSet, locations map[string]json.RawMessage, generation uint64, loadedAt time.Time) (*Snapshot, error) {
	locs := maps.Clone(locations)
	if locs == nil {
		locs = map[string]json.RawMessage{}
	}

	body, err := json.Marshal(snapshotBody{
		Connections: edges.Edges(),
		Locations:   locs,
	})
	if err != nil {
		return nil, zerr.Wrap(err, ErrSnapshotEncodeFailed.Error())
	}

	return &Snapshot{
		edges:       edges,
		fingerprint: edges.Fingerprint(),
		locations:   locs,
		body:        body,
		generation:  generation,
		loadedAt:    loadedAt,
	}, nil
}

// EmptySnapshot is the state before the first successful load.
func EmptySnapshot() *Snapshot {
	var edges EdgeSet
	return &Snapshot{
		edges:       edges,
		fingerprint: edges.Fingerprint(),
		locations:   map[string]json.RawMessage{},
		body:        []byte(`{"connections":[],"locations":{}}`),
	}
}

// Edges returns the canonical edge set.
func (s *Snapshot) Edges() EdgeSet {
	return s.edges
}

// Fingerprint returns the content fingerprint of the edge set.
func (s *Snapshot) Fingerprint() string {
	return s.fingerprint
}

// Locations returns a copy of the location map.
func (s *Snapshot) Locations() map[string]json.RawMessage {
	return maps.Clone(s.locations)
}

// LocationCount returns the number of locations.
func (s *Snapshot) LocationCount() int {
	return len(s.locations)
}

// Body returns the encoded {connections, locations} document. Callers must not modify it.
func (s *Snapshot) Body() []byte {
	return s.body
}

// Generation counts effective replacements since startup; the empty snapshot is 0.
func (s *Snapshot) Generation() uint64 {
	return s.generation
}

// LoadedAt returns when the snapshot was built.
func (s *Snapshot) LoadedAt() time.Time {
	return s.loadedAt
}
