package domain

import (
	"encoding/json"
	"errors"
	"maps"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

const (
	locationsKey   = "locations"
	connectionsKey = "connections"
)

// Source is the durable document the mirror is built from:
// {"locations": {...}, "connections": [...]}.
// Connection records are kept raw so that rewriting the document preserves records the
// mirror ignores (other types, malformed entries).
type Source struct {
	// Locations maps a location identifier to its opaque metadata.
	Locations map[string]json.RawMessage
	// Connections holds every connection record as found in the document.
	Connections []json.RawMessage
	// Digest identifies the raw bytes the document was read from or written as.
	Digest string

	extra map[string]json.RawMessage
}

// NewSource returns an empty source document.
func NewSource() *Source {
	return &Source{
		Locations:   map[string]json.RawMessage{},
		Connections: []json.RawMessage{},
	}
}

// ParseSource decodes a source document.
// Invalid JSON is ErrSourceUnreadable; valid JSON of the wrong shape is ErrSourceMalformed.
func ParseSource(data []byte) (*Source, error) {
	if !json.Valid(data) {
		return nil, errors.Join(ErrSourceUnreadable, zerr.New("source is not valid JSON"))
	}

	if jsonKind(data) != '{' {
		return nil, errors.Join(ErrSourceMalformed, zerr.New("top level is not an object"))
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, errors.Join(ErrSourceMalformed, err)
	}

	rawLocations, ok := top[locationsKey]
	if !ok || jsonKind(rawLocations) != '{' {
		return nil, errors.Join(ErrSourceMalformed, zerr.With(zerr.New("member must be an object"), "member", locationsKey))
	}
	rawConnections, ok := top[connectionsKey]
	if !ok || jsonKind(rawConnections) != '[' {
		return nil, errors.Join(ErrSourceMalformed, zerr.With(zerr.New("member must be an array"), "member", connectionsKey))
	}

	src := &Source{}
	if err := json.Unmarshal(rawLocations, &src.Locations); err != nil {
		return nil, errors.Join(ErrSourceMalformed, err)
	}
	if err := json.Unmarshal(rawConnections, &src.Connections); err != nil {
		return nil, errors.Join(ErrSourceMalformed, err)
	}
	if src.Locations == nil {
		src.Locations = map[string]json.RawMessage{}
	}
	if src.Connections == nil {
		src.Connections = []json.RawMessage{}
	}

	delete(top, locationsKey)
	delete(top, connectionsKey)
	if len(top) > 0 {
		src.extra = top
	}

	return src, nil
}

// Encode renders the document as indented JSON, keeping unknown top-level members.
func (s *Source) Encode() ([]byte, error) {
	out := make(map[string]any, len(s.extra)+2)
	for k, v := range s.extra {
		out[k] = v
	}

	locations := s.Locations
	if locations == nil {
		locations = map[string]json.RawMessage{}
	}
	connections := s.Connections
	if connections == nil {
		connections = []json.RawMessage{}
	}
	out[locationsKey] = locations
	out[connectionsKey] = connections

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, zerr.Wrap(err, ErrSourceEncodeFailed.Error())
	}
	return append(data, '\n'), nil
}

// Edges returns the canonical edge set of the document.
func (s *Source) Edges() (EdgeSet, CanonicalStats) {
	return CanonicalizeWithStats(s.Connections)
}

// LocationsCopy returns a shallow copy of the location map.
func (s *Source) LocationsCopy() map[string]json.RawMessage {
	if s.Locations == nil {
		return map[string]json.RawMessage{}
	}
	return maps.Clone(s.Locations)
}

// HasWalk reports whether a walk record joins a and b in either direction.
func (s *Source) HasWalk(a, b string) bool {
	for _, raw := range s.Connections {
		if e, err := ParseRecord(raw); err == nil && e.Type == EdgeWalk && e.Connects(a, b) {
			return true
		}
	}
	return false
}

// AppendWalk adds a walk record from a to b stamped with at.
func (s *Source) AppendWalk(a, b string, at time.Time) error {
	ts, err := json.Marshal(at.UTC().Format(time.RFC3339))
	if err != nil {
		return zerr.Wrap(err, ErrSourceEncodeFailed.Error())
	}
	raw, err := json.Marshal(Edge{From: a, To: b, Type: EdgeWalk, Timestamp: ts})
	if err != nil {
		return zerr.Wrap(err, ErrSourceEncodeFailed.Error())
	}
	s.Connections = append(s.Connections, raw)
	return nil
}

// RemoveWalk deletes every walk record joining a and b in either direction and
// returns how many were removed. Other records are kept in order.
func (s *Source) RemoveWalk(a, b string) int {
	kept := make([]json.RawMessage, 0, len(s.Connections))
	removed := 0
	for _, raw := range s.Connections {
		if e, err := ParseRecord(raw); err == nil && e.Type == EdgeWalk && e.Connects(a, b) {
			removed++
			continue
		}
		kept = append(kept, raw)
	}
	s.Connections = kept
	return removed
}

// ValidateEndpoints checks the endpoints of a requested mutation.
func ValidateEndpoints(from, to string) error {
	switch {
	case strings.TrimSpace(from) == "":
		return errors.Join(ErrInvalidEdge, zerr.With(zerr.New("endpoint is required"), "field", "from"))
	case strings.TrimSpace(to) == "":
		return errors.Join(ErrInvalidEdge, zerr.With(zerr.New("endpoint is required"), "field", "to"))
	case from == to:
		return errors.Join(ErrInvalidEdge, zerr.With(zerr.New("connection must join two different locations"), "location", from))
	}
	return nil
}
