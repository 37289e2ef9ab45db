// Package domain contains the connection graph model: edges, the canonical edge set,
// its fingerprint, and the snapshot served to consumers.
package domain

import (
	"bytes"
	"encoding/json"
	"strings"

	"go.trai.ch/zerr"
)

// EdgeType tags the kind of a connection.
type EdgeType string

// EdgeWalk is the only connection type mirrored into snapshots.
const EdgeWalk EdgeType = "walk"

// Edge is an undirected, typed connection between two location identifiers.
type Edge struct {
	From string   `json:"from"`
	To   string   `json:"to"`
	Type EdgeType `json:"type"`
	// Timestamp is carried through verbatim and never part of the fingerprint.
	Timestamp json.RawMessage `json:"timestamp,omitempty"`
}

// IsSelfLoop reports whether both endpoints are the same location.
func (e Edge) IsSelfLoop() bool {
	return e.From == e.To
}

// Pair returns the endpoints ordered lexicographically.
func (e Edge) Pair() (string, string) {
	if e.To < e.From {
		return e.To, e.From
	}
	return e.From, e.To
}

// Connects reports whether the edge joins a and b, in either direction.
func (e Edge) Connects(a, b string) bool {
	return (e.From == a && e.To == b) || (e.From == b && e.To == a)
}

type rawRecord struct {
	From      json.RawMessage `json:"from"`
	To        json.RawMessage `json:"to"`
	Type      json.RawMessage `json:"type"`
	Timestamp json.RawMessage `json:"timestamp"`
}

// ParseRecord decodes one raw connection record.
// Endpoints may be plain strings or objects with an "id" string member.
func ParseRecord(raw json.RawMessage) (Edge, error) {
	if jsonKind(raw) != '{' {
		return Edge{}, zerr.With(ErrMalformedRecord, "reason", "record is not an object")
	}

	var rec rawRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Edge{}, zerr.Wrap(err, ErrMalformedRecord.Error())
	}

	from, err := parseEndpoint(rec.From)
	if err != nil {
		return Edge{}, zerr.With(err, "field", "from")
	}
	to, err := parseEndpoint(rec.To)
	if err != nil {
		return Edge{}, zerr.With(err, "field", "to")
	}

	if jsonKind(rec.Type) != '"' {
		return Edge{}, zerr.With(ErrMalformedRecord, "field", "type")
	}
	var typ string
	if err := json.Unmarshal(rec.Type, &typ); err != nil {
		return Edge{}, zerr.Wrap(err, ErrMalformedRecord.Error())
	}

	edge := Edge{From: from, To: to, Type: EdgeType(typ)}
	if k := jsonKind(rec.Timestamp); k != 0 && k != 'n' {
		edge.Timestamp = append(json.RawMessage(nil), bytes.TrimSpace(rec.Timestamp)...)
	}
	return edge, nil
}

func parseEndpoint(raw json.RawMessage) (string, error) {
	var id string
	switch jsonKind(raw) {
	case '"':
		if err := json.Unmarshal(raw, &id); err != nil {
			return "", zerr.Wrap(err, ErrMalformedRecord.Error())
		}
	case '{':
		var ref struct {
			ID json.RawMessage `json:"id"`
		}
		if err := json.Unmarshal(raw, &ref); err != nil {
			return "", zerr.Wrap(err, ErrMalformedRecord.Error())
		}
		if jsonKind(ref.ID) != '"' {
			return "", zerr.With(ErrMalformedRecord, "reason", "endpoint id is not a string")
		}
		if err := json.Unmarshal(ref.ID, &id); err != nil {
			return "", zerr.Wrap(err, ErrMalformedRecord.Error())
		}
	default:
		return "", zerr.With(ErrMalformedRecord, "reason", "endpoint missing")
	}

	if strings.TrimSpace(id) == "" {
		return "", zerr.With(ErrMalformedRecord, "reason", "endpoint empty")
	}
	return id, nil
}

// jsonKind returns the first significant byte of a JSON value, or 0 when empty.
func jsonKind(raw []byte) byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}
