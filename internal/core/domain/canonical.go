package domain

import (
	"encoding/json"
	"iter"
)

// EdgeSet is a deduplicated, filtered sequence of walk edges in first-seen order.
// The zero value is an empty set. An EdgeSet is never modified after construction.
type EdgeSet struct {
	edges []Edge
}

// Len returns the number of edges in the set.
func (s EdgeSet) Len() int {
	return len(s.edges)
}

// All returns an iterator over the edges in first-seen order.
func (s EdgeSet) All() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for _, e := range s.edges {
			if !yield(e) {
				return
			}
		}
	}
}

// Edges returns a copy of the edges in first-seen order.
func (s EdgeSet) Edges() []Edge {
	out := make([]Edge, len(s.edges))
	copy(out, s.edges)
	return out
}

// Contains reports whether the set holds an edge between a and b.
func (s EdgeSet) Contains(a, b string) bool {
	for _, e := range s.edges {
		if e.Connects(a, b) {
			return true
		}
	}
	return false
}

// CanonicalStats counts the records dropped while canonicalizing.
type CanonicalStats struct {
	Malformed  int
	Filtered   int
	SelfLoops  int
	Duplicates int
}

// Dropped returns the total number of records that did not make it into the set.
func (c CanonicalStats) Dropped() int {
	return c.Malformed + c.Filtered + c.SelfLoops + c.Duplicates
}

// Canonicalize turns raw connection records into a canonical edge set.
func Canonicalize(records []json.RawMessage) EdgeSet {
	set, _ := CanonicalizeWithStats(records)
	return set
}

// CanonicalizeWithStats is Canonicalize that also reports what was dropped.
// Malformed records are skipped individually.
func CanonicalizeWithStats(records []json.RawMessage) (EdgeSet, CanonicalStats) {
	var stats CanonicalStats
	edges := make([]Edge, 0, len(records))
	for _, raw := range records {
		edge, err := ParseRecord(raw)
		if err != nil {
			stats.Malformed++
			continue
		}
		edges = append(edges, edge)
	}

	set, rest := canonicalize(edges)
	stats.Filtered = rest.Filtered
	stats.SelfLoops = rest.SelfLoops
	stats.Duplicates = rest.Duplicates
	return set, stats
}

// CanonicalizeEdges applies the walk filter, self-loop rejection and undirected dedup to
// already parsed edges. Applying it to its own output yields the same set.
func CanonicalizeEdges(edges []Edge) EdgeSet {
	set, _ := canonicalize(edges)
	return set
}

type pairKey struct {
	a, b string
}

func canonicalize(edges []Edge) (EdgeSet, CanonicalStats) {
	var stats CanonicalStats
	seen := make(map[pairKey]struct{}, len(edges))
	out := make([]Edge, 0, len(edges))

	for _, e := range edges {
		if e.Type != EdgeWalk {
			stats.Filtered++
			continue
		}
		if e.IsSelfLoop() {
			stats.SelfLoops++
			continue
		}

		// The ordered pair covers both from->to and to->from.
		a, b := e.Pair()
		key := pairKey{a: a, b: b}
		if _, dup := seen[key]; dup {
			stats.Duplicates++
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
	}

	return EdgeSet{edges: out}, stats
}
