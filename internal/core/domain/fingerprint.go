package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strconv"
	"strings"
)

// keySeparator joins semantic keys before hashing. Keys never contain a raw newline.
const keySeparator = "\n"

// SemanticKey encodes exactly the type and the unordered endpoint pair of an edge,
// e.g. "walk:X->Y". Identifiers that could make the encoding ambiguous are quoted.
func SemanticKey(e Edge) string {
	a, b := e.Pair()
	var sb strings.Builder
	sb.Grow(len(e.Type) + len(a) + len(b) + 3)
	sb.WriteString(string(e.Type))
	sb.WriteByte(':')
	sb.WriteString(keyIdent(a))
	sb.WriteString("->")
	sb.WriteString(keyIdent(b))
	return sb.String()
}

func keyIdent(id string) string {
	if id == "" || strings.ContainsAny(id, "\"\\:\n\x00") || strings.Contains(id, "->") {
		return strconv.Quote(id)
	}
	return id
}

// ComputeFingerprint returns the hex SHA-256 digest of the sorted semantic keys of the set.
// It does not depend on edge order, direction or timestamps.
func ComputeFingerprint(set EdgeSet) string {
	keys := make([]string, 0, set.Len())
	for e := range set.All() {
		keys = append(keys, SemanticKey(e))
	}
	slices.Sort(keys)

	sum := sha256.Sum256([]byte(strings.Join(keys, keySeparator)))
	return hex.EncodeToString(sum[:])
}

// Fingerprint returns the content fingerprint of the set.
func (s EdgeSet) Fingerprint() string {
	return ComputeFingerprint(s)
}
