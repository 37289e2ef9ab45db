package httpapi

import "strings"

// ETag renders fingerprint as a strong entity tag.
func ETag(fingerprint string) string {
	return `"` + fingerprint + `"`
}

// MatchesETag reports whether an If-None-Match header value names fingerprint.
// Tags may be quoted or bare, and a weak prefix is ignored.
func MatchesETag(header, fingerprint string) bool {
	for tag := range strings.SplitSeq(header, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "*" {
			return true
		}
		tag = strings.TrimPrefix(tag, "W/")
		tag = strings.Trim(tag, `"`)
		if tag != "" && tag == fingerprint {
			return true
		}
	}
	return false
}
