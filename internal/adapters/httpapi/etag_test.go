package httpapi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/roam/internal/adapters/httpapi"
)

func TestMatchesETag(t *testing.T) {
	const fp = "3f1a"

	tests := []struct {
		name   string
		header string
		want   bool
	}{
		{name: "empty", header: "", want: false},
		{name: "quoted", header: `"3f1a"`, want: true},
		{name: "bare", header: "3f1a", want: true},
		{name: "weak", header: `W/"3f1a"`, want: true},
		{name: "list", header: `"old", "3f1a"`, want: true},
		{name: "wildcard", header: "*", want: true},
		{name: "other", header: `"3f1b"`, want: false},
		{name: "prefix only", header: `"3f"`, want: false},
		{name: "empty tag", header: `""`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httpapi.MatchesETag(tt.header, fp))
		})
	}
}

func TestETag(t *testing.T) {
	assert.Equal(t, `"abc"`, httpapi.ETag("abc"))
}
