package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/roam/internal/core/domain"
)

func TestNewSnapshot_Body(t *testing.T) {
	set := domain.Canonicalize(records(t,
		`{"from":"X","to":"Y","type":"walk","timestamp":"2024-05-01T00:00:00Z"}`,
		`{"from":"Y","to":"Z","type":"walk"}`,
	))
	locations := map[string]json.RawMessage{"X": json.RawMessage(`{"name":"Fort"}`)}

	snap, err := domain.NewSnapshot(set, locations, 3, time.Unix(10, 0))
	require.NoError(t, err)

	assert.Equal(t, set.Fingerprint(), snap.Fingerprint())
	assert.Equal(t, uint64(3), snap.Generation())
	assert.Equal(t, 1, snap.LocationCount())
	assert.JSONEq(t, `{
		"connections": [
			{"from":"X","to":"Y","type":"walk","timestamp":"2024-05-01T00:00:00Z"},
			{"from":"Y","to":"Z","type":"walk"}
		],
		"locations": {"X": {"name":"Fort"}}
	}`, string(snap.Body()))
}

func TestNewSnapshot_IsolatedFromCallerMap(t *testing.T) {
	locations := map[string]json.RawMessage{"X": json.RawMessage(`{}`)}
	snap, err := domain.NewSnapshot(domain.EdgeSet{}, locations, 1, time.Now())
	require.NoError(t, err)

	locations["Y"] = json.RawMessage(`{}`)
	assert.Equal(t, 1, snap.LocationCount())

	got := snap.Locations()
	got["Z"] = json.RawMessage(`{}`)
	assert.Equal(t, 1, snap.LocationCount())
}

func TestEmptySnapshot_MatchesEncodedEmptySet(t *testing.T) {
	built, err := domain.NewSnapshot(domain.EdgeSet{}, nil, 0, time.Time{})
	require.NoError(t, err)

	empty := domain.EmptySnapshot()
	assert.Equal(t, built.Body(), empty.Body())
	assert.Equal(t, built.Fingerprint(), empty.Fingerprint())
	assert.Equal(t, 0, empty.Edges().Len())
}

func TestParsePlayer(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    *string
		wantErr bool
	}{
		{name: "id set", data: `{"id":"X"}`, want: ptr("X")},
		{name: "id null", data: `{"id":null}`},
		{name: "id missing", data: `{}`},
		{name: "id number", data: `{"id":4}`, wantErr: true},
		{name: "not an object", data: `"X"`, wantErr: true},
		{name: "broken json", data: `{"id":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := domain.ParsePlayer([]byte(tt.data))
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrPlayerUnreadable)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, pos.ID)
			assert.Equal(t, tt.want != nil, pos.Known())
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := domain.DefaultConfig()
	valid.Source = "map.json"
	require.NoError(t, valid.Validate())

	noSource := domain.DefaultConfig()
	require.ErrorIs(t, noSource.Validate(), domain.ErrConfigInvalid)

	noDebounce := valid
	noDebounce.Debounce = 0
	require.ErrorIs(t, noDebounce.Validate(), domain.ErrConfigInvalid)

	noListen := valid
	noListen.Listen = ""
	require.ErrorIs(t, noListen.Validate(), domain.ErrConfigInvalid)
}

func TestMutationOutcome(t *testing.T) {
	assert.True(t, domain.OutcomeAdded.Changed())
	assert.True(t, domain.OutcomeRemoved.Changed())
	assert.False(t, domain.OutcomeAlreadyExists.Changed())
	assert.False(t, domain.OutcomeNotFound.Changed())
	assert.Equal(t, "connection already exists", domain.OutcomeAlreadyExists.Message())
}

func ptr(s string) *string {
	return &s
}
