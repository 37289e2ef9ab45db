package jsonstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/roam/internal/adapters/jsonstore"
	"go.trai.ch/roam/internal/core/domain"
)

func TestPlayerFile_Load(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "player.json")
	writeFile(t, path, `{"id": "X"}`)

	player := jsonstore.NewPlayerFile(path)
	assert.Equal(t, path, player.Path())

	pos, err := player.Load(context.Background())
	require.NoError(t, err)
	require.True(t, pos.Known())
	assert.Equal(t, "X", *pos.ID)
}

func TestPlayerFile_LoadErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := jsonstore.NewPlayerFile(filepath.Join(dir, "missing.json")).Load(context.Background())
	require.ErrorIs(t, err, domain.ErrPlayerUnreadable)

	broken := filepath.Join(dir, "broken.json")
	writeFile(t, broken, `{"id": 3}`)
	_, err = jsonstore.NewPlayerFile(broken).Load(context.Background())
	require.ErrorIs(t, err, domain.ErrPlayerUnreadable)
}
