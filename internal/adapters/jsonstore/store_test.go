package jsonstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/roam/internal/adapters/jsonstore"
	"go.trai.ch/roam/internal/core/domain"
)

const sourceDoc = `{
  "locations": {"X": {"name": "Fort"}},
  "connections": [
    {"from": "X", "to": "Y", "type": "walk"},
    {"from": "X", "to": "Z", "type": "fly"}
  ]
}`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
}

func TestFileStore_Load(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "world.json")
	writeFile(t, path, sourceDoc)

	store := jsonstore.NewFileStore(path)
	assert.Equal(t, path, store.Path())

	src, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, src.Connections, 2)
	assert.Equal(t, jsonstore.Digest([]byte(sourceDoc)), src.Digest)
	assert.Len(t, src.Digest, 16)
}

func TestFileStore_LoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content *string
		wantErr error
	}{
		{name: "missing file", wantErr: domain.ErrSourceUnreadable},
		{name: "half written", content: ptr(`{"locations": {}, "conn`), wantErr: domain.ErrSourceUnreadable},
		{name: "wrong shape", content: ptr(`{"locations": {}}`), wantErr: domain.ErrSourceMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "world.json")
			if tt.content != nil {
				writeFile(t, path, *tt.content)
			}

			_, err := jsonstore.NewFileStore(path).Load(context.Background())
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFileStore_SaveRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "world.json")
	writeFile(t, path, sourceDoc)

	store := jsonstore.NewFileStore(path)
	src, err := store.Load(context.Background())
	require.NoError(t, err)

	require.NoError(t, src.AppendWalk("Y", "Z", time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)))
	require.NoError(t, store.Save(context.Background(), src))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, jsonstore.Digest(data), src.Digest)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(domain.FilePerm), info.Mode().Perm())

	again, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, again.Connections, 3)
	assert.True(t, again.HasWalk("Z", "Y"))
	assert.Equal(t, src.Digest, again.Digest)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileStore_SaveFailureKeepsPreviousContent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "world.json")
	writeFile(t, path, sourceDoc)

	// The parent of the target is a regular file, so the write cannot start.
	store := jsonstore.NewFileStore(filepath.Join(path, "nested.json"))
	err := store.Save(context.Background(), domain.NewSource())
	require.ErrorIs(t, err, domain.ErrPersistFailed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sourceDoc, string(data))
}

func TestFileStore_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := jsonstore.NewFileStore(filepath.Join(t.TempDir(), "world.json"))
	_, err := store.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, store.Save(ctx, domain.NewSource()), context.Canceled)
}

func TestDigest_Stable(t *testing.T) {
	t.Parallel()

	assert.Equal(t, jsonstore.Digest([]byte("abc")), jsonstore.Digest([]byte("abc")))
	assert.NotEqual(t, jsonstore.Digest([]byte("abc")), jsonstore.Digest([]byte("abd")))
}

func ptr(s string) *string {
	return &s
}
