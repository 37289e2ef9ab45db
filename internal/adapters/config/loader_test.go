package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/roam/internal/adapters/config"
	"go.trai.ch/roam/internal/core/domain"
	"go.trai.ch/roam/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	logger := mocks.NewMockLogger(gomock.NewController(t))
	return config.NewLoader(logger), logger
}

func TestLoader_Load_Full(t *testing.T) {
	path := writeConfig(t, `
listen: 127.0.0.1:8080
source: data/world.json
player: /var/roam/player.json
public: public
debounce: 250ms
log:
  json: true
trace: true
`)
	dir := filepath.Dir(path)
	loader, _ := newLoader(t)

	cfg, err := loader.Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, domain.Config{
		Listen:   "127.0.0.1:8080",
		Source:   filepath.Join(dir, "data", "world.json"),
		Player:   "/var/roam/player.json",
		Public:   filepath.Join(dir, "public"),
		Debounce: 250 * time.Millisecond,
		LogJSON:  true,
		Trace:    true,
	}, cfg)
}

func TestLoader_Load_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "source: world.json\n")
	loader, _ := newLoader(t)

	cfg, err := loader.Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultListen, cfg.Listen)
	assert.Equal(t, domain.DefaultDebounce, cfg.Debounce)
	assert.Empty(t, cfg.Player)
	assert.False(t, cfg.LogJSON)
	require.NoError(t, cfg.Validate())
}

func TestLoader_Load_EmptyFile(t *testing.T) {
	path := writeConfig(t, "")
	loader, _ := newLoader(t)

	cfg, err := loader.Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoader_Load_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.DefaultConfigFile)
	loader, _ := newLoader(t)

	cfg, err := loader.Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)

	_, err = loader.Load(path, true)
	require.ErrorIs(t, err, domain.ErrConfigReadFailed)
}

func TestLoader_Load_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "invalid yaml", content: "listen: [unterminated\n"},
		{name: "unknown key", content: "sauce: world.json\n"},
		{name: "bad duration", content: "debounce: soon\n"},
		{name: "wrong type", content: "trace: yes-please\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, _ := newLoader(t)
			_, err := loader.Load(writeConfig(t, tt.content), true)
			require.ErrorIs(t, err, domain.ErrConfigParseFailed)
		})
	}
}

func TestLoader_Load_WarnsOnTinyDebounce(t *testing.T) {
	path := writeConfig(t, "debounce: 1ms\n")
	loader, logger := newLoader(t)
	logger.EXPECT().Warn(gomock.Any()).Times(1)

	cfg, err := loader.Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, time.Millisecond, cfg.Debounce)
}
