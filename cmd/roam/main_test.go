package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/roam/internal/adapters/jsonstore"
	"go.trai.ch/roam/internal/adapters/metrics"
	"go.trai.ch/roam/internal/adapters/telemetry"
	"go.trai.ch/roam/internal/app"
	"go.trai.ch/roam/internal/core/domain"
	"go.trai.ch/roam/internal/core/ports"
	"go.trai.ch/roam/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newProvider(t *testing.T) (ComponentProvider, *mocks.MockConfigLoader, *mocks.MockLogger) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	application := app.New(
		mockLoader,
		mockLogger,
		func(path string) ports.SourceStore { return jsonstore.NewFileStore(path) },
		func(path string) ports.PlayerSource { return jsonstore.NewPlayerFile(path) },
		func() (ports.Watcher, error) { return mocks.NewMockWatcher(ctrl), nil },
		func(time.Duration, func()) ports.Debouncer { return mocks.NewMockDebouncer(ctrl) },
		telemetry.NewNoOpTracer(),
		metrics.New(),
	)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}
	return provider, mockLoader, mockLogger
}

// TestRun_Version verifies that run returns 0 when the command succeeds.
func TestRun_Version(t *testing.T) {
	provider, _, _ := newProvider(t)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "roam version dev")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when a command fails.
func TestRun_ExecutionError(t *testing.T) {
	provider, loader, logger := newProvider(t)

	missing := filepath.Join(t.TempDir(), "absent.json")
	cfg := domain.DefaultConfig()
	loader.EXPECT().Load(domain.DefaultConfigFile, false).Return(cfg, nil)
	logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrSourceUnreadable)
	})

	exitCode := run(context.Background(), []string{"fingerprint", "--source", missing}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_EdgeAdd verifies a mutation round trip through the CLI.
func TestRun_EdgeAdd(t *testing.T) {
	provider, loader, _ := newProvider(t)

	path := filepath.Join(t.TempDir(), "world.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"locations":{},"connections":[]}`), domain.FilePerm))
	loader.EXPECT().Load(domain.DefaultConfigFile, false).Return(domain.DefaultConfig(), nil)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"edge", "add", "A", "B", "--source", path}, stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "connection added")
}
