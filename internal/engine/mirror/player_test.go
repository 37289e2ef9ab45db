package mirror_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/roam/internal/core/domain"
	"go.trai.ch/roam/internal/core/ports/mocks"
	"go.trai.ch/roam/internal/engine/mirror"
	"go.uber.org/mock/gomock"
)

func TestPlayerTracker_Disabled(t *testing.T) {
	tracker := mirror.NewPlayerTracker(nil, mocks.NewMockLogger(gomock.NewController(t)))

	assert.False(t, tracker.Enabled())
	require.NoError(t, tracker.Reload(context.Background()))
	assert.False(t, tracker.Current().Known())
}

func TestPlayerTracker_KeepsLastGoodPosition(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockPlayerSource(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	tracker := mirror.NewPlayerTracker(source, logger)
	assert.True(t, tracker.Enabled())

	id := "X"
	readErr := errors.Join(domain.ErrPlayerUnreadable, errors.New("truncated"))
	gomock.InOrder(
		source.EXPECT().Load(gomock.Any()).Return(domain.PlayerPosition{ID: &id}, nil),
		source.EXPECT().Load(gomock.Any()).Return(domain.PlayerPosition{}, readErr),
		source.EXPECT().Load(gomock.Any()).Return(domain.PlayerPosition{}, nil),
	)
	logger.EXPECT().Error(readErr)

	require.NoError(t, tracker.Reload(context.Background()))
	require.True(t, tracker.Current().Known())
	assert.Equal(t, "X", *tracker.Current().ID)

	require.ErrorIs(t, tracker.Reload(context.Background()), domain.ErrPlayerUnreadable)
	assert.Equal(t, "X", *tracker.Current().ID)

	tracker.ReloadFunc(context.Background())()
	assert.False(t, tracker.Current().Known(), "an explicit null clears the position")
}

func TestPlayerTracker_ReloadAfterCancelIsQuiet(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracker := mirror.NewPlayerTracker(mocks.NewMockPlayerSource(ctrl), mocks.NewMockLogger(ctrl))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, tracker.Reload(ctx), context.Canceled)
	assert.False(t, tracker.Current().Known())
}
