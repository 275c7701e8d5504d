package scene_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stage/internal/core/domain"
	"go.trai.ch/stage/internal/core/ports"
	"go.trai.ch/stage/internal/core/ports/mocks"
	"go.trai.ch/stage/internal/engine/scene"
	"go.uber.org/mock/gomock"
)

func TestChannel_SyncLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockResolver(ctrl)
	resolver.EXPECT().Load("menu").Return(&domain.Resource{Path: "menu"}, nil)

	ch := scene.NewChannel(resolver)
	require.Equal(t, scene.StateNotLoaded, ch.State())

	require.NoError(t, ch.Start("menu", false))
	assert.Equal(t, scene.StateLoaded, ch.State())
	assert.Equal(t, "menu", ch.Path())
	assert.InDelta(t, 1.0, ch.Progress(), 0.001)

	res, err := ch.Consume()
	require.NoError(t, err)
	assert.Equal(t, "menu", res.Path)
	assert.Equal(t, scene.StateInstantiated, ch.State())
}

func TestChannel_SyncLoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockResolver(ctrl)
	resolver.EXPECT().Load("broken").Return(nil, errors.New("corrupt template"))

	ch := scene.NewChannel(resolver)

	err := ch.Start("broken", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLoadFailed)
	// A failed load frees the channel for the next attempt.
	assert.Equal(t, scene.StateNotLoaded, ch.State())
}

func TestChannel_AsyncLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockResolver(ctrl)
	resolver.EXPECT().LoadAsyncStart("level").Return(nil)
	gomock.InOrder(
		resolver.EXPECT().LoadAsyncPoll("level").Return(ports.LoadPoll{
			Status: ports.LoadInProgress, Progress: 0.4,
		}),
		resolver.EXPECT().LoadAsyncPoll("level").Return(ports.LoadPoll{
			Status: ports.LoadDone, Progress: 1, Resource: &domain.Resource{Path: "level"},
		}),
	)

	ch := scene.NewChannel(resolver)
	require.NoError(t, ch.Start("level", true))
	assert.Equal(t, scene.StateLoading, ch.State())

	state, err := ch.Poll()
	require.NoError(t, err)
	assert.Equal(t, scene.StateLoading, state)
	assert.InDelta(t, 0.4, ch.Progress(), 0.001)

	state, err = ch.Poll()
	require.NoError(t, err)
	assert.Equal(t, scene.StateLoaded, state)

	res, err := ch.Consume()
	require.NoError(t, err)
	assert.Equal(t, "level", res.Path)
}

func TestChannel_AsyncLoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockResolver(ctrl)
	resolver.EXPECT().LoadAsyncStart("level").Return(nil)
	resolver.EXPECT().LoadAsyncPoll("level").Return(ports.LoadPoll{
		Status: ports.LoadFailed, Err: errors.New("disk gone"),
	})

	ch := scene.NewChannel(resolver)
	require.NoError(t, ch.Start("level", true))

	state, err := ch.Poll()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLoadFailed)
	assert.Equal(t, scene.StateNotLoaded, state)
	assert.Equal(t, scene.StateNotLoaded, ch.State())
}

func TestChannel_BusyRejectsSecondPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockResolver(ctrl)
	resolver.EXPECT().LoadAsyncStart("a").Return(nil)

	ch := scene.NewChannel(resolver)
	require.NoError(t, ch.Start("a", true))

	err := ch.Start("b", true)
	require.ErrorIs(t, err, domain.ErrChannelBusy)
	// The original load is untouched.
	assert.Equal(t, scene.StateLoading, ch.State())
	assert.Equal(t, "a", ch.Path())
}

func TestChannel_StartSamePathIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockResolver(ctrl)
	resolver.EXPECT().LoadAsyncStart("a").Return(nil).Times(1)

	ch := scene.NewChannel(resolver)
	require.NoError(t, ch.Start("a", true))
	require.NoError(t, ch.Start("a", true))
	assert.Equal(t, scene.StateLoading, ch.State())
}

func TestChannel_StaleLoadedIsReplaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockResolver(ctrl)
	resolver.EXPECT().Load("a").Return(&domain.Resource{Path: "a"}, nil)
	resolver.EXPECT().Load("b").Return(&domain.Resource{Path: "b"}, nil)

	ch := scene.NewChannel(resolver)
	require.NoError(t, ch.Start("a", false))

	// A Loaded-but-unconsumed result must not wedge the channel.
	require.NoError(t, ch.Start("b", false))
	res, err := ch.Consume()
	require.NoError(t, err)
	assert.Equal(t, "b", res.Path)
}

func TestChannel_ConsumeRequiresLoaded(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockResolver(ctrl)

	ch := scene.NewChannel(resolver)
	_, err := ch.Consume()
	require.ErrorIs(t, err, domain.ErrNothingToConsume)

	resolver.EXPECT().Load("a").Return(&domain.Resource{Path: "a"}, nil)
	require.NoError(t, ch.Start("a", false))
	_, err = ch.Consume()
	require.NoError(t, err)

	// A second consume finds nothing.
	_, err = ch.Consume()
	require.ErrorIs(t, err, domain.ErrNothingToConsume)
}

func TestChannel_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockResolver(ctrl)
	resolver.EXPECT().Load("a").Return(&domain.Resource{Path: "a"}, nil)

	ch := scene.NewChannel(resolver)
	require.NoError(t, ch.Start("a", false))

	ch.Reset()
	assert.Equal(t, scene.StateNotLoaded, ch.State())
	assert.Empty(t, ch.Path())
	assert.Zero(t, ch.Progress())

	_, err := ch.Consume()
	require.ErrorIs(t, err, domain.ErrNothingToConsume)
}

func TestChannel_PollOutsideLoadingIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockResolver(ctrl)

	ch := scene.NewChannel(resolver)
	state, err := ch.Poll()
	require.NoError(t, err)
	assert.Equal(t, scene.StateNotLoaded, state)
}
