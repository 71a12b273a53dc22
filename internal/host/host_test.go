package host

import (
	"testing"
	"testing/synctest"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/tinywave/internal/playback"
	"github.com/llehouerou/tinywave/internal/player"
)

var testTrack = player.Resource{Name: "track.wav"}

func newTestHost(engine *player.Mock) *Host {
	return New(engine, testTrack, Options{Logger: zerolog.Nop()})
}

func isDone(h *Host) bool {
	select {
	case <-h.Done():
		return true
	default:
		return false
	}
}

func TestHost_BindForwardsCommands(t *testing.T) {
	engine := player.NewMock()
	h := newTestHost(engine)
	defer h.Close()

	b, err := h.Bind()
	require.NoError(t, err)
	assert.Equal(t, 1, h.Bindings())

	require.NoError(t, b.Play())
	assert.Equal(t, playback.StatePlaying, b.Snapshot().State)
	require.NoError(t, b.Toggle())
	assert.Equal(t, playback.StatePaused, b.Snapshot().State)
	require.NoError(t, b.Pause())
	assert.Equal(t, playback.StatePaused, b.Snapshot().State)
	require.NoError(t, b.Stop())
	assert.Equal(t, playback.StateStopped, b.Snapshot().State)
}

func TestHost_UnbindRefusesCommands(t *testing.T) {
	engine := player.NewMock()
	h := newTestHost(engine)
	defer h.Close()

	keep, err := h.Bind()
	require.NoError(t, err)
	defer keep.Unbind()

	b, err := h.Bind()
	require.NoError(t, err)
	b.Unbind()
	b.Unbind()

	assert.ErrorIs(t, b.Play(), ErrUnbound)
	assert.ErrorIs(t, b.Pause(), ErrUnbound)
	assert.ErrorIs(t, b.Stop(), ErrUnbound)
	assert.ErrorIs(t, b.Toggle(), ErrUnbound)
	assert.Equal(t, playback.StateStopped, b.Snapshot().State)
	assert.Equal(t, 1, h.Bindings())
	assert.False(t, isDone(h))
}

func TestHost_LastUnbindTearsDownWhenNotStarted(t *testing.T) {
	engine := player.NewMock()
	h := newTestHost(engine)

	b, err := h.Bind()
	require.NoError(t, err)
	require.NoError(t, b.Play())
	b.Unbind()

	<-h.Done()
	assert.NoError(t, h.Err())
	assert.Equal(t, 1, engine.Releases())
	assert.False(t, engine.IsPlaying())

	_, err = h.Bind()
	assert.ErrorIs(t, err, ErrHostClosed)
}

func TestHost_StartedSurvivesUnbind(t *testing.T) {
	engine := player.NewMock()
	h := newTestHost(engine)
	defer h.Close()

	b, err := h.Bind()
	require.NoError(t, err)
	assert.Equal(t, RestartNotSticky, h.Deliver(playback.ActionPlay))
	b.Unbind()

	assert.True(t, h.Started())
	assert.False(t, isDone(h))
	assert.True(t, engine.IsPlaying())
}

func TestHost_DeliverDispatches(t *testing.T) {
	engine := player.NewMock()
	h := newTestHost(engine)
	defer h.Close()

	b, err := h.Bind()
	require.NoError(t, err)
	defer b.Unbind()

	tests := []struct {
		action string
		want   playback.State
	}{
		{"PLAY", playback.StatePlaying},
		{"PLAY", playback.StatePlaying},
		{"PAUSE", playback.StatePaused},
		{"play", playback.StatePlaying},
		{"REWIND", playback.StatePlaying},
		{"", playback.StatePlaying},
		{"STOP", playback.StateStopped},
	}
	for _, tt := range tests {
		assert.Equal(t, RestartNotSticky, h.Deliver(tt.action))
		assert.Equal(t, tt.want, b.Snapshot().State, "after %q", tt.action)
	}
	assert.Equal(t, 2, engine.Starts(), "PLAY while playing must not restart")
}

func TestHost_StopWhileBoundDefersTeardown(t *testing.T) {
	engine := player.NewMock()
	h := newTestHost(engine)

	b, err := h.Bind()
	require.NoError(t, err)
	h.Deliver(playback.ActionPlay)
	h.Deliver(playback.ActionStop)

	assert.False(t, isDone(h), "a bound client keeps the host alive")
	assert.Equal(t, playback.StateStopped, b.Snapshot().State)

	b.Unbind()
	<-h.Done()
	assert.Equal(t, 1, engine.Releases())
}

func TestHost_StopWithoutBindingTearsDown(t *testing.T) {
	engine := player.NewMock()
	h := newTestHost(engine)

	h.Deliver(playback.ActionPlay)
	h.Deliver(playback.ActionStop)

	<-h.Done()
	assert.NoError(t, h.Err())
	assert.Equal(t, RestartNotSticky, h.Deliver(playback.ActionPlay))
	assert.Equal(t, 1, engine.Starts())
}

func TestHost_SessionFailureTearsDown(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		engine := player.NewMock()
		h := newTestHost(engine)
		defer h.Close()

		b, err := h.Bind()
		require.NoError(t, err)
		defer b.Unbind()

		require.NoError(t, b.Play())
		engine.SimulateError(errors.New("decoder exploded"))
		synctest.Wait()

		assert.True(t, isDone(h))
		require.Error(t, b.Err())
		assert.Equal(t, player.UnknownPlaybackFailure, player.Classify(b.Err()))
		assert.ErrorIs(t, b.Play(), playback.ErrClosed)
		assert.Equal(t, 1, engine.Releases())
	})
}

func TestHost_LoadFailureTearsDown(t *testing.T) {
	engine := player.NewMock()
	engine.SetLoadErrors(errors.Mark(errors.New("bad file"), player.ErrLoad))
	h := newTestHost(engine)

	<-h.Done()
	assert.Equal(t, player.LoadFailure, player.Classify(h.Err()))
}

func TestHost_CloseIsIdempotent(t *testing.T) {
	engine := player.NewMock()
	h := newTestHost(engine)

	b, err := h.Bind()
	require.NoError(t, err)
	require.NoError(t, b.Play())

	require.NoError(t, h.Close())
	require.NoError(t, h.Close())
	b.Unbind()

	assert.True(t, isDone(h))
	assert.Equal(t, 1, engine.Releases())
}

func TestHost_SubscribeThroughBinding(t *testing.T) {
	engine := player.NewMock()
	h := newTestHost(engine)
	defer h.Close()

	b, err := h.Bind()
	require.NoError(t, err)
	defer b.Unbind()

	sub := b.Subscribe()
	h.Deliver(playback.ActionPlay)

	select {
	case e := <-sub.StateChanged:
		assert.Equal(t, playback.StatePlaying, e.Current)
	default:
		t.Fatal("expected a state change")
	}
}

func TestRestartPolicy_String(t *testing.T) {
	assert.Equal(t, "NotSticky", RestartNotSticky.String())
	assert.Equal(t, "Unknown", RestartPolicy(9).String())
}
