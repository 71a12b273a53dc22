package notify

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/tinywave/internal/playback"
)

func playing(progress time.Duration) playback.Snapshot {
	return playback.Snapshot{
		State:    playback.StatePlaying,
		Progress: progress,
		Duration: time.Minute,
		Title:    "track",
	}
}

func TestPresenter_PublishReplaces(t *testing.T) {
	m := NewMock()
	p := NewPresenter(m, Options{}, zerolog.Nop())

	require.NoError(t, p.Publish(playing(0)))
	require.NoError(t, p.Publish(playing(30*time.Second)))

	shown := m.Shown()
	require.Len(t, shown, 1, "updates must replace the notification")
	sent := m.Sent()
	require.Len(t, sent, 2)
	assert.Zero(t, sent[0].ReplacesID)
	assert.NotZero(t, sent[1].ReplacesID)
	assert.Equal(t, "Playing - 50%\ntrack", sent[1].Body)

	c, ok := p.Current()
	assert.True(t, ok)
	assert.Equal(t, 50, c.Percent)
}

func TestPresenter_Withdraw(t *testing.T) {
	m := NewMock()
	p := NewPresenter(m, Options{}, zerolog.Nop())

	require.NoError(t, p.Withdraw(), "withdraw with nothing shown")
	assert.Empty(t, m.Closed())

	require.NoError(t, p.Publish(playing(0)))
	require.NoError(t, p.Withdraw())

	assert.Empty(t, m.Shown())
	assert.Len(t, m.Closed(), 1)
	_, ok := p.Current()
	assert.False(t, ok)

	require.NoError(t, p.Publish(playing(0)))
	require.Len(t, m.Sent(), 2)
	assert.Zero(t, m.Sent()[1].ReplacesID, "a new notification after withdraw")
}

func TestPresenter_PublishError(t *testing.T) {
	m := NewMock()
	m.SetError(errors.New("no server"))
	p := NewPresenter(m, Options{}, zerolog.Nop())

	assert.Error(t, p.Publish(playing(0)))
	_, ok := p.Current()
	assert.False(t, ok)
}

func TestPresenter_RoutesOwnActions(t *testing.T) {
	m := NewMock()
	p := NewPresenter(m, Options{}, zerolog.Nop())

	var got []string
	p.OnAction(func(action string) { got = append(got, action) })

	require.NoError(t, p.Publish(playing(0)))
	var id uint32
	for k := range m.Shown() {
		id = k
	}

	m.Invoke(id, playback.ActionPause)
	m.Invoke(id+100, playback.ActionStop)
	m.Invoke(0, playback.ActionStop)

	assert.Equal(t, []string{playback.ActionPause}, got)
}

func TestPresenter_IgnoresActionsAfterWithdraw(t *testing.T) {
	m := NewMock()
	p := NewPresenter(m, Options{}, zerolog.Nop())

	called := false
	p.OnAction(func(string) { called = true })

	require.NoError(t, p.Publish(playing(0)))
	require.NoError(t, p.Withdraw())
	m.Invoke(1, playback.ActionPlay)

	assert.False(t, called)
}

func TestPresenter_DismissedNotificationIsRecreated(t *testing.T) {
	m := NewMock()
	p := NewPresenter(m, Options{}, zerolog.Nop())

	require.NoError(t, p.Publish(playing(0)))
	first := m.Sent()
	require.Len(t, first, 1)

	var id uint32
	for k := range m.Shown() {
		id = k
	}
	m.Dismiss(id)

	require.NoError(t, p.Publish(playing(time.Second)))
	sent := m.Sent()
	assert.Zero(t, sent[1].ReplacesID)
	assert.Len(t, m.Shown(), 1)
}
