package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tinywave/internal/errmsg"
	"github.com/llehouerou/tinywave/internal/keymap"
	"github.com/llehouerou/tinywave/internal/playback"
	"github.com/llehouerou/tinywave/internal/ui/controls"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case StateChangedMsg:
		m.snap = msg.Snapshot
		m.isPlaying = msg.Current == playback.StatePlaying
		if msg.Current == playback.StatePlaying {
			m.err = nil
		}
		return m, WatchEvents(m.sub)
	case ProgressMsg:
		m.snap.Progress = msg.Progress
		m.snap.Duration = msg.Duration
		return m, WatchEvents(m.sub)
	case ErrorMsg:
		m.err = msg.Err
		m.errOp = errmsg.FromSession(msg.Operation)
		// A failed command may leave the state unchanged, so no state
		// change will correct the flag.
		m.snap = m.session.Snapshot()
		m.isPlaying = m.snap.IsPlaying()
		return m, WatchEvents(m.sub)
	case SubscriptionClosedMsg:
		return m, nil
	case HostDoneMsg:
		m.fatal = msg.Err
		m.done = true
		m.isPlaying = false
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.resolver.Resolve(msg.String()) {
	case keymap.ActionQuit:
		m.done = true
		return m, tea.Quit
	case keymap.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case keymap.ActionPlayPause:
		m.pressToggle()
	case keymap.ActionStop:
		m.pressStop()
	case keymap.ActionFocusNext:
		m.controls.Next()
	case keymap.ActionFocusPrev:
		m.controls.Prev()
	case keymap.ActionPress:
		if m.controls.Focused() == controls.ButtonStop {
			m.pressStop()
		} else {
			m.pressToggle()
		}
	}
	return m, nil
}

// pressToggle sends Pause or Play depending on the screen's flag, then
// flips the flag without waiting for the session.
func (m *Model) pressToggle() {
	if m.isPlaying {
		m.setCommandError(errmsg.OpPause, m.session.Pause())
	} else {
		m.setCommandError(errmsg.OpPlay, m.session.Play())
	}
	m.isPlaying = !m.isPlaying
}

func (m *Model) pressStop() {
	m.setCommandError(errmsg.OpStop, m.session.Stop())
	m.isPlaying = false
}

func (m *Model) setCommandError(op errmsg.Op, err error) {
	if err != nil {
		m.err = err
		m.errOp = op
	}
}
