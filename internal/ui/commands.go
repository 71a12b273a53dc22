package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tinywave/internal/playback"
)

// WatchEvents returns a command that waits for the next session event.
// It listens on all subscription channels and converts events to tea.Msg.
// A pending state change is delivered before any pending progress or error
// so the screen reconciles its flag first.
func WatchEvents(sub *playback.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return StateChangedMsg{e}
		default:
		}

		select {
		case e := <-sub.StateChanged:
			return StateChangedMsg{e}
		case e := <-sub.ProgressChanged:
			return ProgressMsg{e}
		case e := <-sub.Error:
			return ErrorMsg{e}
		case <-sub.Done:
			return SubscriptionClosedMsg{}
		}
	}
}

// WatchDone returns a command that waits for the host to tear down.
func WatchDone(s Session) tea.Cmd {
	return func() tea.Msg {
		<-s.Done()
		return HostDoneMsg{Err: s.Err()}
	}
}
