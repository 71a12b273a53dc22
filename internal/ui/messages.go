package ui

import "github.com/llehouerou/tinywave/internal/playback"

// StateChangedMsg is sent when the session changes state.
type StateChangedMsg struct {
	playback.StateChange
}

// ProgressMsg is sent on every progress sample.
type ProgressMsg struct {
	playback.ProgressChange
}

// ErrorMsg is sent when the session reports an engine failure.
type ErrorMsg struct {
	playback.ErrorEvent
}

// SubscriptionClosedMsg is sent when the session closes the subscription.
type SubscriptionClosedMsg struct{}

// HostDoneMsg is sent once the playback host has torn down.
type HostDoneMsg struct {
	Err error
}
