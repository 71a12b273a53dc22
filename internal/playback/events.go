package playback

import (
	"time"

	"github.com/llehouerou/tinywave/internal/player"
)

// StateChange is emitted after every state transition.
type StateChange struct {
	Previous State
	Current  State
	Snapshot Snapshot
}

// ProgressChange is emitted on every valid poller tick and when progress
// is reset by Stop.
type ProgressChange struct {
	Progress time.Duration
	Duration time.Duration
}

// ErrorEvent is emitted when the engine fails.
type ErrorEvent struct {
	Operation string // e.g. "play", "pause", "playback", "reinitialize"
	Failure   player.Failure
	Err       error
}
