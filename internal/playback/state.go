// Package playback implements the playback session: the single authority
// over the engine, the progress poller and the published notification.
package playback

import (
	"strings"
	"time"
)

// State is the session playback state.
//
//	┌──────────┐      play       ┌──────────┐
//	│  Stopped │ ───────────────▶│  Playing │◀─┐
//	└──────────┘                 └──────────┘  │
//	     ▲                          │     │    │ play
//	     │ stop / completion  pause │     │    │
//	     │ / failure                ▼     │    │
//	     │                       ┌──────────┐  │
//	     └───────────────────────│  Paused  │──┘
//	                  stop       └──────────┘
//
// Commands that are not valid in the current state are ignored:
//   - Stopped → Pause, Stop
//   - Playing → Play (no restart, no rewind)
//   - Paused  → Pause
type State int

const (
	StateStopped State = iota
	StatePlaying
	StatePaused
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a track is playing or paused.
func (s State) IsActive() bool {
	return s == StatePlaying || s == StatePaused
}

// Command is an external request directed at the session.
type Command int

const (
	CommandPlay Command = iota
	CommandPause
	CommandStop
)

// Action tags carried by notification buttons and the start-command
// surface.
const (
	ActionPlay  = "PLAY"
	ActionPause = "PAUSE"
	ActionStop  = "STOP"
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CommandPlay:
		return "Play"
	case CommandPause:
		return "Pause"
	case CommandStop:
		return "Stop"
	default:
		return "Unknown"
	}
}

// Action returns the action tag for c.
func (c Command) Action() string {
	switch c {
	case CommandPlay:
		return ActionPlay
	case CommandPause:
		return ActionPause
	case CommandStop:
		return ActionStop
	default:
		return ""
	}
}

// ParseAction maps an action tag to a command. Tags are matched without
// regard to case, and a namespaced tag such as "org.example.PLAY" matches
// on its last segment.
func ParseAction(tag string) (Command, bool) {
	tag = strings.TrimSpace(tag)
	if i := strings.LastIndexByte(tag, '.'); i >= 0 {
		tag = tag[i+1:]
	}
	switch strings.ToUpper(tag) {
	case ActionPlay:
		return CommandPlay, true
	case ActionPause:
		return CommandPause, true
	case ActionStop:
		return CommandStop, true
	default:
		return 0, false
	}
}

// Snapshot is a copy of the session fields presenters render from.
type Snapshot struct {
	State    State
	Progress time.Duration
	Duration time.Duration
	Title    string
}

// IsPlaying reports whether the snapshot was taken while playing.
func (s Snapshot) IsPlaying() bool {
	return s.State == StatePlaying
}
