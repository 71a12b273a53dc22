// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants.
const (
	OpLoad         Op = "load track"
	OpPlay         Op = "start playback"
	OpResume       Op = "resume playback"
	OpPause        Op = "pause playback"
	OpStop         Op = "stop playback"
	OpPlayback     Op = "play track"
	OpReinitialize Op = "restart audio output"
	OpUnknown      Op = "control playback"
)

var sessionOps = map[string]Op{
	"load":         OpLoad,
	"play":         OpPlay,
	"resume":       OpResume,
	"pause":        OpPause,
	"stop":         OpStop,
	"playback":     OpPlayback,
	"reinitialize": OpReinitialize,
}

// FromSession maps an operation name reported by the playback session.
func FromSession(name string) Op {
	if op, ok := sessionOps[name]; ok {
		return op
	}
	return OpUnknown
}

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}
