package player

import "time"

// Engine is the playback primitive driven by the session.
//
// Implementations are not required to be safe for concurrent use: the
// session calls every method from its own goroutine. Events may be sent
// from any goroutine.
type Engine interface {
	// Load opens and prepares a resource. Errors are marked ErrLoad or
	// ErrOutputServer. A failed Load leaves the engine unloaded but usable.
	Load(res Resource) error
	// Start begins playback, or resumes it when paused.
	Start() error
	// Pause pauses playback. No-op when not playing.
	Pause() error
	// Stop halts playback and rewinds so the next Start replays from the
	// beginning.
	Stop() error
	// Release frees the decoder and the audio output. The engine must be
	// loaded again before it can play.
	Release()

	IsLoaded() bool
	IsPlaying() bool
	Position() time.Duration
	Duration() time.Duration
	TrackInfo() *TrackInfo

	// Events delivers completion and asynchronous failures.
	Events() <-chan Event
	// Generation identifies the current play. Stop, Release and Load
	// advance it, so events stamped with an older value are stale.
	Generation() uint64
}

// EventKind identifies an engine event.
type EventKind int

const (
	EventCompleted EventKind = iota
	EventError
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventCompleted:
		return "Completed"
	case EventError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Event is emitted by an engine when playback reaches the end of the track
// or fails while streaming.
type Event struct {
	Kind EventKind
	Err  error
	// Gen is the engine generation the event belongs to.
	Gen uint64
}

// Failure classifies the event error. Completed events report FailureNone.
func (e Event) Failure() Failure {
	if e.Kind != EventError {
		return FailureNone
	}
	if e.Err == nil {
		return UnknownPlaybackFailure
	}
	return Classify(e.Err)
}

// TrackInfo describes the loaded track.
type TrackInfo struct {
	Name       string
	Title      string
	Artist     string
	Album      string
	Duration   time.Duration
	SampleRate int
	Format     string
}

// Verify Player implements Engine at compile time.
var _ Engine = (*Player)(nil)
