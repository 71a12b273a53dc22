package player

import "github.com/cockroachdb/errors"

// Marks attached to engine errors. Callers classify with Classify or
// errors.Is; the marks survive any amount of wrapping.
var (
	// ErrLoad marks a track that cannot be opened, decoded or prepared.
	ErrLoad = errors.New("track cannot be prepared")
	// ErrOutputServer marks a failure of the audio output (speaker) itself.
	ErrOutputServer = errors.New("audio output server failed")
	// ErrUnknownPlayback marks any other failure while streaming.
	ErrUnknownPlayback = errors.New("playback failed")
)

var errNotLoaded = errors.New("no track loaded")

// Failure is the kind of an engine failure.
type Failure int

const (
	FailureNone Failure = iota
	LoadFailure
	OutputServerFailure
	UnknownPlaybackFailure
)

// String returns the failure name for logs.
func (f Failure) String() string {
	switch f {
	case FailureNone:
		return "None"
	case LoadFailure:
		return "LoadFailure"
	case OutputServerFailure:
		return "OutputServerFailure"
	case UnknownPlaybackFailure:
		return "UnknownPlaybackFailure"
	default:
		return "Unknown"
	}
}

// Classify maps an error onto the failure taxonomy. Errors carrying no
// mark are treated as UnknownPlaybackFailure.
func Classify(err error) Failure {
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, ErrOutputServer):
		return OutputServerFailure
	case errors.Is(err, ErrLoad):
		return LoadFailure
	default:
		return UnknownPlaybackFailure
	}
}

func loadError(err error, format string, args ...any) error {
	return errors.Mark(errors.Wrapf(err, format, args...), ErrLoad)
}

func outputError(err error, format string, args ...any) error {
	return errors.Mark(errors.Wrapf(err, format, args...), ErrOutputServer)
}

func playbackError(err error, format string, args ...any) error {
	return errors.Mark(errors.Wrapf(err, format, args...), ErrUnknownPlayback)
}
