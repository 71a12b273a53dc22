package playback

import "github.com/cockroachdb/errors"

// ErrClosed is returned by commands issued after the session was torn
// down.
var ErrClosed = errors.New("playback session closed")

// Controller is the command surface collaborators hold: the UI, the
// notification actions and MPRIS all reach the session through it.
type Controller interface {
	Play() error
	Pause() error
	Stop() error
	// Toggle plays unless playing, in which case it pauses.
	Toggle() error
	Snapshot() Snapshot
	Subscribe() *Subscription
}

// Service is the full session contract owned by the host.
type Service interface {
	Controller

	Dispatch(cmd Command) error
	State() State

	// Terminated is closed when the session gave up after a failure and
	// asks its host to end. Err returns the cause.
	Terminated() <-chan struct{}
	Err() error

	// Close tears the session down: it cancels the poller, releases the
	// engine and withdraws the notification, whatever the current state.
	Close() error
}

// Surface is the persistent status display the session keeps in sync.
type Surface interface {
	Publish(s Snapshot) error
	Withdraw() error
}

type nopSurface struct{}

func (nopSurface) Publish(Snapshot) error { return nil }
func (nopSurface) Withdraw() error        { return nil }
