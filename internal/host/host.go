// Package host keeps the playback session alive for as long as something
// needs it.
//
// Clients attach with Bind. Delivered actions (the start-command surface
// notification buttons use) mark the host started, which keeps it alive
// without bindings. It tears the session down when the last binding goes
// away from a host that is not started, when a stop was requested and no
// binding remains, when the session terminates after a failure, or when it
// is closed.
package host

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/llehouerou/tinywave/internal/playback"
	"github.com/llehouerou/tinywave/internal/player"
)

var (
	// ErrHostClosed is returned by Bind once the host has torn down.
	ErrHostClosed = errors.New("playback host closed")
	// ErrUnbound is returned by a binding used after Unbind.
	ErrUnbound = errors.New("binding released")
)

// RestartPolicy tells the caller of Deliver what to do if the host is
// killed while started.
type RestartPolicy int

// RestartNotSticky: do not recreate the host after it is killed. It is
// the only policy Deliver returns.
const RestartNotSticky RestartPolicy = iota

// String returns the policy name.
func (p RestartPolicy) String() string {
	if p == RestartNotSticky {
		return "NotSticky"
	}
	return "Unknown"
}

// Options configures a Host.
type Options struct {
	Session playback.Options
	Logger  zerolog.Logger
}

// Host owns the playback session and its lifetime.
type Host struct {
	session playback.Service
	log     zerolog.Logger

	mu       sync.Mutex
	bindings int
	started  bool
	stopSelf bool
	closed   bool

	done     chan struct{}
	doneOnce sync.Once
	err      error
}

// New creates the session for res and starts watching it. The session
// logs through opts.Logger; opts.Session.Logger is ignored.
func New(engine player.Engine, res player.Resource, opts Options) *Host {
	sessOpts := opts.Session
	sessOpts.Logger = opts.Logger.With().Str("component", "session").Logger()
	return newHost(playback.New(engine, res, sessOpts), opts.Logger.With().Str("component", "host").Logger())
}

func newHost(session playback.Service, log zerolog.Logger) *Host {
	h := &Host{
		session: session,
		log:     log,
		done:    make(chan struct{}),
	}
	go h.watch()
	return h
}

// watch tears the host down when the session gives up.
func (h *Host) watch() {
	select {
	case <-h.session.Terminated():
		h.teardown(h.session.Err())
	case <-h.done:
	}
}

// Bind attaches a client to the session.
func (h *Host) Bind() (*Binding, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ErrHostClosed
	}
	h.bindings++
	h.log.Debug().Int("bindings", h.bindings).Msg("bound")
	return &Binding{host: h}, nil
}

// Deliver is the start-command surface. It marks the host started and
// dispatches the command named by action. Unknown tags are logged and
// ignored. STOP also asks the host to stop itself once nothing is bound.
func (h *Host) Deliver(action string) RestartPolicy {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		h.log.Debug().Str("action", action).Msg("action after teardown ignored")
		return RestartNotSticky
	}
	h.started = true
	h.mu.Unlock()

	cmd, ok := playback.ParseAction(action)
	if !ok {
		h.log.Warn().Str("action", action).Msg("unknown action ignored")
		return RestartNotSticky
	}

	h.log.Debug().Stringer("command", cmd).Msg("action delivered")
	if err := h.session.Dispatch(cmd); err != nil {
		h.log.Warn().Err(err).Stringer("command", cmd).Msg("dispatch action")
	}
	if cmd == playback.CommandStop {
		h.requestStop()
	}
	return RestartNotSticky
}

// Started reports whether an action was ever delivered.
func (h *Host) Started() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.started
}

// Bindings returns the number of live bindings.
func (h *Host) Bindings() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.bindings
}

// Done is closed after the host has torn down.
func (h *Host) Done() <-chan struct{} { return h.done }

// Err returns the failure the host was torn down for, if any. It is only
// meaningful once Done is closed.
func (h *Host) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

// Close tears the host down regardless of bindings.
func (h *Host) Close() error {
	h.teardown(nil)
	return nil
}

func (h *Host) requestStop() {
	h.mu.Lock()
	h.stopSelf = true
	idle := h.bindings == 0
	h.mu.Unlock()

	if idle {
		h.log.Info().Msg("stop requested with no client bound")
		h.teardown(nil)
	}
}

func (h *Host) unbind() {
	h.mu.Lock()
	h.bindings--
	idle := h.bindings == 0 && (h.stopSelf || !h.started)
	h.mu.Unlock()

	h.log.Debug().Msg("unbound")
	if idle {
		h.teardown(nil)
	}
}

func (h *Host) teardown(cause error) {
	h.doneOnce.Do(func() {
		h.mu.Lock()
		h.closed = true
		h.err = cause
		h.mu.Unlock()

		if err := h.session.Close(); err != nil {
			h.log.Warn().Err(err).Msg("close session")
		}
		if cause != nil {
			h.log.Error().Err(cause).Msg("host torn down after failure")
		} else {
			h.log.Info().Msg("host torn down")
		}
		close(h.done)
	})
}

// Binding is a client's handle on the session. It stops working after
// Unbind.
type Binding struct {
	host *Host

	mu       sync.Mutex
	released bool
}

// Verify Binding implements playback.Controller at compile time.
var _ playback.Controller = (*Binding)(nil)

func (b *Binding) session() (playback.Service, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.released {
		return nil, ErrUnbound
	}
	return b.host.session, nil
}

// Play forwards to the session.
func (b *Binding) Play() error {
	s, err := b.session()
	if err != nil {
		return err
	}
	return s.Play()
}

// Pause forwards to the session.
func (b *Binding) Pause() error {
	s, err := b.session()
	if err != nil {
		return err
	}
	return s.Pause()
}

// Stop forwards to the session.
func (b *Binding) Stop() error {
	s, err := b.session()
	if err != nil {
		return err
	}
	return s.Stop()
}

// Toggle forwards to the session.
func (b *Binding) Toggle() error {
	s, err := b.session()
	if err != nil {
		return err
	}
	return s.Toggle()
}

// Snapshot returns the session snapshot, or a stopped one after Unbind.
func (b *Binding) Snapshot() playback.Snapshot {
	s, err := b.session()
	if err != nil {
		return playback.Snapshot{State: playback.StateStopped}
	}
	return s.Snapshot()
}

// Subscribe subscribes to session events. After Unbind the subscription
// is the session's; the binding does not track it.
func (b *Binding) Subscribe() *playback.Subscription {
	return b.host.session.Subscribe()
}

// Done is closed when the host tears down.
func (b *Binding) Done() <-chan struct{} { return b.host.Done() }

// Err returns the failure the host was torn down for, if any.
func (b *Binding) Err() error { return b.host.Err() }

// Unbind releases the binding. Calling it again is a no-op.
func (b *Binding) Unbind() {
	b.mu.Lock()
	if b.released {
		b.mu.Unlock()
		return
	}
	b.released = true
	b.mu.Unlock()

	b.host.unbind()
}
