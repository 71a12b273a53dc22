package playback

import (
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/llehouerou/tinywave/internal/player"
	"github.com/llehouerou/tinywave/internal/poller"
)

// Verify Session implements Service at compile time.
var _ Service = (*Session)(nil)

// Options configures a Session.
type Options struct {
	// PollInterval is the progress sampling period while playing.
	// Defaults to poller.DefaultInterval.
	PollInterval time.Duration
	// Surface receives a fresh snapshot on every state change and tick.
	Surface Surface
	Logger  zerolog.Logger
}

type request struct {
	run  func()
	done chan struct{}
}

// Session owns one engine, one poller and one surface.
//
// Every mutation happens on the session goroutine: commands are posted to
// it and wait until applied, engine events and poller ticks are received
// by it. Fields below the marker are only touched from there.
type Session struct {
	engine  player.Engine
	res     player.Resource
	surface Surface
	poller  *poller.Poller
	log     zerolog.Logger

	requests  chan request
	stopped   chan struct{}
	closeOnce sync.Once

	subsMu sync.RWMutex
	subs   []*Subscription
	closed bool

	termOnce   sync.Once
	terminated chan struct{}
	errMu      sync.Mutex
	err        error

	// session goroutine only
	state     State
	progress  time.Duration
	duration  time.Duration
	title     string
	published bool
	shutdown  bool
}

// New creates a session for res and loads it into engine. A load failure
// does not fail New: the session starts Stopped and Terminated is closed.
func New(engine player.Engine, res player.Resource, opts Options) *Session {
	surface := opts.Surface
	if surface == nil {
		surface = nopSurface{}
	}

	s := &Session{
		engine:     engine,
		res:        res,
		surface:    surface,
		poller:     poller.New(opts.PollInterval),
		log:        opts.Logger.With().Str("session", uuid.NewString()).Logger(),
		requests:   make(chan request),
		stopped:    make(chan struct{}),
		terminated: make(chan struct{}),
		state:      StateStopped,
	}

	if err := s.load(); err != nil {
		s.reportError("load", err)
		s.terminate(err)
	}

	go s.run()
	return s
}

func (s *Session) run() {
	defer close(s.stopped)

	for {
		select {
		case r := <-s.requests:
			r.run()
			close(r.done)
			if s.shutdown {
				return
			}
		case ev := <-s.engine.Events():
			s.handleEngineEvent(ev)
		case t := <-s.poller.C():
			s.handleTick(t)
		}
	}
}

// do runs fn on the session goroutine and waits for it.
func (s *Session) do(fn func()) error {
	r := request{run: fn, done: make(chan struct{})}
	select {
	case s.requests <- r:
	case <-s.stopped:
		return ErrClosed
	}
	<-r.done
	return nil
}

// Play starts playback from Stopped, resumes from Paused and is a no-op
// while Playing.
func (s *Session) Play() error { return s.do(s.play) }

// Pause pauses playback. No-op unless Playing.
func (s *Session) Pause() error { return s.do(s.pause) }

// Stop stops playback and resets progress. No-op when Stopped.
func (s *Session) Stop() error { return s.do(s.stop) }

// Toggle plays unless playing, in which case it pauses.
func (s *Session) Toggle() error {
	return s.do(func() {
		if s.state == StatePlaying {
			s.pause()
			return
		}
		s.play()
	})
}

// Dispatch applies cmd.
func (s *Session) Dispatch(cmd Command) error {
	switch cmd {
	case CommandPlay:
		return s.Play()
	case CommandPause:
		return s.Pause()
	case CommandStop:
		return s.Stop()
	default:
		return errors.Newf("unknown command %d", cmd)
	}
}

// State returns the current state. A closed session reports Stopped.
func (s *Session) State() State {
	return s.Snapshot().State
}

// Snapshot returns a copy of the session fields.
func (s *Session) Snapshot() Snapshot {
	var snap Snapshot
	if err := s.do(func() { snap = s.snapshot() }); err != nil {
		return Snapshot{State: StateStopped}
	}
	return snap
}

// Subscribe creates a new event subscription. Subscribing to a closed
// session returns a subscription whose Done is already closed.
func (s *Session) Subscribe() *Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	sub := newSubscription()
	if s.closed {
		sub.close()
		return sub
	}
	s.subs = append(s.subs, sub)
	return sub
}

// Terminated is closed once the session asks its host to end.
func (s *Session) Terminated() <-chan struct{} { return s.terminated }

// Err returns the failure that terminated the session, if any.
func (s *Session) Err() error {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return s.err
}

// Close tears the session down. It is safe to call more than once.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		if err := s.do(s.teardown); err == nil {
			<-s.stopped
		}
		s.poller.Close()

		s.subsMu.Lock()
		for _, sub := range s.subs {
			sub.close()
		}
		s.subs = nil
		s.closed = true
		s.subsMu.Unlock()
	})
	return nil
}

// Command handlers. Session goroutine only.

func (s *Session) play() {
	switch s.state {
	case StatePlaying:
		s.log.Debug().Msg("play ignored: already playing")
		return
	case StatePaused:
		if err := s.engine.Start(); err != nil {
			s.commandFailed("resume", err)
			return
		}
	case StateStopped:
		if !s.engine.IsLoaded() {
			if err := s.load(); err != nil {
				s.commandFailed("load", err)
				return
			}
		}
		if err := s.engine.Start(); err != nil {
			s.commandFailed("play", err)
			return
		}
	}

	s.transition(StatePlaying)
	s.poller.Start()
}

func (s *Session) pause() {
	if s.state != StatePlaying {
		s.log.Debug().Stringer("state", s.state).Msg("pause ignored")
		return
	}

	s.poller.Stop()
	if err := s.engine.Pause(); err != nil {
		s.commandFailed("pause", err)
		return
	}
	s.progress = s.engine.Position()
	s.transition(StatePaused)
}

func (s *Session) stop() {
	if s.state == StateStopped {
		s.log.Debug().Msg("stop ignored: already stopped")
		return
	}
	s.stopPlayback()
}

// stopPlayback halts the poller, stops and rewinds the engine, resets
// progress and withdraws the notification. Engine errors are logged and
// swallowed.
func (s *Session) stopPlayback() {
	s.poller.Stop()
	if s.engine.IsLoaded() {
		if err := s.engine.Stop(); err != nil {
			s.log.Warn().Err(err).Msg("stop engine")
		}
	}

	prev := s.state
	s.state = StateStopped
	s.progress = 0

	if s.published {
		if err := s.surface.Withdraw(); err != nil {
			s.log.Warn().Err(err).Msg("withdraw notification")
		}
		s.published = false
	}

	if prev != StateStopped {
		s.log.Debug().Stringer("from", prev).Msg("stopped")
		s.emitState(prev)
		s.emitProgress()
	}
}

func (s *Session) transition(next State) {
	prev := s.state
	s.state = next
	s.log.Debug().Stringer("from", prev).Stringer("to", next).Msg("transition")
	s.publish()
	s.emitState(prev)
}

func (s *Session) teardown() {
	s.shutdown = true
	s.poller.Stop()
	if s.engine.IsLoaded() {
		if err := s.engine.Stop(); err != nil {
			s.log.Warn().Err(err).Msg("stop engine on teardown")
		}
	}
	s.engine.Release()

	if s.published {
		if err := s.surface.Withdraw(); err != nil {
			s.log.Warn().Err(err).Msg("withdraw notification on teardown")
		}
		s.published = false
	}

	prev := s.state
	s.state = StateStopped
	s.progress = 0
	if prev != StateStopped {
		s.emitState(prev)
	}
	s.log.Debug().Msg("session torn down")
}

// Engine and poller events. Session goroutine only.

func (s *Session) handleEngineEvent(ev player.Event) {
	if gen := s.engine.Generation(); ev.Gen != gen {
		s.log.Debug().
			Stringer("kind", ev.Kind).
			Uint64("event_gen", ev.Gen).
			Uint64("gen", gen).
			Msg("dropping stale engine event")
		return
	}
	switch ev.Kind {
	case player.EventCompleted:
		s.log.Info().Msg("track completed")
		s.stopPlayback()
	case player.EventError:
		err := ev.Err
		if err == nil {
			err = player.ErrUnknownPlayback
		}
		s.engineFailed(err)
	}
}

func (s *Session) handleTick(t poller.Tick) {
	if !s.poller.Valid(t) {
		return
	}
	if s.state != StatePlaying || !s.engine.IsPlaying() {
		s.poller.Expire(t)
		return
	}

	s.progress = s.engine.Position()
	s.publish()
	s.emitProgress()
	s.poller.Next(t)
}

// Failure handling. Session goroutine only.

// commandFailed handles an engine error returned while applying a
// command. The session stops; an output failure is recovered from and a
// load failure ends the session.
func (s *Session) commandFailed(op string, err error) {
	s.reportError(op, err)
	s.stopPlayback()

	switch player.Classify(err) {
	case player.OutputServerFailure:
		s.reinitialize()
	case player.LoadFailure:
		s.terminate(err)
	case player.FailureNone, player.UnknownPlaybackFailure:
	}
}

// engineFailed handles an asynchronous engine failure. Only output
// failures are recovered from; anything else ends the session.
func (s *Session) engineFailed(err error) {
	s.reportError("playback", err)
	s.stopPlayback()

	if player.Classify(err) == player.OutputServerFailure {
		s.reinitialize()
		return
	}
	s.terminate(err)
}

// reinitialize releases the engine and loads the track again, once.
func (s *Session) reinitialize() {
	s.log.Info().Msg("reinitializing engine")
	s.engine.Release()
	if err := s.load(); err != nil {
		s.reportError("reinitialize", err)
		s.terminate(errors.Wrap(err, "reinitialize engine"))
		return
	}
	s.log.Info().Msg("engine reinitialized")
}

func (s *Session) load() error {
	if err := s.engine.Load(s.res); err != nil {
		return err
	}
	s.duration = s.engine.Duration()
	s.title = s.res.Name
	if info := s.engine.TrackInfo(); info != nil && info.Title != "" {
		s.title = info.Title
	}
	s.progress = 0
	s.log.Info().
		Str("track", s.res.Name).
		Dur("duration", s.duration).
		Msg("track loaded")
	return nil
}

func (s *Session) terminate(err error) {
	s.termOnce.Do(func() {
		s.errMu.Lock()
		s.err = err
		s.errMu.Unlock()
		s.log.Error().Err(err).Msg("session terminated")
		close(s.terminated)
	})
}

// Publishing. Session goroutine only.

func (s *Session) snapshot() Snapshot {
	return Snapshot{
		State:    s.state,
		Progress: s.progress,
		Duration: s.duration,
		Title:    s.title,
	}
}

func (s *Session) publish() {
	if err := s.surface.Publish(s.snapshot()); err != nil {
		s.log.Warn().Err(err).Msg("publish notification")
		return
	}
	s.published = true
}

func (s *Session) reportError(op string, err error) {
	failure := player.Classify(err)
	s.log.Error().Err(err).Str("op", op).Stringer("failure", failure).Msg("engine failure")
	s.broadcast(func(sub *Subscription) {
		sub.sendError(ErrorEvent{Operation: op, Failure: failure, Err: err})
	})
}

func (s *Session) emitState(prev State) {
	e := StateChange{Previous: prev, Current: s.state, Snapshot: s.snapshot()}
	s.broadcast(func(sub *Subscription) { sub.sendState(e) })
}

func (s *Session) emitProgress() {
	e := ProgressChange{Progress: s.progress, Duration: s.duration}
	s.broadcast(func(sub *Subscription) { sub.sendProgress(e) })
}

func (s *Session) broadcast(fn func(*Subscription)) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		fn(sub)
	}
}
