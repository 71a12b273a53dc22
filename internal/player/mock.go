package player

import (
	"sync"
	"time"
)

// Mock is a test double for Engine. It is safe for concurrent use so tests
// can drive it while a session goroutine owns it.
type Mock struct {
	mu sync.Mutex

	loaded   bool
	started  bool
	paused   bool
	position time.Duration
	duration time.Duration
	info     *TrackInfo

	loadErrs  []error
	startErr  error
	stopErr   error
	pauseErr  error
	loads     int
	starts    int
	stops     int
	releases  int
	resources []Resource
	gen       uint64

	events chan Event
}

// NewMock creates a mock engine whose loads succeed with a one minute
// track.
func NewMock() *Mock {
	return &Mock{
		duration: time.Minute,
		events:   make(chan Event, eventBufferSize),
	}
}

func (m *Mock) Load(res Resource) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.loads++
	m.gen++
	m.resources = append(m.resources, res)
	if len(m.loadErrs) > 0 {
		err := m.loadErrs[0]
		m.loadErrs = m.loadErrs[1:]
		if err != nil {
			m.loaded = false
			return err
		}
	}
	m.loaded = true
	m.started = false
	m.paused = false
	m.position = 0
	m.info = &TrackInfo{Name: res.Name, Title: displayName(res.Name), Duration: m.duration}
	return nil
}

func (m *Mock) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.starts++
	if m.startErr != nil {
		return m.startErr
	}
	if !m.loaded {
		return loadError(errNotLoaded, "start")
	}
	m.started = true
	m.paused = false
	return nil
}

func (m *Mock) Pause() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pauseErr != nil {
		return m.pauseErr
	}
	if m.started {
		m.paused = true
	}
	return nil
}

func (m *Mock) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stops++
	m.gen++
	m.started = false
	m.paused = false
	m.position = 0
	return m.stopErr
}

func (m *Mock) Release() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.releases++
	m.gen++
	m.loaded = false
	m.started = false
	m.paused = false
	m.position = 0
	m.info = nil
}

func (m *Mock) IsLoaded() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loaded
}

func (m *Mock) IsPlaying() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.started && !m.paused
}

func (m *Mock) Position() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func (m *Mock) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.loaded {
		return 0
	}
	return m.duration
}

func (m *Mock) TrackInfo() *TrackInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.info
}

func (m *Mock) Events() <-chan Event { return m.events }

func (m *Mock) Generation() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gen
}

// Test helpers

// SetLoadErrors queues results for the next Load calls; nil entries
// succeed.
func (m *Mock) SetLoadErrors(errs ...error) {
	m.mu.Lock()
	m.loadErrs = errs
	m.mu.Unlock()
}

func (m *Mock) SetStartError(err error) {
	m.mu.Lock()
	m.startErr = err
	m.mu.Unlock()
}

func (m *Mock) SetPauseError(err error) {
	m.mu.Lock()
	m.pauseErr = err
	m.mu.Unlock()
}

func (m *Mock) SetStopError(err error) {
	m.mu.Lock()
	m.stopErr = err
	m.mu.Unlock()
}

func (m *Mock) SetPosition(d time.Duration) {
	m.mu.Lock()
	m.position = d
	m.mu.Unlock()
}

// SetDuration sets the duration reported by later loads.
func (m *Mock) SetDuration(d time.Duration) {
	m.mu.Lock()
	m.duration = d
	m.mu.Unlock()
}

// SetPlaying overrides whether the engine reports active playback.
func (m *Mock) SetPlaying(playing bool) {
	m.mu.Lock()
	m.started = playing
	m.paused = false
	m.mu.Unlock()
}

func (m *Mock) Loads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loads
}

func (m *Mock) Starts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.starts
}

func (m *Mock) Stops() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stops
}

func (m *Mock) Releases() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.releases
}

// SimulateCompleted reports the end of the track.
func (m *Mock) SimulateCompleted() {
	m.mu.Lock()
	m.started = false
	m.paused = false
	gen := m.gen
	m.mu.Unlock()
	m.events <- Event{Kind: EventCompleted, Gen: gen}
}

// SimulateCompletedFrom reports the end of the track played in generation
// gen without touching the mock state, like a late callback from a stream
// that was already stopped.
func (m *Mock) SimulateCompletedFrom(gen uint64) {
	m.events <- Event{Kind: EventCompleted, Gen: gen}
}

// SimulateError reports an asynchronous failure carrying err.
func (m *Mock) SimulateError(err error) {
	m.events <- Event{Kind: EventError, Err: err, Gen: m.Generation()}
}

// Verify Mock implements Engine at compile time.
var _ Engine = (*Mock)(nil)
