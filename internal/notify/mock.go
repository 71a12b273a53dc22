package notify

import "sync"

// Mock is a Notifier that records what it is asked to show.
type Mock struct {
	mu       sync.Mutex
	nextID   uint32
	shown    map[uint32]Notification
	sent     []Notification
	closed   []uint32
	err      error
	onAction ActionFunc
	onClosed ClosedFunc
	shutdown bool
}

// NewMock creates an empty mock notifier.
func NewMock() *Mock {
	return &Mock{shown: make(map[uint32]Notification)}
}

func (m *Mock) Notify(n Notification) (uint32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return 0, m.err
	}
	id := n.ReplacesID
	if _, ok := m.shown[id]; !ok || id == 0 {
		m.nextID++
		id = m.nextID
	}
	m.shown[id] = n
	m.sent = append(m.sent, n)
	return id, nil
}

func (m *Mock) Close(id uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.shown, id)
	m.closed = append(m.closed, id)
	return nil
}

func (m *Mock) Listen(onAction ActionFunc, onClosed ClosedFunc) {
	m.mu.Lock()
	m.onAction = onAction
	m.onClosed = onClosed
	m.mu.Unlock()
}

func (m *Mock) Shutdown() error {
	m.mu.Lock()
	m.shutdown = true
	m.mu.Unlock()
	return nil
}

// Test helpers

// SetError makes later Notify calls fail with err.
func (m *Mock) SetError(err error) {
	m.mu.Lock()
	m.err = err
	m.mu.Unlock()
}

// Shown returns the notifications currently displayed, by id.
func (m *Mock) Shown() map[uint32]Notification {
	m.mu.Lock()
	defer m.mu.Unlock()

	shown := make(map[uint32]Notification, len(m.shown))
	for id, n := range m.shown {
		shown[id] = n
	}
	return shown
}

// Sent returns every notification sent, in order.
func (m *Mock) Sent() []Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Notification(nil), m.sent...)
}

// Closed returns the ids passed to Close, in order.
func (m *Mock) Closed() []uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]uint32(nil), m.closed...)
}

// IsShutdown reports whether Shutdown was called.
func (m *Mock) IsShutdown() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.shutdown
}

// Invoke simulates the user pressing the button key on notification id.
func (m *Mock) Invoke(id uint32, key string) {
	m.mu.Lock()
	fn := m.onAction
	m.mu.Unlock()
	if fn != nil {
		fn(id, key)
	}
}

// Dismiss simulates the user dismissing notification id.
func (m *Mock) Dismiss(id uint32) {
	m.mu.Lock()
	delete(m.shown, id)
	fn := m.onClosed
	m.mu.Unlock()
	if fn != nil {
		fn(id, ClosedDismissed)
	}
}

// Verify Mock implements Notifier at compile time.
var _ Notifier = (*Mock)(nil)
