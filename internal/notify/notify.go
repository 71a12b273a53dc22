// Package notify provides desktop notifications via D-Bus.
package notify

// Urgency represents notification priority levels of the freedesktop notification protocol.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// CloseReason is the reason carried by the NotificationClosed signal.
type CloseReason uint32

const (
	ClosedExpired   CloseReason = 1
	ClosedDismissed CloseReason = 2
	ClosedByCall    CloseReason = 3
	ClosedUndefined CloseReason = 4
)

// Action is a notification button. Key is sent back when it is invoked.
type Action struct {
	Key   string
	Label string
}

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string   // Summary text (required)
	Body       string   // Body text (optional, supports basic markup)
	Icon       string   // Path to image file or icon name (optional)
	Timeout    int32    // ms, -1 = server default, 0 = never expire
	ReplacesID uint32   // 0 = new notification, >0 = replace existing
	Urgency    Urgency  // Low, Normal, Critical
	Actions    []Action // Buttons, in display order
	Resident   bool     // Keep the notification after an action is invoked
	Progress   int      // 0..100 progress hint, <0 = none
}

// ActionFunc receives the id of a notification and the key of the action
// the user invoked on it.
type ActionFunc func(id uint32, key string)

// ClosedFunc receives the id of a notification that went away.
type ClosedFunc func(id uint32, reason CloseReason)

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
	// Listen registers callbacks for user interaction. Callbacks run on
	// the notifier's own goroutine and see every notification on the
	// bus, not only ours.
	Listen(onAction ActionFunc, onClosed ClosedFunc)
	// Shutdown stops listening and releases the connection.
	Shutdown() error
}

// Disabled returns a notifier that drops everything.
func Disabled() Notifier {
	return &stubNotifier{}
}

// stubNotifier is used when notifications are disabled or unavailable.
type stubNotifier struct{}

func (s *stubNotifier) Notify(_ Notification) (uint32, error) {
	return 0, nil
}

func (s *stubNotifier) Close(_ uint32) error {
	return nil
}

func (s *stubNotifier) Listen(_ ActionFunc, _ ClosedFunc) {}

func (s *stubNotifier) Shutdown() error {
	return nil
}
