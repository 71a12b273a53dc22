//go:build linux

package notify

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/godbus/dbus/v5"
)

const (
	dbusNotifyDest      = "org.freedesktop.Notifications"
	dbusNotifyPath      = "/org/freedesktop/Notifications"
	dbusNotifyInterface = "org.freedesktop.Notifications"

	signalActionInvoked      = dbusNotifyInterface + ".ActionInvoked"
	signalNotificationClosed = dbusNotifyInterface + ".NotificationClosed"
)

// dbusNotifier sends notifications via D-Bus.
type dbusNotifier struct {
	appName string
	conn    *dbus.Conn
	obj     dbus.BusObject
	signals chan *dbus.Signal

	mu       sync.Mutex
	onAction ActionFunc
	onClosed ClosedFunc

	closeOnce sync.Once
}

// New creates a Notifier that sends desktop notifications via D-Bus on a
// private session bus connection. Returns a no-op notifier if D-Bus is
// unavailable.
func New(appName string) (Notifier, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		// D-Bus not available, return no-op notifier (intentional graceful degradation)
		return &stubNotifier{}, nil //nolint:nilerr // graceful fallback when D-Bus unavailable
	}

	n := &dbusNotifier{
		appName: appName,
		conn:    conn,
		obj:     conn.Object(dbusNotifyDest, dbusNotifyPath),
		signals: make(chan *dbus.Signal, 16),
	}

	if err := conn.AddMatchSignal(
		dbus.WithMatchObjectPath(dbusNotifyPath),
		dbus.WithMatchInterface(dbusNotifyInterface),
	); err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(err, "subscribe to notification signals")
	}
	conn.Signal(n.signals)
	go n.dispatch()

	return n, nil
}

// Notify sends a notification via D-Bus.
func (n *dbusNotifier) Notify(notif Notification) (uint32, error) {
	// D-Bus Notify method signature:
	// Notify(app_name, replaces_id, icon, summary, body, actions, hints, timeout) -> id
	call := n.obj.Call(
		dbusNotifyInterface+".Notify",
		0,                     // flags
		n.appName,             // app_name
		notif.ReplacesID,      // replaces_id
		notif.Icon,            // app_icon (path or icon name)
		notif.Title,           // summary
		notif.Body,            // body
		flattenActions(notif), // actions
		buildHints(notif),     // hints
		notif.Timeout,         // expire_timeout
	)

	if call.Err != nil {
		return 0, errors.Wrap(call.Err, "notify")
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, errors.Wrap(err, "read notification id")
	}

	return id, nil
}

// Close closes a notification by ID.
func (n *dbusNotifier) Close(id uint32) error {
	call := n.obj.Call(dbusNotifyInterface+".CloseNotification", 0, id)
	return call.Err
}

func (n *dbusNotifier) Listen(onAction ActionFunc, onClosed ClosedFunc) {
	n.mu.Lock()
	n.onAction = onAction
	n.onClosed = onClosed
	n.mu.Unlock()
}

// Shutdown closes the private connection, which also ends dispatch.
func (n *dbusNotifier) Shutdown() error {
	var err error
	n.closeOnce.Do(func() {
		n.conn.RemoveSignal(n.signals)
		err = n.conn.Close()
	})
	return err
}

func (n *dbusNotifier) dispatch() {
	for sig := range n.signals {
		n.handleSignal(sig)
	}
}

func (n *dbusNotifier) handleSignal(sig *dbus.Signal) {
	if sig == nil || len(sig.Body) < 2 {
		return
	}
	id, ok := sig.Body[0].(uint32)
	if !ok {
		return
	}

	n.mu.Lock()
	onAction, onClosed := n.onAction, n.onClosed
	n.mu.Unlock()

	switch sig.Name {
	case signalActionInvoked:
		key, ok := sig.Body[1].(string)
		if ok && onAction != nil {
			onAction(id, key)
		}
	case signalNotificationClosed:
		reason, ok := sig.Body[1].(uint32)
		if ok && onClosed != nil {
			onClosed(id, CloseReason(reason))
		}
	}
}

// flattenActions returns the [key, label, key, label, ...] list D-Bus
// expects.
func flattenActions(notif Notification) []string {
	actions := make([]string, 0, 2*len(notif.Actions))
	for _, a := range notif.Actions {
		actions = append(actions, a.Key, a.Label)
	}
	return actions
}

func buildHints(notif Notification) map[string]dbus.Variant {
	hints := map[string]dbus.Variant{
		"urgency":        dbus.MakeVariant(byte(notif.Urgency)),
		"desktop-entry":  dbus.MakeVariant("tinywave"),
		"suppress-sound": dbus.MakeVariant(true),
	}
	if notif.Resident {
		hints["resident"] = dbus.MakeVariant(true)
	}
	if notif.Progress >= 0 {
		hints["value"] = dbus.MakeVariant(int32(notif.Progress))
	}
	return hints
}
