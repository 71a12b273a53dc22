//go:build linux

package notify

import (
	"os"
	"testing"

	"github.com/godbus/dbus/v5"
)

func TestNewDBusNotifier(t *testing.T) {
	// Skip if no D-Bus session (CI environment)
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no D-Bus session available")
	}

	notifier, err := New("tinywave")
	if err != nil {
		t.Fatalf("New(%q) error: %v", "tinywave", err)
	}
	if notifier == nil {
		t.Fatal("New() returned nil notifier")
	}
	_ = notifier.Shutdown()
}

func TestNotifySendsNotification(t *testing.T) {
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no D-Bus session available")
	}

	notifier, err := New("tinywave")
	if err != nil {
		t.Fatalf("New(%q) error: %v", "tinywave", err)
	}

	id, err := notifier.Notify(Notification{
		Title:   "tinywave test",
		Body:    "Test notification from unit test",
		Timeout: 1000, // 1 second
		Urgency: UrgencyLow,
	})
	if err != nil {
		t.Fatalf("Notify() error: %v", err)
	}
	// ID should be non-zero on success
	if id == 0 {
		t.Error("Notify() returned id=0, expected non-zero")
	}

	// Close it immediately
	if err := notifier.Close(id); err != nil {
		t.Errorf("Close() error: %v", err)
	}
	_ = notifier.Shutdown()
}

func TestNotifyReplacesExisting(t *testing.T) {
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no D-Bus session available")
	}

	notifier, err := New("tinywave")
	if err != nil {
		t.Fatalf("New(%q) error: %v", "tinywave", err)
	}

	// Send first notification
	id1, err := notifier.Notify(Notification{
		Title:   "Music Player",
		Body:    "Playing - 10%",
		Timeout: 2000,
	})
	if err != nil {
		t.Fatalf("first Notify() error: %v", err)
	}

	// Replace it
	id2, err := notifier.Notify(Notification{
		Title:      "Music Player",
		Body:       "Paused",
		Timeout:    1000,
		ReplacesID: id1,
	})
	if err != nil {
		t.Fatalf("second Notify() error: %v", err)
	}

	// IDs should match when replacing
	if id2 != id1 {
		t.Errorf("replacing notification got id=%d, want id=%d", id2, id1)
	}

	if err := notifier.Close(id2); err != nil {
		t.Errorf("Close() error: %v", err)
	}
	_ = notifier.Shutdown()
}

func TestFlattenActions(t *testing.T) {
	got := flattenActions(Notification{Actions: []Action{
		{Key: "PAUSE", Label: "Pause"},
		{Key: "STOP", Label: "Stop"},
	}})
	want := []string{"PAUSE", "Pause", "STOP", "Stop"}
	if len(got) != len(want) {
		t.Fatalf("flattenActions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("flattenActions()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if got := flattenActions(Notification{}); got == nil || len(got) != 0 {
		t.Errorf("flattenActions(empty) = %#v, want empty non-nil slice", got)
	}
}

func TestBuildHints(t *testing.T) {
	hints := buildHints(Notification{Urgency: UrgencyLow, Resident: true, Progress: 42})
	if v := hints["urgency"].Value(); v != byte(UrgencyLow) {
		t.Errorf("urgency = %v, want %d", v, UrgencyLow)
	}
	if v := hints["resident"].Value(); v != true {
		t.Errorf("resident = %v, want true", v)
	}
	if v := hints["value"].Value(); v != int32(42) {
		t.Errorf("value = %v, want 42", v)
	}

	hints = buildHints(Notification{Progress: -1})
	if _, ok := hints["resident"]; ok {
		t.Error("resident hint set for a non-resident notification")
	}
	if _, ok := hints["value"]; ok {
		t.Error("value hint set without progress")
	}
}

func TestHandleSignal(t *testing.T) {
	n := &dbusNotifier{}
	var gotID uint32
	var gotKey string
	var gotReason CloseReason
	n.Listen(
		func(id uint32, key string) { gotID, gotKey = id, key },
		func(id uint32, reason CloseReason) { gotID, gotReason = id, reason },
	)

	n.handleSignal(&dbus.Signal{Name: signalActionInvoked, Body: []any{uint32(7), "STOP"}})
	if gotID != 7 || gotKey != "STOP" {
		t.Errorf("action = %d %q, want 7 STOP", gotID, gotKey)
	}

	n.handleSignal(&dbus.Signal{Name: signalNotificationClosed, Body: []any{uint32(8), uint32(2)}})
	if gotID != 8 || gotReason != ClosedDismissed {
		t.Errorf("closed = %d %d, want 8 %d", gotID, gotReason, ClosedDismissed)
	}

	// Malformed bodies are ignored.
	n.handleSignal(&dbus.Signal{Name: signalActionInvoked, Body: []any{"7", "STOP"}})
	n.handleSignal(&dbus.Signal{Name: signalActionInvoked, Body: []any{uint32(9)}})
	n.handleSignal(nil)
	if gotID != 8 {
		t.Errorf("malformed signal dispatched, id = %d", gotID)
	}
}
