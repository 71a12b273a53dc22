package playback

import (
	"testing"
	"time"
)

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateStopped, "Stopped"},
		{StatePlaying, "Playing"},
		{StatePaused, "Paused"},
		{State(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestState_IsActive(t *testing.T) {
	if StateStopped.IsActive() {
		t.Error("Stopped should not be active")
	}
	if !StatePlaying.IsActive() || !StatePaused.IsActive() {
		t.Error("Playing and Paused should be active")
	}
}

func TestCommand_ActionRoundTrip(t *testing.T) {
	for _, cmd := range []Command{CommandPlay, CommandPause, CommandStop} {
		got, ok := ParseAction(cmd.Action())
		if !ok || got != cmd {
			t.Errorf("ParseAction(%q) = %v, %v; want %v", cmd.Action(), got, ok, cmd)
		}
	}
	if Command(42).Action() != "" {
		t.Error("unknown command should have no action tag")
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		tag  string
		want Command
		ok   bool
	}{
		{"PLAY", CommandPlay, true},
		{"pause", CommandPause, true},
		{" Stop ", CommandStop, true},
		{"io.github.tinywave.STOP", CommandStop, true},
		{"", 0, false},
		{"REWIND", 0, false},
		{"io.github.tinywave.", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseAction(tt.tag)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseAction(%q) = %v, %v; want %v, %v", tt.tag, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSnapshot_IsPlaying(t *testing.T) {
	s := Snapshot{State: StatePlaying, Progress: time.Second, Duration: time.Minute}
	if !s.IsPlaying() {
		t.Error("expected playing snapshot")
	}
	s.State = StatePaused
	if s.IsPlaying() {
		t.Error("paused snapshot should not report playing")
	}
}
