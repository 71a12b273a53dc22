//go:build linux

package mpris

import (
	"strings"
	"testing"
	"time"

	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/tinywave/internal/playback"
)

type fakeController struct {
	snap  playback.Snapshot
	calls []string
}

func (f *fakeController) Play() error   { f.calls = append(f.calls, "play"); return nil }
func (f *fakeController) Pause() error  { f.calls = append(f.calls, "pause"); return nil }
func (f *fakeController) Stop() error   { f.calls = append(f.calls, "stop"); return nil }
func (f *fakeController) Toggle() error { f.calls = append(f.calls, "toggle"); return nil }

func (f *fakeController) Snapshot() playback.Snapshot { return f.snap }

func (f *fakeController) Subscribe() *playback.Subscription { return nil }

func TestPlayerAdapter_Commands(t *testing.T) {
	ctrl := &fakeController{}
	p := &playerAdapter{ctrl: ctrl}

	_ = p.Play()
	_ = p.Pause()
	_ = p.PlayPause()
	_ = p.Stop()
	_ = p.Next()
	_ = p.Previous()
	_ = p.Seek(types.Microseconds(time.Second.Microseconds()))

	want := []string{"play", "pause", "toggle", "stop"}
	if strings.Join(ctrl.calls, ",") != strings.Join(want, ",") {
		t.Errorf("calls = %v, want %v", ctrl.calls, want)
	}
}

func TestPlayerAdapter_PlaybackStatus(t *testing.T) {
	tests := []struct {
		state playback.State
		want  types.PlaybackStatus
	}{
		{playback.StatePlaying, types.PlaybackStatusPlaying},
		{playback.StatePaused, types.PlaybackStatusPaused},
		{playback.StateStopped, types.PlaybackStatusStopped},
	}

	for _, tt := range tests {
		p := &playerAdapter{ctrl: &fakeController{snap: playback.Snapshot{State: tt.state}}}
		got, err := p.PlaybackStatus()
		if err != nil {
			t.Fatalf("PlaybackStatus() error: %v", err)
		}
		if got != tt.want {
			t.Errorf("PlaybackStatus() for %v = %v, want %v", tt.state, got, tt.want)
		}
	}
}

func TestPlayerAdapter_MetadataAndPosition(t *testing.T) {
	p := &playerAdapter{ctrl: &fakeController{snap: playback.Snapshot{
		State:    playback.StatePlaying,
		Progress: 3 * time.Second,
		Duration: 6 * time.Second,
		Title:    "track",
	}}}

	meta, err := p.Metadata()
	if err != nil {
		t.Fatalf("Metadata() error: %v", err)
	}
	if meta.Title != "track" {
		t.Errorf("Title = %q, want track", meta.Title)
	}
	if meta.Length != types.Microseconds(6_000_000) {
		t.Errorf("Length = %d, want 6000000", meta.Length)
	}
	if string(meta.TrackId) != formatTrackID("track") {
		t.Errorf("TrackId = %q, want %q", meta.TrackId, formatTrackID("track"))
	}

	pos, err := p.Position()
	if err != nil || pos != 3_000_000 {
		t.Errorf("Position() = %d, %v; want 3000000, nil", pos, err)
	}
}

func TestPlayerAdapter_EmptyMetadata(t *testing.T) {
	p := &playerAdapter{ctrl: &fakeController{}}
	meta, err := p.Metadata()
	if err != nil {
		t.Fatalf("Metadata() error: %v", err)
	}
	if meta.Title != "" || meta.TrackId != "" {
		t.Errorf("expected empty metadata, got %+v", meta)
	}
}

func TestFormatTrackID(t *testing.T) {
	a := formatTrackID("track")
	if !strings.HasPrefix(a, "/org/mpris/MediaPlayer2/Track/") {
		t.Errorf("formatTrackID() = %q, missing MPRIS prefix", a)
	}
	if a != formatTrackID("track") {
		t.Error("formatTrackID() is not stable")
	}
	if a == formatTrackID("other") {
		t.Error("formatTrackID() collides for different names")
	}
}

func TestRootAdapter_Identity(t *testing.T) {
	r := &rootAdapter{identity: "tinywave"}
	got, err := r.Identity()
	if err != nil || got != "tinywave" {
		t.Errorf("Identity() = %q, %v", got, err)
	}
}
