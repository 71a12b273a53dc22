package notify

import (
	"fmt"
	"math"
	"time"

	"github.com/llehouerou/tinywave/internal/playback"
)

// DefaultTitle is the notification summary when none is configured.
const DefaultTitle = "Music Player"

// Options configures how a session snapshot is rendered.
type Options struct {
	Title string
	Icon  string
}

// Content is what the notification displays for one snapshot.
type Content struct {
	Title   string
	Status  string
	Track   string
	Percent int
	// Ongoing is set while playing; the notification then stays resident.
	Ongoing bool
	Actions []Action
}

// Render derives the notification content from a snapshot.
func Render(s playback.Snapshot, opts Options) Content {
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}

	percent := Percent(s.Progress, s.Duration)
	c := Content{
		Title:   title,
		Track:   s.Title,
		Percent: percent,
		Ongoing: s.IsPlaying(),
	}

	switch s.State {
	case playback.StatePlaying:
		c.Status = fmt.Sprintf("Playing - %d%%", percent)
	case playback.StatePaused:
		c.Status = "Paused"
	default:
		c.Status = "Stopped"
	}

	toggle := Action{Key: playback.ActionPlay, Label: "Play"}
	if s.IsPlaying() {
		toggle = Action{Key: playback.ActionPause, Label: "Pause"}
	}
	c.Actions = []Action{toggle, {Key: playback.ActionStop, Label: "Stop"}}

	return c
}

// Percent returns round(100*progress/duration) clamped to 0..100. A
// non-positive duration counts as one millisecond.
func Percent(progress, duration time.Duration) int {
	durMs := duration.Milliseconds()
	if durMs <= 0 {
		durMs = 1
	}
	p := int(math.Round(100 * float64(progress.Milliseconds()) / float64(durMs)))
	return max(0, min(100, p))
}

// Body is the notification body text.
func (c Content) Body() string {
	if c.Track == "" {
		return c.Status
	}
	return c.Status + "\n" + c.Track
}

// Notification builds the desktop notification for c.
func (c Content) Notification(icon string, replaces uint32) Notification {
	return Notification{
		Title:      c.Title,
		Body:       c.Body(),
		Icon:       icon,
		Timeout:    0,
		ReplacesID: replaces,
		Urgency:    UrgencyLow,
		Actions:    c.Actions,
		Resident:   c.Ongoing,
		Progress:   c.Percent,
	}
}
