// Package playerbar renders the now-playing panel: headline, track title
// and progress line.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/llehouerou/tinywave/internal/icons"
	"github.com/llehouerou/tinywave/internal/playback"
	"github.com/llehouerou/tinywave/internal/ui/render"
	"github.com/llehouerou/tinywave/internal/ui/styles"
)

// Headlines shown above the track title.
const (
	HeadlinePlaying = "Now Playing"
	HeadlineIdle    = "Music Player"
)

// Height is the number of content rows Render produces.
const Height = 4

// State holds everything needed to render the panel.
type State struct {
	// Playing is the screen's own idea of whether audio is playing. It
	// leads the session on a button press and is corrected by the next
	// state change.
	Playing  bool
	Session  playback.State
	Title    string
	Position time.Duration
	Duration time.Duration
}

// NewState builds a State from a session snapshot and the screen's
// playing flag.
func NewState(snap playback.Snapshot, playing bool) State {
	return State{
		Playing:  playing,
		Session:  snap.State,
		Title:    snap.Title,
		Position: snap.Progress,
		Duration: snap.Duration,
	}
}

// Headline returns the line shown above the track title.
func (s State) Headline() string {
	if s.Playing {
		return HeadlinePlaying
	}
	return HeadlineIdle
}

// Render returns the panel content for the given inner width.
func Render(s State, bar progress.Model, width int) string {
	st := styles.T().S()

	title := render.Sanitize(s.Title)
	if title == "" {
		title = "Unknown Track"
	}

	lines := []string{
		titleStyle().Render(render.TruncateEllipsis(s.Headline(), width)),
		st.Muted.Render(render.TruncateEllipsis(icons.FormatAudio(title), width)),
		"",
		RenderProgress(s, bar, width),
	}
	return strings.Join(lines, "\n")
}

func formatDuration(d time.Duration) string {
	d = max(d, 0)
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
