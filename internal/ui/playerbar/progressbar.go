package playerbar

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tinywave/internal/playback"
	"github.com/llehouerou/tinywave/internal/ui/render"
)

// minBarWidth is the narrowest bar worth drawing.
const minBarWidth = 5

const (
	playSymbol  = "▶"
	pauseSymbol = "⏸"
	stopSymbol  = "■"
)

// NewBar creates the progress bar model used by RenderProgress.
func NewBar() progress.Model {
	return progress.New(
		progress.WithDefaultGradient(),
		progress.WithoutPercentage(),
	)
}

// Ratio returns position/duration clamped to 0..1. A non-positive
// duration gives 0.
func Ratio(position, duration time.Duration) float64 {
	if duration <= 0 {
		return 0
	}
	return min(max(float64(position)/float64(duration), 0), 1)
}

// RenderProgress renders the status symbol, the elapsed time, the bar and
// the total time.
// Format: ▶  1:23  ████░░░░  4:56
func RenderProgress(s State, bar progress.Model, width int) string {
	status := stopSymbol
	switch {
	case s.Playing:
		status = playSymbol
	case s.Session == playback.StatePaused:
		status = pauseSymbol
	}

	durStr := formatDuration(s.Duration)
	// Elapsed time keeps the width of the total so the bar does not shift
	// when it gains a digit.
	posStr := render.Pad(formatDuration(s.Position), lipgloss.Width(durStr))

	// Format: "▶  1:23  ▓▓▓░░░  4:56"
	fixedWidth := lipgloss.Width(status) + 2 + lipgloss.Width(posStr) + 2 + 2 + lipgloss.Width(durStr)
	barWidth := width - fixedWidth

	if barWidth < minBarWidth {
		// Too narrow for bar, just show times
		avail := max(width-lipgloss.Width(status)-2, 0)
		times := render.Truncate(formatDuration(s.Position)+" / "+durStr, avail)
		return status + "  " + progressTimeStyle().Render(times)
	}

	bar.Width = barWidth
	return status + "  " + progressTimeStyle().Render(posStr) + "  " +
		bar.ViewAs(Ratio(s.Position, s.Duration)) + "  " +
		progressTimeStyle().Render(durStr)
}
