// Package headerbar renders the application header line.
package headerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tinywave/internal/playback"
	"github.com/llehouerou/tinywave/internal/ui/render"
	"github.com/llehouerou/tinywave/internal/ui/styles"
)

// Height is the fixed height of the header bar (title line + separator).
const Height = 2

// Title is the application name shown in the header.
const Title = "Music Player"

var separatorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240"))

// Render returns the header bar for the given width: the title on the left
// and the session state on the right.
func Render(state playback.State, width int) string {
	if width < 20 {
		return styles.T().Gradient(Title)
	}

	line := render.Row(styles.T().Gradient(Title), stateBadge(state), width)
	return line + "\n" + separatorStyle.Render(render.Separator(width))
}

func stateBadge(state playback.State) string {
	s := styles.T().S()
	switch state {
	case playback.StatePlaying:
		return s.Playing.Render("● " + state.String())
	case playback.StatePaused:
		return s.Paused.Render("‖ " + state.String())
	default:
		return s.Muted.Render("■ " + state.String())
	}
}
