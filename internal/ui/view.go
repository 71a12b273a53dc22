package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tinywave/internal/errmsg"
	"github.com/llehouerou/tinywave/internal/ui/headerbar"
	"github.com/llehouerou/tinywave/internal/ui/playerbar"
	"github.com/llehouerou/tinywave/internal/ui/render"
	"github.com/llehouerou/tinywave/internal/ui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	s := styles.T().S()
	inner := m.PanelWidth()
	outer := inner + styles.PanelStyle(false).GetHorizontalFrameSize()

	if m.done && m.fatal != nil {
		return s.Error.Render("Playback stopped: "+render.Sanitize(m.fatal.Error())) + "\n"
	}

	state := playerbar.NewState(m.snap, m.isPlaying)
	panel := styles.PanelStyle(m.snap.State.IsActive()).
		Width(outer - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			playerbar.Render(state, m.bar, inner),
			"",
			render.Center(m.controls.View(m.isPlaying), inner),
		))

	var b strings.Builder
	b.WriteString(headerbar.Render(m.snap.State, outer))
	b.WriteString("\n")
	b.WriteString(panel)
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(s.Error.Render(render.TruncateEllipsis(render.Sanitize(errmsg.Format(m.errOp, m.err)), outer)))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}
