package styles

import "github.com/charmbracelet/lipgloss"

var (
	idlePanelBorderColor   = lipgloss.Color("240")
	activePanelBorderColor = lipgloss.Color("39") // cyan/blue

	idlePanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(idlePanelBorderColor).
			Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(activePanelBorderColor).
				Padding(1, 2)
)

// PanelStyle returns the player panel style. The border lights up while a
// track is active.
func PanelStyle(active bool) lipgloss.Style {
	if active {
		return activePanelStyle
	}
	return idlePanelStyle
}
