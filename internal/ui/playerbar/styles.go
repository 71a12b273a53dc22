package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tinywave/internal/ui/styles"
)

func titleStyle() lipgloss.Style {
	return styles.T().S().Title
}

func progressTimeStyle() lipgloss.Style {
	return styles.T().S().Subtle
}
