// Package ui implements the player screen.
package ui

// Layout constants.
const (
	// DefaultWidth is assumed until the first window size message.
	DefaultWidth = 60

	// PanelOverhead is the horizontal space taken by the panel border and
	// padding.
	PanelOverhead = 6

	// MinPanelWidth and MaxPanelWidth bound the panel's inner width.
	MinPanelWidth = 20
	MaxPanelWidth = 72
)
