// Package styles holds the color palette and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Purple - focused button, playing status
	Secondary lipgloss.Color // Gold/orange - paused status, title gradient end

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	// Backgrounds
	BgBase   lipgloss.Color // Panel background
	BgButton lipgloss.Color // Focused button background

	// Borders
	Border      lipgloss.Color // Panel and unfocused button borders
	BorderFocus lipgloss.Color // Focused button border

	// Status colors
	Success lipgloss.Color // Green - playing
	Error   lipgloss.Color // Red - playback failures
	Warning lipgloss.Color // Yellow/orange - paused

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base          lipgloss.Style // Default text
	Muted         lipgloss.Style // Dimmed text
	Subtle        lipgloss.Style // Very dim text
	Title         lipgloss.Style // Bold, bright
	Playing       lipgloss.Style // Playing status
	Paused        lipgloss.Style // Paused status
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	Error         lipgloss.Style
}

var defaultTheme = Theme{
	// Bright purple accent
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	// Text hierarchy (grayscale)
	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	// Backgrounds
	BgBase:   lipgloss.Color("#1a1a1a"),
	BgButton: lipgloss.Color("#303030"),

	// Borders
	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	// Status
	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)
	button := lipgloss.NewStyle().
		Foreground(t.FgMuted).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 2)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Playing: lipgloss.NewStyle().
			Foreground(t.Success).
			Bold(true),
		Paused: lipgloss.NewStyle().
			Foreground(t.Warning),
		Button: button,
		ButtonFocused: button.
			Foreground(t.FgBase).
			Background(t.BgButton).
			BorderForeground(t.BorderFocus).
			Bold(true),
		Error: lipgloss.NewStyle().Foreground(t.Error),
	}
}
