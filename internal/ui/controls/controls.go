// Package controls renders the Play/Pause and Stop buttons and tracks
// which one has keyboard focus.
package controls

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tinywave/internal/icons"
	"github.com/llehouerou/tinywave/internal/ui/styles"
)

// Button identifies a control.
type Button int

const (
	ButtonToggle Button = iota
	ButtonStop

	buttonCount
)

// Label returns the button text. The toggle reads Pause while playing.
func (b Button) Label(playing bool) string {
	switch b {
	case ButtonToggle:
		if playing {
			return "Pause"
		}
		return "Play"
	case ButtonStop:
		return "Stop"
	default:
		return ""
	}
}

// Icon returns the button glyph for the active icon style.
func (b Button) Icon(playing bool) string {
	switch b {
	case ButtonToggle:
		if playing {
			return icons.Pause()
		}
		return icons.Play()
	case ButtonStop:
		return icons.Stop()
	default:
		return ""
	}
}

// Model is the button row.
type Model struct {
	focus Button
}

// New returns a button row with the toggle focused.
func New() Model {
	return Model{focus: ButtonToggle}
}

// Focused returns the focused button.
func (m Model) Focused() Button {
	return m.focus
}

// Next moves focus to the next button, wrapping around.
func (m *Model) Next() {
	m.focus = (m.focus + 1) % buttonCount
}

// Prev moves focus to the previous button, wrapping around.
func (m *Model) Prev() {
	m.focus = (m.focus + buttonCount - 1) % buttonCount
}

// View renders the buttons side by side.
func (m Model) View(playing bool) string {
	s := styles.T().S()
	buttons := make([]string, 0, buttonCount)
	for b := range buttonCount {
		style := s.Button
		if b == m.focus {
			style = s.ButtonFocused
		}
		buttons = append(buttons, style.Render(icons.FormatButton(b.Icon(playing), b.Label(playing))))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons[0], "  ", buttons[1])
}
