package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "controls"
}

// All contains all key bindings.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},

	// Playback
	{ActionPlayPause, []string{" ", "p"}, "Play/pause", "playback"},
	{ActionStop, []string{"s"}, "Stop", "playback"},

	// Controls
	{ActionFocusNext, []string{"tab", "right", "l"}, "Next button", "controls"},
	{ActionFocusPrev, []string{"shift+tab", "left", "h"}, "Previous button", "controls"},
	{ActionPress, []string{"enter"}, "Press button", "controls"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Find returns the binding for an action.
func Find(action Action) (Binding, bool) {
	for _, kb := range All {
		if kb.Action == action {
			return kb, true
		}
	}
	return Binding{}, false
}

// KeyBinding converts b for bubbles/help rendering.
func (b Binding) KeyBinding() key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(displayKey(b.Keys), b.Description),
	)
}

// displayKey returns the label shown in help for a key list.
func displayKey(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	if keys[0] == " " {
		return "space"
	}
	return keys[0]
}
