// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Playback actions
	ActionPlayPause Action = "play_pause"
	ActionStop      Action = "stop"

	// Control focus actions
	ActionFocusNext Action = "focus_next"
	ActionFocusPrev Action = "focus_prev"
	ActionPress     Action = "press" // enter - press the focused button
)
