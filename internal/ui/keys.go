package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/llehouerou/tinywave/internal/keymap"
)

// Verify helpKeys implements help.KeyMap at compile time.
var _ help.KeyMap = helpKeys{}

// helpKeys exposes the keymap bindings to bubbles/help.
type helpKeys struct {
	short []key.Binding
	full  [][]key.Binding
}

func newHelpKeys() helpKeys {
	var h helpKeys
	for _, a := range []keymap.Action{keymap.ActionPlayPause, keymap.ActionStop, keymap.ActionHelp, keymap.ActionQuit} {
		if b, ok := keymap.Find(a); ok {
			h.short = append(h.short, b.KeyBinding())
		}
	}
	for _, ctx := range []string{"playback", "controls", "global"} {
		var col []key.Binding
		for _, b := range keymap.ByContext(ctx) {
			col = append(col, b.KeyBinding())
		}
		h.full = append(h.full, col)
	}
	return h
}

// ShortHelp implements help.KeyMap.
func (h helpKeys) ShortHelp() []key.Binding { return h.short }

// FullHelp implements help.KeyMap.
func (h helpKeys) FullHelp() [][]key.Binding { return h.full }
