package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadeworks/simon-tui/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	// The four pads map to the number row and to vim home-row keys.
	switch key {
	case "1", "h":
		return core.ActionButton0, false
	case "2", "j":
		return core.ActionButton1, false
	case "3", "k":
		return core.ActionButton2, false
	case "4", "l":
		return core.ActionButton3, false
	case "r":
		return core.ActionRestart, false
	case "m":
		return core.ActionMute, false
	case "b", "esc":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}
