package core

// Action represents a semantic game action, abstracted from physical key
// presses. This allows the game to work with high-level intents rather than
// raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionButton0        // 1, h - green pad
	ActionButton1        // 2, j - red pad
	ActionButton2        // 3, k - yellow pad
	ActionButton3        // 4, l - blue pad
	ActionRestart        // R - pull the reset line
	ActionMute           // M - toggle audio
	ActionBack           // B, Escape - leave the game
	ActionQuit           // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionButton0:
		return "Button0"
	case ActionButton1:
		return "Button1"
	case ActionButton2:
		return "Button2"
	case ActionButton3:
		return "Button3"
	case ActionRestart:
		return "Restart"
	case ActionMute:
		return "Mute"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ButtonIndex returns the pad index for a button action and whether the
// action is one of the four pads.
func (a Action) ButtonIndex() (int, bool) {
	if a >= ActionButton0 && a <= ActionButton3 {
		return int(a - ActionButton0), true
	}
	return 0, false
}

// InputFrame represents the input state for a single host frame.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
