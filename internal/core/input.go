package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games work with intents; the platform maps keys and gestures onto them.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // Left arrow, A
	ActionRight            // Right arrow, D
	ActionSoftDrop         // Down arrow, S
	ActionHardDrop         // Space
	ActionRotateCW         // Up arrow, W, X
	ActionRotateCCW        // Z
	ActionHold             // C
	ActionRestart          // R - restart after game over
	ActionQuit             // Q, Ctrl+C
	ActionPause            // P, Escape
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionHold:
		return "Hold"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered during one simulation tick.
// Actions keep the order they arrived in; a repeated action (key repeat
// between two ticks) is kept each time so fast taps are not lost.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Actions: make([]Action, len(f.Actions))}
	copy(clone.Actions, f.Actions)
	return clone
}
