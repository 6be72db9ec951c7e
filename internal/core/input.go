package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the control loop to work with intents rather than raw bytes.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, Up arrow
	ActionDown         // S, Down arrow
	ActionLeft         // A, Left arrow
	ActionRight        // D, Right arrow
	ActionQuit         // Q, Escape
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action requests a direction change.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}

// Key is one raw read from the terminal: up to 3 bytes, zero padded.
// A single key press is one byte; arrow keys are ESC '[' letter.
type Key [3]byte
