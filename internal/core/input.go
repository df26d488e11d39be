package core

// Action represents a semantic input, abstracted from physical keys and pointer events.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // move piece one cell left
	ActionRight          // move piece one cell right
	ActionRotate         // rotate piece (Down in the classic binding)
	ActionRetry          // R - new session after game over
	ActionBack           // Backspace - return to the home screen
	ActionUp             // menu navigation
	ActionDown           // menu navigation
	ActionConfirm        // Enter - activate the focused button
	ActionQuit           // Ctrl+C, Q in menus
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
	case ActionRotate:
		return "Rotate"
	case ActionRetry:
		return "Retry"
	case ActionBack:
		return "Back"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
