package core

// Action represents a semantic game action, abstracted from physical key presses.
// The frontend translates keys into actions and the game only sees actions.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // W, K, Up arrow
	ActionDown               // S, J, Down arrow
	ActionLeft               // A, H, Left arrow
	ActionRight              // D, L, Right arrow
	ActionStart              // Enter, R - start or restart
	ActionTogglePause        // P, Space
	ActionDifficulty1        // 1
	ActionDifficulty2        // 2
	ActionDifficulty3        // 3
	ActionCycleColor         // C
	ActionBack               // Esc, B - leave a finished or paused game
	ActionQuit               // Q, Ctrl+C
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
	case ActionStart:
		return "Start"
	case ActionTogglePause:
		return "TogglePause"
	case ActionDifficulty1:
		return "Difficulty1"
	case ActionDifficulty2:
		return "Difficulty2"
	case ActionDifficulty3:
		return "Difficulty3"
	case ActionCycleColor:
		return "CycleColor"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
