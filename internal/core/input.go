package core

// Action represents a semantic player intent, abstracted from physical key presses.
// Front ends translate their input into these and then into session calls.
type Action int

const (
	ActionNone           Action = iota
	ActionUp                    // Up arrow, K - move cursor up
	ActionDown                  // Down arrow, J - move cursor down
	ActionLeft                  // Left arrow, H - move cursor left
	ActionRight                 // Right arrow, L - move cursor right
	ActionSelect                // Space, Enter - reveal or flag the cell under the cursor
	ActionToggleFlagging        // F - switch between reveal and flag mode
	ActionRestart               // R - new game with the same board
	ActionStats                 // S - show or hide the stats view
	ActionQuit                  // Q, Ctrl+C - exit
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
	case ActionSelect:
		return "Select"
	case ActionToggleFlagging:
		return "ToggleFlagging"
	case ActionRestart:
		return "Restart"
	case ActionStats:
		return "Stats"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Move returns the cursor delta for a movement action, or the zero Coord.
func (a Action) Move() Coord {
	switch a {
	case ActionUp:
		return Coord{Y: -1}
	case ActionDown:
		return Coord{Y: 1}
	case ActionLeft:
		return Coord{X: -1}
	case ActionRight:
		return Coord{X: 1}
	}
	return Coord{}
}
