package input

import "github.com/plus3/powertris/tetris"

// Action is a player command independent of the device that produced it.
type Action uint32

const (
	ActionLeft Action = iota
	ActionRight
	ActionSoftDrop
	ActionRotate
	ActionHardDrop
	ActionHold
	ActionRestart
)

// Actions lists every action in the order they are polled each frame.
var Actions = []Action{
	ActionLeft,
	ActionRight,
	ActionSoftDrop,
	ActionRotate,
	ActionHardDrop,
	ActionHold,
	ActionRestart,
}

func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionSoftDrop:
		return "soft_drop"
	case ActionRotate:
		return "rotate"
	case ActionHardDrop:
		return "hard_drop"
	case ActionHold:
		return "hold"
	case ActionRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Repeats reports whether holding the action down keeps firing it.
func (a Action) Repeats() bool {
	return a == ActionLeft || a == ActionRight || a == ActionSoftDrop
}

// Dispatch applies a to the engine and reports whether anything changed.
// ActionRestart never touches the engine; it reports whether a restart is
// allowed, which is only once the game is over.
func Dispatch(e *tetris.Engine, a Action) bool {
	switch a {
	case ActionLeft:
		return e.Move(-1, 0)
	case ActionRight:
		return e.Move(1, 0)
	case ActionSoftDrop:
		return e.SoftDrop()
	case ActionRotate:
		return e.Rotate()
	case ActionHardDrop:
		if e.GameOver() {
			return false
		}
		e.HardDrop()
		return true
	case ActionHold:
		return e.Hold()
	case ActionRestart:
		return e.GameOver()
	default:
		return false
	}
}
