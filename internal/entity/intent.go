package entity

import "github.com/samdwyer/horizon/internal/ecs"

// Direction is one of the four orthogonal steps.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the coordinate change for one step in d. Up is -y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Action is what an actor wants to do this turn.
type Action int

const (
	ActionWait Action = iota
	ActionMove
	ActionAttack
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionWait:
		return "wait"
	case ActionMove:
		return "move"
	case ActionAttack:
		return "attack"
	default:
		return "unknown"
	}
}

// Intent is a transient per-turn desired action. It is attached during
// the decision stages and removed after resolution.
type Intent struct {
	Action Action
	Dir    Direction    // for ActionMove
	Target ecs.EntityID // for ActionAttack
}

// Wait is the intent to stay in place.
func Wait() Intent { return Intent{Action: ActionWait} }

// Move is the intent to step once in d.
func Move(d Direction) Intent { return Intent{Action: ActionMove, Dir: d} }

// Attack is the intent to strike target.
func Attack(target ecs.EntityID) Intent { return Intent{Action: ActionAttack, Target: target} }

func (in Intent) String() string {
	switch in.Action {
	case ActionMove:
		return "move " + in.Dir.String()
	case ActionAttack:
		return "attack"
	default:
		return in.Action.String()
	}
}
