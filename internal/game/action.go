package game

import "fmt"

type ActionType string

const (
	ActionPass          ActionType = "pass"
	ActionBuff          ActionType = "buff"
	ActionDetect        ActionType = "detect"
	ActionReduceFood    ActionType = "reduce_food"
	ActionReducePellets ActionType = "reduce_pellets"
	ActionReveal        ActionType = "reveal"
	ActionMove          ActionType = "move"
	ActionMine          ActionType = "mine"
	ActionFire          ActionType = "fire"
	ActionDodge         ActionType = "dodge"
)

var actionRoles = map[ActionType]Role{
	ActionPass:          RoleNone,
	ActionBuff:          Steward,
	ActionDetect:        Bosun,
	ActionReduceFood:    Bosun,
	ActionReducePellets: Bosun,
	ActionReveal:        Topman,
	ActionMove:          Helmsman,
	ActionMine:          Gunner,
	ActionFire:          Gunner,
	ActionDodge:         Gunner,
}

// Role is the crew station allowed to take the action. RoleNone means any.
func (a ActionType) Role() (Role, bool) {
	r, ok := actionRoles[a]
	return r, ok
}

// Action is one crew order. Coordinates is used by reveal, move, mine and fire;
// Class by buff; Ship by move and dodge.
type Action struct {
	Type        ActionType   `json:"action"`
	Coordinates []Coordinate `json:"coordinates,omitempty"`
	Class       Role         `json:"class,omitempty"`
	Ship        Side         `json:"ship"`
}

type Result struct {
	Action    ActionType `json:"action"`
	Detection string     `json:"detection,omitempty"`
	Hits      []Side     `json:"hits,omitempty"`
}

// Apply routes an action to the matching crew operation. The caller has
// already checked that it is the actor's turn and that the action is theirs.
func (m *Match) Apply(a Action) (Result, error) {
	res := Result{Action: a.Type}
	switch a.Type {
	case ActionPass:
		m.Pass()
	case ActionBuff:
		m.BuffClass(a.Class)
	case ActionDetect:
		res.Detection = m.Detect()
	case ActionReduceFood:
		m.ReduceFood()
	case ActionReducePellets:
		m.ReducePellets()
	case ActionReveal:
		m.Reveal(a.Coordinates)
	case ActionMove:
		if err := m.Move(a.Ship == SidePlayer, a.Coordinates); err != nil {
			return res, err
		}
	case ActionMine:
		if err := m.Mine(a.Coordinates); err != nil {
			return res, err
		}
	case ActionFire:
		res.Hits = m.Fire(a.Coordinates)
	case ActionDodge:
		m.Dodge(a.Ship == SidePlayer)
	default:
		return res, fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
	}
	return res, nil
}
