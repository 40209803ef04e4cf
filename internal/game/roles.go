package game

import (
	"fmt"
	"strings"
)

// Role is a crew station. The numeric order is the turn order.
type Role int

const (
	RoleNone Role = iota
	Steward
	Bosun
	Topman
	Helmsman
	Gunner
)

var Roles = []Role{Steward, Bosun, Topman, Helmsman, Gunner}

var roleNames = map[Role]string{
	RoleNone: "None",
	Steward:  "Steward",
	Bosun:    "Bosun",
	Topman:   "Topman",
	Helmsman: "Helmsman",
	Gunner:   "Gunner",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "Unknown"
}

func (r Role) Valid() bool {
	return r >= Steward && r <= Gunner
}

func ParseRole(s string) (Role, error) {
	for r, name := range roleNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return r, nil
		}
	}
	return RoleNone, fmt.Errorf("unknown class %q", s)
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*r = RoleNone
		return nil
	}
	parsed, err := ParseRole(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// TurnRotation lists the occupied roles in turn order.
func (m *Match) TurnRotation() []Role {
	out := make([]Role, 0, len(Roles))
	for _, r := range Roles {
		if m.slots[r] != "" {
			out = append(out, r)
		}
	}
	return out
}

func (m *Match) CurrentTurn() Role {
	return m.currentTurn
}

// ProgressTurn hands the turn to the next occupied role after the current one,
// wrapping around. It also recovers when the current role has been vacated.
func (m *Match) ProgressTurn() {
	m.currentTurn = nextInRotation(m.TurnRotation(), m.currentTurn)
}

func nextInRotation(rotation []Role, from Role) Role {
	if len(rotation) == 0 {
		return RoleNone
	}
	for _, r := range rotation {
		if r > from {
			return r
		}
	}
	return rotation[0]
}

// ClassOf returns the role held by participant, or RoleNone.
func (m *Match) ClassOf(participant string) Role {
	if participant == "" {
		return RoleNone
	}
	for _, r := range Roles {
		if m.slots[r] == participant {
			return r
		}
	}
	return RoleNone
}

func (m *Match) SetToFirstAvailableClass(participant string) Role {
	if held := m.ClassOf(participant); held != RoleNone {
		return held
	}
	for _, r := range Roles {
		if m.slots[r] == "" {
			m.occupy(r, participant)
			return r
		}
	}
	return RoleNone
}

// SetClass moves participant into desired. A role held by someone else is
// refused and nothing changes.
func (m *Match) SetClass(participant string, desired Role) bool {
	if participant == "" || !desired.Valid() {
		return false
	}
	if holder := m.slots[desired]; holder != "" && holder != participant {
		return false
	}
	if held := m.ClassOf(participant); held != desired {
		if held != RoleNone {
			m.vacate(held)
		}
		m.occupy(desired, participant)
	}
	return true
}

func (m *Match) RemoveUserFromGame(participant string) {
	if held := m.ClassOf(participant); held != RoleNone {
		m.vacate(held)
	}
}

func (m *Match) IsEmpty() bool {
	return len(m.TurnRotation()) == 0
}

// GiveClassesForGame maps every role to its holder; empty roles map to "".
func (m *Match) GiveClassesForGame() map[Role]string {
	out := make(map[Role]string, len(Roles))
	for _, r := range Roles {
		out[r] = m.slots[r]
	}
	return out
}

func (m *Match) AvailableClasses() []Role {
	out := []Role{}
	for _, r := range Roles {
		if m.slots[r] == "" {
			out = append(out, r)
		}
	}
	return out
}

func (m *Match) occupy(r Role, participant string) {
	m.slots[r] = participant
	if m.currentTurn == RoleNone {
		m.currentTurn = r
	}
}

func (m *Match) vacate(r Role) {
	m.slots[r] = ""
	if m.currentTurn == r {
		m.ProgressTurn()
	}
}
