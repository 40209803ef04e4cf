package game

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// Side tells the two ships of a match apart.
type Side int

const (
	SidePlayer Side = iota
	SideAI
)

func (s Side) String() string {
	if s == SideAI {
		return "ai"
	}
	return "player"
}

func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "", "player":
		*s = SidePlayer
	case "ai":
		*s = SideAI
	default:
		return fmt.Errorf("unknown ship side %q", string(b))
	}
	return nil
}

// Crossing is one tile a ship passed over, as it was before the ship got there.
type Crossing struct {
	Summary    TileSummary
	Coordinate Coordinate
}

type ShipSummary struct {
	Side           Side         `json:"side"`
	Location       Coordinate   `json:"location"`
	HP             int          `json:"hp"`
	Food           int          `json:"food"`
	Pellets        int          `json:"pellets"`
	IsDodging      bool         `json:"isDodging"`
	ExtraMoves     int          `json:"extraMoves"`
	LastTilesMoved []Coordinate `json:"lastTilesMoved"`
}

type Ship struct {
	side           Side
	hp             int
	food           int
	pellets        int
	extraMoves     int
	isDodging      bool
	mineDamage     int
	lastTilesMoved []Coordinate
}

func NewShip(side Side, start Coordinate, rules Rules) *Ship {
	return &Ship{
		side:           side,
		hp:             rules.StartHP,
		food:           rules.StartFood,
		pellets:        rules.StartPellets,
		mineDamage:     rules.MineDamage,
		lastTilesMoved: []Coordinate{start},
	}
}

func (s *Ship) Side() Side                   { return s.side }
func (s *Ship) HP() int                      { return s.hp }
func (s *Ship) Food() int                    { return s.food }
func (s *Ship) Pellets() int                 { return s.pellets }
func (s *Ship) ExtraMoves() int              { return s.extraMoves }
func (s *Ship) IsDodging() bool              { return s.isDodging }
func (s *Ship) IsSunk() bool                 { return s.hp == 0 }
func (s *Ship) LastTilesMoved() []Coordinate { return append([]Coordinate(nil), s.lastTilesMoved...) }

// Location is wherever the last move ended.
func (s *Ship) Location() Coordinate {
	return s.lastTilesMoved[len(s.lastTilesMoved)-1]
}

// Move applies the consequences of every crossed tile in order. It stops early
// if the ship sinks on the way.
func (s *Ship) Move(crossings []Crossing) bool {
	if len(crossings) == 0 {
		log.Debug().Str("ship", s.side.String()).Msg("ignoring move with no tiles crossed")
		return false
	}

	s.lastTilesMoved = []Coordinate{s.Location()}
	for _, c := range crossings {
		if c.Summary.HasMine {
			if s.isDodging {
				s.isDodging = false
			} else {
				s.TakeDamage(s.mineDamage)
			}
		}
		if s.hp == 0 {
			s.lastTilesMoved = append(s.lastTilesMoved, c.Coordinate)
			log.Info().Str("ship", s.side.String()).Interface("at", c.Coordinate).Msg("ship sunk by mine")
			break
		}

		amount := collectedAmount(c.Summary)
		if c.Summary.ResourceType == Food {
			s.AddFood(amount)
		} else {
			s.AddPellets(amount)
		}

		if c.Summary.Weather == Tailwind {
			s.extraMoves++
		}

		s.lastTilesMoved = append(s.lastTilesMoved, c.Coordinate)
	}
	return true
}

// collectedAmount applies the moon and feeding weather to a tile's resource count.
func collectedAmount(t TileSummary) int {
	amount := t.ResourceCount
	boost, blight := FeedingFrenzy, Famine
	if t.ResourceType == Pellets {
		boost, blight = FullMoon, NewMoon
	}

	switch t.Weather {
	case blight:
		if amount > 0 {
			amount = 0
		}
	case boost:
		if amount > 0 {
			amount *= 2
		} else {
			amount = -amount
		}
	}
	return amount
}

func (s *Ship) TakeDamage(amount int) {
	s.hp = floorZero(s.hp - amount)
}

func (s *Ship) Heal(amount int) {
	s.hp = floorZero(s.hp + amount)
}

func (s *Ship) AddFood(amount int) {
	s.food = floorZero(s.food + amount)
}

func (s *Ship) AddPellets(amount int) {
	s.pellets = floorZero(s.pellets + amount)
}

func (s *Ship) Dodge() {
	s.isDodging = true
}

func (s *Ship) Summary() ShipSummary {
	return ShipSummary{
		Side:           s.side,
		Location:       s.Location(),
		HP:             s.hp,
		Food:           s.food,
		Pellets:        s.pellets,
		IsDodging:      s.isDodging,
		ExtraMoves:     s.extraMoves,
		LastTilesMoved: s.LastTilesMoved(),
	}
}

func floorZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
