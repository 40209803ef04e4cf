package game

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const (
	DetectedSouthEast    = "SHIP DETECTED SOUTH EAST OF YOU"
	DetectedNorthEast    = "SHIP DETECTED NORTH EAST OF YOU"
	DetectedDirectlyEast = "SHIP DETECTED DIRECTLY EAST OF YOU"
)

// Reduction is the resource the bosun asked to cut back on.
type Reduction int

const (
	ReduceNone Reduction = iota
	ReduceFood
	ReducePellets
)

func (r Reduction) String() string {
	switch r {
	case ReduceFood:
		return "Food"
	case ReducePellets:
		return "Pellets"
	}
	return "None"
}

func (r Reduction) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Reduction) UnmarshalText(b []byte) error {
	for _, x := range []Reduction{ReduceNone, ReduceFood, ReducePellets} {
		if strings.EqualFold(x.String(), string(b)) {
			*r = x
			return nil
		}
	}
	return fmt.Errorf("unknown reduction %q", b)
}

// Match is one voyage: a board, the two ships and the crew. It is not safe for
// concurrent use; callers serialize access.
type Match struct {
	id    string
	rules Rules
	board *Board

	player *Ship
	ai     *Ship

	slots       map[Role]string
	currentTurn Role

	classToBuff      Role
	resourceToReduce Reduction
	tilesRevealed    []Coordinate
	lastTilesMoved   []Coordinate
	lastMover        *Side
	lastDetection    string
}

func NewMatch(id string, rules Rules, rng *rand.Rand) *Match {
	rules = rules.withDefaults()

	// Ships never share a starting row or column.
	rows := rng.Perm(rules.Rows)
	cols := rng.Perm(rules.Columns)

	return &Match{
		id:     id,
		rules:  rules,
		board:  NewBoard(rules.Rows, rules.Columns, rng),
		player: NewShip(SidePlayer, Coordinate{Row: rows[0], Column: cols[0]}, rules),
		ai:     NewShip(SideAI, Coordinate{Row: rows[1], Column: cols[1]}, rules),
		slots:  make(map[Role]string, len(Roles)),
	}
}

func (m *Match) ID() string        { return m.id }
func (m *Match) Rules() Rules      { return m.rules }
func (m *Match) Board() *Board     { return m.board }
func (m *Match) PlayerShip() *Ship { return m.player }
func (m *Match) AIShip() *Ship     { return m.ai }

func (m *Match) ship(side Side) *Ship {
	if side == SideAI {
		return m.ai
	}
	return m.player
}

// STEWARD

func (m *Match) BuffClass(role Role) {
	m.classToBuff = role
	m.ProgressTurn()
}

// BOSUN

func (m *Match) ReduceFood() {
	m.resourceToReduce = ReduceFood
	m.ProgressTurn()
}

func (m *Match) ReducePellets() {
	m.resourceToReduce = ReducePellets
	m.ProgressTurn()
}

func (m *Match) Detect() string {
	m.resourceToReduce = ReduceNone

	ai, player := m.ai.Location(), m.player.Location()
	switch {
	case ai.Row > player.Row:
		m.lastDetection = DetectedSouthEast
	case ai.Row < player.Row:
		m.lastDetection = DetectedNorthEast
	default:
		m.lastDetection = DetectedDirectlyEast
	}

	m.ProgressTurn()
	return m.lastDetection
}

// TOPMAN

func (m *Match) Reveal(coords []Coordinate) {
	m.tilesRevealed = append(m.tilesRevealed, coords...)
	m.board.RevealTiles(coords)
	m.ProgressTurn()
}

// HELMSMAN

// Move sails one ship along path. An empty path changes nothing, not even the turn.
func (m *Match) Move(isPlayerMove bool, path []Coordinate) error {
	if len(path) == 0 {
		log.Debug().Str("match", m.id).Msg("ignoring move with an empty path")
		return ErrEmptyPath
	}

	side := SideAI
	if isPlayerMove {
		side = SidePlayer
	}

	m.lastTilesMoved = append([]Coordinate(nil), path...)
	m.board.MoveShip(m.ship(side), path)
	m.lastMover = &side

	m.ProgressTurn()
	return nil
}

// GUNNER

// Mine lays a mine on every location, or on none of them if any location was
// not part of the last move.
func (m *Match) Mine(locations []Coordinate) error {
	if len(locations) == 0 {
		log.Debug().Str("match", m.id).Msg("ignoring mine with no locations")
		return ErrEmptyPath
	}

	var crossed []Coordinate
	if m.lastMover != nil {
		crossed = m.ship(*m.lastMover).LastTilesMoved()
	}
	for _, loc := range locations {
		if !containsCoordinate(crossed, loc) {
			return fmt.Errorf("%w: %d,%d", ErrMineOffPath, loc.Row, loc.Column)
		}
	}

	for _, loc := range locations {
		m.board.LayMine(loc)
	}
	m.ProgressTurn()
	return nil
}

// Fire returns the sides that were hit. A ship is hit at most once per volley;
// dodging does not help against cannon fire.
func (m *Match) Fire(targets []Coordinate) []Side {
	hits := []Side{}
	for _, ship := range []*Ship{m.player, m.ai} {
		if containsCoordinate(targets, ship.Location()) {
			ship.TakeDamage(m.rules.CannonDamage)
			hits = append(hits, ship.Side())
		}
	}
	m.ProgressTurn()
	return hits
}

func (m *Match) Dodge(isPlayerDodging bool) {
	if isPlayerDodging {
		m.player.Dodge()
	} else {
		m.ai.Dodge()
	}
	m.ProgressTurn()
}

func (m *Match) Pass() {
	m.ProgressTurn()
}

func containsCoordinate(coords []Coordinate, c Coordinate) bool {
	for _, x := range coords {
		if x == c {
			return true
		}
	}
	return false
}
