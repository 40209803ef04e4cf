package game

import "golang.org/x/exp/rand"

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// calmBoard is a board of empty food tiles with no weather.
func calmBoard(rows, columns int) *Board {
	tiles := make([][]*Tile, rows)
	for r := range tiles {
		tiles[r] = make([]*Tile, columns)
		for c := range tiles[r] {
			tiles[r][c] = &Tile{resourceType: Food, weather: Nothing}
		}
	}
	return &Board{rows: rows, columns: columns, tiles: tiles}
}

func (b *Board) set(r, c int, rt ResourceType, count int, w Weather) *Tile {
	t := &Tile{resourceType: rt, resourceCount: count, weather: w}
	b.tiles[r][c] = t
	return t
}

func newTestMatch(player, ai Coordinate) *Match {
	rules := DefaultRules()
	rules.Rows, rules.Columns = 8, 8
	return &Match{
		id:     "test",
		rules:  rules,
		board:  calmBoard(rules.Rows, rules.Columns),
		player: NewShip(SidePlayer, player, rules),
		ai:     NewShip(SideAI, ai, rules),
		slots:  map[Role]string{},
	}
}

func fullCrew(m *Match) {
	for _, p := range []string{"steward", "bosun", "topman", "helmsman", "gunner"} {
		m.SetToFirstAvailableClass(p)
	}
}

func at(r, c int) Coordinate {
	return Coordinate{Row: r, Column: c}
}
