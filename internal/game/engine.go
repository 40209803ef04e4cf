package game

import "github.com/rs/zerolog/log"

func (b *Board) RevealTile(c Coordinate) {
	if tile := b.Tile(c); tile != nil {
		tile.Reveal()
	}
}

func (b *Board) RevealTiles(coords []Coordinate) {
	for _, c := range coords {
		b.RevealTile(c)
	}
}

func (b *Board) LayMine(c Coordinate) {
	if tile := b.Tile(c); tile != nil {
		tile.PlaceMine()
	}
}

// MoveShip sails ship along coords. A visible headwind, or the edge of the
// board, stops the ship before it enters that tile; everything after is dropped.
func (b *Board) MoveShip(ship *Ship, coords []Coordinate) bool {
	crossings := make([]Crossing, 0, len(coords))
	for _, c := range coords {
		tile := b.Tile(c)
		if tile == nil {
			log.Debug().Interface("at", c).Msg("path leaves the board, stopping")
			break
		}
		if tile.VisibleWeather() == Headwind {
			break
		}
		crossings = append(crossings, Crossing{Summary: tile.MoveOverTile(), Coordinate: c})
	}

	if len(crossings) == 0 && len(coords) > 0 {
		// Blocked on the first tile: the ship held position this turn.
		ship.lastTilesMoved = []Coordinate{ship.Location()}
		return false
	}
	return ship.Move(crossings)
}
