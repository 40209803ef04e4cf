package game

import "golang.org/x/exp/rand"

type Board struct {
	rows    int
	columns int
	tiles   [][]*Tile
}

// TileView is one cell of the fog-of-war projection sent to observers.
type TileView struct {
	IsRevealed    bool          `json:"isRevealed"`
	IsVisited     bool          `json:"isVisited"`
	HasMine       bool          `json:"hasMine"`
	Weather       Weather       `json:"weather"`
	ResourceType  *ResourceType `json:"resourceType,omitempty"`
	ResourceCount *int          `json:"resourceCount,omitempty"`
	HasPlayerShip bool          `json:"hasPlayerShip"`
	HasAIShip     bool          `json:"hasAiShip"`
}

func NewBoard(rows, columns int, rng *rand.Rand) *Board {
	tiles := make([][]*Tile, rows)
	for r := range tiles {
		tiles[r] = make([]*Tile, columns)
		for c := range tiles[r] {
			tiles[r][c] = NewTile(rng)
		}
	}
	return &Board{rows: rows, columns: columns, tiles: tiles}
}

func (b *Board) Rows() int    { return b.rows }
func (b *Board) Columns() int { return b.columns }

func (b *Board) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < b.rows && c.Column >= 0 && c.Column < b.columns
}

// Tile returns nil for coordinates off the board.
func (b *Board) Tile(c Coordinate) *Tile {
	if !b.InBounds(c) {
		return nil
	}
	return b.tiles[c.Row][c.Column]
}

// GetRevealedBoard projects the board through the fog of war. Cells nobody has
// revealed or visited are nil.
func (b *Board) GetRevealedBoard(playerLoc, aiLoc Coordinate) [][]*TileView {
	out := make([][]*TileView, b.rows)
	for r := 0; r < b.rows; r++ {
		out[r] = make([]*TileView, b.columns)
		for c := 0; c < b.columns; c++ {
			tile := b.tiles[r][c]
			if !tile.isRevealed && !tile.isVisited {
				continue
			}

			here := Coordinate{Row: r, Column: c}
			view := &TileView{
				IsRevealed:    tile.isRevealed,
				IsVisited:     tile.isVisited,
				Weather:       tile.VisibleWeather(),
				HasPlayerShip: here == playerLoc,
				HasAIShip:     here == aiLoc,
			}
			if tile.isRevealed {
				resourceType, count := tile.resourceType, tile.resourceCount
				view.HasMine = tile.hasMine
				view.ResourceType = &resourceType
				view.ResourceCount = &count
			}
			out[r][c] = view
		}
	}
	return out
}
