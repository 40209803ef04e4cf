package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard(7, 14, seeded(1))
	require.Equal(t, 7, b.Rows())
	require.Equal(t, 14, b.Columns())
	require.NotNil(t, b.Tile(at(6, 13)))
	require.Nil(t, b.Tile(at(7, 0)))
	require.Nil(t, b.Tile(at(0, 14)))
	require.Nil(t, b.Tile(at(-1, 0)))
}

func TestGetRevealedBoard(t *testing.T) {
	b := calmBoard(3, 3)
	b.set(0, 0, Pellets, 3, ClearSkies)
	b.set(1, 1, Food, 8, Famine)
	b.set(2, 2, Food, 1, Headwind)

	t.Run("nothing seen yet", func(t *testing.T) {
		view := b.GetRevealedBoard(at(0, 0), at(2, 2))
		for _, row := range view {
			for _, cell := range row {
				require.Nil(t, cell)
			}
		}
	})

	t.Run("revealed tiles show their detail", func(t *testing.T) {
		b.RevealTile(at(0, 0))
		b.LayMine(at(0, 0))

		view := b.GetRevealedBoard(at(0, 0), at(2, 2))
		cell := view[0][0]
		require.NotNil(t, cell)
		require.Equal(t, ClearSkies, cell.Weather)
		require.True(t, cell.HasMine)
		require.Equal(t, Pellets, *cell.ResourceType)
		require.Equal(t, 3, *cell.ResourceCount)
		require.True(t, cell.HasPlayerShip)
		require.False(t, cell.HasAIShip)
		require.Nil(t, view[1][1])
	})

	t.Run("revealed visit-only weather stays hidden", func(t *testing.T) {
		b.RevealTile(at(1, 1))
		view := b.GetRevealedBoard(at(0, 0), at(2, 2))
		require.Equal(t, Nothing, view[1][1].Weather)
		require.Equal(t, 8, *view[1][1].ResourceCount)
	})

	t.Run("visited without reveal hides resources", func(t *testing.T) {
		b.tiles[2][2].MoveOverTile()
		view := b.GetRevealedBoard(at(0, 0), at(2, 2))
		cell := view[2][2]
		require.NotNil(t, cell)
		require.True(t, cell.IsVisited)
		require.Nil(t, cell.ResourceType)
		require.Nil(t, cell.ResourceCount)
		require.Equal(t, Nothing, cell.Weather)
		require.True(t, cell.HasAIShip)
	})

	t.Run("revealing twice changes nothing", func(t *testing.T) {
		before := b.GetRevealedBoard(at(0, 0), at(2, 2))
		b.RevealTiles([]Coordinate{at(0, 0), at(0, 0)})
		require.Equal(t, before, b.GetRevealedBoard(at(0, 0), at(2, 2)))
	})
}

func TestMoveShip(t *testing.T) {
	t.Run("visible headwind stops the ship before the tile", func(t *testing.T) {
		b := calmBoard(8, 8)
		b.set(0, 2, Food, 3, Headwind).Reveal()
		third := b.set(0, 3, Food, 8, Nothing)
		ship := NewShip(SidePlayer, at(0, 0), DefaultRules())

		require.True(t, b.MoveShip(ship, []Coordinate{at(0, 1), at(0, 2), at(0, 3)}))
		require.Equal(t, []Coordinate{at(0, 0), at(0, 1)}, ship.LastTilesMoved())
		require.Equal(t, at(0, 1), ship.Location())
		require.False(t, b.tiles[0][2].isVisited)
		require.False(t, third.isVisited)
		require.Equal(t, 8, third.resourceCount)
	})

	t.Run("hidden headwind does not stop the ship", func(t *testing.T) {
		b := calmBoard(8, 8)
		b.set(0, 2, Food, 0, Headwind)
		ship := NewShip(SidePlayer, at(0, 0), DefaultRules())

		b.MoveShip(ship, []Coordinate{at(0, 1), at(0, 2), at(0, 3)})
		require.Equal(t, at(0, 3), ship.Location())
	})

	t.Run("headwind on the first tile holds position", func(t *testing.T) {
		b := calmBoard(8, 8)
		b.set(0, 1, Food, 0, Headwind).Reveal()
		ship := NewShip(SidePlayer, at(0, 0), DefaultRules())
		b.MoveShip(ship, []Coordinate{at(1, 0), at(1, 1)})
		require.Len(t, ship.LastTilesMoved(), 3)

		require.False(t, b.MoveShip(ship, []Coordinate{at(0, 1), at(0, 2)}))
		require.Equal(t, []Coordinate{at(1, 1)}, ship.LastTilesMoved())
	})

	t.Run("the edge of the board ends the path", func(t *testing.T) {
		b := calmBoard(2, 2)
		ship := NewShip(SidePlayer, at(0, 0), DefaultRules())
		b.MoveShip(ship, []Coordinate{at(0, 1), at(0, 2), at(1, 1)})
		require.Equal(t, []Coordinate{at(0, 0), at(0, 1)}, ship.LastTilesMoved())
	})

	t.Run("crossed tiles are spent", func(t *testing.T) {
		b := calmBoard(8, 8)
		b.set(1, 0, Food, 3, FeedingFrenzy)
		ship := NewShip(SidePlayer, at(0, 0), DefaultRules())

		b.MoveShip(ship, []Coordinate{at(1, 0)})
		require.Equal(t, 16, ship.Food())
		require.Equal(t, 0, b.tiles[1][0].Summary().ResourceCount)

		b.MoveShip(ship, []Coordinate{at(0, 0), at(1, 0)})
		require.Equal(t, 16, ship.Food())
	})
}

func TestMostResources(t *testing.T) {
	t.Run("row wins a tie with a column", func(t *testing.T) {
		b := calmBoard(3, 3)
		b.set(1, 0, Food, 3, Nothing)
		b.set(1, 2, Food, 3, Nothing)
		b.set(0, 1, Food, 3, Nothing)
		b.set(2, 1, Food, 3, Nothing)

		got := b.MostFood()
		require.Equal(t, Line{Axis: AxisRow, Index: 1, Total: 6}, got)
		require.Equal(t, "Row 1", got.Label())
	})

	t.Run("column beats a smaller row", func(t *testing.T) {
		b := calmBoard(3, 3)
		b.set(0, 2, Pellets, 3, Nothing)
		b.set(1, 2, Pellets, 3, Nothing)
		b.set(2, 2, Pellets, 1, Nothing)
		b.set(2, 0, Food, 8, Nothing)

		got := b.MostPellets()
		require.Equal(t, Line{Axis: AxisColumn, Index: 2, Total: 7}, got)
		require.Equal(t, "Column 2", got.Label())
	})

	t.Run("only matching resource types count", func(t *testing.T) {
		b := calmBoard(2, 2)
		b.set(1, 1, Pellets, 8, Nothing)
		require.Equal(t, Line{Axis: AxisRow, Index: 0, Total: 0}, b.MostFood())
	})

	t.Run("recomputed after a crossing", func(t *testing.T) {
		b := calmBoard(3, 3)
		b.set(2, 0, Food, 8, Nothing)
		require.Equal(t, Line{Axis: AxisRow, Index: 2, Total: 8}, b.MostFood())

		b.MoveShip(NewShip(SidePlayer, at(1, 0), DefaultRules()), []Coordinate{at(2, 0)})
		require.Equal(t, Line{Axis: AxisRow, Index: 0, Total: 0}, b.MostFood())
	})
}
