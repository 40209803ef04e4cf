package game

import "fmt"

const (
	AxisRow    = "row"
	AxisColumn = "column"
)

// Line is a whole row or column of the board with its summed resource count.
type Line struct {
	Axis  string `json:"axis"`
	Index int    `json:"index"`
	Total int    `json:"total"`
}

func (l Line) Label() string {
	if l.Axis == AxisColumn {
		return fmt.Sprintf("Column %d", l.Index)
	}
	return fmt.Sprintf("Row %d", l.Index)
}

func (b *Board) MostFood() Line {
	return b.richestLine(Food)
}

func (b *Board) MostPellets() Line {
	return b.richestLine(Pellets)
}

// richestLine is recomputed on every call since crossings empty tiles.
// Ties keep the first line seen, rows before columns.
func (b *Board) richestLine(rt ResourceType) Line {
	best := Line{Axis: AxisRow, Index: 0, Total: b.rowTotal(0, rt)}
	for r := 1; r < b.rows; r++ {
		if total := b.rowTotal(r, rt); total > best.Total {
			best = Line{Axis: AxisRow, Index: r, Total: total}
		}
	}
	for c := 0; c < b.columns; c++ {
		if total := b.columnTotal(c, rt); total > best.Total {
			best = Line{Axis: AxisColumn, Index: c, Total: total}
		}
	}
	return best
}

func (b *Board) rowTotal(r int, rt ResourceType) int {
	sum := 0
	for c := 0; c < b.columns; c++ {
		if t := b.tiles[r][c]; t.resourceType == rt {
			sum += t.resourceCount
		}
	}
	return sum
}

func (b *Board) columnTotal(c int, rt ResourceType) int {
	sum := 0
	for r := 0; r < b.rows; r++ {
		if t := b.tiles[r][c]; t.resourceType == rt {
			sum += t.resourceCount
		}
	}
	return sum
}
