package board

import (
	"maps"
	"slices"
)

// Grid is a fixed-size sparse board. A coordinate with no entry is empty.
//
// Grid values are immutable: Set returns a new grid and leaves the receiver
// untouched, so a Grid may be shared freely with readers.
type Grid struct {
	width  int
	height int
	cells  map[Coord]Block
}

// NewGrid creates an empty grid of the given dimensions.
func NewGrid(width, height int) Grid {
	return Grid{
		width:  width,
		height: height,
		cells:  make(map[Coord]Block),
	}
}

// Width returns the number of columns.
func (g Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return g.height
}

// Contains returns true if c lies on the visible board.
func (g Grid) Contains(c Coord) bool {
	return c.X >= 1 && c.X <= g.width && c.Y >= 1 && c.Y <= g.height
}

// Get returns the cell at c. Coordinates outside the board read as Empty
// unless a piece entering from above currently occupies them.
func (g Grid) Get(c Coord) Cell {
	b, ok := g.cells[c]
	if !ok {
		return Empty
	}
	return Occupied(b)
}

// Set returns a copy of the grid with c holding cell.
// Setting Empty removes the entry.
// Each call copies the grid; use a Builder for many changes at once.
func (g Grid) Set(c Coord, cell Cell) Grid {
	return g.Edit().Set(c, cell).Grid()
}

// ForEachCell calls f for every on-board cell in row-major order:
// rows top to bottom, columns left to right within a row.
func (g Grid) ForEachCell(f func(Coord, Cell)) {
	for y := 1; y <= g.height; y++ {
		for x := 1; x <= g.width; x++ {
			c := Coord{X: x, Y: y}
			f(c, g.Get(c))
		}
	}
}

// Rows returns the on-board cells as a freshly allocated height × width slice.
func (g Grid) Rows() [][]Cell {
	rows := make([][]Cell, g.height)
	for y := range rows {
		rows[y] = make([]Cell, g.width)
	}
	g.ForEachCell(func(c Coord, cell Cell) {
		rows[c.Y-1][c.X-1] = cell
	})
	return rows
}

// OccupiedCount returns the number of occupied cells, including any above the
// board.
func (g Grid) OccupiedCount() int {
	return len(g.cells)
}

// Occupied returns every occupied coordinate, lowest row first and left to
// right within a row.
func (g Grid) Occupied() []Coord {
	coords := slices.Collect(maps.Keys(g.cells))
	slices.SortFunc(coords, func(a, b Coord) int {
		if a.Y != b.Y {
			return b.Y - a.Y
		}
		return a.X - b.X
	})
	return coords
}

// Equal reports whether both grids have the same size and contents.
func (g Grid) Equal(other Grid) bool {
	return g.width == other.width &&
		g.height == other.height &&
		maps.Equal(g.cells, other.cells)
}

func (g Grid) clone() Grid {
	cells := make(map[Coord]Block, len(g.cells)+1)
	maps.Copy(cells, g.cells)
	return Grid{width: g.width, height: g.height, cells: cells}
}
