// Package board provides the sparse game grid and its cell values.
package board

// Coord is a grid position. X runs left to right from 1, Y runs top to bottom
// from 1. Rows at or above 0 are off-board and only hold pieces that are still
// entering from above.
type Coord struct {
	X, Y int
}

// Below returns the coordinate one row down.
func (c Coord) Below() Coord {
	return Coord{X: c.X, Y: c.Y + 1}
}

// Block is the colour of an occupied cell.
type Block int

const (
	Red Block = iota
	Green
	Blue
)

// Blocks is the colour sequence spawn indices select from.
var Blocks = [...]Block{Red, Green, Blue}

// String returns the colour name.
func (b Block) String() string {
	switch b {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "unknown"
	}
}

// Cell is either empty or occupied by a single block.
// The zero value is Empty.
type Cell struct {
	block    Block
	occupied bool
}

// Empty is the cell with no block in it.
var Empty = Cell{}

// Occupied returns a cell holding b.
func Occupied(b Block) Cell {
	return Cell{block: b, occupied: true}
}

// IsEmpty reports whether the cell holds no block.
func (c Cell) IsEmpty() bool {
	return !c.occupied
}

// Block returns the cell's block and whether it has one.
func (c Cell) Block() (Block, bool) {
	return c.block, c.occupied
}

// String returns "empty" or the block colour.
func (c Cell) String() string {
	if !c.occupied {
		return "empty"
	}
	return c.block.String()
}
