package columns

import "github.com/samdwyer/bobbyscolumns/internal/board"

// StepFall moves every occupied cell down one row where it can.
//
// Cells are processed bottom to top, so a cell moves only if the cell beneath
// it was vacated earlier in the same step or was already empty. A cell on the
// floor, or resting on a cell that could not move, stays put. settled is true
// when nothing moved.
func StepFall(g board.Grid) (next board.Grid, settled bool) {
	b := board.NewBuilder(g.Width(), g.Height())
	settled = true

	for _, c := range g.Occupied() {
		cell := g.Get(c)
		dest := c.Below()
		if dest.Y <= g.Height() && b.Get(dest).IsEmpty() {
			b.Set(dest, cell)
			settled = false
			continue
		}
		b.Set(c, cell)
	}

	return b.Grid(), settled
}

// Overflowed returns true if any block sits above the visible board.
func Overflowed(g board.Grid) bool {
	for _, c := range g.Occupied() {
		if c.Y <= 0 {
			return true
		}
	}
	return false
}
