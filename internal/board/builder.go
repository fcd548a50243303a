package board

// Builder accumulates cell changes and produces a Grid in one step.
// Unlike Grid.Set it mutates in place, so building a grid of n cells costs
// O(n) rather than a copy per cell. A Builder must not be used after Grid.
type Builder struct {
	grid Grid
}

// NewBuilder starts an empty grid of the given dimensions.
func NewBuilder(width, height int) *Builder {
	return &Builder{grid: NewGrid(width, height)}
}

// Edit starts a builder from a copy of g. g itself is never modified.
func (g Grid) Edit() *Builder {
	return &Builder{grid: g.clone()}
}

// Get returns the cell at c as it stands in the builder.
func (b *Builder) Get(c Coord) Cell {
	return b.grid.Get(c)
}

// Set places cell at c. Setting Empty removes the entry.
func (b *Builder) Set(c Coord, cell Cell) *Builder {
	if blk, ok := cell.Block(); ok {
		b.grid.cells[c] = blk
	} else {
		delete(b.grid.cells, c)
	}
	return b
}

// Grid hands over the built grid. The builder is spent afterwards.
func (b *Builder) Grid() Grid {
	g := b.grid
	b.grid = Grid{}
	return g
}
