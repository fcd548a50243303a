package board

import (
	"testing"
)

func TestNewGridIsEmpty(t *testing.T) {
	g := NewGrid(6, 13)

	if g.Width() != 6 || g.Height() != 13 {
		t.Fatalf("NewGrid(6, 13) size = %dx%d, want 6x13", g.Width(), g.Height())
	}
	if got := g.OccupiedCount(); got != 0 {
		t.Errorf("OccupiedCount() = %d, want 0", got)
	}

	g.ForEachCell(func(c Coord, cell Cell) {
		if !cell.IsEmpty() {
			t.Errorf("cell %v = %v, want empty", c, cell)
		}
	})
}

func TestSetGetRoundTrip(t *testing.T) {
	g := NewGrid(4, 5)
	cells := []Cell{Occupied(Red), Occupied(Green), Occupied(Blue), Empty}

	for y := 1; y <= g.Height(); y++ {
		for x := 1; x <= g.Width(); x++ {
			for _, cell := range cells {
				c := Coord{X: x, Y: y}
				if got := g.Set(c, cell).Get(c); got != cell {
					t.Errorf("Set(%v, %v).Get() = %v", c, cell, got)
				}
			}
		}
	}
}

func TestSetDoesNotMutateReceiver(t *testing.T) {
	g := NewGrid(4, 4)
	c := Coord{X: 2, Y: 3}

	next := g.Set(c, Occupied(Blue))

	if !g.Get(c).IsEmpty() {
		t.Errorf("original grid changed at %v", c)
	}
	if next.Get(c) != Occupied(Blue) {
		t.Errorf("new grid at %v = %v, want blue", c, next.Get(c))
	}
}

func TestSetEmptyRemovesEntry(t *testing.T) {
	c := Coord{X: 1, Y: 1}
	g := NewGrid(3, 3).Set(c, Occupied(Red)).Set(c, Empty)

	if got := g.OccupiedCount(); got != 0 {
		t.Errorf("OccupiedCount() = %d, want 0", got)
	}
	if !g.Get(c).IsEmpty() {
		t.Errorf("Get(%v) = %v, want empty", c, g.Get(c))
	}
}

func TestForEachCellRowMajor(t *testing.T) {
	g := NewGrid(3, 2)

	var visited []Coord
	g.ForEachCell(func(c Coord, _ Cell) {
		visited = append(visited, c)
	})

	want := []Coord{
		{1, 1}, {2, 1}, {3, 1},
		{1, 2}, {2, 2}, {3, 2},
	}
	if len(visited) != len(want) {
		t.Fatalf("visited %d cells, want %d", len(visited), len(want))
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visit %d = %v, want %v", i, visited[i], want[i])
		}
	}
}

func TestForEachCellSkipsOffBoard(t *testing.T) {
	g := NewGrid(4, 4).
		Set(Coord{X: 4, Y: 0}, Occupied(Red)).
		Set(Coord{X: 4, Y: -1}, Occupied(Green))

	count := 0
	g.ForEachCell(func(_ Coord, cell Cell) {
		if !cell.IsEmpty() {
			count++
		}
	})

	if count != 0 {
		t.Errorf("ForEachCell saw %d occupied cells, want 0", count)
	}
	if g.OccupiedCount() != 2 {
		t.Errorf("OccupiedCount() = %d, want 2", g.OccupiedCount())
	}
}

func TestRows(t *testing.T) {
	g := NewGrid(3, 2).Set(Coord{X: 3, Y: 2}, Occupied(Green))

	rows := g.Rows()

	if len(rows) != 2 || len(rows[0]) != 3 {
		t.Fatalf("Rows() shape = %dx%d, want 2x3", len(rows), len(rows[0]))
	}
	if rows[1][2] != Occupied(Green) {
		t.Errorf("rows[1][2] = %v, want green", rows[1][2])
	}

	rows[0][0] = Occupied(Red)
	if !g.Get(Coord{X: 1, Y: 1}).IsEmpty() {
		t.Error("mutating Rows() result changed the grid")
	}
}

func TestOccupiedOrder(t *testing.T) {
	g := NewGrid(5, 5).
		Set(Coord{X: 2, Y: 1}, Occupied(Red)).
		Set(Coord{X: 4, Y: 5}, Occupied(Green)).
		Set(Coord{X: 1, Y: 5}, Occupied(Blue)).
		Set(Coord{X: 3, Y: -1}, Occupied(Red))

	got := g.Occupied()
	want := []Coord{{1, 5}, {4, 5}, {2, 1}, {3, -1}}

	if len(got) != len(want) {
		t.Fatalf("Occupied() returned %d coords, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Occupied()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestContains(t *testing.T) {
	g := NewGrid(6, 13)

	tests := []struct {
		c    Coord
		want bool
	}{
		{Coord{1, 1}, true},
		{Coord{6, 13}, true},
		{Coord{0, 1}, false},
		{Coord{7, 1}, false},
		{Coord{4, 0}, false},
		{Coord{4, 14}, false},
	}

	for _, tt := range tests {
		if got := g.Contains(tt.c); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestEqual(t *testing.T) {
	a := NewGrid(3, 3).Set(Coord{X: 1, Y: 1}, Occupied(Red))
	b := NewGrid(3, 3).Set(Coord{X: 1, Y: 1}, Occupied(Red))
	c := NewGrid(3, 3).Set(Coord{X: 1, Y: 1}, Occupied(Blue))

	if !a.Equal(b) {
		t.Error("identical grids reported unequal")
	}
	if a.Equal(c) {
		t.Error("grids with different colours reported equal")
	}
	if a.Equal(NewGrid(3, 4).Set(Coord{X: 1, Y: 1}, Occupied(Red))) {
		t.Error("grids with different sizes reported equal")
	}
}

func TestCellString(t *testing.T) {
	tests := []struct {
		cell     Cell
		expected string
	}{
		{Empty, "empty"},
		{Occupied(Red), "red"},
		{Occupied(Green), "green"},
		{Occupied(Blue), "blue"},
		{Occupied(Block(9)), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.cell.String(); got != tt.expected {
			t.Errorf("Cell.String() = %q, want %q", got, tt.expected)
		}
	}
}
