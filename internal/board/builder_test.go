package board

import "testing"

func TestBuilderMatchesSet(t *testing.T) {
	coords := []Coord{{X: 1, Y: 1}, {X: 3, Y: 2}, {X: 2, Y: -1}, {X: 3, Y: 2}}
	cells := []Cell{Occupied(Red), Occupied(Green), Occupied(Blue), Empty}

	want := NewGrid(3, 3)
	b := NewBuilder(3, 3)
	for i, c := range coords {
		want = want.Set(c, cells[i])
		b.Set(c, cells[i])
	}

	got := b.Grid()
	if !got.Equal(want) {
		t.Errorf("Builder grid = %v, want %v", got.Rows(), want.Rows())
	}
	if got.OccupiedCount() != 3 {
		t.Errorf("OccupiedCount() = %d, want 3", got.OccupiedCount())
	}
}

func TestEditDoesNotMutateSource(t *testing.T) {
	c := Coord{X: 2, Y: 2}
	g := NewGrid(3, 3).Set(c, Occupied(Red))

	next := g.Edit().Set(c, Empty).Set(Coord{X: 1, Y: 1}, Occupied(Blue)).Grid()

	if g.Get(c) != Occupied(Red) {
		t.Errorf("source grid at %v = %v, want red", c, g.Get(c))
	}
	if g.OccupiedCount() != 1 {
		t.Errorf("source OccupiedCount() = %d, want 1", g.OccupiedCount())
	}
	if !next.Get(c).IsEmpty() || next.Get(Coord{X: 1, Y: 1}) != Occupied(Blue) {
		t.Errorf("edited grid rows = %v", next.Rows())
	}
}

func TestBuilderGetSeesPendingChanges(t *testing.T) {
	c := Coord{X: 1, Y: 2}
	b := NewBuilder(2, 2)

	if !b.Get(c).IsEmpty() {
		t.Fatalf("Get(%v) on new builder = %v, want empty", c, b.Get(c))
	}
	b.Set(c, Occupied(Green))
	if b.Get(c) != Occupied(Green) {
		t.Errorf("Get(%v) = %v, want green", c, b.Get(c))
	}
}
