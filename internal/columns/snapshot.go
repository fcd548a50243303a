package columns

import (
	"github.com/samdwyer/bobbyscolumns/internal/board"
)

// Snapshot is a read-only copy of the model for rendering.
type Snapshot struct {
	Phase  Phase
	Width  int
	Height int
	// Rows holds Height rows of Width cells, top row first.
	Rows [][]board.Cell
}

// Snapshot copies the visible state of the model.
func (m Model) Snapshot() Snapshot {
	return Snapshot{
		Phase:  m.Phase,
		Width:  m.Grid.Width(),
		Height: m.Grid.Height(),
		Rows:   m.Grid.Rows(),
	}
}

// ShowStartPrompt returns true when the view should offer a start button.
func (s Snapshot) ShowStartPrompt() bool {
	return s.Phase.Kind == TitleScreen
}
