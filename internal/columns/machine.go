package columns

import (
	"github.com/samdwyer/bobbyscolumns/internal/board"
)

// FallInterval is the minimum time in milliseconds between fall steps.
const FallInterval int64 = 1000

// Event is an input to the state machine: Tick or StartGame.
type Event interface {
	isEvent()
}

// Tick is a periodic timer event. Timestamps must not decrease between ticks.
type Tick struct {
	TimestampMs int64
}

// StartGame resets the board and begins a new game from any phase.
type StartGame struct{}

func (Tick) isEvent()      {}
func (StartGame) isEvent() {}

// Model is the complete game state.
type Model struct {
	Grid  board.Grid
	Phase Phase
	// Settled is set when the last fall step moved nothing; the next tick
	// then spawns a new piece.
	Settled bool
}

// NewModel returns the initial state: title screen with an empty board.
// The board is widened to SpawnColumn and given at least one row if needed,
// so every spawned piece lands in a column on the board.
func NewModel(width, height int) Model {
	return Model{
		Grid:  board.NewGrid(max(width, SpawnColumn), max(height, 1)),
		Phase: Phase{Kind: TitleScreen},
	}
}

// Machine applies events to models.
type Machine struct {
	colors ColorSource
}

// Option configures a Machine.
type Option func(*Machine)

// WithColors replaces the timestamp-derived colour source.
func WithColors(src ColorSource) Option {
	return func(m *Machine) {
		m.colors = src
	}
}

// NewMachine creates a state machine. Without options pieces are coloured
// from their spawn timestamp.
func NewMachine(opts ...Option) *Machine {
	m := &Machine{colors: TimestampColors{}}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Update returns the model that results from applying ev to m.
// The input model is not modified.
func (mc *Machine) Update(m Model, ev Event) Model {
	switch ev := ev.(type) {
	case StartGame:
		return Model{
			Grid:  board.NewGrid(m.Grid.Width(), m.Grid.Height()),
			Phase: Phase{Kind: Spawning},
		}
	case Tick:
		return mc.tick(m, ev.TimestampMs)
	default:
		return m
	}
}

func (mc *Machine) tick(m Model, t int64) Model {
	switch m.Phase.Kind {
	case Spawning:
		return Model{
			Grid:  SpawnPieceWith(mc.colors, t, m.Grid),
			Phase: FallingSince(t),
		}

	case Falling:
		if m.Settled {
			return Model{Grid: m.Grid, Phase: Phase{Kind: Spawning}}
		}
		if t-m.Phase.Since < FallInterval {
			return m
		}

		grid, settled := StepFall(m.Grid)
		if settled && Overflowed(grid) {
			return Model{Grid: grid, Phase: Phase{Kind: GameOver}}
		}
		return Model{Grid: grid, Phase: FallingSince(t), Settled: settled}

	default:
		// TitleScreen and GameOver only react to StartGame.
		return m
	}
}
