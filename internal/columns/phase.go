// Package columns holds the game core: piece spawning, gravity and the phase
// state machine. It performs no I/O and never reads the clock; every timestamp
// arrives as an argument.
package columns

import "fmt"

// PhaseKind is the coarse-grained game state.
type PhaseKind int

const (
	// TitleScreen waits for the player to start a game.
	TitleScreen PhaseKind = iota
	// Spawning places a new piece on the next tick.
	Spawning
	// Falling advances the active piece once per FallInterval.
	Falling
	// GameOver is terminal until the next StartGame.
	GameOver
)

// String returns a human-readable phase name.
func (k PhaseKind) String() string {
	switch k {
	case TitleScreen:
		return "title_screen"
	case Spawning:
		return "spawning"
	case Falling:
		return "falling"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Phase is the current PhaseKind plus, while Falling, the timestamp of the
// last fall step.
type Phase struct {
	Kind  PhaseKind
	Since int64
}

// FallingSince returns the Falling phase stamped at t.
func FallingSince(t int64) Phase {
	return Phase{Kind: Falling, Since: t}
}

func (p Phase) String() string {
	if p.Kind == Falling {
		return fmt.Sprintf("falling(%d)", p.Since)
	}
	return p.Kind.String()
}
