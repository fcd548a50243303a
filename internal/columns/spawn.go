package columns

import (
	"math/rand/v2"

	"github.com/samdwyer/bobbyscolumns/internal/board"
)

const (
	// SpawnColumn is the column every new piece enters in.
	SpawnColumn = 4
	// PieceSize is the number of stacked blocks in a piece.
	PieceSize = 3
)

// ColorSource picks the colour of one block in a newly spawned piece.
// slot 0 is the lowest block of the piece.
type ColorSource interface {
	Pick(timestampMs int64, slot int) board.Block
}

// TimestampColors derives colours from the spawn timestamp: slot n uses
// digit-shifted timestamp t / 10^n, modulo the number of colours.
// The same timestamp always yields the same piece.
type TimestampColors struct{}

// Pick implements ColorSource.
func (TimestampColors) Pick(timestampMs int64, slot int) board.Block {
	v := timestampMs
	for range slot {
		v /= 10
	}
	return colorAt(v)
}

// SeededColors draws colours from a PCG generator, decoupled from tick timing.
// Two sources built with the same seed produce the same colour sequence.
type SeededColors struct {
	rng *rand.Rand
}

// NewSeededColors creates a colour source seeded with seed.
func NewSeededColors(seed uint64) *SeededColors {
	return &SeededColors{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Pick implements ColorSource. The timestamp is ignored.
func (s *SeededColors) Pick(_ int64, _ int) board.Block {
	return board.Blocks[s.rng.IntN(len(board.Blocks))]
}

// SpawnPiece places a new three-block piece just above the top row of the
// spawn column, colouring it from the timestamp. Existing cells at those
// coordinates are overwritten. The grid must be at least SpawnColumn wide for
// the piece to land on the board; NewModel guarantees that.
func SpawnPiece(timestampMs int64, g board.Grid) board.Grid {
	return SpawnPieceWith(TimestampColors{}, timestampMs, g)
}

// SpawnPieceWith is SpawnPiece with an explicit colour source.
func SpawnPieceWith(src ColorSource, timestampMs int64, g board.Grid) board.Grid {
	b := g.Edit()
	for slot := range PieceSize {
		c := board.Coord{X: SpawnColumn, Y: -slot}
		b.Set(c, board.Occupied(src.Pick(timestampMs, slot)))
	}
	return b.Grid()
}

// colorAt maps any integer, including negative ones, onto the colour sequence.
func colorAt(v int64) board.Block {
	n := int64(len(board.Blocks))
	i := v % n
	if i < 0 {
		i += n
	}
	return board.Blocks[i]
}
