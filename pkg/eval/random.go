package eval

import (
	"context"
	"math/rand"

	"github.com/hexglinski/engine/pkg/board"
)

// Random is a randomized noise generator, used to add a small amount of randomness to
// evaluations so repeated AI replies from the same position are not always identical. Each value
// is one of limit consecutive centipawn values starting at -limit/2 (for limit 20: -10 to 9). A
// limit of zero or less always returns zero.
type Random struct {
	rand  *rand.Rand
	limit int
}

func NewRandom(limit int, seed int64) Random {
	return Random{
		limit: limit,
		rand:  rand.New(rand.NewSource(seed)),
	}
}

func (n Random) Evaluate(_ context.Context, _ *board.Board) board.Score {
	if n.limit <= 0 {
		return 0
	}
	return board.Score(n.rand.Intn(n.limit) - n.limit/2)
}
