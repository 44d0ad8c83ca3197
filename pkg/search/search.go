// Package search implements minimax game-tree search with alpha-beta pruning, iterative
// deepening and a quiescence leaf extension, over the board package's make/unmake discipline.
//
// The search is single-threaded and cooperative: every call descends synchronously and checks
// the deadline carried on ctx at every node entry. There are no goroutines, no channels and no
// transposition table; the only suspension point is the deadline check itself.
package search

import (
	"fmt"
	"time"

	"github.com/hexglinski/engine/pkg/board"
)

// ErrHalted indicates a search iteration was abandoned because its deadline expired.
var ErrHalted = fmt.Errorf("search halted")

// PV is the principal variation found by a completed (or partially completed) search.
type PV struct {
	Depth int           // depth reached
	Moves []board.Move  // principal variation, best move first
	Score board.Score   // score from White's view
	Nodes uint64        // interior + leaf nodes visited
	Time  time.Duration // wall-clock time taken
}

func (p PV) String() string {
	return fmt.Sprintf("depth=%d score=%v nodes=%d time=%v pv=%v", p.Depth, p.Score, p.Nodes, p.Time, p.Moves)
}

// BestMove returns the first move of p, or the zero Move if p has none.
func (p PV) BestMove() (board.Move, bool) {
	if len(p.Moves) == 0 {
		return board.Move{}, false
	}
	return p.Moves[0], true
}

// Options configures a single ai_reply invocation. The quiescence depth bound is a property of
// the Searcher (see AlphaBeta.QuiescenceDepth), not of an individual iterative-deepening run.
type Options struct {
	MaxDepth int // positive; absolute ceiling on iterative deepening
}

// DefaultQuiescenceDepth matches the "e.g. 2" the quiescence extension's depth bound is left at.
const DefaultQuiescenceDepth = 2
