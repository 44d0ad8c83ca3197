package search

import (
	"context"
	"time"

	"github.com/hexglinski/engine/pkg/board"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Searcher searches the game tree to a fixed depth, optionally searching hint first at the root.
type Searcher interface {
	Search(ctx context.Context, b *board.Board, depth int, hint board.Move) (uint64, board.Score, []board.Move, error)
}

// Iterative runs depth-1, depth-2, ... searches synchronously against a wall-clock deadline
// carried on ctx, re-searching the previous iteration's best move first at each new depth. There
// is no concurrency here: one call, one goroutine, one Board.
type Iterative struct {
	Search Searcher
}

func NewIterative(search Searcher) Iterative {
	return Iterative{Search: search}
}

// Run searches b up to opt.MaxDepth, or until ctx's deadline expires, and returns the best move
// found by the last fully completed iteration. If depth 1 never completes before the deadline, a
// zero-PV with any single legal move is returned, per spec.
func (it Iterative) Run(ctx context.Context, b *board.Board, opt Options) PV {
	var best PV

	var hint board.Move
	for depth := 1; opt.MaxDepth <= 0 || depth <= opt.MaxDepth; depth++ {
		start := time.Now()

		nodes, score, moves, err := it.Search.Search(ctx, b, depth, hint)
		if err != nil {
			logw.Debugf(ctx, "iteration depth=%d abandoned on deadline: %v", depth, err)
			break
		}

		best = PV{Depth: depth, Moves: moves, Score: score, Nodes: nodes, Time: time.Since(start)}
		logw.Debugf(ctx, "searched %v: %v", b, best)

		if m, ok := best.BestMove(); ok {
			hint = m
		}
		if contextx.IsCancelled(ctx) {
			break
		}
	}

	if len(best.Moves) == 0 {
		if fallback := board.LegalMoves(b); len(fallback) > 0 {
			best.Moves = fallback[:1]
		}
	}
	return best
}
