package search

import (
	"context"

	"github.com/hexglinski/engine/pkg/board"
	"github.com/hexglinski/engine/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Minimax implements naive, unpruned minimax search. Useful for cross-checking AlphaBeta against
// on small positions/depths: both must find the same score.
//
// function minimax(node, depth, maximizingPlayer) is
//    if depth = 0 or node is a terminal node then
//        return the heuristic value of node
//    if maximizingPlayer then
//        value := −∞
//        for each child of node do
//            value := max(value, minimax(child, depth − 1, FALSE))
//        return value
//    else (* minimizing player *)
//        value := +∞
//        for each child of node do
//            value := min(value, minimax(child, depth − 1, TRUE))
//        return value
//
// See: https://en.wikipedia.org/wiki/Minimax.
type Minimax struct {
	Eval eval.Evaluator
}

func (p Minimax) Search(ctx context.Context, b *board.Board, depth int) (uint64, board.Score, []board.Move, error) {
	run := &runMinimax{eval: p.Eval}
	score, pv := run.search(ctx, b, depth)
	if contextx.IsCancelled(ctx) {
		return run.nodes, 0, nil, ErrHalted
	}
	return run.nodes, score, pv, nil
}

type runMinimax struct {
	eval  eval.Evaluator
	nodes uint64
}

func (r *runMinimax) search(ctx context.Context, b *board.Board, depth int) (board.Score, []board.Move) {
	if contextx.IsCancelled(ctx) {
		return 0, nil
	}
	r.nodes++

	if depth == 0 {
		return r.eval.Evaluate(ctx, b), nil
	}

	moves := board.LegalMoves(b)
	if len(moves) == 0 {
		return r.eval.Evaluate(ctx, b), nil
	}

	color := b.SideToMove()
	var pv []board.Move

	if color == board.White {
		best := board.MinScore - 1
		for _, m := range moves {
			b.Apply(m)
			score, rem := r.search(ctx, b, depth-1)
			b.Unmake(m)
			if score > best {
				best = score
				pv = append([]board.Move{m}, rem...)
			}
		}
		return best, pv
	}

	best := board.MaxScore + 1
	for _, m := range moves {
		b.Apply(m)
		score, rem := r.search(ctx, b, depth-1)
		b.Unmake(m)
		if score < best {
			best = score
			pv = append([]board.Move{m}, rem...)
		}
	}
	return best, pv
}
