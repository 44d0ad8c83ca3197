package search

import (
	"context"

	"github.com/hexglinski/engine/pkg/board"
	"github.com/hexglinski/engine/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// AlphaBeta implements minimax search with alpha-beta pruning, maximizing when White is to move
// and minimizing when Black is to move (no negamax sign flip: the score is always from White's
// view, per the caller's own responsibility to interpret it).
//
// function alphabeta(node, depth, α, β, maximizingPlayer) is
//
//	if depth = 0 or node is a terminal node then
//	    return the heuristic value of node
//	if maximizingPlayer then
//	    value := −∞
//	    for each child of node do
//	        value := max(value, alphabeta(child, depth − 1, α, β, FALSE))
//	        α := max(α, value)
//	        if α ≥ β then
//	            break (* β cutoff *)
//	    return value
//	else
//	    value := +∞
//	    for each child of node do
//	        value := min(value, alphabeta(child, depth − 1, α, β, TRUE))
//	        β := min(β, value)
//	        if β ≤ α then
//	            break (* α cutoff *)
//	    return value
//
// See: https://en.wikipedia.org/wiki/Alpha–beta_pruning.
type AlphaBeta struct {
	Eval            eval.Evaluator
	QuiescenceDepth int // 0 disables the quiescence extension
}

// Search runs alpha-beta to depth, searching hint first at the root if it is a legal move.
func (p AlphaBeta) Search(ctx context.Context, b *board.Board, depth int, hint board.Move) (uint64, board.Score, []board.Move, error) {
	run := &runAlphaBeta{eval: p.Eval, qdepth: p.QuiescenceDepth}
	score, pv := run.search(ctx, b, depth, board.MinScore-1, board.MaxScore+1, hint)
	if contextx.IsCancelled(ctx) {
		return run.nodes, 0, nil, ErrHalted
	}
	return run.nodes, score, pv, nil
}

type runAlphaBeta struct {
	eval   eval.Evaluator
	qdepth int
	nodes  uint64
}

func (r *runAlphaBeta) search(ctx context.Context, b *board.Board, depth int, alpha, beta board.Score, hint board.Move) (board.Score, []board.Move) {
	if contextx.IsCancelled(ctx) {
		return 0, nil
	}
	r.nodes++

	if depth == 0 {
		return r.quiescence(ctx, b, r.qdepth, alpha, beta), nil
	}

	moves := board.LegalMoves(b)
	if len(moves) == 0 {
		return r.eval.Evaluate(ctx, b), nil
	}

	ordered := NewMoveList(moves, priorityFn(hint))
	color := b.SideToMove()

	var pv []board.Move
	if color == board.White {
		best := board.MinScore - 1
		for {
			m, ok := ordered.Next()
			if !ok {
				break
			}
			b.Apply(m)
			score, rem := r.search(ctx, b, depth-1, alpha, beta, board.Move{})
			b.Unmake(m)
			if contextx.IsCancelled(ctx) {
				return 0, nil
			}

			if score > best {
				best = score
				pv = append([]board.Move{m}, rem...)
			}
			if score > alpha {
				alpha = score
			}
			if alpha >= beta {
				break
			}
		}
		return best, pv
	}

	best := board.MaxScore + 1
	for {
		m, ok := ordered.Next()
		if !ok {
			break
		}
		b.Apply(m)
		score, rem := r.search(ctx, b, depth-1, alpha, beta, board.Move{})
		b.Unmake(m)
		if contextx.IsCancelled(ctx) {
			return 0, nil
		}

		if score < best {
			best = score
			pv = append([]board.Move{m}, rem...)
		}
		if score < beta {
			beta = score
		}
		if beta <= alpha {
			break
		}
	}
	return best, pv
}

// priorityFn returns MVVLVA, or First(hint).Priority when hint is a real move.
func priorityFn(hint board.Move) func(board.Move) Priority {
	if (hint == board.Move{}) {
		return MVVLVA
	}
	return First(hint).Priority
}
