package search

import (
	"context"

	"github.com/hexglinski/engine/pkg/board"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// quiescence extends search past depth 0 along capturing lines only, to avoid misjudging a
// position mid-exchange (the horizon effect). stand_pat is the floor (White) or ceiling (Black):
// a stand_pat at or past the window's far bound returns that bound, and the returned score always
// lies within [alpha, beta].
func (r *runAlphaBeta) quiescence(ctx context.Context, b *board.Board, qdepth int, alpha, beta board.Score) board.Score {
	if contextx.IsCancelled(ctx) {
		return 0
	}
	r.nodes++

	standPat := r.eval.Evaluate(ctx, b)
	color := b.SideToMove()

	if color == board.White {
		if standPat >= beta {
			return beta
		}
		if standPat > alpha {
			alpha = standPat
		}
	} else {
		if standPat <= alpha {
			return alpha
		}
		if standPat < beta {
			beta = standPat
		}
	}

	if qdepth <= 0 {
		if color == board.White {
			return alpha
		}
		return beta
	}

	captures := captureMoves(b)
	if len(captures) == 0 {
		if color == board.White {
			return alpha
		}
		return beta
	}

	ordered := NewMoveList(captures, MVVLVA)
	if color == board.White {
		for {
			m, ok := ordered.Next()
			if !ok {
				break
			}
			b.Apply(m)
			score := r.quiescence(ctx, b, qdepth-1, alpha, beta)
			b.Unmake(m)
			if contextx.IsCancelled(ctx) {
				return 0
			}
			if score > alpha {
				alpha = score
			}
			if alpha >= beta {
				break
			}
		}
		return alpha
	}

	for {
		m, ok := ordered.Next()
		if !ok {
			break
		}
		b.Apply(m)
		score := r.quiescence(ctx, b, qdepth-1, alpha, beta)
		b.Unmake(m)
		if contextx.IsCancelled(ctx) {
			return 0
		}
		if score < beta {
			beta = score
		}
		if beta <= alpha {
			break
		}
	}
	return beta
}

// captureMoves returns the side to move's legal capturing moves.
func captureMoves(b *board.Board) []board.Move {
	legal := board.LegalMoves(b)
	captures := make([]board.Move, 0, len(legal))
	for _, m := range legal {
		if m.IsCapture() {
			captures = append(captures, m)
		}
	}
	return captures
}
