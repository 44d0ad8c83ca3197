// Package eval contains static position evaluation logic.
package eval

import (
	"context"

	"github.com/hexglinski/engine/pkg/board"
)

// Evaluator is a static position evaluator. Scores are from White's view: positive favors White.
type Evaluator interface {
	Evaluate(ctx context.Context, b *board.Board) board.Score
}

// NominalValue is the absolute nominal value in centipawns of a piece kind. The King has an
// arbitrary large value so it dominates any other component in case it ever enters a sum.
func NominalValue(k board.Kind) board.Score {
	switch k {
	case board.Pawn:
		return 100
	case board.Knight:
		return 320
	case board.Bishop:
		return 330
	case board.Rook:
		return 500
	case board.Queen:
		return 900
	case board.King:
		return 20000
	default:
		return 0
	}
}

// Material is the material balance: sum of ±NominalValue over every piece on the board.
type Material struct{}

func (Material) Evaluate(_ context.Context, b *board.Board) board.Score {
	var score board.Score
	b.ForEach(func(_ board.Coord, p board.Piece) {
		score += p.Color.Unit() * NominalValue(p.Kind)
	})
	return score
}

// centerBonus is the per-piece reward for standing within two hexes of the board's origin.
const centerBonus board.Score = 10

// centerRadius is the hex distance within which a piece is considered to control the center.
const centerRadius = 2

// CenterControl rewards non-king pieces near the board's center.
type CenterControl struct{}

func (CenterControl) Evaluate(_ context.Context, b *board.Board) board.Score {
	var score board.Score
	b.ForEach(func(c board.Coord, p board.Piece) {
		if p.Kind == board.King {
			return
		}
		if board.Distance(board.Coord{}, c) <= centerRadius {
			score += p.Color.Unit() * centerBonus
		}
	})
	return score
}

// mobilityUnit is the per-move weight applied to the pseudo-legal move count differential.
const mobilityUnit board.Score = 2

// Mobility rewards having more pseudo-legal moves than the opponent. Pseudo-legal counts are used
// deliberately: legality-filtered mobility is too expensive to compute at every leaf.
type Mobility struct{}

func (Mobility) Evaluate(_ context.Context, b *board.Board) board.Score {
	white := len(board.PseudoLegalMoves(b, board.White))
	black := len(board.PseudoLegalMoves(b, board.Black))
	return board.Score(white-black) * mobilityUnit
}

// Combined is the engine's default evaluator: material, center control and mobility, overridden
// by a terminal score whenever the position is checkmate or stalemate. Noise, if set, is an
// additional evaluator added on top (see Random) to vary AI strength/personality.
type Combined struct {
	Noise Evaluator
}

func (c Combined) Evaluate(ctx context.Context, b *board.Board) board.Score {
	switch board.Status(b) {
	case board.Checkmate:
		return -b.SideToMove().Unit() * board.MateScore
	case board.Stalemate:
		return 0
	}

	score := Material{}.Evaluate(ctx, b) + CenterControl{}.Evaluate(ctx, b) + Mobility{}.Evaluate(ctx, b)
	if c.Noise != nil {
		score += c.Noise.Evaluate(ctx, b)
	}
	return score
}
