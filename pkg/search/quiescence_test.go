package search

import (
	"context"
	"testing"

	"github.com/hexglinski/engine/pkg/board"
	"github.com/hexglinski/engine/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestQuiescenceAvoidsHorizonEffect sets up a position where White can capture a pawn with a
// queen that is itself defended by a Black knight: a depth-0 static evaluation after the capture
// looks good for White, but quiescence must see the recapture and value the exchange correctly.
func TestQuiescenceAvoidsHorizonEffect(t *testing.T) {
	b := board.NewEmptyBoard()
	require.NoError(t, b.Place(board.Coord{0, 0}, board.Piece{board.White, board.King}))
	require.NoError(t, b.Place(board.Coord{5, -5}, board.Piece{board.Black, board.King}))
	require.NoError(t, b.Place(board.Coord{1, 0}, board.Piece{board.White, board.Queen}))
	require.NoError(t, b.Place(board.Coord{2, 0}, board.Piece{board.Black, board.Pawn}))
	require.NoError(t, b.Place(board.Coord{3, -3}, board.Piece{board.Black, board.Knight}))

	run := &runAlphaBeta{eval: eval.Material{}, qdepth: 4}
	withQ := run.quiescence(context.Background(), b, 4, board.MinScore-1, board.MaxScore+1)

	flat := run.eval.Evaluate(context.Background(), b)
	assert.Less(t, withQ, flat+eval.NominalValue(board.Pawn))
}

func TestQuiescenceReturnsStandPatWithNoCaptures(t *testing.T) {
	b := board.NewBoard()
	run := &runAlphaBeta{eval: eval.Material{}, qdepth: 4}
	score := run.quiescence(context.Background(), b, 4, board.MinScore-1, board.MaxScore+1)
	assert.Equal(t, board.Score(0), score)
}

func TestCaptureMovesOnlyReturnsCaptures(t *testing.T) {
	b := board.NewEmptyBoard()
	require.NoError(t, b.Place(board.Coord{0, 0}, board.Piece{board.White, board.King}))
	require.NoError(t, b.Place(board.Coord{5, -5}, board.Piece{board.Black, board.King}))
	require.NoError(t, b.Place(board.Coord{1, 0}, board.Piece{board.White, board.Rook}))
	require.NoError(t, b.Place(board.Coord{3, 0}, board.Piece{board.Black, board.Pawn}))

	for _, m := range captureMoves(b) {
		assert.True(t, m.IsCapture())
	}
}
