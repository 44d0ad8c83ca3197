package search

import (
	"testing"

	"github.com/hexglinski/engine/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveListOrdersCapturesBeforeQuietMoves(t *testing.T) {
	quiet := board.Move{From: board.Coord{0, 4}, To: board.Coord{0, 3}, Piece: board.Pawn}
	capture := board.Move{From: board.Coord{1, 1}, To: board.Coord{2, 1}, Piece: board.Knight, Captured: board.Pawn}

	ml := NewMoveList([]board.Move{quiet, capture}, MVVLVA)

	first, ok := ml.Next()
	require.True(t, ok)
	assert.Equal(t, capture, first)

	second, ok := ml.Next()
	require.True(t, ok)
	assert.Equal(t, quiet, second)

	_, ok = ml.Next()
	assert.False(t, ok)
}

func TestMoveListOrdersCapturesByVictimThenAttacker(t *testing.T) {
	queenTakesPawn := board.Move{From: board.Coord{0, 0}, To: board.Coord{0, 1}, Piece: board.Queen, Captured: board.Pawn}
	pawnTakesQueen := board.Move{From: board.Coord{1, 0}, To: board.Coord{0, 1}, Piece: board.Pawn, Captured: board.Queen}

	ml := NewMoveList([]board.Move{queenTakesPawn, pawnTakesQueen}, MVVLVA)

	first, ok := ml.Next()
	require.True(t, ok)
	assert.Equal(t, pawnTakesQueen, first)
}

func TestFirstPutsHintMoveAheadOfCaptures(t *testing.T) {
	hint := board.Move{From: board.Coord{0, 4}, To: board.Coord{0, 3}, Piece: board.Pawn}
	capture := board.Move{From: board.Coord{1, 1}, To: board.Coord{2, 1}, Piece: board.Knight, Captured: board.Queen}

	ml := NewMoveList([]board.Move{capture, hint}, First(hint).Priority)

	first, ok := ml.Next()
	require.True(t, ok)
	assert.Equal(t, hint, first)
}

func TestMoveListSizeDecreasesAsConsumed(t *testing.T) {
	moves := []board.Move{
		{From: board.Coord{0, 4}, To: board.Coord{0, 3}, Piece: board.Pawn},
		{From: board.Coord{0, 4}, To: board.Coord{0, 2}, Piece: board.Pawn},
	}
	ml := NewMoveList(moves, MVVLVA)
	assert.Equal(t, 2, ml.Size())
	ml.Next()
	assert.Equal(t, 1, ml.Size())
	ml.Next()
	assert.Equal(t, 0, ml.Size())
}
