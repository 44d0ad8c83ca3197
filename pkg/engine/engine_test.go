package engine

import (
	"context"
	"testing"
	"time"

	"github.com/hexglinski/engine/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngineStartsAtInitialPosition(t *testing.T) {
	e := New(context.Background(), "test", "tester")

	assert.Equal(t, board.InProgress, e.Status())
	assert.Equal(t, board.White, e.SideToMove())
	assert.Contains(t, e.Name(), "test")
	assert.Equal(t, "tester", e.Author())
}

func TestLegalMovesFromInitialPosition(t *testing.T) {
	e := New(context.Background(), "test", "tester")

	dests := e.LegalMovesFrom(board.Coord{0, 4})
	assert.NotEmpty(t, dests)
}

func TestLegalMovesFromEmptyCellIsEmpty(t *testing.T) {
	e := New(context.Background(), "test", "tester")

	dests := e.LegalMovesFrom(board.Coord{0, 0})
	assert.Empty(t, dests)
}

func TestTryUserMoveRejectsIllegalMove(t *testing.T) {
	e := New(context.Background(), "test", "tester")

	ok := e.TryUserMove(context.Background(), board.Coord{0, 0}, board.Coord{0, 1})
	assert.False(t, ok)
	assert.Equal(t, board.White, e.SideToMove())
}

func TestTryUserMoveAppliesLegalMoveAndFlipsSideToMove(t *testing.T) {
	e := New(context.Background(), "test", "tester")
	from := board.Coord{0, 4}
	dests := e.LegalMovesFrom(from)
	require.NotEmpty(t, dests)

	ok := e.TryUserMove(context.Background(), from, dests[0])
	assert.True(t, ok)
	assert.Equal(t, board.Black, e.SideToMove())
}

func TestAIReplyLeavesBoardUntouched(t *testing.T) {
	e := New(context.Background(), "test", "tester")

	m, ok := e.AIReply(context.Background(), 2, 500*time.Millisecond)
	require.True(t, ok)
	assert.NotEqual(t, board.Move{}, m)
	assert.Equal(t, board.White, e.SideToMove(), "AIReply must not apply the move itself")
	assert.Contains(t, board.LegalMoves(e.b), m)
}

func TestAIReplyMoveCanBeAppliedByTheCaller(t *testing.T) {
	e := New(context.Background(), "test", "tester")

	m, ok := e.AIReply(context.Background(), 2, 500*time.Millisecond)
	require.True(t, ok)

	applied := e.TryUserMove(context.Background(), m.From, m.To)
	assert.True(t, applied)
	assert.Equal(t, board.Black, e.SideToMove())
}

func TestAIReplyRefusesOnTerminalPosition(t *testing.T) {
	e := New(context.Background(), "test", "tester")
	e.b = board.NewEmptyBoard()
	require.NoError(t, e.b.Place(board.Coord{5, 0}, board.Piece{board.White, board.King}))
	require.NoError(t, e.b.Place(board.Coord{4, 0}, board.Piece{board.Black, board.Queen}))
	require.NoError(t, e.b.Place(board.Coord{3, 0}, board.Piece{board.Black, board.King}))
	require.Equal(t, board.Checkmate, e.Status())

	_, ok := e.AIReply(context.Background(), 2, 500*time.Millisecond)
	assert.False(t, ok)
}

func TestWithSeedMakesNoiseDeterministic(t *testing.T) {
	opts := WithOptions(Options{Noise: 10})

	e1 := New(context.Background(), "test", "tester", opts, WithSeed(7))
	e2 := New(context.Background(), "test", "tester", opts, WithSeed(7))

	m1, ok1 := e1.AIReply(context.Background(), 2, 500*time.Millisecond)
	m2, ok2 := e2.AIReply(context.Background(), 2, 500*time.Millisecond)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, m1, m2)
}
