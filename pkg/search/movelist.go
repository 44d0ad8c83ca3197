package search

import (
	"container/heap"
	"fmt"

	"github.com/hexglinski/engine/pkg/board"
	"github.com/hexglinski/engine/pkg/eval"
)

// Priority represents the move order priority. Higher values are searched first.
type Priority int32

// MoveList is a move priority queue for move ordering.
type MoveList struct {
	h moveHeap
}

// NewMoveList returns a new move list with the given priorities.
func NewMoveList(moves []board.Move, fn func(move board.Move) Priority) *MoveList {
	h := moveHeap(make([]elm, len(moves)))
	for i, m := range moves {
		h[i] = elm{m: m, val: fn(m)}
	}
	heap.Init(&h)
	return &MoveList{h: h}
}

// Next returns the highest-priority remaining move.
func (ml *MoveList) Next() (board.Move, bool) {
	if ml.Size() == 0 {
		return board.Move{}, false
	}
	ret := heap.Pop(&ml.h).(elm)
	return ret.m, true
}

func (ml *MoveList) Size() int {
	return ml.h.Len()
}

func (ml *MoveList) String() string {
	if ml.Size() == 0 {
		return "[size=0]"
	}
	return fmt.Sprintf("[top=%v, size=%v]", ml.h[0].m, ml.Size())
}

type elm struct {
	m   board.Move
	val Priority
}

type moveHeap []elm

func (h moveHeap) Len() int            { return len(h) }
func (h moveHeap) Less(i, j int) bool  { return h[i].val > h[j].val }
func (h moveHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *moveHeap) Push(x interface{}) { panic("fixed size heap") }

func (h *moveHeap) Pop() interface{} {
	n := len(*h)
	ret := (*h)[n-1]
	*h = (*h)[0 : n-1]
	return ret
}

// captureBaseline is added to every capture's raw MVV-LVA value so that even a "losing" capture
// (e.g. King takes Pawn) still sorts ahead of every non-capture, which is always priority 0.
const captureBaseline Priority = 1 << 20

// MVVLVA returns the move ordering priority: captures first, ranked by victim value x10 minus
// attacker value (descending), then non-captures (priority 0). MoveList does not keep generator
// order among moves of equal priority, so the order of the non-captures is not defined.
func MVVLVA(m board.Move) Priority {
	if !m.IsCapture() {
		return 0
	}
	return captureBaseline + Priority(10*eval.NominalValue(m.Captured)-eval.NominalValue(m.Piece))
}

// First puts the given move first; every other move falls back to MVVLVA. Used to search the
// previous iteration's best move first within the next, deeper iteration.
type First board.Move

func (f First) Priority(m board.Move) Priority {
	if m.Equals(board.Move(f)) {
		return captureBaseline << 1
	}
	return MVVLVA(m)
}
