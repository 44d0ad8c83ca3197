// Package board contains the hex board representation: coordinates, piece storage, and the
// make/unmake discipline the move generator, legality filter and search build on.
package board

import (
	"fmt"
	"strings"
)

// Board represents a Glinski hex-chess position: 91 cells plus the side to move. It carries no
// castling rights and no en-passant square. Not thread-safe; not safe for
// concurrent use by multiple goroutines.
type Board struct {
	cells [NumCells]Piece
	turn  Color
}

// NewEmptyBoard returns a board with no pieces placed and White to move.
func NewEmptyBoard() *Board {
	return &Board{turn: White}
}

// NewBoard returns a board set up in Glinski's canonical initial position, White to move.
func NewBoard() *Board {
	b := NewEmptyBoard()
	for _, p := range InitialPlacement {
		b.Place(p.Coord, p.Piece)
	}
	return b
}

// Get returns the piece at c, if any. Panics if c is off-board: callers are expected to have
// validated the coordinate already (the move generator only ever presents on-board cells).
func (b *Board) Get(c Coord) (Piece, bool) {
	idx := mustIndex(c)
	p := b.cells[idx]
	return p, !p.IsEmpty()
}

// Place performs an unchecked overwrite of the given cell, for setup use only. Returns an error
// if c is off-board.
func (b *Board) Place(c Coord, p Piece) error {
	if !c.OnBoard() {
		return fmt.Errorf("board: off-board placement at %v", c)
	}
	b.cells[coordToIndex[c]] = p
	return nil
}

// SideToMove returns the color to move next.
func (b *Board) SideToMove() Color {
	return b.turn
}

// Apply makes m, unconditionally. Precondition: m.From holds a piece of SideToMove's color and m
// is pseudo-legal (callers are the move generator and the legality filter, both of which only
// ever construct such moves).
func (b *Board) Apply(m Move) {
	mover := b.turn
	kind := m.Piece
	if m.Promotion != NoKind {
		kind = m.Promotion
	}
	b.cells[mustIndex(m.From)] = NoPiece
	b.cells[mustIndex(m.To)] = Piece{Color: mover, Kind: kind}
	b.turn = b.turn.Opponent()
}

// Unmake reverses m, which must be the exact Move record returned by the generator that Apply
// was just called with. Restores the board to its pre-Apply state byte-for-byte.
func (b *Board) Unmake(m Move) {
	mover := b.turn.Opponent()
	b.turn = mover

	b.cells[mustIndex(m.From)] = Piece{Color: mover, Kind: m.Piece}
	if m.Captured != NoKind {
		b.cells[mustIndex(m.To)] = Piece{Color: mover.Opponent(), Kind: m.Captured}
	} else {
		b.cells[mustIndex(m.To)] = NoPiece
	}
}

// KingCoord returns the coordinate of color's king. Panics if no such king is present, which
// would violate invariant 1 (never true for a position the evaluator or facade observes).
func (b *Board) KingCoord(color Color) Coord {
	for i, p := range b.cells {
		if p.Kind == King && p.Color == color {
			return indexToCoord[i]
		}
	}
	panic(fmt.Sprintf("board: no %v king on board", color))
}

// ForEach calls fn for every occupied cell.
func (b *Board) ForEach(fn func(c Coord, p Piece)) {
	for i, p := range b.cells {
		if !p.IsEmpty() {
			fn(indexToCoord[i], p)
		}
	}
}

func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("board{turn=%v, pieces=[", b.turn))
	first := true
	for i, p := range b.cells {
		if p.IsEmpty() {
			continue
		}
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(fmt.Sprintf("%v@%v", p, indexToCoord[i]))
	}
	sb.WriteString("]}")
	return sb.String()
}

func mustIndex(c Coord) int {
	idx, ok := coordToIndex[c]
	if !ok {
		panic(fmt.Sprintf("board: off-board coordinate %v", c))
	}
	return idx
}
