package board

// PseudoLegalMoves returns every move satisfying movement geometry and occupancy for color's
// pieces, without regard to whether the moving side's king ends up attacked. King-safety is the
// legality filter's job.
func PseudoLegalMoves(b *Board, color Color) []Move {
	var moves []Move
	for i, p := range b.cells {
		if p.IsEmpty() || p.Color != color {
			continue
		}
		from := indexToCoord[i]
		switch p.Kind {
		case Pawn:
			moves = append(moves, pawnMoves(b, color, from)...)
		case Knight:
			moves = append(moves, jumpMoves(b, color, from, Knight, KnightOffsets[:])...)
		case Bishop:
			moves = append(moves, slideMoves(b, color, from, Bishop, DiagDirs[:])...)
		case Rook:
			moves = append(moves, slideMoves(b, color, from, Rook, OrthoDirs[:])...)
		case Queen:
			moves = append(moves, slideMoves(b, color, from, Queen, OrthoDirs[:])...)
			moves = append(moves, slideMoves(b, color, from, Queen, DiagDirs[:])...)
		case King:
			moves = append(moves, jumpMoves(b, color, from, King, allDirs[:])...)
		}
	}
	return moves
}

// allDirs is the union of the six orthogonal and six diagonal directions, used by the King.
var allDirs = func() [12]Coord {
	var d [12]Coord
	copy(d[:6], OrthoDirs[:])
	copy(d[6:], DiagDirs[:])
	return d
}()

// pawnForwardDir is the single non-capturing forward step for color.
func pawnForwardDir(color Color) Coord {
	if color == White {
		return Coord{0, -1}
	}
	return Coord{0, 1}
}

// pawnCaptureDirs are the two forward-edge capture-only steps for color.
func pawnCaptureDirs(color Color) [2]Coord {
	if color == White {
		return [2]Coord{{1, -1}, {-1, 0}}
	}
	return [2]Coord{{-1, 1}, {1, 0}}
}

// pawnPromotionRank is the opponent's back-rank r-value color's pawns promote on.
func pawnPromotionRank(color Color) int {
	if color == White {
		return -BoardRadius
	}
	return BoardRadius
}

func pawnMoves(b *Board, color Color, from Coord) []Move {
	var moves []Move

	if fwd := from.Add(pawnForwardDir(color)); fwd.OnBoard() {
		if _, occupied := b.Get(fwd); !occupied {
			moves = append(moves, pawnMove(from, fwd, NoKind, color))
		}
	}
	for _, d := range pawnCaptureDirs(color) {
		to := from.Add(d)
		if !to.OnBoard() {
			continue
		}
		if p, occupied := b.Get(to); occupied && p.Color != color {
			moves = append(moves, pawnMove(from, to, p.Kind, color))
		}
	}
	return moves
}

func pawnMove(from, to Coord, captured Kind, color Color) Move {
	promo := NoKind
	if to.R == pawnPromotionRank(color) {
		promo = Queen
	}
	return Move{From: from, To: to, Piece: Pawn, Captured: captured, Promotion: promo}
}

// jumpMoves generates single-step moves (Knight jumps, King steps) along the given offsets.
func jumpMoves(b *Board, color Color, from Coord, kind Kind, offsets []Coord) []Move {
	var moves []Move
	for _, d := range offsets {
		to := from.Add(d)
		if !to.OnBoard() {
			continue
		}
		if p, occupied := b.Get(to); occupied {
			if p.Color == color {
				continue
			}
			moves = append(moves, Move{From: from, To: to, Piece: kind, Captured: p.Kind})
		} else {
			moves = append(moves, Move{From: from, To: to, Piece: kind})
		}
	}
	return moves
}

// slideMoves generates rays along dirs, stopping at the board edge, a blocking friendly piece
// (excluded), or a capturable enemy piece (included, then the ray stops).
func slideMoves(b *Board, color Color, from Coord, kind Kind, dirs []Coord) []Move {
	var moves []Move
	for _, d := range dirs {
		to := from
		for {
			to = to.Add(d)
			if !to.OnBoard() {
				break
			}
			p, occupied := b.Get(to)
			if !occupied {
				moves = append(moves, Move{From: from, To: to, Piece: kind})
				continue
			}
			if p.Color != color {
				moves = append(moves, Move{From: from, To: to, Piece: kind, Captured: p.Kind})
			}
			break
		}
	}
	return moves
}

// IsAttacked reports whether any of byColor's pieces pseudo-legally target coord. Pawn capture
// cells count as attacked even when empty; pawn forward moves never count as attacks.
func IsAttacked(b *Board, coord Coord, byColor Color) bool {
	for i, p := range b.cells {
		if p.IsEmpty() || p.Color != byColor {
			continue
		}
		from := indexToCoord[i]
		if pieceAttacks(b, from, p.Kind, byColor, coord) {
			return true
		}
	}
	return false
}

func pieceAttacks(b *Board, from Coord, kind Kind, color Color, target Coord) bool {
	switch kind {
	case Pawn:
		for _, d := range pawnCaptureDirs(color) {
			if from.Add(d) == target {
				return true
			}
		}
		return false
	case Knight:
		for _, d := range KnightOffsets {
			if from.Add(d) == target {
				return true
			}
		}
		return false
	case King:
		for _, d := range allDirs {
			if from.Add(d) == target {
				return true
			}
		}
		return false
	case Bishop:
		return slideAttacks(b, from, DiagDirs[:], target)
	case Rook:
		return slideAttacks(b, from, OrthoDirs[:], target)
	case Queen:
		return slideAttacks(b, from, OrthoDirs[:], target) || slideAttacks(b, from, DiagDirs[:], target)
	default:
		return false
	}
}

func slideAttacks(b *Board, from Coord, dirs []Coord, target Coord) bool {
	for _, d := range dirs {
		to := from
		for {
			to = to.Add(d)
			if !to.OnBoard() {
				break
			}
			if to == target {
				return true
			}
			if _, occupied := b.Get(to); occupied {
				break
			}
		}
	}
	return false
}
