package board

// LegalMoves returns the side to move's legal moves: pseudo-legal moves filtered to those that do
// not leave the mover's own king attacked. Each candidate is probed by applying it, checking
// InCheck, and unmaking it, which keeps the board mutation discipline uniform with search.
func LegalMoves(b *Board) []Move {
	color := b.SideToMove()
	candidates := PseudoLegalMoves(b, color)

	moves := make([]Move, 0, len(candidates))
	for _, m := range candidates {
		b.Apply(m)
		safe := !InCheck(b, color)
		b.Unmake(m)
		if safe {
			moves = append(moves, m)
		}
	}
	return moves
}

// InCheck reports whether color's king is currently attacked.
func InCheck(b *Board, color Color) bool {
	return IsAttacked(b, b.KingCoord(color), color.Opponent())
}

// HasLegalMove reports whether the side to move has at least one legal move, without
// materializing the full list. Used by terminal detection and the evaluator, where most
// positions have many legal moves and the first one found settles the question.
func HasLegalMove(b *Board) bool {
	color := b.SideToMove()
	for _, m := range PseudoLegalMoves(b, color) {
		b.Apply(m)
		safe := !InCheck(b, color)
		b.Unmake(m)
		if safe {
			return true
		}
	}
	return false
}
