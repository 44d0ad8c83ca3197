package board

// Placement pairs a coordinate with the piece placed there, used for initial setup.
type Placement struct {
	Coord Coord
	Piece Piece
}

// InitialPlacement is Glinski's canonical opening setup.
var InitialPlacement = buildInitialPlacement()

func buildInitialPlacement() []Placement {
	var ret []Placement

	add := func(color Color, kind Kind, coords ...Coord) {
		for _, c := range coords {
			ret = append(ret, Placement{Coord: c, Piece: Piece{Color: color, Kind: kind}})
		}
	}

	add(White, King, Coord{1, 4})
	add(Black, King, Coord{1, -5})

	add(White, Queen, Coord{-1, 5})
	add(Black, Queen, Coord{-1, -4})

	add(White, Rook, Coord{3, 2}, Coord{-3, 5})
	add(Black, Rook, Coord{3, -5}, Coord{-3, -2})

	add(White, Knight, Coord{2, 3}, Coord{-2, 5})
	add(Black, Knight, Coord{2, -5}, Coord{-2, -3})

	add(White, Bishop, Coord{0, 3}, Coord{0, 4}, Coord{0, 5})
	add(Black, Bishop, Coord{0, -3}, Coord{0, -4}, Coord{0, -5})

	add(White, Pawn,
		Coord{-4, 5}, Coord{-3, 4}, Coord{-2, 3}, Coord{-1, 2}, Coord{0, 1},
		Coord{1, 1}, Coord{2, 1}, Coord{3, 1}, Coord{4, 1})
	add(Black, Pawn,
		Coord{4, -5}, Coord{3, -4}, Coord{2, -3}, Coord{1, -2}, Coord{0, -1},
		Coord{-1, -1}, Coord{-2, -1}, Coord{-3, -1}, Coord{-4, -1})

	return ret
}
