package board

import "golang.org/x/exp/slices"

// GenerateMoves produces the pseudo-legal moves for one side. No
// king-safety filtering is applied: a returned move may leave the mover's
// own king attacked. Pawns only get the single forward push onto an empty
// square; king and knight step once per direction; queen, rook and bishop
// slide along each ray until blocked, capturing only opposing occupants
// and never moving through pieces.
//
// The result is sorted ascending by captured-piece value, so quiet moves
// come first. The function does not mutate the board.
func (b *Board) GenerateMoves(color Color) []Move {
	moves := make([]Move, 0, 64)

	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			sq := b.squares[i][j]
			if sq.Color != color || sq.Piece == Empty {
				continue
			}
			from := Position{Row: i, Col: j}

			if sq.Piece == Pawn {
				dir := 1
				if color == Black {
					dir = -1
				}
				ni := i + dir
				if ni >= 0 && ni < 8 && b.squares[ni][j].Piece == Empty {
					moves = append(moves, Move{
						From:  from,
						To:    Position{Row: ni, Col: j},
						Piece: Pawn,
					})
				}
				continue
			}

			oneStep := !sq.Piece.slidesAlongRays()
			for _, d := range sq.Piece.directions() {
				ni, nj := i, j
				for {
					ni += d.dr
					nj += d.dc
					if ni < 0 || ni >= 8 || nj < 0 || nj >= 8 {
						break
					}
					target := b.squares[ni][nj]
					if target.Piece == Empty {
						moves = append(moves, Move{
							From:  from,
							To:    Position{Row: ni, Col: nj},
							Piece: sq.Piece,
						})
						if oneStep {
							break
						}
						continue
					}
					if target.Color != color {
						moves = append(moves, Move{
							From:     from,
							To:       Position{Row: ni, Col: nj},
							Piece:    sq.Piece,
							Captured: target.Piece,
						})
					}
					// Rays never continue through an occupied square.
					break
				}
			}
		}
	}

	// Captures sorted ascending by victim value; quiet moves (value 0)
	// stay in front. The search explores the list in this order.
	slices.SortStableFunc(moves, func(a, b Move) int {
		return int(a.Captured.Value() - b.Captured.Value())
	})

	return moves
}
