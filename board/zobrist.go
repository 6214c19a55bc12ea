package board

import "math/rand"

// Zobrist keys for each (piece, color, square) combination plus a side-to-
// move key. The key for a position is the XOR of the keys of its occupied
// squares, XORed with zobristSide when Black is to move.
var zobristPiece [7][3][8][8]uint64
var zobristSide uint64

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed for reproducibility in tests.
	rnd := rand.New(rand.NewSource(0xC0DE))

	for p := range zobristPiece {
		for c := range zobristPiece[p] {
			for row := 0; row < 8; row++ {
				for col := 0; col < 8; col++ {
					zobristPiece[p][c][row][col] = rnd.Uint64()
				}
			}
		}
	}

	zobristSide = rnd.Uint64()
}

func pieceKey(p Piece, c Color, row, col int) uint64 {
	return zobristPiece[p][c][row][col]
}

// ComputeHash calculates the Zobrist key for the current position from
// scratch. ApplyMove and the setters maintain the same key incrementally;
// the two must always agree.
func (b *Board) ComputeHash() uint64 {
	var key uint64

	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			sq := b.squares[i][j]
			if sq.Piece != Empty {
				key ^= pieceKey(sq.Piece, sq.Color, i, j)
			}
		}
	}

	if b.turn == Black {
		key ^= zobristSide
	}

	return key
}
