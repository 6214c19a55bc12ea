package engine

import "github.com/assapir/chess/board"

// Evaluation scores a position from White's perspective: positive favors
// White, negative favors Black. Five terms are summed into one integer
// with no game-phase weighting: signed material plus positional bonus per
// square, king safety, pawn structure, piece activity, and the mobility
// differential between the two sides.
func Evaluation(b *board.Board) int32 {
	var score int32

	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			sq := b.At(board.Position{Row: i, Col: j})
			if sq.Piece == board.Empty {
				continue
			}
			score += (sq.Piece.Value() + sq.Piece.Table()[i][j]) * sq.Color.Sign()
		}
	}

	score += evaluateKingSafety(b)
	score += evaluatePawnStructure(b)
	score += evaluatePieceActivity(b)

	whiteMoves := int32(len(b.GenerateMoves(board.White)))
	blackMoves := int32(len(b.GenerateMoves(board.Black)))
	score += whiteMoves - blackMoves

	return score
}

// A king sitting on its own back-rank corner counts as safer (20) than
// anywhere else (10).
func evaluateKingSafety(b *board.Board) int32 {
	var score int32

	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			sq := b.At(board.Position{Row: i, Col: j})
			if sq.Piece != board.King {
				continue
			}
			backRank := 0
			if sq.Color == board.Black {
				backRank = 7
			}
			var safety int32 = 10
			if i == backRank && (j == 0 || j == 7) {
				safety = 20
			}
			score += safety * sq.Color.Sign()
		}
	}

	return score
}

// Central-file pawns (files d and e) count 5, the rest 2, for both colors.
func evaluatePawnStructure(b *board.Board) int32 {
	var score int32

	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			sq := b.At(board.Position{Row: i, Col: j})
			if sq.Piece != board.Pawn {
				continue
			}
			var structure int32 = 2
			if j == 3 || j == 4 {
				structure = 5
			}
			score += structure * sq.Color.Sign()
		}
	}

	return score
}

// Flat per-piece activity bonus. King activity is not counted.
func evaluatePieceActivity(b *board.Board) int32 {
	var score int32

	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			sq := b.At(board.Position{Row: i, Col: j})
			var activity int32
			switch sq.Piece {
			case board.Queen:
				activity = 10
			case board.Rook:
				activity = 5
			case board.Bishop, board.Knight:
				activity = 3
			case board.Pawn:
				activity = 1
			}
			score += activity * sq.Color.Sign()
		}
	}

	return score
}
