package board

// Piece identifies what occupies a square. Empty is the zero value so that
// a zero Square is a valid empty square.
type Piece uint8

const (
	Empty Piece = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// Value returns the material value of the piece. Empty is worth nothing.
func (p Piece) Value() int32 {
	switch p {
	case King:
		return 900
	case Queen:
		return 90
	case Rook:
		return 50
	case Bishop, Knight:
		return 30
	case Pawn:
		return 10
	default:
		return 0
	}
}

func (p Piece) String() string {
	switch p {
	case King:
		return "King"
	case Queen:
		return "Queen"
	case Rook:
		return "Rook"
	case Bishop:
		return "Bishop"
	case Knight:
		return "Knight"
	case Pawn:
		return "Pawn"
	default:
		return "Empty"
	}
}

// Positional bonus tables, indexed [row][col] with row 0 being White's back
// rank. The same table is used for both colors; the per-square sign is
// applied by the evaluator.
var pawnTable = [8][8]int32{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{5, 5, 5, 5, 5, 5, 5, 5},
	{1, 1, 2, 3, 3, 2, 1, 1},
	{0, 0, 0, 2, 2, 0, 0, 0},
	{0, 0, 0, 1, 1, 0, 0, 0},
	{1, 1, 1, -1, -1, 1, 1, 1},
	{1, 2, 2, -2, -2, 2, 2, 1},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var knightTable = [8][8]int32{
	{-5, -4, -3, -3, -3, -3, -4, -5},
	{-4, -2, 0, 0, 0, 0, -2, -4},
	{-3, 0, 1, 1, 1, 1, 0, -3},
	{-3, 0, 1, 2, 2, 1, 0, -3},
	{-3, 0, 1, 2, 2, 1, 0, -3},
	{-3, 0, 1, 1, 1, 1, 0, -3},
	{-4, -2, 0, 0, 0, 0, -2, -4},
	{-5, -4, -3, -3, -3, -3, -4, -5},
}

var bishopTable = [8][8]int32{
	{-2, -1, -1, -1, -1, -1, -1, -2},
	{-1, 0, 0, 0, 0, 0, 0, -1},
	{-1, 0, 0, 1, 1, 0, 0, -1},
	{-1, 0, 1, 1, 1, 1, 0, -1},
	{-1, 0, 1, 1, 1, 1, 0, -1},
	{-1, 0, 0, 1, 1, 0, 0, -1},
	{-1, 0, 0, 0, 0, 0, 0, -1},
	{-2, -1, -1, -1, -1, -1, -1, -2},
}

var rookTable = [8][8]int32{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{1, 2, 2, 2, 2, 2, 2, 1},
	{-1, 0, 0, 0, 0, 0, 0, -1},
	{-1, 0, 0, 0, 0, 0, 0, -1},
	{-1, 0, 0, 0, 0, 0, 0, -1},
	{-1, 0, 0, 0, 0, 0, 0, -1},
	{-1, 0, 0, 0, 0, 0, 0, -1},
	{0, 0, 0, 1, 1, 0, 0, 0},
}

var queenTable = [8][8]int32{
	{-2, -1, -1, 0, 0, -1, -1, -2},
	{-1, 0, 0, 0, 0, 0, 0, -1},
	{-1, 0, 1, 1, 1, 1, 0, -1},
	{0, 0, 1, 1, 1, 1, 0, 0},
	{0, 0, 1, 1, 1, 1, 0, 0},
	{-1, 1, 1, 1, 1, 1, 0, -1},
	{-1, 0, 1, 0, 0, 0, 0, -1},
	{-2, -1, -1, 0, 0, -1, -1, -2},
}

var kingTable = [8][8]int32{
	{-3, -4, -4, -5, -5, -4, -4, -3},
	{-3, -4, -4, -5, -5, -4, -4, -3},
	{-3, -4, -4, -5, -5, -4, -4, -3},
	{-3, -4, -4, -5, -5, -4, -4, -3},
	{-2, -3, -3, -4, -4, -3, -3, -2},
	{-1, -2, -2, -2, -2, -2, -2, -1},
	{2, 2, 0, 0, 0, 0, 2, 2},
	{2, 3, 1, 0, 0, 1, 3, 2},
}

var emptyTable = [8][8]int32{}

// Table returns the positional bonus table for the piece.
func (p Piece) Table() *[8][8]int32 {
	switch p {
	case King:
		return &kingTable
	case Queen:
		return &queenTable
	case Rook:
		return &rookTable
	case Bishop:
		return &bishopTable
	case Knight:
		return &knightTable
	case Pawn:
		return &pawnTable
	default:
		return &emptyTable
	}
}

type direction struct {
	dr, dc int
}

var (
	kingDirections = []direction{
		{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
	}
	// Rook-like then bishop-like rays.
	queenDirections = []direction{
		{1, 0}, {0, 1}, {-1, 0}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	rookDirections   = []direction{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	bishopDirections = []direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightDirections = []direction{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
)

// directions returns the movement rays for the piece. Pawns are handled
// separately by the move generator and have none.
func (p Piece) directions() []direction {
	switch p {
	case King:
		return kingDirections
	case Queen:
		return queenDirections
	case Rook:
		return rookDirections
	case Bishop:
		return bishopDirections
	case Knight:
		return knightDirections
	default:
		return nil
	}
}

// slidesAlongRays reports whether the piece keeps moving along a ray until
// blocked. King and Knight take exactly one step per direction.
func (p Piece) slidesAlongRays() bool {
	return p == Queen || p == Rook || p == Bishop
}
