package board

import "strings"

// Color identifies which side a piece belongs to. NoColor is the zero value
// and marks empty squares.
type Color uint8

const (
	NoColor Color = iota
	White
	Black
)

// Other returns the opposing color. NoColor has no opponent.
func (c Color) Other() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColor
	}
}

// Sign returns the evaluation sign of the color: +1 for White, -1 for Black.
func (c Color) Sign() int32 {
	switch c {
	case White:
		return 1
	case Black:
		return -1
	default:
		return 0
	}
}

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "None"
	}
}

// Square is one cell of the grid. Empty squares always carry NoColor,
// occupied squares always carry White or Black.
type Square struct {
	Piece Piece
	Color Color
}

// Position is a (row, col) board coordinate, each in [0,8).
// Row 0 is White's back rank.
type Position struct {
	Row, Col int
}

// String renders the position in algebraic form ("e2").
func (p Position) String() string {
	return string([]byte{'a' + byte(p.Col), '1' + byte(p.Row)})
}

// Move describes relocating Piece from From to To. Captured is Empty for
// quiet moves. Score is scratch space for move ordering and is not part of
// the move's identity.
type Move struct {
	From     Position
	To       Position
	Piece    Piece
	Captured Piece
	Score    int32
}

// IsCapture reports whether the move takes an opposing piece.
func (m Move) IsCapture() bool { return m.Captured != Empty }

// String renders the move in coordinate form ("e2e3").
func (m Move) String() string { return m.From.String() + m.To.String() }

// Board holds the 8x8 grid, the side to move, and an incrementally
// maintained Zobrist key. Hypothetical moves during search operate on
// clones; the board itself is only mutated through ApplyMove and the
// hash-aware setters.
type Board struct {
	squares [8][8]Square
	turn    Color
	hash    uint64
}

// New returns a board with the standard 32-piece starting layout,
// White to move.
func New() *Board {
	b := &Board{turn: White}

	for col := 0; col < 8; col++ {
		b.squares[1][col] = Square{Piece: Pawn, Color: White}
		b.squares[6][col] = Square{Piece: Pawn, Color: Black}
	}

	backRank := [8]Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col, piece := range backRank {
		b.squares[0][col] = Square{Piece: piece, Color: White}
		b.squares[7][col] = Square{Piece: piece, Color: Black}
	}

	b.hash = b.ComputeHash()
	return b
}

// Clone returns an independent copy of the board. The grid is a value
// array, so the copy shares no mutable state with the original.
func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}

// At returns the square at the given position.
func (b *Board) At(pos Position) Square {
	return b.squares[pos.Row][pos.Col]
}

// SetPiece places a piece on a square, replacing any occupant, and keeps
// the Zobrist key in sync. Pass Empty/NoColor to clear the square.
func (b *Board) SetPiece(pos Position, piece Piece, color Color) {
	old := b.squares[pos.Row][pos.Col]
	if old.Piece != Empty {
		b.hash ^= pieceKey(old.Piece, old.Color, pos.Row, pos.Col)
	}
	if piece == Empty {
		color = NoColor
	}
	b.squares[pos.Row][pos.Col] = Square{Piece: piece, Color: color}
	if piece != Empty {
		b.hash ^= pieceKey(piece, color, pos.Row, pos.Col)
	}
}

// Turn reports which side is to move.
func (b *Board) Turn() Color { return b.turn }

// SetTurn updates the side to move, adjusting the Zobrist key when the
// side actually changes.
func (b *Board) SetTurn(c Color) {
	if b.turn == c {
		return
	}
	b.turn = c
	b.hash ^= zobristSide
}

// Hash returns the current Zobrist key.
func (b *Board) Hash() uint64 { return b.hash }

// ApplyMove relocates the piece on from to to, clears the source square,
// and flips the side to move. It does not validate the move; callers must
// only pass moves produced by GenerateMoves.
func (b *Board) ApplyMove(from, to Position) {
	moving := b.squares[from.Row][from.Col]
	target := b.squares[to.Row][to.Col]

	if target.Piece != Empty {
		b.hash ^= pieceKey(target.Piece, target.Color, to.Row, to.Col)
	}
	if moving.Piece != Empty {
		b.hash ^= pieceKey(moving.Piece, moving.Color, from.Row, from.Col)
		b.hash ^= pieceKey(moving.Piece, moving.Color, to.Row, to.Col)
	}

	b.squares[to.Row][to.Col] = moving
	b.squares[from.Row][from.Col] = Square{}
	b.turn = b.turn.Other()
	b.hash ^= zobristSide
}

// FindKing locates the king of the given color.
func (b *Board) FindKing(color Color) (Position, bool) {
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			sq := b.squares[i][j]
			if sq.Piece == King && sq.Color == color {
				return Position{Row: i, Col: j}, true
			}
		}
	}
	return Position{}, false
}

// Glyph returns the figurine for the square, or "." when empty.
func (s Square) Glyph() string {
	if s.Piece == Empty || s.Color == NoColor {
		return "."
	}
	white := [...]string{King: "♔", Queen: "♕", Rook: "♖", Bishop: "♗", Knight: "♘", Pawn: "♙"}
	black := [...]string{King: "♚", Queen: "♛", Rook: "♜", Bishop: "♝", Knight: "♞", Pawn: "♟"}
	if s.Color == White {
		return white[s.Piece]
	}
	return black[s.Piece]
}

// String renders the grid one row per line, row 0 first.
func (b *Board) String() string {
	var sb strings.Builder
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			sb.WriteString(b.squares[i][j].Glyph())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Validate checks the square invariant (Empty squares carry NoColor,
// occupied squares carry a real color) and that the incremental Zobrist
// key matches a full recomputation.
func (b *Board) Validate() bool {
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			sq := b.squares[i][j]
			if (sq.Piece == Empty) != (sq.Color == NoColor) {
				return false
			}
		}
	}
	return b.hash == b.ComputeHash()
}
