package board

import (
	"strings"

	"github.com/pkg/errors"
)

// FENStartPos is the FEN string for the standard initial position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func pieceFromChar(ch rune) (Piece, Color) {
	switch ch {
	case 'K':
		return King, White
	case 'Q':
		return Queen, White
	case 'R':
		return Rook, White
	case 'B':
		return Bishop, White
	case 'N':
		return Knight, White
	case 'P':
		return Pawn, White
	case 'k':
		return King, Black
	case 'q':
		return Queen, Black
	case 'r':
		return Rook, Black
	case 'b':
		return Bishop, Black
	case 'n':
		return Knight, Black
	case 'p':
		return Pawn, Black
	default:
		return Empty, NoColor
	}
}

func charFromSquare(s Square) byte {
	white := [...]byte{King: 'K', Queen: 'Q', Rook: 'R', Bishop: 'B', Knight: 'N', Pawn: 'P'}
	black := [...]byte{King: 'k', Queen: 'q', Rook: 'r', Bishop: 'b', Knight: 'n', Pawn: 'p'}
	if s.Color == White {
		return white[s.Piece]
	}
	return black[s.Piece]
}

// ParseFEN builds a board from the piece-placement and side-to-move fields
// of a FEN string. This model has no castling rights, en-passant square or
// move clocks, so any trailing fields are accepted and ignored.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) == 0 {
		return nil, errors.New("fen: empty input")
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, errors.Errorf("fen: expected 8 ranks, got %d", len(ranks))
	}

	b := &Board{turn: White}
	for idx, rank := range ranks {
		// FEN lists rank 8 first; row 0 is White's back rank.
		row := 7 - idx
		col := 0
		for _, ch := range rank {
			if ch >= '1' && ch <= '8' {
				col += int(ch - '0')
				continue
			}
			piece, color := pieceFromChar(ch)
			if piece == Empty {
				return nil, errors.Errorf("fen: invalid piece character %q", ch)
			}
			if col >= 8 {
				return nil, errors.Errorf("fen: rank %q overflows 8 files", rank)
			}
			b.squares[row][col] = Square{Piece: piece, Color: color}
			col++
		}
		if col != 8 {
			return nil, errors.Errorf("fen: rank %q covers %d files, want 8", rank, col)
		}
	}

	if len(fields) > 1 {
		switch fields[1] {
		case "w":
			b.turn = White
		case "b":
			b.turn = Black
		default:
			return nil, errors.Errorf("fen: invalid side to move %q", fields[1])
		}
	}

	b.hash = b.ComputeHash()
	return b, nil
}

// FEN renders the board's placement and side to move. The castling,
// en-passant and clock fields are emitted as placeholders since the model
// does not track them.
func (b *Board) FEN() string {
	var sb strings.Builder
	for row := 7; row >= 0; row-- {
		empties := 0
		for col := 0; col < 8; col++ {
			sq := b.squares[row][col]
			if sq.Piece == Empty {
				empties++
				continue
			}
			if empties > 0 {
				sb.WriteByte('0' + byte(empties))
				empties = 0
			}
			sb.WriteByte(charFromSquare(sq))
		}
		if empties > 0 {
			sb.WriteByte('0' + byte(empties))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}

	if b.turn == Black {
		sb.WriteString(" b - - 0 1")
	} else {
		sb.WriteString(" w - - 0 1")
	}
	return sb.String()
}
