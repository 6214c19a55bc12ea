package board_test

import (
	"testing"

	"github.com/assapir/chess/board"
)

// Black's king on h8 is boxed in by its own pawns, every pawn is blocked,
// and the white knight on g6 attacks h8.
const mateFEN = "6pk/6pp/6NP/8/8/8/8/8 b - - 0 1"

// Same cage, but the knight is replaced by a pawn: no moves, no check.
const stalemateFEN = "6pk/6pp/6PP/8/8/8/8/8 b - - 0 1"

func TestCheckmateDetection(t *testing.T) {
	b, err := board.ParseFEN(mateFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	if moves := b.GenerateMoves(board.Black); len(moves) != 0 {
		t.Fatalf("expected no moves for Black, got %v", moves)
	}
	if !b.InCheck(board.Black) {
		t.Fatalf("expected Black to be in check")
	}
	if !b.IsCheckmate(board.Black) {
		t.Fatalf("expected checkmate for Black")
	}
	if b.IsCheckmate(board.White) {
		t.Fatalf("White is not checkmated here")
	}
}

func TestStalemateIsNotCheckmate(t *testing.T) {
	b, err := board.ParseFEN(stalemateFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	if moves := b.GenerateMoves(board.Black); len(moves) != 0 {
		t.Fatalf("expected no moves for Black, got %v", moves)
	}
	if b.InCheck(board.Black) {
		t.Fatalf("Black must not be in check in the stalemate position")
	}
	if b.IsCheckmate(board.Black) {
		t.Fatalf("stalemate misreported as checkmate")
	}
}

func TestInCheckFromSlider(t *testing.T) {
	// White rook on e1 pins down the black king on e8; the intervening
	// file is empty.
	b, err := board.ParseFEN("4k3/8/8/8/8/8/8/4R3 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if !b.InCheck(board.Black) {
		t.Fatalf("expected Black in check from the rook")
	}
	if b.InCheck(board.White) {
		t.Fatalf("White has no king and can never be in check")
	}
}

func TestBlockedSliderGivesNoCheck(t *testing.T) {
	// Same as above with a white pawn in the way on e4.
	b, err := board.ParseFEN("4k3/8/8/8/4P3/8/8/4R3 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if b.InCheck(board.Black) {
		t.Fatalf("rook is blocked, Black must not be in check")
	}
}
