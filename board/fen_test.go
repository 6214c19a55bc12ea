package board_test

import (
	"testing"

	"github.com/assapir/chess/board"
)

func TestParseFENStartPosMatchesNew(t *testing.T) {
	parsed, err := board.ParseFEN(board.FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	fresh := board.New()

	if parsed.Hash() != fresh.Hash() {
		t.Fatalf("parsed start position hash differs from New()")
	}
	if parsed.FEN() != fresh.FEN() {
		t.Fatalf("parsed FEN %q differs from fresh %q", parsed.FEN(), fresh.FEN())
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
		"6pk/6pp/6NP/8/8/8/8/8 b - - 0 1",
		"8/3r4/5p2/8/3Q4/8/8/8 w - - 0 1",
	}
	for _, fen := range fens {
		b, err := board.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := b.FEN(); got != fen {
			t.Errorf("round trip: got %q, want %q", got, fen)
		}
		reparsed, err := board.ParseFEN(b.FEN())
		if err != nil {
			t.Fatalf("re-parse of %q: %v", b.FEN(), err)
		}
		if reparsed.Hash() != b.Hash() {
			t.Errorf("round trip changed the position for %q", fen)
		}
	}
}

func TestParseFENIgnoresExtraFields(t *testing.T) {
	b, err := board.ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e3 12 34")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if b.Turn() != board.White {
		t.Fatalf("side to move lost, got %v", b.Turn())
	}
}

func TestParseFENErrors(t *testing.T) {
	bad := []string{
		"",
		"   ",
		"8/8/8/8/8/8/8 w - - 0 1",           // 7 ranks
		"8/8/8/8/8/8/8/7 w - - 0 1",         // short rank
		"8/8/8/8/8/8/8/9 w - - 0 1",         // overlong rank
		"8/8/8/8/8/8/8/XXXXXXXX w - - 0 1",  // bad piece char
		"8/8/8/8/8/8/8/8 x - - 0 1",         // bad side
		"8/8/8/8/8/8/8/RRRRRRRRR w - - 0 1", // 9 files
	}
	for _, fen := range bad {
		if _, err := board.ParseFEN(fen); err == nil {
			t.Errorf("expected error for %q", fen)
		}
	}
}
