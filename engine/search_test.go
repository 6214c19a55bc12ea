package engine

import (
	"testing"

	"github.com/assapir/chess/board"
)

// plainMinimax is a reference search without pruning or caching, sharing
// the quiescence horizon with the real search.
func plainMinimax(b *board.Board, depth int, maximizing bool) int32 {
	if depth == 0 {
		return qsearch(b, -MaxScore, MaxScore)
	}

	moves := b.GenerateMoves(b.Turn())
	best := MaxScore
	if maximizing {
		best = -MaxScore
	}
	for i := range moves {
		next := b.Clone()
		next.ApplyMove(moves[i].From, moves[i].To)
		score := plainMinimax(next, depth-1, !maximizing)
		if maximizing {
			best = max32(best, score)
		} else {
			best = min32(best, score)
		}
	}
	return best
}

func TestAlphaBetaMatchesPlainMinimax(t *testing.T) {
	fens := []string{
		"8/3r4/5p2/8/3Q4/8/8/8 w - - 0 1",
		"4k3/4p3/8/8/8/8/4P3/4K3 w - - 0 1",
		"r3k3/8/8/3q4/3N4/8/8/R3K3 b - - 0 1",
	}

	for _, fen := range fens {
		for depth := 1; depth <= 2; depth++ {
			b, err := board.ParseFEN(fen)
			if err != nil {
				t.Fatalf("ParseFEN(%q): %v", fen, err)
			}

			// Clearing the table disables caching, so the pruned
			// search must reproduce the exhaustive result exactly.
			ResetForNewGame()
			maximizing := b.Turn() == board.Black

			pruned := search(b.Clone(), depth, maximizing, -MaxScore, MaxScore)
			exhaustive := plainMinimax(b.Clone(), depth, maximizing)
			if pruned != exhaustive {
				t.Errorf("%q depth %d: alpha-beta %d != minimax %d", fen, depth, pruned, exhaustive)
			}
		}
	}
}

func TestFindBestMoveReturnsNothingWhenNoMoves(t *testing.T) {
	// Black is mated: no pseudo-legal moves and the king is attacked.
	b, err := board.ParseFEN("6pk/6pp/6NP/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	ResetForNewGame()
	if _, ok := FindBestMove(b); ok {
		t.Fatalf("expected no best move for a side with zero moves")
	}
	if !b.IsCheckmate(board.Black) {
		t.Fatalf("expected checkmate for Black")
	}
}

func TestFindBestMoveStalemate(t *testing.T) {
	b, err := board.ParseFEN("6pk/6pp/6PP/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	ResetForNewGame()
	if _, ok := FindBestMove(b); ok {
		t.Fatalf("expected no best move in stalemate")
	}
	if b.IsCheckmate(board.Black) {
		t.Fatalf("stalemate misreported as checkmate")
	}
}

func TestFindBestMoveReturnsGeneratedMove(t *testing.T) {
	fens := []string{
		"q6k/8/8/8/8/8/8/R6K w - - 0 1",
		"q6k/8/8/8/8/8/8/R6K b - - 0 1",
	}
	for _, fen := range fens {
		b, err := board.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}

		ResetForNewGame()
		mv, ok := FindBestMove(b)
		if !ok {
			t.Fatalf("%q: expected a best move", fen)
		}

		legal := false
		for _, candidate := range b.GenerateMoves(b.Turn()) {
			if candidate.From == mv.From && candidate.To == mv.To {
				legal = true
				break
			}
		}
		if !legal {
			t.Fatalf("%q: best move %v was never generated", fen, mv)
		}

		next := b.Clone()
		next.ApplyMove(mv.From, mv.To)
		if !next.Validate() {
			t.Fatalf("%q: applying the best move broke board invariants", fen)
		}
	}
}

func TestFirstSelfPlayPly(t *testing.T) {
	// Only quiet pawn pushes and knight leaps exist at move 1.
	b := board.New()

	ResetForNewGame()
	mv, ok := FindBestMove(b)
	if !ok {
		t.Fatalf("expected a move in the initial position")
	}
	if mv.Piece != board.Pawn && mv.Piece != board.Knight {
		t.Fatalf("only pawn and knight moves exist at move 1, got %v piece %v", mv, mv.Piece)
	}
	if mv.IsCapture() {
		t.Fatalf("no captures exist at move 1, got %v", mv)
	}
	if from := b.At(mv.From); from.Color != board.White {
		t.Fatalf("White to move, but best move starts on a %v square", from.Color)
	}

	b.ApplyMove(mv.From, mv.To)
	if b.Turn() != board.Black {
		t.Fatalf("turn must flip to Black after White's move, got %v", b.Turn())
	}
}

func TestFindBestMoveDoesNotMoveThePieces(t *testing.T) {
	b := board.New()
	before := b.FEN()

	ResetForNewGame()
	if _, ok := FindBestMove(b); !ok {
		t.Fatalf("expected a move")
	}
	if b.FEN() != before {
		t.Fatalf("FindBestMove mutated the board: %q -> %q", before, b.FEN())
	}
}

func TestBoundFlagClassification(t *testing.T) {
	if got := boundFlag(5, 10, 20); got != AlphaFlag {
		t.Errorf("score below alpha must be an upper bound, got %d", got)
	}
	if got := boundFlag(25, 10, 20); got != BetaFlag {
		t.Errorf("score above beta must be a lower bound, got %d", got)
	}
	if got := boundFlag(15, 10, 20); got != ExactFlag {
		t.Errorf("score inside the window must be exact, got %d", got)
	}
}
