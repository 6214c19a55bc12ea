package engine

import "github.com/assapir/chess/board"

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	MaxScore int32 = 32500

	// Fixed iterative-deepening horizon. There is no time-based control;
	// quiescence extends beyond it until positions go quiet.
	MaxDepth = 4
)

var nodesChecked uint64

// NodesSearched reports how many nodes the search has visited since the
// last reset.
func NodesSearched() uint64 { return nodesChecked }

// ResetForNewGame clears the transposition table and search counters.
func ResetForNewGame() {
	TT.Clear()
	nodesChecked = 0
}

// FindBestMove runs an iterative-deepening search for the side to move and
// returns the best move found across all depths, or ok=false when the side
// has no pseudo-legal moves at all (mate or stalemate; callers distinguish
// the two with IsCheckmate). Only the transposition table is mutated; the
// board's piece layout is untouched.
func FindBestMove(b *board.Board) (best board.Move, ok bool) {
	if !TT.isInitialized {
		TT.init()
	}

	color := b.Turn()

	// White wants the smallest score at the root, Black the largest,
	// matching the maximizing convention of the recursion below.
	bestScore := MaxScore
	if color == board.Black {
		bestScore = -MaxScore
	}

	for depth := 1; depth <= MaxDepth; depth++ {
		for _, mv := range b.GenerateMoves(color) {
			next := b.Clone()
			next.ApplyMove(mv.From, mv.To)
			score := search(next, depth, next.Turn() == board.Black, -MaxScore, MaxScore)

			better := (color == board.Black && score > bestScore) ||
				(color == board.White && score < bestScore)
			switch {
			case better:
				bestScore = score
				best = mv
				ok = true
			case ok && score == bestScore:
				if preferMove(b, mv, best) {
					best = mv
				}
			}
		}
	}

	return best, ok
}

// search is a minimax with alpha-beta pruning over cloned boards. The
// board's own turn field decides whose ply this is; maximizing mirrors it
// (Black maximizes the White-positive evaluation). Results are cached in
// the transposition table keyed by the Zobrist hash and tagged with depth
// and bound type.
func search(b *board.Board, depth int, maximizing bool, alpha, beta int32) int32 {
	nodesChecked++

	hash := b.Hash()
	if entry, hit := TT.ProbeEntry(hash); hit {
		if usable, score := TT.UseEntry(entry, depth, alpha, beta); usable {
			return score
		}
	}

	alphaOrig, betaOrig := alpha, beta

	if depth == 0 {
		score := qsearch(b, alpha, beta)
		TT.StoreEntry(hash, 0, score, boundFlag(score, alphaOrig, betaOrig))
		return score
	}

	moves := b.GenerateMoves(b.Turn())

	bestScore := MaxScore
	if maximizing {
		bestScore = -MaxScore
	}

	for i := range moves {
		next := b.Clone()
		next.ApplyMove(moves[i].From, moves[i].To)
		score := search(next, depth-1, !maximizing, alpha, beta)

		if maximizing {
			bestScore = max32(bestScore, score)
			alpha = max32(alpha, score)
		} else {
			bestScore = min32(bestScore, score)
			beta = min32(beta, score)
		}
		if beta <= alpha {
			break
		}
	}

	TT.StoreEntry(hash, int8(depth), bestScore, boundFlag(bestScore, alphaOrig, betaOrig))
	return bestScore
}

// qsearch extends the search at the horizon through noisy moves so that
// mid-capture positions are not scored as quiet. Negamax convention: the
// recursion negates the score and swaps the bounds.
func qsearch(b *board.Board, alpha, beta int32) int32 {
	nodesChecked++

	standPat := Evaluation(b)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	for _, mv := range b.GenerateMoves(b.Turn()) {
		if !isNoisy(b, mv) {
			continue
		}
		next := b.Clone()
		next.ApplyMove(mv.From, mv.To)
		score := -qsearch(next, -beta, -alpha)
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

// isNoisy keeps captures, plus moves whose destination occupant's color is
// currently in check. The second test is evaluated on the destination
// occupant, not the side to move.
func isNoisy(b *board.Board, mv board.Move) bool {
	if mv.IsCapture() {
		return true
	}
	target := b.At(mv.To)
	return target.Color != board.NoColor && b.InCheck(target.Color)
}

// boundFlag classifies a search result against its original window:
// at or below alpha it is an upper bound, at or above beta a lower bound,
// in between exact.
func boundFlag(score, alpha, beta int32) int8 {
	switch {
	case score <= alpha:
		return AlphaFlag
	case score >= beta:
		return BetaFlag
	default:
		return ExactFlag
	}
}
