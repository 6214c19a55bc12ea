package engine

import (
	"golang.org/x/exp/slices"

	"github.com/assapir/chess/board"
)

var centerSquares = []board.Position{
	{Row: 3, Col: 3},
	{Row: 3, Col: 4},
	{Row: 4, Col: 3},
	{Row: 4, Col: 4},
}

// preferMove breaks ties between two equally scored root moves: first by
// whether the destination controls one of the four center squares, then by
// strictly greater pseudo-legal mobility for the side to move after the
// move. When neither criterion separates them the incumbent stays.
func preferMove(b *board.Board, candidate, incumbent board.Move) bool {
	candidateCenter := slices.Contains(centerSquares, candidate.To)
	incumbentCenter := slices.Contains(centerSquares, incumbent.To)
	if candidateCenter != incumbentCenter {
		return candidateCenter
	}

	return mobilityAfter(b, candidate) > mobilityAfter(b, incumbent)
}

// mobilityAfter counts the pseudo-legal moves of the resulting side to
// move once mv has been played on a clone.
func mobilityAfter(b *board.Board, mv board.Move) int {
	next := b.Clone()
	next.ApplyMove(mv.From, mv.To)
	return len(next.GenerateMoves(next.Turn()))
}
