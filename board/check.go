package board

// InCheck reports whether some opposing pseudo-legal move lands on the
// king square of the given color. Boards without that king are never in
// check.
func (b *Board) InCheck(color Color) bool {
	kingPos, ok := b.FindKing(color)
	if !ok {
		return false
	}
	for _, mv := range b.GenerateMoves(color.Other()) {
		if mv.To == kingPos {
			return true
		}
	}
	return false
}

// IsCheckmate reports whether the given color has zero pseudo-legal moves
// while its king is attacked. A side with zero moves that is not in check
// is stalemated, which the search signals by finding no best move.
func (b *Board) IsCheckmate(color Color) bool {
	return len(b.GenerateMoves(color)) == 0 && b.InCheck(color)
}
