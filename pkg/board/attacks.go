package board

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// isSlideClearForNonCapture reports whether every square the mover
// crosses from src to dest, including dest itself, is empty, and -- when
// isKing is set -- not attacked by the opponent. The inclusive
// destination check is what makes this safe to reuse directly for
// castling: "every square the king traverses, including the
// destination, must be empty and unattacked."
func isSlideClearForNonCapture(b *Board, src, dest Square, color Color, isKing bool) bool {
	dr := sign(int(dest.Rank()) - int(src.Rank()))
	df := sign(int(dest.File()) - int(src.File()))
	dir := delta{dr, df}

	cur := src
	for {
		next, ok := dir.from(cur)
		if !ok {
			return false
		}
		if !b.IsEmpty(next) {
			return false
		}
		if isKing && IsSquareAttacked(b, next, color.Opponent()) {
			return false
		}
		if next == dest {
			return true
		}
		cur = next
	}
}

// IsSquareAttacked reports whether any byColor piece attacks sq.
func IsSquareAttacked(b *Board, sq Square, byColor Color) bool {
	return len(PiecesAttacking(b, sq, byColor)) > 0
}

// PiecesAttacking returns the set of moves by byColor pieces that could
// land on sq. The technique: from sq, generate moves as if a piece of
// each kind of the opposite color stood there; whenever a generated
// destination holds a real byColor piece of the matching kind, that is
// an attacker, recorded with its src/dest swapped back to
// (attacker_square -> sq). Queen attacks are covered by the bishop and
// rook fans, so queen is not enumerated separately.
func PiecesAttacking(b *Board, sq Square, byColor Color) []Move {
	fictitious := byColor.Opponent()

	type source struct {
		kind  Piece
		moves []Move
	}
	sources := []source{
		{Bishop, slideMoves(b, sq, fictitious, bishopDeltas)},
		{Knight, knightMoves(b, sq, fictitious)},
		{Rook, slideMoves(b, sq, fictitious, rookDeltas)},
		{Pawn, pawnCaptureMoves(b, sq, fictitious)},
		{King, kingMovesIntoCheckAllowed(b, sq, fictitious)},
	}

	var attackers []Move
	for _, s := range sources {
		for _, m := range s.moves {
			landing := m.Dest
			piece, color := b.PieceAt(landing)
			if piece == NoPiece || color != byColor {
				continue
			}
			matches := piece == s.kind || (piece == Queen && (s.kind == Bishop || s.kind == Rook))
			if !matches {
				continue
			}
			attackers = append(attackers, Move{Src: landing, Dest: sq, Piece: piece, Kind: Standard})
		}
	}
	return attackers
}
