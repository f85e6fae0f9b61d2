package board

// delta is a direction as a change in rank and file, applied to a
// square's (rank, file) pair. Off-board results are reported via ok=false;
// from never returns a square outside the board.
type delta struct {
	dr, df int
}

func (d delta) from(sq Square) (Square, bool) {
	r := int(sq.Rank()) + d.dr
	f := int(sq.File()) + d.df
	if r < int(Rank1) || r > int(Rank8) || f < int(FileA) || f > int(FileH) {
		return 0, false
	}
	return NewSquare(File(f), Rank(r)), true
}

var knightDeltas = []delta{
	{-1, 2}, {1, 2}, {1, -2}, {-1, -2},
	{-2, 1}, {2, 1}, {2, -1}, {-2, -1},
}

var bishopDeltas = []delta{
	{-1, 1}, {1, 1}, {1, -1}, {-1, -1},
}

var rookDeltas = []delta{
	{-1, 0}, {0, 1}, {0, -1}, {1, 0},
}

var kingDeltas = []delta{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1},
}

// isCapture reports whether dest holds a piece of the opposite color that
// is not a king -- the king is never a legal capture target.
func isCapture(b *Board, dest Square, mover Color) bool {
	p, c := b.PieceAt(dest)
	return p != NoPiece && c != mover && p != King
}

// isCaptureIncludingKing drops the king exclusion; used by attack
// enumeration, where a king is as much a threat as any other piece.
func isCaptureIncludingKing(b *Board, dest Square, mover Color) bool {
	p, c := b.PieceAt(dest)
	return p != NoPiece && c != mover
}

// PseudoMovesFrom returns every move available to the piece on sq,
// ignoring only the "leaves own king in check" constraint.
func PseudoMovesFrom(b *Board, sq Square) []Move {
	piece, color := b.PieceAt(sq)
	switch piece {
	case Pawn:
		return pawnMoves(b, sq, color)
	case Knight:
		return knightMoves(b, sq, color)
	case Bishop:
		return slideMoves(b, sq, color, bishopDeltas)
	case Rook:
		return slideMoves(b, sq, color, rookDeltas)
	case Queen:
		moves := slideMoves(b, sq, color, rookDeltas)
		return append(moves, slideMoves(b, sq, color, bishopDeltas)...)
	case King:
		moves := kingStandardMoves(b, sq, color, false)
		return append(moves, kingCastleMoves(b, sq, color)...)
	default:
		return nil
	}
}

// AllPseudoLegalMoves returns the union of PseudoMovesFrom over every
// square occupied by color.
func AllPseudoLegalMoves(b *Board, color Color) []Move {
	var out []Move
	for _, sq := range b.AllOccupiedSquares(color) {
		out = append(out, PseudoMovesFrom(b, sq)...)
	}
	return out
}

func pawnHomeRank(color Color) Rank {
	if color == White {
		return Rank2
	}
	return Rank7
}

func pawnPromotionRank(color Color) Rank {
	if color == White {
		return Rank8
	}
	return Rank1
}

func pawnForward(color Color) delta {
	if color == White {
		return delta{1, 0}
	}
	return delta{-1, 0}
}

func pawnCaptureDeltas(color Color) []delta {
	if color == White {
		return []delta{{1, -1}, {1, 1}}
	}
	return []delta{{-1, -1}, {-1, 1}}
}

func pawnMoves(b *Board, sq Square, color Color) []Move {
	moves := pawnCaptureMoves(b, sq, color)
	return append(moves, pawnNonCaptureMoves(b, sq, color)...)
}

func pawnCaptureMoves(b *Board, sq Square, color Color) []Move {
	var out []Move
	ep, hasEp := b.EpTarget()
	for _, d := range pawnCaptureDeltas(color) {
		dest, ok := d.from(sq)
		if !ok {
			continue
		}
		isEp := hasEp && dest == ep
		if !isCapture(b, dest, color) && !isEp {
			continue
		}
		out = append(out, fanOutPawnMove(sq, dest, color, isEp)...)
	}
	return out
}

func pawnNonCaptureMoves(b *Board, sq Square, color Color) []Move {
	var out []Move
	fwd := pawnForward(color)

	one, ok := fwd.from(sq)
	if !ok || !b.IsEmpty(one) {
		return out
	}
	out = append(out, fanOutPawnMove(sq, one, color, false)...)

	if sq.Rank() == pawnHomeRank(color) {
		two, ok := fwd.from(one)
		if ok && b.IsEmpty(two) {
			out = append(out, Move{Src: sq, Dest: two, Piece: Pawn, Kind: Standard})
		}
	}
	return out
}

func fanOutPawnMove(src, dest Square, color Color, isEp bool) []Move {
	if isEp {
		return []Move{{Src: src, Dest: dest, Piece: Pawn, Kind: EnPassant}}
	}
	if dest.Rank() == pawnPromotionRank(color) {
		return []Move{
			{Src: src, Dest: dest, Piece: Pawn, Kind: PromoteQueen},
			{Src: src, Dest: dest, Piece: Pawn, Kind: PromoteRook},
			{Src: src, Dest: dest, Piece: Pawn, Kind: PromoteBishop},
			{Src: src, Dest: dest, Piece: Pawn, Kind: PromoteKnight},
		}
	}
	return []Move{{Src: src, Dest: dest, Piece: Pawn, Kind: Standard}}
}

func knightMoves(b *Board, sq Square, color Color) []Move {
	var out []Move
	for _, d := range knightDeltas {
		dest, ok := d.from(sq)
		if !ok {
			continue
		}
		if b.IsEmpty(dest) || isCapture(b, dest, color) {
			out = append(out, Move{Src: sq, Dest: dest, Piece: Knight, Kind: Standard})
		}
	}
	return out
}

func slideMoves(b *Board, sq Square, color Color, deltas []delta) []Move {
	var out []Move
	piece, _ := b.PieceAt(sq)
	for _, d := range deltas {
		dest, ok := d.from(sq)
		for ok {
			if b.IsEmpty(dest) {
				out = append(out, Move{Src: sq, Dest: dest, Piece: piece, Kind: Standard})
			} else if isCapture(b, dest, color) {
				out = append(out, Move{Src: sq, Dest: dest, Piece: piece, Kind: Standard})
				break
			} else {
				break
			}
			dest, ok = d.from(dest)
		}
	}
	return out
}

// kingStandardMoves returns the eight adjacent-square king moves. Unless
// intoCheckAllowed, a destination is rejected if attacked by the
// opponent on a board with the king already removed from its source
// square -- otherwise the king would shield itself along its own ray.
func kingStandardMoves(b *Board, sq Square, color Color, intoCheckAllowed bool) []Move {
	var out []Move

	withoutKing := b.Clone()
	withoutKing.ClearSquare(sq)

	for _, d := range kingDeltas {
		dest, ok := d.from(sq)
		if !ok {
			continue
		}
		if !intoCheckAllowed && IsSquareAttacked(withoutKing, dest, color.Opponent()) {
			continue
		}
		if b.IsEmpty(dest) || isCaptureIncludingKing(withoutKing, dest, color) {
			out = append(out, Move{Src: sq, Dest: dest, Piece: King, Kind: Standard})
		}
	}
	return out
}

// kingMovesIntoCheckAllowed is used only by attack enumeration, to
// discover adjacent squares a king threatens irrespective of whether
// moving there would itself be legal.
func kingMovesIntoCheckAllowed(b *Board, sq Square, color Color) []Move {
	return kingStandardMoves(b, sq, color, true)
}

func kingCastleMoves(b *Board, sq Square, color Color) []Move {
	var out []Move
	if IsSquareAttacked(b, sq, color.Opponent()) {
		return out
	}

	rank := sq.Rank()
	if b.IsCastleSideAvailable(KingSideRight(color)) {
		dest := NewSquare(FileG, rank)
		if isSlideClearForNonCapture(b, sq, dest, color, true) {
			out = append(out, Move{Src: sq, Dest: dest, Piece: King, Kind: CastleKingSide})
		}
	}
	if b.IsCastleSideAvailable(QueenSideRight(color)) {
		dest := NewSquare(FileC, rank)
		if isSlideClearForNonCapture(b, sq, dest, color, true) {
			out = append(out, Move{Src: sq, Dest: dest, Piece: King, Kind: CastleQueenSide})
		}
	}
	return out
}
