// Package pgn translates Standard Algebraic Notation tokens into Moves
// against a given position.
package pgn

import (
	"regexp"
	"strings"

	"github.com/kavanagh/ply/pkg/board"
)

var (
	reCastleKingSide  = regexp.MustCompile(`^O-O[+#]?$`)
	reCastleQueenSide = regexp.MustCompile(`^O-O-O[+#]?$`)
	rePawnMove        = regexp.MustCompile(`^([a-h]?)(x?)([a-h][1-8])(=([QRBN]))?[+#]?$`)
	rePieceMove       = regexp.MustCompile(`^([KQRBN])([a-h]?)([1-8]?)(x?)([a-h][1-8])[+#]?$`)
)

// ParseSAN translates a single SAN token into a Move against pos. mover is
// the side making the move. If the token's source square cannot be
// resolved unambiguously, the returned Move's Kind is board.Invalid.
func ParseSAN(token string, pos *board.Board, mover board.Color) board.Move {
	token = strings.TrimSpace(token)

	switch {
	case reCastleKingSide.MatchString(token):
		return castleMove(mover, board.CastleKingSide)
	case reCastleQueenSide.MatchString(token):
		return castleMove(mover, board.CastleQueenSide)
	}

	if m := rePawnMove.FindStringSubmatch(token); m != nil {
		return parsePawnMove(m, pos, mover)
	}
	if m := rePieceMove.FindStringSubmatch(token); m != nil {
		return parsePieceMove(m, pos, mover)
	}
	return invalid()
}

func invalid() board.Move {
	return board.Move{Kind: board.Invalid}
}

func castleMove(mover board.Color, kind board.MoveKind) board.Move {
	rank := board.Rank1
	if mover == board.Black {
		rank = board.Rank8
	}
	dest := board.NewSquare(board.FileG, rank)
	if kind == board.CastleQueenSide {
		dest = board.NewSquare(board.FileC, rank)
	}
	return board.Move{
		Src:   board.NewSquare(board.FileE, rank),
		Dest:  dest,
		Piece: board.King,
		Kind:  kind,
	}
}

// parsePawnMove handles both pawn pushes (e4, e8=Q) and pawn captures
// (exd5, exd8=Q, with the capturing file as the disambiguator).
func parsePawnMove(m []string, pos *board.Board, mover board.Color) board.Move {
	clarifiedFile, isCapture, destStr, promo := m[1], m[2] != "", m[3], m[5]

	dest, err := board.ParseSquareStr(destStr)
	if err != nil {
		return invalid()
	}

	kind := board.Standard
	if promo != "" {
		piece, ok := board.ParsePiece(rune(promo[0]))
		if !ok {
			return invalid()
		}
		kind = board.PromotionKind(piece)
	} else if ep, ok := pos.EpTarget(); ok && ep == dest && isCapture {
		kind = board.EnPassant
	}

	var src board.Square
	if isCapture {
		if clarifiedFile == "" {
			return invalid()
		}
		file, ok := board.ParseFile(rune(clarifiedFile[0]))
		if !ok {
			return invalid()
		}
		step := -1
		if mover == board.Black {
			step = 1
		}
		srcRank := board.Rank(int(dest.Rank()) + step)
		if !srcRank.IsValid() {
			return invalid()
		}
		src = board.NewSquare(file, srcRank)
	} else {
		src = pawnPushSource(pos, dest, mover)
		if !src.IsValid() {
			return invalid()
		}
	}

	return board.Move{Src: src, Dest: dest, Piece: board.Pawn, Kind: kind}
}

// pawnPushSource finds the square one step behind dest occupied by a
// mover pawn, falling back to two steps behind when the immediate square
// is empty, so that double pushes from the home rank resolve correctly.
// It returns board.NumSquares when no mover pawn can make the push.
func pawnPushSource(pos *board.Board, dest board.Square, mover board.Color) board.Square {
	step := -1
	home := board.Rank2
	if mover == board.Black {
		step = 1
		home = board.Rank7
	}
	oneBack := board.Rank(int(dest.Rank()) + step)
	if !oneBack.IsValid() {
		return board.NumSquares
	}
	candidate := board.NewSquare(dest.File(), oneBack)
	if piece, color := pos.PieceAt(candidate); piece == board.Pawn && color == mover {
		return candidate
	}
	twoBack := board.Rank(int(oneBack) + step)
	if !pos.IsEmpty(candidate) || twoBack != home {
		return board.NumSquares
	}
	twoSq := board.NewSquare(dest.File(), twoBack)
	if piece, color := pos.PieceAt(twoSq); piece != board.Pawn || color != mover {
		return board.NumSquares
	}
	return twoSq
}

// parsePieceMove handles knight/bishop/rook/queen/king moves, resolving
// the source square from the set of same-color pieces attacking dest.
func parsePieceMove(m []string, pos *board.Board, mover board.Color) board.Move {
	pieceLetter, disFile, disRank, _, destStr := m[1], m[2], m[3], m[4], m[5]

	piece, ok := board.ParsePiece(rune(pieceLetter[0]))
	if !ok {
		return invalid()
	}
	dest, err := board.ParseSquareStr(destStr)
	if err != nil {
		return invalid()
	}

	var wantFile board.File
	if disFile != "" {
		wantFile, _ = board.ParseFile(rune(disFile[0]))
	}
	var wantRank board.Rank
	if disRank != "" {
		wantRank, _ = board.ParseRank(rune(disRank[0]))
	}

	candidates := board.PiecesAttacking(pos, dest, mover)
	var src board.Square
	found := 0
	for _, c := range candidates {
		if c.Piece != piece {
			continue
		}
		if disFile != "" && c.Src.File() != wantFile {
			continue
		}
		if disRank != "" && c.Src.Rank() != wantRank {
			continue
		}
		src = c.Src
		found++
	}
	if found != 1 {
		return invalid()
	}

	return board.Move{Src: src, Dest: dest, Piece: piece, Kind: board.Standard}
}
