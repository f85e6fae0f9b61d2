// Package eval contains the static position evaluator.
package eval

import (
	"context"

	"github.com/kavanagh/ply/pkg/board"
	"github.com/seekerror/stdlib/pkg/util/mathx"
)

// Score is a position evaluation from white's perspective: positive
// favors white, negative favors black.
type Score float64

const (
	// Checkmate is the magnitude of a mate score. White-to-move-mated
	// scores -Checkmate; black-to-move-mated scores +Checkmate.
	Checkmate Score = 1000
	// Check is the magnitude of the bonus/penalty for a non-mating check.
	Check Score = 0.5
)

// Evaluator is a static position evaluator.
type Evaluator interface {
	Evaluate(ctx context.Context, b *board.Board) Score
}

// Standard is the engine's evaluator: checkmate and check bonuses plus
// material, deliberately excluding positional terms, king safety,
// mobility, and piece-square tables.
type Standard struct{}

func (Standard) Evaluate(ctx context.Context, b *board.Board) Score {
	return checkmateComponent(b) + checkComponent(b) + Material(b)
}

func checkmateComponent(b *board.Board) Score {
	if !board.IsCheckmate(b) {
		return 0
	}
	if b.SideToMove() == board.White {
		return -Checkmate
	}
	return Checkmate
}

func checkComponent(b *board.Board) Score {
	if !board.IsCheck(b, b.SideToMove()) || board.IsCheckmate(b) {
		return 0
	}
	if b.SideToMove() == board.White {
		return -Check
	}
	return Check
}

// Material is the weighted material balance, white total minus black
// total, kings excluded.
func Material(b *board.Board) Score {
	var total Score
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		piece, color := b.PieceAt(sq)
		if piece == board.NoPiece || piece == board.King {
			continue
		}
		v := NominalValue(piece)
		if color == board.White {
			total += v
		} else {
			total -= v
		}
	}
	return total
}

// NominalValue is the absolute nominal value of a non-king piece, in
// pawns.
func NominalValue(p board.Piece) Score {
	switch p {
	case board.Pawn:
		return 1
	case board.Bishop, board.Knight:
		return 3
	case board.Rook:
		return 5
	case board.Queen:
		return 9
	default:
		return 0
	}
}

// Clamp restricts s to [-Checkmate, Checkmate], guarding against a
// caller accidentally propagating a score past the mate bound.
func Clamp(s Score) Score {
	bounded := mathx.Max(float64(-Checkmate), float64(s))
	if bounded > float64(Checkmate) {
		bounded = float64(Checkmate)
	}
	return Score(bounded)
}
