package board

import "fmt"

// MoveKind tags a Move with the special handling Make-Move must apply.
type MoveKind uint8

const (
	Standard MoveKind = iota
	CastleKingSide
	CastleQueenSide
	EnPassant
	PromoteQueen
	PromoteRook
	PromoteBishop
	PromoteKnight

	// Invalid marks a Move that the SAN parser could not resolve to a
	// source square. It is never produced by the move generator.
	Invalid
)

func (k MoveKind) IsPromotion() bool {
	return k == PromoteQueen || k == PromoteRook || k == PromoteBishop || k == PromoteKnight
}

// PromotionPiece returns the piece a PromoteX kind promotes to.
func (k MoveKind) PromotionPiece() Piece {
	switch k {
	case PromoteQueen:
		return Queen
	case PromoteRook:
		return Rook
	case PromoteBishop:
		return Bishop
	case PromoteKnight:
		return Knight
	default:
		return NoPiece
	}
}

func PromotionKind(p Piece) MoveKind {
	switch p {
	case Queen:
		return PromoteQueen
	case Rook:
		return PromoteRook
	case Bishop:
		return PromoteBishop
	case Knight:
		return PromoteKnight
	default:
		return Invalid
	}
}

// Move is a (not necessarily legal) move record: source, destination,
// the piece making the move, and a kind tag. It carries no contextual
// score; evaluation lives on the search tree, not on the move itself.
type Move struct {
	Src, Dest Square
	Piece     Piece
	Kind      MoveKind
}

func (m Move) Equals(o Move) bool {
	return m.Src == o.Src && m.Dest == o.Dest && m.Kind == o.Kind
}

func (m Move) String() string {
	if m.Kind.IsPromotion() {
		return fmt.Sprintf("%v%v%v", m.Src, m.Dest, m.Kind.PromotionPiece())
	}
	return fmt.Sprintf("%v%v", m.Src, m.Dest)
}
