// Package engine exposes the embedding API: a single owned position, a
// computer player backed by an opening book and alpha-beta search, and
// the move/query surface a host application drives the game through.
package engine

import (
	"context"
	"os"

	"github.com/kavanagh/ply/pkg/board"
	"github.com/kavanagh/ply/pkg/book"
	"github.com/kavanagh/ply/pkg/pgn"
	"github.com/kavanagh/ply/pkg/player"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

const defaultSearchDepth = 3

// Option is an engine construction option.
type Option func(*Engine)

// WithBookFile configures the engine to load its opening book from path.
// A missing or unreadable file is logged and the engine continues with
// an empty book, per the resource error-handling policy.
func WithBookFile(path string) Option {
	return func(e *Engine) {
		e.bookPath = path
	}
}

// WithDepth overrides the computer player's fixed search depth, 3 plies
// by default.
func WithDepth(depth int) Option {
	return func(e *Engine) {
		e.depth = depth
	}
}

// WithComputerColor assigns which side the computer plays. Black by
// default, so a fresh engine is ready for a human playing white.
func WithComputerColor(c board.Color) Option {
	return func(e *Engine) {
		e.computerColor = c
	}
}

// Engine is the embedding API surface: the current position, plus a
// computer player that consults an opening book before falling back to
// a fixed-depth search.
type Engine struct {
	b *board.Board

	bookPath      string
	depth         int
	computerColor board.Color
	computer      *player.Computer
}

// NewEngine returns an engine over the standard starting position. A
// missing opening-book file is not an error: the engine falls back to
// search for every move.
func NewEngine(ctx context.Context, opts ...Option) *Engine {
	e := &Engine{depth: defaultSearchDepth, computerColor: board.Black}
	for _, fn := range opts {
		fn(e)
	}

	root := book.NewRoot()
	if e.bookPath != "" {
		data, err := os.ReadFile(e.bookPath)
		if err != nil {
			logw.Errorf(ctx, "engine: opening book %v unreadable, continuing with empty book: %v", e.bookPath, err)
		} else {
			book.Build(root, string(data))
		}
	}
	e.computer = player.NewComputer(player.WithBook(root), player.WithDepth(e.depth))

	e.b = board.NewEmptyBoard()
	_ = e.b.ImportPlacement(board.InitialPlacement)

	logw.Infof(ctx, "engine: initialized %v, depth=%v", version, e.depth)
	return e
}

// SetPosition loads a new piece placement, discarding the move history
// accumulated on the current position. A malformed placement is loaded
// best-effort, per ImportPlacement's own documented contract.
func (e *Engine) SetPosition(placement string) {
	b := board.NewEmptyBoard()
	_ = b.ImportPlacement(placement)
	e.b = b
}

// CellCode is GetPosition's per-square piece encoding: 0 for an empty
// square; pawn, knight, bishop, rook, queen and king take the pairs 1-2,
// 3-4, 5-6, 7-8, 9-10 and 11-12, the odd code black and the even white.
type CellCode uint8

const (
	CellEmpty CellCode = iota
	CellBlackPawn
	CellWhitePawn
	CellBlackKnight
	CellWhiteKnight
	CellBlackBishop
	CellWhiteBishop
	CellBlackRook
	CellWhiteRook
	CellBlackQueen
	CellWhiteQueen
	CellBlackKing
	CellWhiteKing
)

// GetPosition returns the 64-entry cell-code vector for the current
// position, in the board package's index order (0=a8 ... 63=h1).
func (e *Engine) GetPosition() [64]CellCode {
	var out [64]CellCode
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		out[sq] = cellCodeOf(e.b.PieceAt(sq))
	}
	return out
}

func cellCodeOf(piece board.Piece, color board.Color) CellCode {
	if piece == board.NoPiece {
		return CellEmpty
	}
	white := color == board.White
	switch piece {
	case board.Pawn:
		return pick(white, CellWhitePawn, CellBlackPawn)
	case board.Knight:
		return pick(white, CellWhiteKnight, CellBlackKnight)
	case board.Bishop:
		return pick(white, CellWhiteBishop, CellBlackBishop)
	case board.Rook:
		return pick(white, CellWhiteRook, CellBlackRook)
	case board.Queen:
		return pick(white, CellWhiteQueen, CellBlackQueen)
	case board.King:
		return pick(white, CellWhiteKing, CellBlackKing)
	default:
		return CellEmpty
	}
}

func pick(white bool, whiteCode, blackCode CellCode) CellCode {
	if white {
		return whiteCode
	}
	return blackCode
}

// IsMoveLegal reports whether the move from src to dest (algebraic
// coordinates, e.g. "e2", "e4") is legal in the current position.
func (e *Engine) IsMoveLegal(src, dest string) bool {
	m, ok := e.resolveCoordMove(src, dest)
	return ok && board.IsLegal(e.b, m)
}

// MakeHumanMove applies the move from src to dest if legal; an illegal
// move is a no-op.
func (e *Engine) MakeHumanMove(src, dest string) {
	m, ok := e.resolveCoordMove(src, dest)
	if !ok || !board.IsLegal(e.b, m) {
		return
	}
	e.b.MakeMove(m)
}

// resolveCoordMove finds the pseudo-legal move from src to dest, fanning
// out promotion choices to queen (the only promotion reachable through
// this plain two-coordinate interface; SAN callers use pkg/pgn directly
// for an explicit promotion piece).
func (e *Engine) resolveCoordMove(src, dest string) (board.Move, bool) {
	from, err := board.ParseSquareStr(src)
	if err != nil {
		return board.Move{}, false
	}
	to, err := board.ParseSquareStr(dest)
	if err != nil {
		return board.Move{}, false
	}
	for _, m := range board.PseudoMovesFrom(e.b, from) {
		if m.Dest != to {
			continue
		}
		if m.Kind.IsPromotion() && m.Kind != board.PromoteQueen {
			continue
		}
		return m, true
	}
	return board.Move{}, false
}

// IsComputerToMove reports whether the current side to move is the side
// assigned to the computer player (WithComputerColor; black by default).
func (e *Engine) IsComputerToMove() bool {
	return e.b.SideToMove() == e.computerColor
}

// ComputeAndApplyComputerMove chooses and applies a move for the side to
// move via the computer player (book lookup, then search), applying the
// result to the engine's position.
func (e *Engine) ComputeAndApplyComputerMove(ctx context.Context) {
	m, err := e.computer.ChooseMove(ctx, e.b)
	if err != nil {
		logw.Errorf(ctx, "engine: computer move failed: %v", err)
		return
	}
	e.b.MakeMove(m)
}

// MakeSANMove applies a SAN token as the move of the side to move, returning
// false if the token could not be resolved or the resulting move is
// illegal.
func (e *Engine) MakeSANMove(token string) bool {
	m := pgn.ParseSAN(token, e.b, e.b.SideToMove())
	if m.Kind == board.Invalid || !board.IsLegal(e.b, m) {
		return false
	}
	e.b.MakeMove(m)
	return true
}

// Position exposes the underlying board for callers that need the full
// board API rather than GetPosition's cell-code vector.
func (e *Engine) Position() *board.Board {
	return e.b
}
