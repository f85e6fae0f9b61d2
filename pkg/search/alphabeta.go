package search

import (
	"context"

	"github.com/kavanagh/ply/pkg/board"
	"github.com/kavanagh/ply/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// FindBestMove runs a fixed-depth alpha-beta search from pos and returns
// the best move for the side to move together with the expanded root
// node. depth is the number of plies searched; depth <= 0 evaluates pos
// directly and returns a Move of Kind board.Invalid, as does a position
// with no legal moves.
func FindBestMove(ctx context.Context, ev eval.Evaluator, pos *board.Board, depth int) (board.Move, *Node) {
	root := NewRoot(pos)
	maximizing := pos.SideToMove() == board.White

	alphaBeta(ctx, ev, root, depth, -eval.Checkmate, eval.Checkmate, maximizing)

	var best *Node
	for _, child := range root.Children {
		if best == nil || better(child.Eval, best.Eval, maximizing) {
			best = child
		}
	}
	if best == nil {
		return board.Move{Kind: board.Invalid}, root
	}
	return best.MoveFromParent, root
}

func better(candidate, incumbent eval.Score, maximizing bool) bool {
	if maximizing {
		return candidate > incumbent
	}
	return candidate < incumbent
}

// alphaBeta fills in n.Eval with the minimax value of n.Position searched
// to depth plies, expanding n (and recursively its descendants) as
// needed. maximizing is true when n.Position's side to move is white.
func alphaBeta(ctx context.Context, ev eval.Evaluator, n *Node, depth int, alpha, beta eval.Score, maximizing bool) eval.Score {
	if depth <= 0 || contextx.IsCancelled(ctx) {
		n.Eval = ev.Evaluate(ctx, n.Position)
		return n.Eval
	}

	n.Expand()
	if len(n.Children) == 0 {
		n.Eval = ev.Evaluate(ctx, n.Position)
		return n.Eval
	}

	if maximizing {
		best := -eval.Checkmate - 1
		for _, child := range n.Children {
			v := alphaBeta(ctx, ev, child, depth-1, alpha, beta, false)
			if v > best {
				best = v
			}
			if v > alpha {
				alpha = v
			}
			if beta <= alpha {
				break
			}
		}
		n.Eval = best
		return best
	}

	best := eval.Checkmate + 1
	for _, child := range n.Children {
		v := alphaBeta(ctx, ev, child, depth-1, alpha, beta, true)
		if v < best {
			best = v
		}
		if v < beta {
			beta = v
		}
		if beta <= alpha {
			break
		}
	}
	n.Eval = best
	return best
}
