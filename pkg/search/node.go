// Package search implements the alpha-beta minimax over a materialized
// search tree, and the perft leaf counter that reuses the same tree
// shape for correctness testing.
package search

import (
	"github.com/kavanagh/ply/pkg/board"
	"github.com/kavanagh/ply/pkg/eval"
)

// Node is one position in a search tree. It owns its children
// exclusively: they are created when the node is expanded and released
// with the node itself when the tree (or subtree) goes out of scope.
// The root carries a sentinel MoveFromParent.
type Node struct {
	Position       *board.Board
	MoveFromParent board.Move
	Children       []*Node
	Eval           eval.Score

	expanded bool
}

// NewRoot returns an unexpanded root node over pos.
func NewRoot(pos *board.Board) *Node {
	return &Node{Position: pos}
}

// Expand populates n.Children with one child per legal move from
// n.Position, unless n is already expanded.
func (n *Node) Expand() {
	if n.expanded {
		return
	}
	n.expanded = true
	for _, m := range board.AllLegalMoves(n.Position) {
		child := n.Position.Clone()
		child.MakeMove(m)
		n.Children = append(n.Children, &Node{Position: child, MoveFromParent: m})
	}
}
