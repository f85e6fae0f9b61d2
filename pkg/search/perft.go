package search

import "github.com/kavanagh/ply/pkg/board"

// Perft walks the materialized tree rooted at pos to depth plies and
// returns the number of leaves together with the number of those leaves
// that are in check, mirroring original_source's paired leaf/check
// counters.
func Perft(pos *board.Board, depth int) (leaves, checks uint64) {
	root := NewRoot(pos)
	countLeaves(root, depth, &leaves, &checks)
	return leaves, checks
}

func countLeaves(n *Node, depth int, leaves, checks *uint64) {
	if depth == 0 {
		*leaves++
		if board.IsCheck(n.Position, n.Position.SideToMove()) {
			*checks++
		}
		return
	}

	n.Expand()
	if len(n.Children) == 0 {
		*leaves++
		if board.IsCheck(n.Position, n.Position.SideToMove()) {
			*checks++
		}
		return
	}
	for _, child := range n.Children {
		countLeaves(child, depth-1, leaves, checks)
	}
}
