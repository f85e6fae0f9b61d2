// Package book implements a position trie built from a corpus of SAN
// game lines, used to pick an opening move without searching.
package book

import (
	"strings"

	"github.com/kavanagh/ply/pkg/board"
	"github.com/kavanagh/ply/pkg/pgn"
)

// maxDepth caps how many plies of a corpus line are absorbed into the
// trie, mirroring the depth bound the original opening-book reader used
// to keep the tree from swallowing entire games.
const maxDepth = 10

// Node is one position in the opening-book trie. The root carries the
// initial position and a zero MoveFromParent.
type Node struct {
	Position       *board.Board
	MoveFromParent board.Move
	Children       []*Node
}

// NewRoot returns the trie root over the standard starting position.
func NewRoot() *Node {
	b := board.NewEmptyBoard()
	_ = b.ImportPlacement(board.InitialPlacement)
	return &Node{Position: b}
}

// Build walks corpus line by line, each line a space-separated list of
// SAN tokens followed by a trailing result token, and grows root into a
// trie over them. A line whose move cannot be resolved (an Invalid
// parse) is abandoned at that point; the remainder of the line is
// skipped and Build continues with the next line.
func Build(root *Node, corpus string) {
	for _, line := range strings.Split(corpus, "\n") {
		buildLine(root, line)
	}
}

func buildLine(root *Node, line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	// The trailing field is the game outcome, not a move.
	tokens := fields[:len(fields)-1]

	cur := root
	for i, tok := range tokens {
		if i >= maxDepth {
			break
		}
		mover := board.White
		if i%2 == 1 {
			mover = board.Black
		}

		m := pgn.ParseSAN(tok, cur.Position, mover)
		if m.Kind == board.Invalid {
			return
		}

		cur = descend(cur, m)
	}
}

// descend finds the child of cur whose MoveFromParent equals m, creating
// one if none exists, and returns it.
func descend(cur *Node, m board.Move) *Node {
	for _, child := range cur.Children {
		if child.MoveFromParent.Equals(m) {
			return child
		}
	}
	next := cur.Position.Clone()
	next.MakeMove(m)
	child := &Node{Position: next, MoveFromParent: m}
	cur.Children = append(cur.Children, child)
	return child
}

// Rand is the injected source of uniform reals in [0, 1) used to break
// ties among book continuations.
type Rand interface {
	Float64() float64
}

// Lookup performs a breadth-first search of the trie rooted at root for
// the first node whose Position equals pos, then returns a uniformly
// random child's MoveFromParent. ok is false on a miss (either pos is
// not in the trie, or the matching node has no children).
func Lookup(root *Node, pos *board.Board, rng Rand) (board.Move, bool) {
	queue := []*Node{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		if *n.Position == *pos {
			if len(n.Children) == 0 {
				return board.Move{}, false
			}
			idx := int(rng.Float64() * float64(len(n.Children)))
			if idx >= len(n.Children) {
				idx = len(n.Children) - 1
			}
			return n.Children[idx].MoveFromParent, true
		}
		queue = append(queue, n.Children...)
	}
	return board.Move{}, false
}
