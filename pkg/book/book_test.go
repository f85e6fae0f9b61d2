package book_test

import (
	"testing"

	"github.com/kavanagh/ply/pkg/board"
	"github.com/kavanagh/ply/pkg/book"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand always returns the same draw, making a single-candidate
// lookup deterministic to assert against.
type fixedRand struct{ v float64 }

func (r fixedRand) Float64() float64 { return r.v }

func TestBuild_SingleLineDescendsTrie(t *testing.T) {
	root := book.NewRoot()
	book.Build(root, "e4 e5 Nf3 1-0")

	require.Len(t, root.Children, 1)
	e4 := root.Children[0]
	assert.Equal(t, board.NewSquare(board.FileE, board.Rank2), e4.MoveFromParent.Src)
	assert.Equal(t, board.NewSquare(board.FileE, board.Rank4), e4.MoveFromParent.Dest)

	require.Len(t, e4.Children, 1)
	e5 := e4.Children[0]
	assert.Equal(t, board.NewSquare(board.FileE, board.Rank7), e5.MoveFromParent.Src)

	require.Len(t, e5.Children, 1)
	nf3 := e5.Children[0]
	assert.Equal(t, board.NewSquare(board.FileG, board.Rank1), nf3.MoveFromParent.Src)
}

func TestBuild_SharedPrefixMergesIntoOneBranch(t *testing.T) {
	root := book.NewRoot()
	book.Build(root, "e4 e5 Nf3 1-0\ne4 e5 Bc4 1-0")

	require.Len(t, root.Children, 1, "both lines open 1.e4 so the root must fan out once")
	e4 := root.Children[0]
	require.Len(t, e4.Children, 1, "both lines reply 1...e5 so e4's child must fan out once")
	e5 := e4.Children[0]
	assert.Len(t, e5.Children, 2, "Nf3 and Bc4 diverge and must appear as sibling branches")
}

func TestBuild_InvalidMoveAbandonsLineNotPanics(t *testing.T) {
	root := book.NewRoot()
	assert.NotPanics(t, func() {
		book.Build(root, "e4 e5 Zz9 Nf3 1-0")
	})

	require.Len(t, root.Children, 1)
	e4 := root.Children[0]
	require.Len(t, e4.Children, 1)
	e5 := e4.Children[0]
	assert.Empty(t, e5.Children, "the line is abandoned at the unresolvable token")
}

func TestLookup_ReturnsOnlyCandidateMove(t *testing.T) {
	root := book.NewRoot()
	book.Build(root, "e4 e5 Nf3 1-0")

	m, ok := book.Lookup(root, root.Position, fixedRand{v: 0})
	require.True(t, ok)
	assert.Equal(t, board.NewSquare(board.FileE, board.Rank2), m.Src)
	assert.Equal(t, board.NewSquare(board.FileE, board.Rank4), m.Dest)
}

func TestLookup_MissForUnknownPosition(t *testing.T) {
	root := book.NewRoot()
	book.Build(root, "e4 e5 Nf3 1-0")

	other := board.NewEmptyBoard()
	require.NoError(t, other.ImportPlacement("8/8/8/8/8/8/8/4K2k"))

	_, ok := book.Lookup(root, other, fixedRand{v: 0})
	assert.False(t, ok)
}
