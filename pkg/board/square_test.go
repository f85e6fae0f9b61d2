package board_test

import (
	"testing"

	"github.com/kavanagh/ply/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestRank(t *testing.T) {
	assert.True(t, board.Rank1.IsValid())
	assert.True(t, board.Rank3.IsValid())
	assert.True(t, board.Rank8.IsValid())
	assert.False(t, board.Rank(0).IsValid())
	assert.False(t, board.Rank(9).IsValid())

	assert.Equal(t, "1", board.Rank1.String())
	assert.Equal(t, "7", board.Rank7.String())
}

func TestFile(t *testing.T) {
	assert.True(t, board.FileA.IsValid())
	assert.True(t, board.FileB.IsValid())
	assert.True(t, board.FileH.IsValid())
	assert.False(t, board.File(0).IsValid())
	assert.False(t, board.File(9).IsValid())

	assert.Equal(t, "a", board.FileA.String())
	assert.Equal(t, "g", board.FileG.String())
}

func TestSquare(t *testing.T) {
	// Index 0 = a8, index 63 = h1, per the board's fixed convention.
	assert.Equal(t, board.Square(0), board.NewSquare(board.FileA, board.Rank8))
	assert.Equal(t, board.Square(63), board.NewSquare(board.FileH, board.Rank1))
	assert.Equal(t, board.Square(7), board.NewSquare(board.FileH, board.Rank8))
	assert.Equal(t, board.Square(56), board.NewSquare(board.FileA, board.Rank1))

	assert.True(t, board.Square(0).IsValid())
	assert.True(t, board.Square(63).IsValid())
	assert.False(t, board.Square(64).IsValid())

	assert.Equal(t, "a8", board.Square(0).String())
	assert.Equal(t, "h1", board.Square(63).String())

	sq, err := board.ParseSquareStr("e4")
	assert.NoError(t, err)
	assert.Equal(t, board.NewSquare(board.FileE, board.Rank4), sq)
	assert.Equal(t, "e4", sq.String())

	_, err = board.ParseSquareStr("z9")
	assert.Error(t, err)
}
