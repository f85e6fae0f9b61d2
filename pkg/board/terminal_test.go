package board_test

import (
	"testing"

	"github.com/kavanagh/ply/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestIsCheckmate_BackRankMate(t *testing.T) {
	b := imp(t, "8/6k1/8/8/8/8/5PPP/2r3K1")
	assert.True(t, board.IsCheckmate(b))
}

func TestIsCheckmate_FreeLuftEscapesMate(t *testing.T) {
	b := imp(t, "8/6k1/8/8/8/7P/5PP1/2r3K1")
	assert.False(t, board.IsCheckmate(b))
}

func TestIsCheckmate_KingCannotCaptureDefendedQueen(t *testing.T) {
	b := imp(t, "8/8/8/8/8/3K4/3Q4/3k4")
	b.SetSideToMove(board.Black)
	assert.True(t, board.IsCheckmate(b))
}

func TestIsDraw_Stalemate(t *testing.T) {
	b := imp(t, "8/8/p7/P7/5k2/6q1/8/7K")
	assert.True(t, board.IsDraw(b))
}

func TestIsDraw_NotStalemateWithEscape(t *testing.T) {
	// Moving the queen off the g-file to b3 frees g1/g2 as a king escape.
	b := imp(t, "8/8/p7/P7/5k2/1q6/8/7K")
	assert.False(t, board.IsDraw(b))
}
