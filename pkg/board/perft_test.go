package board_test

import (
	"testing"

	"github.com/kavanagh/ply/pkg/board"
	"github.com/stretchr/testify/assert"
)

// perft counts the leaves of the legal-move tree rooted at b, to depth.
// It is the correctness oracle spec.md calls for: known divergences from
// published values are implementer bugs to fix, not source behavior to
// preserve (see DESIGN.md).
func perft(b *board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := board.AllLegalMoves(b)
	if depth == 1 {
		return uint64(len(moves))
	}
	var count uint64
	for _, m := range moves {
		clone := b.Clone()
		clone.MakeMove(m)
		count += perft(clone, depth-1)
	}
	return count
}

func TestPerft_InitialPosition(t *testing.T) {
	startingPlacement := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

	cases := []struct {
		depth int
		want  uint64
	}{
		{0, 1},
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}

	for _, c := range cases {
		b := imp(t, startingPlacement)
		assert.Equal(t, c.want, perft(b, c.depth), "depth %d", c.depth)
	}
}
