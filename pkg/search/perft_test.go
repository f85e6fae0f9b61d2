package search_test

import (
	"testing"

	"github.com/kavanagh/ply/pkg/search"
	"github.com/stretchr/testify/assert"
)

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
	}

	for _, c := range cases {
		b := imp(t, startingPlacement)
		leaves, _ := search.Perft(b, c.depth)
		assert.Equal(t, c.want, leaves, "depth %d", c.depth)
	}
}

func TestPerft_DepthOneChecksNone(t *testing.T) {
	b := imp(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR")
	_, checks := search.Perft(b, 1)
	assert.Equal(t, uint64(0), checks)
}

func TestPerft_CountsCheckingLeaves(t *testing.T) {
	// The exposed black king on e8 can be checked by the white queen on
	// d1 along several different lines in a single move.
	b := imp(t, "4k3/8/8/8/8/8/8/3QK3")
	_, checks := search.Perft(b, 1)
	assert.Greater(t, checks, uint64(0))
}
