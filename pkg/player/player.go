// Package player implements the two Player variants that choose moves
// for a side: a human (whose moves arrive through the board's make-move
// path) and a computer (book lookup falling back to search).
package player

import (
	"context"
	"errors"
	"math/rand"

	"github.com/kavanagh/ply/pkg/board"
	"github.com/kavanagh/ply/pkg/book"
	"github.com/kavanagh/ply/pkg/eval"
	"github.com/kavanagh/ply/pkg/search"
	"github.com/seekerror/logw"
)

// Player chooses a move for the side to move in a given position.
type Player interface {
	ChooseMove(ctx context.Context, pos *board.Board) (board.Move, error)
}

// Human is never called to choose a move: the UI supplies the player's
// moves directly through the board's make-move path.
type Human struct{}

func (Human) ChooseMove(ctx context.Context, pos *board.Board) (board.Move, error) {
	return board.Move{}, errors.New("player: human moves are supplied by the UI, not chosen")
}

// Computer chooses a move by first consulting an opening book, falling
// back to a fixed-depth alpha-beta search on a miss.
type Computer struct {
	book  *book.Node
	rng   book.Rand
	eval  eval.Evaluator
	depth int
}

// Option is a Computer construction option.
type Option func(*Computer)

// WithBook configures the opening book the Computer consults first.
func WithBook(root *book.Node) Option {
	return func(c *Computer) {
		c.book = root
	}
}

// WithRand configures the random source used to break ties among book
// continuations. The default is seeded from seed 0.
func WithRand(rng book.Rand) Option {
	return func(c *Computer) {
		c.rng = rng
	}
}

// WithEvaluator overrides the default Standard evaluator.
func WithEvaluator(ev eval.Evaluator) Option {
	return func(c *Computer) {
		c.eval = ev
	}
}

// WithDepth overrides the default search depth of 3 plies.
func WithDepth(depth int) Option {
	return func(c *Computer) {
		c.depth = depth
	}
}

// NewComputer returns a Computer ready to choose moves.
func NewComputer(opts ...Option) *Computer {
	c := &Computer{
		eval:  eval.Standard{},
		depth: 3,
		rng:   rand.New(rand.NewSource(0)),
	}
	for _, fn := range opts {
		fn(c)
	}
	return c
}

func (c *Computer) ChooseMove(ctx context.Context, pos *board.Board) (board.Move, error) {
	if c.book != nil {
		if m, ok := book.Lookup(c.book, pos, c.rng); ok {
			logw.Infof(ctx, "player: book hit %v", m)
			return m, nil
		}
	}

	m, _ := search.FindBestMove(ctx, c.eval, pos, c.depth)
	if m.Kind == board.Invalid {
		return board.Move{}, errors.New("player: no legal move available")
	}
	logw.Infof(ctx, "player: search chose %v at depth %v", m, c.depth)
	return m, nil
}
