package engine_test

import (
	"context"
	"testing"

	"github.com/kavanagh/ply/pkg/board"
	"github.com/kavanagh/ply/pkg/engine"
	"github.com/stretchr/testify/assert"
)

func TestNewEngine_StartsAtInitialPosition(t *testing.T) {
	e := engine.NewEngine(context.Background())
	pos := e.GetPosition()

	assert.Equal(t, engine.CellWhiteRook, pos[board.NewSquare(board.FileA, board.Rank1)])
	assert.Equal(t, engine.CellBlackKing, pos[board.NewSquare(board.FileE, board.Rank8)])
	assert.Equal(t, engine.CellEmpty, pos[board.NewSquare(board.FileE, board.Rank4)])
}

func TestSetPosition_ReplacesBoard(t *testing.T) {
	e := engine.NewEngine(context.Background())
	e.SetPosition("8/8/8/8/8/8/8/4K2k")

	pos := e.GetPosition()
	assert.Equal(t, engine.CellWhiteKing, pos[board.NewSquare(board.FileE, board.Rank1)])
	assert.Equal(t, engine.CellBlackKing, pos[board.NewSquare(board.FileH, board.Rank1)])
}

func TestIsMoveLegal_PawnDoublePush(t *testing.T) {
	e := engine.NewEngine(context.Background())
	assert.True(t, e.IsMoveLegal("e2", "e4"))
	assert.False(t, e.IsMoveLegal("e2", "e5"))
}

func TestMakeHumanMove_IllegalMoveIsNoOp(t *testing.T) {
	e := engine.NewEngine(context.Background())
	e.MakeHumanMove("e2", "e5")

	pos := e.GetPosition()
	assert.Equal(t, engine.CellWhitePawn, pos[board.NewSquare(board.FileE, board.Rank2)])
}

func TestMakeHumanMove_LegalMoveApplies(t *testing.T) {
	e := engine.NewEngine(context.Background())
	e.MakeHumanMove("e2", "e4")

	pos := e.GetPosition()
	assert.Equal(t, engine.CellEmpty, pos[board.NewSquare(board.FileE, board.Rank2)])
	assert.Equal(t, engine.CellWhitePawn, pos[board.NewSquare(board.FileE, board.Rank4)])
}

func TestIsComputerToMove_DefaultsToBlack(t *testing.T) {
	e := engine.NewEngine(context.Background())
	assert.False(t, e.IsComputerToMove())

	e.MakeHumanMove("e2", "e4")
	assert.True(t, e.IsComputerToMove())
}

func TestComputeAndApplyComputerMove_TakesHangingQueen(t *testing.T) {
	e := engine.NewEngine(context.Background(), engine.WithComputerColor(board.White), engine.WithDepth(2))
	e.SetPosition("1q2k3/8/8/8/8/8/8/1R2K3")

	e.ComputeAndApplyComputerMove(context.Background())

	pos := e.GetPosition()
	assert.Equal(t, engine.CellWhiteRook, pos[board.NewSquare(board.FileB, board.Rank8)])
	assert.Equal(t, engine.CellEmpty, pos[board.NewSquare(board.FileB, board.Rank1)])
}
