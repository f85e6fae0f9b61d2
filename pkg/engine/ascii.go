package engine

import (
	"fmt"
	"os"
	"strings"

	"github.com/kavanagh/ply/pkg/board"
)

const (
	files      = "    a   b   c   d   e   f   g   h"
	horizontal = "  ---------------------------------"
	vertical   = " | "
)

// RenderASCII writes a textual rendering of the current position to
// stderr.
func (e *Engine) RenderASCII() {
	fmt.Fprintln(os.Stderr, files)
	fmt.Fprintln(os.Stderr, horizontal)

	var sb strings.Builder
	for rank := board.Rank8; rank >= board.Rank1; rank-- {
		sb.Reset()
		sb.WriteString(rank.String())
		sb.WriteString(vertical)
		for file := board.FileA; file <= board.FileH; file++ {
			sq := board.NewSquare(file, rank)
			piece, color := e.b.PieceAt(sq)
			sb.WriteString(printCell(piece, color))
			sb.WriteString(vertical)
		}
		fmt.Fprintln(os.Stderr, sb.String())
		fmt.Fprintln(os.Stderr, horizontal)
	}
	fmt.Fprintln(os.Stderr, files)
}

func printCell(p board.Piece, c board.Color) string {
	if p == board.NoPiece {
		return " "
	}
	if c == board.White {
		return strings.ToUpper(p.String())
	}
	return p.String()
}
