// console is a thin text front end over pkg/engine: it reads move
// commands from stdin and prints the board after each ply.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/kavanagh/ply/pkg/engine"
	"github.com/seekerror/logw"
)

var (
	depth = flag.Int("depth", 3, "Computer search depth, in plies")
	book  = flag.String("book", "", "Opening book file (space-separated SAN lines, one game per line)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: console [options]

console plays a human, on the white side by default, against the
engine's computer player. Enter moves as two squares, e.g. "e2 e4".
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	var opts []engine.Option
	if *book != "" {
		opts = append(opts, engine.WithBookFile(*book))
	}
	opts = append(opts, engine.WithDepth(*depth))

	e := engine.NewEngine(ctx, opts...)
	logw.Infof(ctx, "console: engine ready, depth=%v", *depth)

	e.RenderASCII()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if e.IsComputerToMove() {
			e.ComputeAndApplyComputerMove(ctx)
			e.RenderASCII()
			continue
		}

		fmt.Fprint(os.Stderr, "your move (src dest, e.g. e2 e4): ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 {
			fmt.Fprintln(os.Stderr, "expected two squares, e.g. e2 e4")
			continue
		}

		if !e.IsMoveLegal(fields[0], fields[1]) {
			fmt.Fprintln(os.Stderr, "illegal move")
			continue
		}
		e.MakeHumanMove(fields[0], fields[1])
		e.RenderASCII()
	}
}
