// perft is a move-generator debugging tool: it counts leaf positions reachable at a fixed depth
// from a starting position. See: https://www.chessprogramming.org/Perft_Results.
//
// Depth 1 from the initial position is pinned at 48 (hand-derived from the direction tables and
// canonical placement; see DESIGN.md). Depths 2 and 3 are NOT pinned anywhere in this repo: they
// require a reference implementation to establish and freeze, which this tool does not attempt to
// do on its own — it only counts, for whatever depth the caller asks for.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/hexglinski/engine/pkg/board"
	"github.com/seekerror/logw"
)

var (
	depth  = flag.Int("depth", 3, "Search depth")
	divide = flag.Bool("divide", false, "Break down the final depth's count by root move")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	b := board.NewBoard()

	for d := 1; d <= *depth; d++ {
		start := time.Now()
		nodes := perft(b, d, *divide && d == *depth)
		elapsed := time.Since(start)

		fmt.Printf("perft,%d,%d,%s\n", d, nodes, elapsed)
	}

	logw.Infof(ctx, "done: depth=%d", *depth)
}

func perft(b *board.Board, depth int, divide bool) int64 {
	if depth == 0 {
		return 1
	}

	var nodes int64
	for _, m := range board.LegalMoves(b) {
		b.Apply(m)
		count := perft(b, depth-1, false)
		b.Unmake(m)

		if divide {
			fmt.Printf("%v: %d\n", m, count)
		}
		nodes += count
	}
	return nodes
}
