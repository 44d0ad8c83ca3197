// selfplay drives the engine facade against itself from the initial position, printing each move
// and the final game status. Useful as a smoke test for the search and evaluator together.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/hexglinski/engine/pkg/board"
	"github.com/hexglinski/engine/pkg/engine"
	"github.com/seekerror/logw"
)

var (
	maxDepth   = flag.Int("depth", 4, "Max search depth per move")
	timeBudget = flag.Duration("time", 2*time.Second, "Time budget per move")
	maxPlies   = flag.Int("plies", 200, "Maximum number of plies before giving up")
	noise      = flag.Uint("noise", 10, "Evaluation noise in centipawns (zero for deterministic play)")
)

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "hexglinski", "engine", engine.WithOptions(engine.Options{Noise: *noise}), engine.WithSeed(time.Now().UnixNano()))
	logw.Infof(ctx, "starting self-play: %v", e.Name())

	for ply := 0; ply < *maxPlies; ply++ {
		switch e.Status() {
		case board.Checkmate:
			fmt.Printf("checkmate, %v to move loses\n", e.SideToMove())
			return
		case board.Stalemate:
			fmt.Println("stalemate")
			return
		}

		m, ok := e.AIReply(ctx, *maxDepth, *timeBudget)
		if !ok {
			fmt.Println("no move returned; stopping")
			return
		}
		mover := e.SideToMove()
		if !e.TryUserMove(ctx, m.From, m.To) {
			fmt.Printf("engine returned illegal move %v; stopping\n", m)
			return
		}
		fmt.Printf("%d. %v %v\n", ply+1, mover, m)
	}

	fmt.Println("ply limit reached")
}
