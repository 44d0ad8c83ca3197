// Package engine is the single entry point a UI drives: it owns one Board, applies user moves
// after validating them, and produces AI replies via search. See Engine.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/hexglinski/engine/pkg/board"
	"github.com/hexglinski/engine/pkg/eval"
	"github.com/hexglinski/engine/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// Options are engine creation options.
type Options struct {
	// Depth is the default search depth limit used by AIReply when its own maxDepth argument is
	// zero. Zero means no default: AIReply then requires a positive maxDepth of its own.
	Depth uint
	// QuiescenceDepth bounds the quiescence extension past the main search's leaves. Zero means
	// DefaultQuiescenceDepth.
	QuiescenceDepth uint
	// Noise adds randomness to every leaf evaluation: one of Noise consecutive centipawn values
	// starting at -Noise/2. Zero disables it.
	Noise uint
}

func (o Options) String() string {
	return fmt.Sprintf("{depth=%v, qdepth=%v, noise=%vcp}", o.Depth, o.QuiescenceDepth, o.Noise)
}

// Engine encapsulates one game: a Board, an Evaluator and the search used to answer ai_reply.
// Single-threaded cooperative, per the concurrency model: no field is ever touched by more than
// one goroutine, and no operation may be called concurrently with any other on the same Engine.
type Engine struct {
	name, author string
	opts         Options
	seed         int64

	b    *board.Board
	eval eval.Evaluator
}

// Option is an engine creation option.
type Option func(*Engine)

// WithOptions sets the engine's depth/quiescence-depth/noise defaults in one call.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

// WithQuiescenceDepth overrides the quiescence depth bound alone.
func WithQuiescenceDepth(depth uint) Option {
	return func(e *Engine) {
		e.opts.QuiescenceDepth = depth
	}
}

// WithNoise overrides the evaluation noise alone, in centipawns.
func WithNoise(centipawns uint) Option {
	return func(e *Engine) {
		e.opts.Noise = centipawns
	}
}

// WithSeed fixes the noise generator's random seed. Only meaningful alongside Options.Noise > 0.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

// New creates an engine set up at the initial position.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{name: name, author: author}
	for _, fn := range opts {
		fn(e)
	}
	e.eval = e.newEvaluator()
	e.InitialPosition()

	logw.Infof(ctx, "initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

func (e *Engine) newEvaluator() eval.Evaluator {
	var noise eval.Evaluator
	if e.opts.Noise > 0 {
		noise = eval.NewRandom(int(e.opts.Noise), e.seed)
	}
	return eval.Combined{Noise: noise}
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

// InitialPosition resets the engine to Glinski's canonical opening setup, White to move.
func (e *Engine) InitialPosition() {
	e.b = board.NewBoard()
}

// LegalMovesFrom returns the destination cells reachable by a legal move starting at c.
func (e *Engine) LegalMovesFrom(c board.Coord) []board.Coord {
	var dests []board.Coord
	for _, m := range board.LegalMoves(e.b) {
		if m.From == c {
			dests = append(dests, m.To)
		}
	}
	return dests
}

// TryUserMove applies the from->to move iff it is legal, and reports whether it did. Promotion,
// if any, is always to Queen; the UI is not offered a choice here.
func (e *Engine) TryUserMove(ctx context.Context, from, to board.Coord) bool {
	for _, m := range board.LegalMoves(e.b) {
		if m.From != from || m.To != to {
			continue
		}
		e.b.Apply(m)
		logw.Infof(ctx, "applied user move %v: %v", m, e.b)
		return true
	}
	return false
}

// AIReply searches to maxDepth (or Options.Depth, if maxDepth is zero) within timeBudget and
// returns the chosen move without applying it: the board is left unchanged, up until the caller
// applies the returned move itself (via TryUserMove, the same as any other move). It returns
// false if the game has already ended.
func (e *Engine) AIReply(ctx context.Context, maxDepth int, timeBudget time.Duration) (board.Move, bool) {
	switch board.Status(e.b) {
	case board.Checkmate, board.Stalemate:
		return board.Move{}, false
	}
	if maxDepth <= 0 {
		maxDepth = int(e.opts.Depth)
	}

	deadline, cancel := context.WithTimeout(ctx, timeBudget)
	defer cancel()

	qdepth := int(e.opts.QuiescenceDepth)
	if qdepth <= 0 {
		qdepth = search.DefaultQuiescenceDepth
	}
	ab := search.AlphaBeta{Eval: e.eval, QuiescenceDepth: qdepth}
	it := search.NewIterative(ab)
	pv := it.Run(deadline, e.b, search.Options{MaxDepth: maxDepth})

	m, ok := pv.BestMove()
	if !ok {
		return board.Move{}, false
	}

	logw.Infof(ctx, "ai reply %v: %v", m, pv)
	return m, true
}

// Status returns the terminal status of the current position.
func (e *Engine) Status() board.GameStatus {
	return board.Status(e.b)
}

// SideToMove returns the color to move next.
func (e *Engine) SideToMove() board.Color {
	return e.b.SideToMove()
}
