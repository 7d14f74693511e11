package minimax

import (
	"fmt"
	"time"

	"github.com/chewxy/math32"
	"github.com/rs/zerolog"

	"github.com/minmaxcheckers/game"
)

/*
Plain minimax over cloned boards. Black is always the maximising side at the
root, and node kinds alternate with depth. There is no pruning, no move
ordering and no clock: a caller who wants a faster answer lowers the depth.
*/

// Tracer observes the search. Edge is called once a child's value is known.
type Tracer interface {
	Begin(root *game.Board, depth int)
	Edge(parent, child *game.Board, m game.Move, value float32, depth int)
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Searcher) { s.log = l }
}

// WithTracer attaches a tracer to every search.
func WithTracer(t Tracer) Option {
	return func(s *Searcher) { s.tracer = t }
}

// Searcher finds the computer's move. It is not safe for concurrent use.
type Searcher struct {
	Config

	log    zerolog.Logger
	tracer Tracer
	stats  Stats
}

func New(conf Config, opts ...Option) *Searcher {
	retVal := &Searcher{
		Config: conf,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(retVal)
	}
	return retVal
}

// Stats returns the statistics of the last search.
func (s *Searcher) Stats() Stats { return s.stats }

// Search returns Black's best successor of b and its value.
//
// The search starts at the board's depth bound. If no move is chosen at that
// depth, which happens when every line scores -Inf, it is repeated one ply
// shallower until a move is found. Running out of depth means Black has no
// moves at all, and a *game.NoLegalMovesError is returned.
func (s *Searcher) Search(b *game.Board) (retVal *game.Board, value float32, err error) {
	if b.IsTerminal() {
		return nil, Evaluate(b), game.NoLegalMoves(game.Black, "game is over")
	}

	s.stats = Stats{}
	start := time.Now()
	for depth := s.depth(b.MaxDepth); depth > 0; depth-- {
		s.stats.Depth = depth
		if s.tracer != nil {
			s.tracer.Begin(b, depth)
		}
		retVal, value = s.maxMin(b, depth, true)
		if retVal != nil {
			break
		}
		s.log.Debug().Int("depth", depth).Msg("no move chosen, retrying shallower")
	}
	s.stats.Elapsed = time.Since(start)

	ev := s.log.Debug()
	if s.LogStats {
		ev = s.log.Info()
	}
	ev.Object("stats", s.stats).Float32("value", value).Msg("search finished")

	if retVal == nil {
		return nil, value, game.NoLegalMoves(game.Black, "")
	}
	return retVal, value, nil
}

// maxMin evaluates b at the given remaining depth. A leaf returns itself with
// its static value. An inner node returns the successor it prefers, or nil if
// none beat the initial bound.
func (s *Searcher) maxMin(b *game.Board, depth int, maximizing bool) (best *game.Board, bound float32) {
	s.stats.Nodes++
	if b.IsTerminal() || depth <= 0 {
		s.stats.Leaves++
		if b.IsTerminal() {
			s.stats.Terminals++
		}
		return b, Evaluate(b)
	}

	side := game.White
	bound = math32.Inf(1)
	if maximizing {
		side = game.Black
		bound = math32.Inf(-1)
	}

	b.Each(side, func(m game.Move) bool {
		child, err := b.Successor(side, m)
		if err != nil {
			// generated moves are always applicable
			panic(fmt.Sprintf("%+v", err))
		}
		_, value := s.maxMin(child, depth-1, !maximizing)
		if s.tracer != nil {
			s.tracer.Edge(b, child, m, value, depth)
		}

		if (maximizing && value > bound) || (!maximizing && value < bound) {
			bound = value
			best = child
		}
		return true
	})
	return best, bound
}
