package checkers

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"

	"github.com/minmaxcheckers/console"
	"github.com/minmaxcheckers/game"
)

// ThinkStats summarises how long one side took over its moves.
type ThinkStats struct {
	Moves  int
	Mean   time.Duration
	StdDev time.Duration
}

// Result of a game.
type Result struct {
	Outcome game.Outcome
	Plies   int
	Final   *game.Board
	Think   map[game.Side]ThinkStats
}

// Winner returns the winning side, if the game was decided.
func (r Result) Winner() (game.Side, bool) { return r.Outcome.Winner() }

// Arena represents a game arena: it alternates two agents on one board until
// somebody wins.
type Arena struct {
	conf   Config
	agents map[game.Side]Agent

	logger zerolog.Logger
	render io.Writer
}

// ArenaOption configures an Arena.
type ArenaOption func(*Arena)

// WithArenaLogger sets the arena's logger.
func WithArenaLogger(l zerolog.Logger) ArenaOption {
	return func(a *Arena) { a.logger = l }
}

// WithRender draws the board to w at the start and after every move.
func WithRender(w io.Writer) ArenaOption {
	return func(a *Arena) { a.render = w }
}

// MakeArena makes an arena for a game described by conf.
func MakeArena(conf Config, black, white Agent, opts ...ArenaOption) *Arena {
	a := &Arena{
		conf:   conf,
		agents: map[game.Side]Agent{game.Black: black, game.White: white},
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Play plays one game from the starting board and records the result.
//
// If the side to move has no legal move the game cannot continue: the result
// so far is returned together with the *game.NoLegalMovesError.
func (a *Arena) Play() (Result, error) {
	if err := a.conf.Validate(); err != nil {
		return Result{}, err
	}
	b := a.conf.NewBoard()
	thinks := map[game.Side][]float64{}
	res := Result{Final: b}
	a.draw(b)

	for !b.IsTerminal() {
		side := b.Turn
		agent := a.agents[side]

		start := time.Now()
		next, err := agent.Play(b)
		took := time.Since(start)
		if err != nil {
			res.Think = summarise(thinks)
			return res, errors.WithMessagef(err, "%s (%v) could not move after %d plies", agent.Name(), side, res.Plies)
		}
		if err = next.Validate(); err != nil {
			return res, errors.WithMessagef(err, "%s (%v) produced a broken board", agent.Name(), side)
		}
		if next.Turn == side {
			return res, errors.Errorf("%s (%v) did not pass the turn", agent.Name(), side)
		}

		b = next
		res.Plies++
		res.Final = b
		thinks[side] = append(thinks[side], took.Seconds())
		a.logger.Info().
			Str("agent", agent.Name()).
			Stringer("side", side).
			Int("ply", res.Plies).
			Dur("took", took).
			Msg("moved")
		a.draw(b)
	}

	res.Outcome = b.Outcome
	res.Think = summarise(thinks)
	a.logger.Info().Stringer("outcome", res.Outcome).Int("plies", res.Plies).Msg("game over")
	return res, nil
}

func (a *Arena) draw(b *game.Board) {
	if a.render == nil {
		return
	}
	if err := console.Render(a.render, b); err != nil {
		a.logger.Warn().Err(err).Msg("cannot render board")
	}
}

func summarise(thinks map[game.Side][]float64) map[game.Side]ThinkStats {
	retVal := make(map[game.Side]ThinkStats, len(thinks))
	for side, xs := range thinks {
		ts := ThinkStats{Moves: len(xs)}
		mean, std := stat.MeanStdDev(xs, nil)
		ts.Mean = seconds(mean)
		// a single sample has no spread
		if len(xs) > 1 {
			ts.StdDev = seconds(std)
		}
		retVal[side] = ts
	}
	return retVal
}

func seconds(s float64) time.Duration { return time.Duration(s * float64(time.Second)) }
