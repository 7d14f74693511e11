package checkers

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/minmaxcheckers/console"
	"github.com/minmaxcheckers/game"
	"github.com/minmaxcheckers/minimax"
)

// An Agent is a player, AI or Human. Play returns the board after the agent's
// move and leaves b untouched.
type Agent interface {
	Name() string
	Play(b *game.Board) (*game.Board, error)
}

// ComputerAgent plays Black with a minimax search.
type ComputerAgent struct {
	Searcher *minimax.Searcher
	log      zerolog.Logger
}

func NewComputerAgent(conf minimax.Config, log zerolog.Logger, opts ...minimax.Option) *ComputerAgent {
	opts = append([]minimax.Option{minimax.WithLogger(log)}, opts...)
	return &ComputerAgent{
		Searcher: minimax.New(conf, opts...),
		log:      log,
	}
}

func (a *ComputerAgent) Name() string { return "computer" }

// Play searches b and returns the chosen successor.
func (a *ComputerAgent) Play(b *game.Board) (*game.Board, error) {
	next, value, err := a.Searcher.Search(b)
	if err != nil {
		return nil, err
	}
	a.log.Debug().Float32("value", value).Str("stats", a.Searcher.Stats().String()).Msg("computer moved")
	return next, nil
}

// RandomAgent plays a uniformly random legal move for its side.
type RandomAgent struct {
	Side game.Side
	r    *rand.Rand
}

// NewRandomAgent creates a RandomAgent. A zero seed seeds from the clock.
func NewRandomAgent(side game.Side, seed int64) *RandomAgent {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomAgent{Side: side, r: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) Name() string { return "random " + a.Side.String() }

func (a *RandomAgent) Play(b *game.Board) (*game.Board, error) {
	moves := b.Moves(a.Side)
	if len(moves) == 0 {
		return nil, game.NoLegalMoves(a.Side, "")
	}
	return b.Successor(a.Side, moves[a.r.Intn(len(moves))])
}

// HumanAgent reads moves typed as "e1 d2" and asks again until a legal one is given.
type HumanAgent struct {
	Side game.Side
	in   *bufio.Scanner
	out  io.Writer
}

func NewHumanAgent(side game.Side, in io.Reader, out io.Writer) *HumanAgent {
	return &HumanAgent{Side: side, in: bufio.NewScanner(in), out: out}
}

func (a *HumanAgent) Name() string { return "human" }

func (a *HumanAgent) Play(b *game.Board) (*game.Board, error) {
	pieces := b.Pieces(a.Side)
	if len(b.Moves(a.Side)) == 0 {
		return nil, game.NoLegalMoves(a.Side, "")
	}
	for {
		fmt.Fprintf(a.out, "Select one of your pieces eg. %s\n", console.Format(pieces[0]))
		fmt.Fprintln(a.out, "in format [e1 d2]")
		if !a.in.Scan() {
			if err := a.in.Err(); err != nil {
				return nil, errors.WithStack(err)
			}
			return nil, errors.WithStack(io.ErrUnexpectedEOF)
		}

		from, to, err := console.ParseMove(a.in.Text())
		if err != nil {
			fmt.Fprintf(a.out, "That is not a valid move: %v\n", err)
			continue
		}
		next := b.Clone()
		if err = next.Play(a.Side, from, to); err != nil {
			if game.IsIllegalMove(err) {
				fmt.Fprintf(a.out, "Invalid move: %v\n", errors.Cause(err))
				continue
			}
			return nil, err
		}
		return next, nil
	}
}
