package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	checkers "github.com/minmaxcheckers"
	"github.com/minmaxcheckers/console"
	"github.com/minmaxcheckers/game"
	"github.com/minmaxcheckers/minimax"
)

func main() {
	// a missing .env is fine
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "checkers",
		Usage: "checkers where the first capture wins, against a minimax computer",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "JSON config file", EnvVars: []string{"CHECKERS_CONFIG"}},
			&cli.IntFlag{Name: "depth", Usage: "search depth (overrides the config)", EnvVars: []string{"CHECKERS_DEPTH"}},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log search statistics"},
		},
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "play White against the computer on the terminal",
				Action: play,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "dot", Usage: "write the top ply of each computer search as DOT to this file"},
				},
			},
			{
				Name:   "arena",
				Usage:  "play the computer against random moves",
				Action: arena,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "games", Value: 10, Usage: "number of games to play"},
					&cli.Int64Flag{Name: "seed", Usage: "seed of the random player, 0 for the clock"},
				},
			},
			{
				Name:   "perft",
				Usage:  "count move sequences from the starting board",
				Action: perft,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "plies", Value: 6, Usage: "deepest ply to count"},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func setup(c *cli.Context) (checkers.Config, zerolog.Logger, error) {
	level := zerolog.WarnLevel
	if c.Bool("verbose") {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()

	conf := checkers.DefaultConfig()
	if path := c.String("config"); path != "" {
		var err error
		if conf, err = checkers.LoadConfig(path); err != nil {
			return conf, logger, err
		}
	}
	if c.IsSet("depth") {
		conf.MaxDepth = c.Int("depth")
	}
	if err := conf.Validate(); err != nil {
		return conf, logger, err
	}
	return conf, logger, nil
}

func play(c *cli.Context) error {
	conf, logger, err := setup(c)
	if err != nil {
		return err
	}

	var opts []minimax.Option
	var tracer *minimax.DotTracer
	if c.String("dot") != "" {
		tracer = minimax.NewDotTracer(1)
		opts = append(opts, minimax.WithTracer(tracer))
	}

	out := c.App.Writer
	fmt.Fprintln(out, "Welcome to checkers.")
	fmt.Fprintln(out, "If the computer captures one of your pieces, it is game over.")

	computer := checkers.NewComputerAgent(conf.Search, logger, opts...)
	human := checkers.NewHumanAgent(checkers.Human, os.Stdin, out)
	res, err := checkers.MakeArena(conf, computer, human,
		checkers.WithRender(out),
		checkers.WithArenaLogger(logger),
	).Play()

	if tracer != nil {
		if werr := writeDot(c.String("dot"), tracer); werr != nil {
			logger.Error().Err(werr).Msg("cannot write search graph")
		}
	}
	if err != nil {
		return err
	}

	if side, ok := res.Winner(); ok {
		fmt.Fprintf(out, "%v wins\nGame Over\n", side)
	}
	think := res.Think[checkers.Computer]
	fmt.Fprintf(out, "AI steps: %d, mean think time %v (sd %v)\n", think.Moves, think.Mean, think.StdDev)
	return nil
}

func writeDot(filename string, t *minimax.DotTracer) error {
	if err := t.Err(); err != nil {
		return err
	}
	return errors.WithStack(os.WriteFile(filename, []byte(t.String()), 0644))
}

func arena(c *cli.Context) error {
	conf, logger, err := setup(c)
	if err != nil {
		return err
	}

	seed := c.Int64("seed")
	wins := map[game.Outcome]int{}
	var stalled int
	var mean time.Duration
	for i := 0; i < c.Int("games"); i++ {
		computer := checkers.NewComputerAgent(conf.Search, logger)
		random := checkers.NewRandomAgent(checkers.Human, seed)
		if seed != 0 {
			seed++
		}

		res, err := checkers.MakeArena(conf, computer, random, checkers.WithArenaLogger(logger)).Play()
		switch {
		case game.IsNoLegalMoves(err):
			stalled++
			logger.Info().Int("game", i).Err(err).Msg("stalled")
			continue
		case err != nil:
			return err
		}
		wins[res.Outcome]++
		mean += res.Think[checkers.Computer].Mean
		logger.Info().Int("game", i).Stringer("outcome", res.Outcome).Int("plies", res.Plies).Msg("finished")
	}

	out := c.App.Writer
	decided := wins[game.BlackWon] + wins[game.WhiteWon]
	fmt.Fprintf(out, "computer %d, random %d, stalled %d\n", wins[game.BlackWon], wins[game.WhiteWon], stalled)
	if decided > 0 {
		fmt.Fprintf(out, "mean computer think time %v\n", mean/time.Duration(decided))
	}
	return nil
}

func perft(c *cli.Context) error {
	conf, _, err := setup(c)
	if err != nil {
		return err
	}
	b := conf.NewBoard()
	out := c.App.Writer
	if err = console.Render(out, b); err != nil {
		return err
	}
	for d := 1; d <= c.Int("plies"); d++ {
		start := time.Now()
		n := game.Perft(b, d)
		fmt.Fprintf(out, "plies %d: %d (%v)\n", d, n, time.Since(start))
	}
	return nil
}
