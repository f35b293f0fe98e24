package main

import (
	"fmt"
	"io"
	rand "math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/lox/schafkopf/internal/display"
	"github.com/lox/schafkopf/internal/simulator"
)

// SimulateCmd plays bot games and prints a statistics report.
type SimulateCmd struct {
	Games    int           `short:"n" default:"100" help:"Number of games to play"`
	Rounds   int           `help:"Rounds per game, overrides max_rounds of the rules file"`
	Players  int           `short:"p" help:"Players per table (3 or 4), defaults to the rules file"`
	Seed     int64         `help:"Base seed, game i is played with seed+i (0 picks one at random)"`
	Workers  int           `short:"w" help:"Games played in parallel (0 = one per CPU)"`
	Bots     []string      `short:"b" default:"rand" sep:"," help:"One bot for every seat or one per seat (${bots})"`
	Records  string        `type:"path" help:"Directory to save a record of every game in"`
	MaxMoves int           `name:"max-moves" help:"Abandon games still running after this many moves (0 = default)"`
	Timeout  time.Duration `default:"1m" help:"Time limit per game"`

	out io.Writer `kong:"-"`
}

func (cmd *SimulateCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	players := cmd.Players
	if players == 0 {
		players = cfg.Players
	}
	seed := cmd.Seed
	if seed == 0 {
		seed = rand.Int64N(1 << 31)
		logger.Info("Using random seed", "seed", seed)
	}
	if cmd.Records != "" {
		if err := os.MkdirAll(cmd.Records, 0o755); err != nil {
			return fmt.Errorf("creating record directory: %w", err)
		}
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	sim := simulator.New(simulator.Config{
		Games:     cmd.Games,
		Rounds:    cmd.Rounds,
		Players:   players,
		Seed:      seed,
		Workers:   cmd.Workers,
		Bots:      cmd.Bots,
		Rules:     &cfg.Rules,
		MaxMoves:  cmd.MaxMoves,
		Timeout:   cmd.Timeout,
		RecordDir: cmd.Records,
		Logger:    logger,
	})

	start := time.Now()
	logger.Info("Starting simulation", "games", cmd.Games, "players", players, "rounds", sim.Rules().MaxRounds, "bots", strings.Join(cmd.Bots, ","))
	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	logger.Info("Simulation complete", "duration", time.Since(start).Round(time.Millisecond))

	_, err = fmt.Fprintln(writer(cmd.out), display.Statistics(stats, strings.Join(cmd.Bots, ",")))
	return err
}
