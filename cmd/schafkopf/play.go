package main

import (
	"fmt"
	"io"
	rand "math/rand/v2"
	"time"

	"github.com/lox/schafkopf/internal/bot"
	"github.com/lox/schafkopf/internal/display"
	"github.com/lox/schafkopf/internal/game"
	"github.com/lox/schafkopf/internal/randutil"
	"github.com/lox/schafkopf/internal/record"
	"github.com/lox/schafkopf/internal/session"
)

// PlayCmd seats bots at a live table and prints the game as it goes.
type PlayCmd struct {
	Players     int           `short:"p" help:"Players at the table (3 or 4), defaults to the rules file"`
	Seed        int64         `help:"Deal seed (0 picks one at random)"`
	Rounds      int           `default:"1" help:"Rounds to play"`
	Bots        []string      `short:"b" default:"greedy" sep:"," help:"One bot for every seat or one per seat (${bots})"`
	TurnTimeout time.Duration `name:"turn-timeout" help:"Force the default move when a seat takes longer than this (0 = off)"`
	Think       time.Duration `help:"Delay before every bot move"`
	Seat        int           `default:"-1" help:"Show the final table as this seat sees it"`
	Record      string        `type:"path" help:"Save the game record to this file"`
	MaxMoves    int           `name:"max-moves" default:"5000" help:"Stop after this many moves"`

	out io.Writer `kong:"-"`
}

func (cmd *PlayCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	players := cmd.Players
	if players == 0 {
		players = cfg.Players
	}
	if cmd.Seat >= players {
		return fmt.Errorf("seat %d does not exist at a %d player table", cmd.Seat, players)
	}
	seed := cmd.Seed
	if seed == 0 {
		seed = rand.Int64N(1 << 31)
		logger.Info("Using random seed", "seed", seed)
	}

	bots, err := bot.ParseMix(cmd.Bots, players, randutil.New(seed), logger)
	if err != nil {
		return err
	}

	rules := cfg.Rules
	rules.MaxRounds = cmd.Rounds
	e := game.New(game.WithRules(rules), game.WithLogger(logger))
	table, err := session.New(players, seed,
		session.WithEngine(e),
		session.WithLogger(logger),
		session.WithTimeout(cmd.TurnTimeout),
	)
	if err != nil {
		return err
	}
	defer table.Close()

	ctx, cancel := signalContext(logger)
	defer cancel()

	w := writer(cmd.out)
	shown := 0
	for moves := 0; ; moves++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		s := table.Snapshot()
		if len(s.RoundSummaries) > shown {
			fmt.Fprintln(w, display.Rounds(s.RoundSummaries[shown:]))
			shown = len(s.RoundSummaries)
		}
		if s.GameOver {
			break
		}
		if moves >= cmd.MaxMoves {
			logger.Warn("Move limit reached, stopping", "moves", moves)
			break
		}

		player, d, err := nextMove(e, s, bots)
		if err != nil {
			return err
		}
		if cmd.Think > 0 {
			select {
			case <-time.After(cmd.Think):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if _, err := table.Submit(player, d.Move); err != nil {
			if table.Snapshot() != s {
				// the turn timer moved first
				continue
			}
			return err
		}
		logger.Debug("Move", "player", player, "move", record.FormatMove(player, d.Move), "reason", d.Reasoning)
	}

	forced := 0
	for _, entry := range table.Log() {
		if entry.Forced {
			forced++
		}
	}
	if forced > 0 {
		logger.Warn("Moves forced by the turn timer", "count", forced)
	}

	final := table.Snapshot()
	if cmd.Seat >= 0 {
		final = table.View(cmd.Seat)
	}
	fmt.Fprintln(w, display.State(final))

	if cmd.Record != "" {
		if err := record.Save(cmd.Record, table.Record()); err != nil {
			return err
		}
		logger.Info("Saved game record", "file", cmd.Record, "table", table.ID())
	}
	return nil
}

// nextMove asks the bot of the seat the game waits on for its move.
func nextMove(e *game.Engine, s *game.GameState, bots []bot.Bot) (int, bot.Decision, error) {
	player := e.NextActor(s)
	if player == game.NoPlayer {
		return player, bot.Decision{}, fmt.Errorf("nobody can move in phase %s", s.Phase)
	}
	return player, bots[player].Choose(game.Project(s, player), player, e.LegalMoves(s, player)), nil
}
