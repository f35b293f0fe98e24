package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/lox/schafkopf/internal/display"
	"github.com/lox/schafkopf/internal/game"
	"github.com/lox/schafkopf/internal/record"
)

// ReplayCmd replays a game record through the engine and prints the result.
type ReplayCmd struct {
	File  string `arg:"" type:"existingfile" help:"Game record (TOML)"`
	Moves int    `help:"Stop after this many recorded moves (0 = all)"`
	Seat  int    `default:"-1" help:"Show the game as this seat sees it"`

	out io.Writer `kong:"-"`
}

func (cmd *ReplayCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	r, err := record.Load(cmd.File)
	if err != nil {
		return err
	}
	if cmd.Seat >= r.Players {
		return fmt.Errorf("seat %d does not exist at a %d player table", cmd.Seat, r.Players)
	}
	partial := cmd.Moves > 0 && cmd.Moves < len(r.Actions)
	if partial {
		r.Actions = r.Actions[:cmd.Moves]
	}

	rules := cfg.Rules
	rules.MaxRounds = r.MaxRounds
	e := game.New(game.WithRules(rules), game.WithLogger(logger))

	s, err := record.Replay(e, r)
	if err != nil {
		return fmt.Errorf("replaying %s: %w", cmd.File, err)
	}
	logger.Info("Replayed game", "game", r.Game, "moves", s.Moves, "rounds", len(s.RoundSummaries))

	if !partial && len(r.Scores) > 0 {
		scores := make([]int, len(s.Players))
		for i, p := range s.Players {
			scores[i] = p.Score
		}
		if !slices.Equal(scores, r.Scores) {
			return fmt.Errorf("recorded scores %v but replay gives %v, were other rules used?", r.Scores, scores)
		}
	}

	view := s
	if cmd.Seat >= 0 {
		view = game.Project(s, cmd.Seat)
	}
	_, err = fmt.Fprintf(writer(cmd.out), "%s\n%s\n", display.State(view), display.Rounds(s.RoundSummaries))
	return err
}
