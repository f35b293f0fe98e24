package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/schafkopf/internal/bot"
	"github.com/lox/schafkopf/internal/game"
	"github.com/lox/schafkopf/internal/randutil"
)

func globals(t *testing.T, rules string) *Globals {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schafkopf.hcl")
	if rules != "" {
		require.NoError(t, os.WriteFile(path, []byte(rules), 0o644))
	}
	return &Globals{Config: path, LogLevel: "error"}
}

func TestParseFlags(t *testing.T) {
	t.Parallel()
	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test", "bots": "rand, pass, greedy"})
	require.NoError(t, err)

	ctx, err := parser.Parse([]string{"--log-level", "debug", "simulate", "-n", "5", "-b", "rand,pass,rand,greedy", "--timeout", "10s"})
	require.NoError(t, err)
	assert.Equal(t, "simulate", ctx.Command())
	assert.Equal(t, 5, cli.Simulate.Games)
	assert.Equal(t, []string{"rand", "pass", "rand", "greedy"}, cli.Simulate.Bots)
	assert.Equal(t, 10*time.Second, cli.Simulate.Timeout)
	assert.Equal(t, "debug", cli.LogLevel)
}

func TestRulesCommand(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, (&RulesCmd{out: &buf}).Run(globals(t, "")))
	assert.Contains(t, buf.String(), "Win threshold: 61")

	buf.Reset()
	require.NoError(t, (&RulesCmd{out: &buf}).Run(globals(t, "win_threshold = 70\nmax_rounds = 8\n")))
	assert.Contains(t, buf.String(), "Win threshold: 70")
	assert.Contains(t, buf.String(), "Rounds: 8")

	g := globals(t, "")
	g.LogLevel = "loud"
	assert.Error(t, (&RulesCmd{out: &buf}).Run(g))

	assert.Error(t, (&RulesCmd{out: &buf}).Run(globals(t, "players = 5\n")))
}

func TestSimulateAndReplay(t *testing.T) {
	t.Parallel()
	g := globals(t, "")
	records := filepath.Join(t.TempDir(), "records")

	var buf bytes.Buffer
	sim := &SimulateCmd{
		Games:   3,
		Rounds:  1,
		Seed:    9,
		Bots:    []string{"rand"},
		Records: records,
		Timeout: time.Minute,
		out:     &buf,
	}
	require.NoError(t, sim.Run(g))
	assert.Contains(t, buf.String(), "Simulation vs rand")
	assert.Contains(t, buf.String(), "3 (0 abandoned)")

	entries, err := os.ReadDir(records)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	file := filepath.Join(records, entries[0].Name())

	buf.Reset()
	require.NoError(t, (&ReplayCmd{File: file, Seat: -1, out: &buf}).Run(g))
	assert.Contains(t, buf.String(), "Game over after 1 rounds")

	buf.Reset()
	require.NoError(t, (&ReplayCmd{File: file, Seat: 2, Moves: 3, out: &buf}).Run(g))
	assert.Contains(t, buf.String(), "Round 1")
	assert.Contains(t, buf.String(), "??", "other hands are hidden")

	assert.ErrorContains(t, (&ReplayCmd{File: file, Seat: 4, out: &buf}).Run(g), "seat 4 does not exist")

	// Different rules give different scores than the ones recorded.
	other := globals(t, "bonuses {\n  schneider = 40\n  schwarz = 40\n}\ntariff \"ace\" {\n  base = 30\n}\ntariff \"solo\" {\n  base = 70\n}\ntariff \"wenz\" {\n  base = 70\n}\ntariff \"bettel\" {\n  base = 70\n}\n")
	assert.ErrorContains(t, (&ReplayCmd{File: file, Seat: -1, out: &buf}).Run(other), "recorded scores")
}

func TestPlay(t *testing.T) {
	t.Parallel()
	g := globals(t, "")
	file := filepath.Join(t.TempDir(), "game.toml")

	var buf bytes.Buffer
	play := &PlayCmd{
		Players:  4,
		Seed:     21,
		Rounds:   2,
		Bots:     []string{"greedy", "rand"},
		Seat:     1,
		Record:   file,
		MaxMoves: 5000,
		out:      &buf,
	}
	assert.ErrorContains(t, play.Run(g), "got 2 bots for 4 seats")

	play.Bots = []string{"greedy", "rand", "greedy", "rand"}
	buf.Reset()
	require.NoError(t, play.Run(g))
	assert.Contains(t, buf.String(), "Game over after 2 rounds")

	buf.Reset()
	require.NoError(t, (&ReplayCmd{File: file, Seat: -1, out: &buf}).Run(g))
	assert.Contains(t, buf.String(), "Game over after 2 rounds")

	play.Seat = 4
	assert.ErrorContains(t, play.Run(g), "seat 4 does not exist")
}

func TestNextMove(t *testing.T) {
	t.Parallel()
	e := game.New()
	s, err := e.Setup(4, 5)
	require.NoError(t, err)
	bots, err := bot.ParseMix([]string{"pass"}, 4, randutil.New(5), log.New(io.Discard))
	require.NoError(t, err)

	player, d, err := nextMove(e, s, bots)
	require.NoError(t, err)
	assert.Equal(t, s.CurrentPlayer, player)
	assert.Equal(t, game.MakeBid(game.ContractPass), d.Move)

	s.GameOver = true
	s.CurrentPlayer = game.NoPlayer
	_, _, err = nextMove(e, s, bots)
	assert.ErrorContains(t, err, "nobody can move")
}
