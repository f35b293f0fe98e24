// Package simulator plays many bot games in parallel and checks the engine's
// conservation rules after every move.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/schafkopf/internal/bot"
	"github.com/lox/schafkopf/internal/deck"
	"github.com/lox/schafkopf/internal/game"
	"github.com/lox/schafkopf/internal/gameid"
	"github.com/lox/schafkopf/internal/randutil"
	"github.com/lox/schafkopf/internal/record"
	"github.com/lox/schafkopf/internal/statistics"
)

const (
	defaultRounds   = 4
	defaultMaxMoves = 20000
)

// Config holds configuration for running simulations
type Config struct {
	Games     int
	Rounds    int           // rounds per game, overrides Rules.MaxRounds when set
	Players   int
	Seed      int64         // game i is played with Seed+i
	Workers   int           // games played at once, GOMAXPROCS when zero
	Bots      []string      // one name for every seat, or one per seat
	Rules     *game.Rules   // defaults when nil
	MaxMoves  int           // a game still running after this many moves is abandoned
	Timeout   time.Duration // per game, no limit when zero
	RecordDir string        // save a record of every game when set
	Clock     quartz.Clock
	Logger    *log.Logger
}

// Simulator runs Schafkopf game simulations
type Simulator struct {
	config Config
	engine *game.Engine
	ids    *gameid.Generator
	logger *log.Logger
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	rules := game.DefaultRules()
	if config.Rules != nil {
		rules = *config.Rules
	}
	switch {
	case config.Rounds > 0:
		rules.MaxRounds = config.Rounds
	case rules.MaxRounds <= 0:
		rules.MaxRounds = defaultRounds
	}
	config.Rules = &rules
	if config.MaxMoves <= 0 {
		config.MaxMoves = defaultMaxMoves
	}
	logger := config.Logger.WithPrefix("simulator")
	return &Simulator{
		config: config,
		engine: game.New(game.WithRules(*config.Rules), game.WithLogger(config.Logger)),
		ids:    gameid.NewGenerator(config.Clock, randutil.New(config.Seed)),
		logger: logger,
	}
}

// Run plays every game and returns the aggregated statistics. The result is
// the same for any number of workers.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Games <= 0 {
		return nil, fmt.Errorf("invalid games count: %d", s.config.Games)
	}
	if _, err := deck.Size(s.config.Players); err != nil {
		return nil, err
	}
	if err := s.config.Rules.Validate(); err != nil {
		return nil, err
	}
	// Fail on bad bot names before starting any game.
	if _, err := bot.ParseMix(s.config.Bots, s.config.Players, randutil.New(0), s.logger); err != nil {
		return nil, err
	}

	// One Statistics per game, merged in game order so the totals do not
	// depend on which worker finished first.
	results := make([]*statistics.Statistics, s.config.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)
	for i := range s.config.Games {
		g.Go(func() error {
			r, err := s.playGame(ctx, i)
			if err != nil {
				return fmt.Errorf("game %d (seed %d): %w", i+1, s.seed(i), err)
			}
			results[i] = &statistics.Statistics{}
			results[i].Add(r)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Merge(r)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	s.logger.Info("Simulation finished", "games", stats.Games, "rounds", stats.Rounds, "unfinished", stats.Unfinished)
	return stats, nil
}

func (s *Simulator) seed(i int) int64 {
	return s.config.Seed + int64(i)
}

// playGame plays one game to its end and returns its result.
func (s *Simulator) playGame(ctx context.Context, i int) (statistics.GameResult, error) {
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	seed := s.seed(i)
	bots, err := bot.ParseMix(s.config.Bots, s.config.Players, randutil.New(seed), s.config.Logger)
	if err != nil {
		return statistics.GameResult{}, err
	}
	state, err := s.engine.Setup(s.config.Players, seed)
	if err != nil {
		return statistics.GameResult{}, err
	}
	size, _ := deck.Size(s.config.Players)

	var rec *record.Record
	if s.config.RecordDir != "" {
		rec = record.New(s.ids.Generate(), s.config.Players, seed, s.config.Clock.Now())
		rec.MaxRounds = s.config.Rules.MaxRounds
	}

	unfinished := false
	for !state.GameOver {
		if err := ctx.Err(); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return statistics.GameResult{}, fmt.Errorf("game timed out after %v at move %d", s.config.Timeout, state.Moves)
			}
			return statistics.GameResult{}, err
		}
		if state.Moves >= s.config.MaxMoves {
			s.logger.Warn("Abandoning game", "seed", seed, "moves", state.Moves, "rounds", len(state.RoundSummaries))
			unfinished = true
			break
		}

		player := s.engine.NextActor(state)
		if player == game.NoPlayer {
			return statistics.GameResult{}, fmt.Errorf("nobody can move in phase %s", state.Phase)
		}
		legal := s.engine.LegalMoves(state, player)
		d := bots[player].Choose(game.Project(state, player), player, legal)

		next, err := s.engine.Apply(state, player, d.Move)
		if err != nil {
			return statistics.GameResult{}, fmt.Errorf("bot %d chose %s (%s): %w", player, d.Move, d.Reasoning, err)
		}
		if err := checkConservation(next, size); err != nil {
			return statistics.GameResult{}, fmt.Errorf("after move %d: %w", next.Moves, err)
		}
		if rec != nil {
			rec.Append(player, d.Move)
		}
		state = next
	}

	if rec != nil {
		rec.SetResult(state)
		path := filepath.Join(s.config.RecordDir, fmt.Sprintf("game-%04d.toml", i+1))
		if err := record.Save(path, rec); err != nil {
			return statistics.GameResult{}, err
		}
	}

	result := statistics.ResultOf(state)
	result.Unfinished = unfinished
	s.logger.Debug("Game finished", "seed", seed, "rounds", len(result.Rounds), "moves", result.Moves, "scores", result.Scores)
	return result, nil
}

// checkConservation verifies that no card was lost or created and that
// scores still sum to zero.
func checkConservation(s *game.GameState, size int) error {
	if n := s.CardCount(); n != size && !s.GameOver {
		return fmt.Errorf("card count %d, want %d", n, size)
	}
	total := 0
	for _, p := range s.Players {
		total += p.Score
	}
	if total != 0 {
		return fmt.Errorf("scores sum to %d", total)
	}
	for _, r := range s.RoundSummaries {
		sum := 0
		for _, v := range r.Scoring {
			sum += v
		}
		if sum != 0 {
			return fmt.Errorf("round %d scoring sums to %d", r.Round, sum)
		}
	}
	return nil
}

// Rules returns the rules the games are played with.
func (s *Simulator) Rules() game.Rules {
	return s.engine.Rules()
}
