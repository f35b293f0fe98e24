package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/lox/schafkopf/internal/deck"
	"github.com/lox/schafkopf/internal/randutil"
)

func testEngine(opts ...Option) *Engine {
	opts = append([]Option{WithLogger(log.NewWithOptions(io.Discard, log.Options{}))}, opts...)
	return New(opts...)
}

func cards(s string) []deck.Card {
	return deck.MustParseCards(s)
}

func card(s string) deck.Card {
	c, err := deck.ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

// placementState builds a four player state in the middle of a round with
// seat 0 as dealer and taker.
func placementState(contract Contract, trump deck.Suit, leader int, hands ...string) *GameState {
	s := &GameState{
		Phase:         PhasePlacement,
		CurrentPlayer: leader,
		Contract:      contract,
		TrumpSuit:     trump,
		TakerID:       0,
		CalledTakerID: NoPlayer,
		ContraBy:      NoPlayer,
		Trick:         newTrick(leader),
		Players:       make([]Player, len(hands)),
		Seed:          1,
		Deals:         1,
	}
	for i, h := range hands {
		s.Players[i] = Player{
			ID:       i,
			Hand:     cards(h),
			IsDealer: i == 0,
			IsTaker:  i == 0,
			IsReady:  true,
		}
	}
	return s
}

func mustApply(t *testing.T, e *Engine, s *GameState, player int, m Move) *GameState {
	t.Helper()
	next, err := e.Apply(s, player, m)
	require.NoError(t, err, "player %d move %s in phase %s", player, m, s.Phase)
	return next
}

// playRandomly drives a game with uniformly chosen legal moves, calling
// check after every committed move. It stops at game over or after limit
// moves.
func playRandomly(t *testing.T, e *Engine, s *GameState, seed int64, limit int, check func(*GameState)) *GameState {
	t.Helper()
	rng := randutil.New(seed)
	for range limit {
		if s.GameOver {
			return s
		}
		actors := e.CurrentActors(s)
		require.NotEmpty(t, actors, "nobody can move in phase %s stage %s", s.Phase, s.Stage)

		player := actors[rng.IntN(len(actors))]
		moves := e.LegalMoves(s, player)
		require.NotEmpty(t, moves)

		s = mustApply(t, e, s, player, moves[rng.IntN(len(moves))])
		check(s)
	}
	return s
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
