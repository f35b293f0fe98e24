package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/schafkopf/internal/deck"
	"github.com/lox/schafkopf/internal/game"
	"github.com/lox/schafkopf/internal/statistics"
)

func TestCards(t *testing.T) {
	t.Parallel()
	assert.Contains(t, Card(deck.NewCard(deck.Eichel, deck.Ober)), "EO")
	assert.Contains(t, Cards(deck.MustParseCards("HA SX")), "HA")
	assert.Contains(t, Cards(deck.MustParseCards("HA SX")), "SX")
	assert.Contains(t, Cards(nil), "-")
	assert.Equal(t, "p2", Seat(2))
	assert.Equal(t, "-", Seat(game.NoPlayer))
}

func TestRules(t *testing.T) {
	t.Parallel()
	rules := game.DefaultRules()
	rules.Tariffs[game.ContractBettel] = game.Tariff{Base: 40}
	out := Rules(rules)

	for _, want := range []string{"ace", "bettel", "40", "wenz", "solo", "Win threshold: 61", "x2", "unlimited"} {
		assert.Contains(t, out, want)
	}

	rules.MaxRounds = 12
	assert.Contains(t, Rules(rules), "Rounds: 12")
}

func TestRounds(t *testing.T) {
	t.Parallel()
	assert.Contains(t, Rounds(nil), "no rounds played")

	out := Rounds([]game.RoundSummary{{
		Round:     1,
		Contract:  game.ContractSolo,
		TrumpSuit: deck.Gras,
		TakerID:   2,
		PartnerID: game.NoPlayer,
		TakerWon:  true,
		Schneider: true,
		Runners:   3,
		Value:     90,
		Scoring:   []int{-90, -90, 270, -90},
	}})
	for _, want := range []string{"solo", "Gras", "p2", "won", "schneider", "3 runners", "270", "-90"} {
		assert.Contains(t, out, want)
	}
}

func TestState(t *testing.T) {
	t.Parallel()
	s, err := game.Setup(4, 11)
	require.NoError(t, err)

	out := State(s)
	assert.Contains(t, out, "Round 1")
	assert.Contains(t, out, "p0 (dealer)")
	for _, c := range s.Players[3].Hand {
		assert.Contains(t, out, c.String())
	}

	s.GameOver = true
	assert.Contains(t, State(s), "Game over")
}

func TestStatistics(t *testing.T) {
	t.Parallel()
	stats := &statistics.Statistics{}
	stats.Add(statistics.GameResult{
		Players: 4,
		Deals:   3,
		Scores:  []int{150, -50, -50, -50},
		Rounds: []game.RoundSummary{{
			Contract: game.ContractWenz, TakerID: 0, PartnerID: game.NoPlayer,
			TakerWon: true, Value: 50, Scoring: []int{150, -50, -50, -50},
		}},
	})

	out := Statistics(stats, "rand")
	for _, want := range []string{"Simulation vs rand", "1 (0 abandoned)", "2 redeals", "100.0%", "wenz", "150"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "do not sum to zero")

	stats.Seats[1] = 0
	assert.Contains(t, Statistics(stats, "rand"), "do not sum to zero")
}
