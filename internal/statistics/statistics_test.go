package statistics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/schafkopf/internal/game"
)

func solo(taker int, won bool, value int) game.RoundSummary {
	sign := 1
	if !won {
		sign = -1
	}
	scoring := []int{-sign * value, -sign * value, -sign * value, -sign * value}
	scoring[taker] = 3 * sign * value
	return game.RoundSummary{
		Contract:  game.ContractSolo,
		TakerID:   taker,
		PartnerID: game.NoPlayer,
		TakerWon:  won,
		Value:     value,
		Scoring:   scoring,
	}
}

func result(rounds ...game.RoundSummary) GameResult {
	r := GameResult{Players: 4, Deals: len(rounds) + 1, Moves: 40 * len(rounds), Scores: make([]int, 4), Rounds: rounds}
	for _, round := range rounds {
		for i, v := range round.Scoring {
			r.Scores[i] += v
		}
	}
	return r
}

func TestStatistics_Empty(t *testing.T) {
	t.Parallel()
	stats := &Statistics{}
	assert.Zero(t, stats.Mean())
	assert.Zero(t, stats.Variance())
	assert.Zero(t, stats.StdDev())
	assert.Zero(t, stats.StdError())
	assert.Zero(t, stats.Median())
	assert.Zero(t, stats.Percentile(0.5))
	assert.Zero(t, stats.TakerWinRate())
	assert.Equal(t, ContractStats{}, stats.Contract(game.ContractWenz))
	assert.ErrorContains(t, stats.Validate(), "invalid games count")
}

func TestStatistics_SingleGame(t *testing.T) {
	t.Parallel()
	stats := &Statistics{}
	stats.Add(result(solo(1, true, 60)))

	assert.Equal(t, 1, stats.Games)
	assert.Equal(t, 1, stats.Rounds)
	assert.Equal(t, 1, stats.Redeals())
	assert.Equal(t, []int{-60, 180, -60, -60}, stats.Seats)
	assert.Equal(t, 180.0, stats.Mean())
	assert.Zero(t, stats.Variance())
	assert.Equal(t, 180.0, stats.Median())
	assert.Equal(t, 1.0, stats.TakerWinRate())
	assert.Equal(t, map[int]int{4: 1}, stats.Players)
	assert.True(t, stats.IsLedgerBalanced())
	require.NoError(t, stats.Validate())
}

func TestStatistics_MultipleGames(t *testing.T) {
	t.Parallel()
	stats := &Statistics{}
	bettel := game.RoundSummary{
		Contract: game.ContractBettel, TakerID: 0, PartnerID: game.NoPlayer,
		Value: 50, Contra: true, Scoring: []int{-300, 100, 100, 100},
	}
	stats.Add(result(solo(0, true, 50), solo(2, false, 70)))
	stats.Add(result(bettel))

	assert.Equal(t, 2, stats.Games)
	assert.Equal(t, 3, stats.Rounds)
	assert.Equal(t, []float64{150, -210, -300}, stats.Values)

	expectedMean := (150.0 - 210 - 300) / 3
	assert.InDelta(t, expectedMean, stats.Mean(), 1e-9)
	variance := (math.Pow(150-expectedMean, 2) + math.Pow(-210-expectedMean, 2) + math.Pow(-300-expectedMean, 2)) / 2
	assert.InDelta(t, variance, stats.Variance(), 1e-6)
	assert.InDelta(t, math.Sqrt(variance)/math.Sqrt(3), stats.StdError(), 1e-6)
	assert.Equal(t, -210.0, stats.Median())
	assert.Equal(t, -300.0, stats.Percentile(0))
	assert.Equal(t, 150.0, stats.Percentile(1))
	assert.InDelta(t, -255.0, stats.Percentile(0.25), 1e-9)

	s := stats.Contract(game.ContractSolo)
	assert.Equal(t, 2, s.Rounds)
	assert.Equal(t, 1, s.TakerWins)
	assert.Equal(t, 120, s.SumValue)
	assert.Equal(t, 0.5, s.WinRate())
	assert.Equal(t, 1, stats.Contract(game.ContractBettel).Contra)
	assert.InDelta(t, 1.0/3, stats.TakerWinRate(), 1e-9)

	low, high := stats.ConfidenceInterval95()
	assert.Less(t, low, stats.Mean())
	assert.Greater(t, high, stats.Mean())
	require.NoError(t, stats.Validate())
}

func TestStatistics_Merge(t *testing.T) {
	t.Parallel()
	games := []GameResult{
		result(solo(0, true, 50)),
		result(solo(3, false, 60), solo(1, true, 70)),
		{Players: 3, Deals: 2, Scores: make([]int, 3)},
	}

	all := &Statistics{}
	for _, g := range games {
		all.Add(g)
	}

	a, b := &Statistics{}, &Statistics{}
	a.Add(games[0])
	b.Add(games[1])
	b.Add(games[2])
	merged := &Statistics{}
	merged.Merge(a)
	merged.Merge(b)

	assert.Equal(t, all.Games, merged.Games)
	assert.Equal(t, all.Rounds, merged.Rounds)
	assert.Equal(t, all.Seats, merged.Seats)
	assert.Equal(t, all.Players, merged.Players)
	assert.Equal(t, all.Contract(game.ContractSolo), merged.Contract(game.ContractSolo))
	assert.ElementsMatch(t, all.Values, merged.Values)
	assert.InDelta(t, all.Variance(), merged.Variance(), 1e-9)
	require.NoError(t, merged.Validate())
}

func TestStatistics_Validate(t *testing.T) {
	t.Parallel()
	stats := &Statistics{}
	stats.Add(result(solo(0, true, 50)))

	stats.Seats[0]++
	assert.ErrorContains(t, stats.Validate(), "ledger mismatch")
	stats.Seats[0]--

	stats.Values = append(stats.Values, 1)
	assert.ErrorContains(t, stats.Validate(), "values array length")
	stats.Values = stats.Values[:1]

	stats.Contracts[game.ContractPass] = &ContractStats{Rounds: 1}
	assert.ErrorContains(t, stats.Validate(), "round scored under pass")
}

func TestResultOf(t *testing.T) {
	t.Parallel()
	s, err := game.Setup(4, 3)
	require.NoError(t, err)
	s.Players[2].Score = 40
	s.Players[3].Score = -40
	s.RoundSummaries = []game.RoundSummary{solo(0, true, 10)}

	r := ResultOf(s)
	assert.Equal(t, int64(3), r.Seed)
	assert.Equal(t, 4, r.Players)
	assert.Equal(t, []int{0, 0, 40, -40}, r.Scores)
	require.Len(t, r.Rounds, 1)

	s.RoundSummaries[0].Value = 99
	assert.Equal(t, 10, r.Rounds[0].Value, "result does not alias the state")
}
