package statistics

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/lox/schafkopf/internal/game"
)

// GameResult is the outcome of one simulated game
type GameResult struct {
	Seed    int64
	Players int
	Deals   int   // deals including redeals after everybody passed
	Moves   int   // accepted moves
	Scores  []int // final score per seat
	Rounds  []game.RoundSummary

	Unfinished bool // abandoned before the round limit
}

// ResultOf extracts the result of a finished game.
func ResultOf(s *game.GameState) GameResult {
	r := GameResult{
		Seed:    s.Seed,
		Players: s.NumPlayers(),
		Deals:   s.Deals,
		Moves:   s.Moves,
		Scores:  make([]int, s.NumPlayers()),
		Rounds:  slices.Clone(s.RoundSummaries),
	}
	for i, p := range s.Players {
		r.Scores[i] = p.Score
	}
	return r
}

// ContractStats tracks the rounds played under one contract
type ContractStats struct {
	Rounds    int
	TakerWins int
	Schneider int
	Schwarz   int
	Tout      int
	Contra    int
	SumValue  int
}

// WinRate returns the share of rounds the taker side won
func (c ContractStats) WinRate() float64 {
	if c.Rounds == 0 {
		return 0
	}
	return float64(c.TakerWins) / float64(c.Rounds)
}

// Statistics aggregates simulated games. Values holds the taker's score
// delta of every round.
type Statistics struct {
	Games      int
	Unfinished int
	Rounds     int
	Deals      int
	Moves      int
	SumV       float64
	SumV2      float64 // sum of squares for variance calculation
	Values     []float64
	Seats      []int       // total score per seat, summed over games
	Players    map[int]int // games per table size

	Contracts map[game.Contract]*ContractStats
}

// Add incorporates a game result into the statistics
func (s *Statistics) Add(result GameResult) {
	s.Games++
	if result.Unfinished {
		s.Unfinished++
	}
	s.Deals += result.Deals
	s.Moves += result.Moves
	if s.Players == nil {
		s.Players = make(map[int]int)
	}
	s.Players[result.Players]++
	for len(s.Seats) < len(result.Scores) {
		s.Seats = append(s.Seats, 0)
	}
	for i, score := range result.Scores {
		s.Seats[i] += score
	}
	for _, r := range result.Rounds {
		s.addRound(r)
	}
}

func (s *Statistics) addRound(r game.RoundSummary) {
	if s.Contracts == nil {
		s.Contracts = make(map[game.Contract]*ContractStats)
	}
	cs := s.Contracts[r.Contract]
	if cs == nil {
		cs = &ContractStats{}
		s.Contracts[r.Contract] = cs
	}
	cs.Rounds++
	cs.SumValue += r.Value
	if r.TakerWon {
		cs.TakerWins++
	}
	if r.Schneider {
		cs.Schneider++
	}
	if r.Schwarz {
		cs.Schwarz++
	}
	if r.Tout {
		cs.Tout++
	}
	if r.Contra {
		cs.Contra++
	}

	v := float64(r.Scoring[r.TakerID])
	s.Rounds++
	s.SumV += v
	s.SumV2 += v * v
	s.Values = append(s.Values, v)
}

// Merge adds everything collected by other.
func (s *Statistics) Merge(other *Statistics) {
	s.Games += other.Games
	s.Unfinished += other.Unfinished
	s.Deals += other.Deals
	s.Moves += other.Moves
	s.Rounds += other.Rounds
	s.SumV += other.SumV
	s.SumV2 += other.SumV2
	s.Values = append(s.Values, other.Values...)
	for len(s.Seats) < len(other.Seats) {
		s.Seats = append(s.Seats, 0)
	}
	for i, v := range other.Seats {
		s.Seats[i] += v
	}
	if len(other.Players) > 0 && s.Players == nil {
		s.Players = make(map[int]int)
	}
	for n, games := range other.Players {
		s.Players[n] += games
	}
	if len(other.Contracts) > 0 && s.Contracts == nil {
		s.Contracts = make(map[game.Contract]*ContractStats)
	}
	for c, o := range other.Contracts {
		cs := s.Contracts[c]
		if cs == nil {
			cs = &ContractStats{}
			s.Contracts[c] = cs
		}
		cs.Rounds += o.Rounds
		cs.TakerWins += o.TakerWins
		cs.Schneider += o.Schneider
		cs.Schwarz += o.Schwarz
		cs.Tout += o.Tout
		cs.Contra += o.Contra
		cs.SumValue += o.SumValue
	}
}

// Redeals returns how many deals were thrown in because everybody passed
func (s *Statistics) Redeals() int {
	return s.Deals - s.Rounds
}

// Contract returns the stats of a contract, zero when it was never played
func (s *Statistics) Contract(c game.Contract) ContractStats {
	if cs := s.Contracts[c]; cs != nil {
		return *cs
	}
	return ContractStats{}
}

// TakerWinRate returns the share of rounds won by the taker side
func (s *Statistics) TakerWinRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	wins := 0
	for _, cs := range s.Contracts {
		wins += cs.TakerWins
	}
	return float64(wins) / float64(s.Rounds)
}

// Mean returns the mean taker result per round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.SumV / float64(s.Rounds)
}

// Variance returns the sample variance of the taker results
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumV2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation of the taker results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median taker result
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := slices.Clone(s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// IsLedgerBalanced reports whether the seat totals sum to zero
func (s *Statistics) IsLedgerBalanced() bool {
	total := 0
	for _, v := range s.Seats {
		total += v
	}
	return total == 0
}

// Validate checks that the collected numbers are consistent
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: seat totals %v do not sum to zero", s.Seats)
	}
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	if len(s.Values) != s.Rounds {
		return fmt.Errorf("values array length (%d) does not match rounds count (%d)", len(s.Values), s.Rounds)
	}
	if s.Deals < s.Rounds {
		return fmt.Errorf("more rounds (%d) than deals (%d)", s.Rounds, s.Deals)
	}
	rounds := 0
	for c, cs := range s.Contracts {
		if !c.Playable() {
			return fmt.Errorf("round scored under %s", c)
		}
		if cs.TakerWins > cs.Rounds {
			return fmt.Errorf("%s: taker wins (%d) exceed rounds (%d)", c, cs.TakerWins, cs.Rounds)
		}
		rounds += cs.Rounds
	}
	if rounds != s.Rounds {
		return fmt.Errorf("contract rounds total (%d) does not match rounds (%d)", rounds, s.Rounds)
	}
	return nil
}
