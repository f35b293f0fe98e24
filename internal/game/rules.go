package game

import (
	"errors"
	"fmt"

	"github.com/lox/schafkopf/internal/deck"
)

// Tariff is the scoring entry of one contract.
type Tariff struct {
	Base       int // value of the round before bonuses
	MinRunners int // fewest runners that count, 0 disables runners
}

// Rules is the scoring table of a game. Card rankings and phase flow are
// fixed; everything that is a house rule lives here.
type Rules struct {
	Points  deck.PointTable
	Tariffs map[Contract]Tariff

	WinThreshold       int // card points the taker side needs
	SchneiderThreshold int // losers at or below this are schneider
	SchneiderBonus     int
	SchwarzBonus       int
	RunnerValue        int
	ToutMultiplier     int
	ContraMultiplier   int

	MaxRounds int // 0 plays until the caller stops
}

// DefaultRules returns the standard tariff.
func DefaultRules() Rules {
	points := make(deck.PointTable, len(deck.DefaultPoints))
	for v, p := range deck.DefaultPoints {
		points[v] = p
	}
	return Rules{
		Points: points,
		Tariffs: map[Contract]Tariff{
			ContractAce:    {Base: 10, MinRunners: 3},
			ContractBettel: {Base: 50},
			ContractWenz:   {Base: 50, MinRunners: 2},
			ContractSolo:   {Base: 50, MinRunners: 3},
		},
		WinThreshold:       61,
		SchneiderThreshold: 30,
		SchneiderBonus:     10,
		SchwarzBonus:       10,
		RunnerValue:        10,
		ToutMultiplier:     2,
		ContraMultiplier:   2,
	}
}

// Validate checks the rules for values the scoring engine cannot work with.
func (r Rules) Validate() error {
	var errs []error
	for _, c := range PlayableContracts() {
		t, ok := r.Tariffs[c]
		if !ok {
			errs = append(errs, fmt.Errorf("missing tariff for %s", c))
			continue
		}
		if t.Base <= 0 {
			errs = append(errs, fmt.Errorf("tariff %s: base must be positive", c))
		}
		if t.MinRunners < 0 {
			errs = append(errs, fmt.Errorf("tariff %s: min runners must not be negative", c))
		}
	}
	for v, p := range r.Points {
		if p < 0 {
			errs = append(errs, fmt.Errorf("card value %s: points must not be negative", v))
		}
	}
	if r.WinThreshold <= 0 {
		errs = append(errs, errors.New("win threshold must be positive"))
	}
	if r.SchneiderThreshold < 0 || r.SchneiderThreshold >= r.WinThreshold {
		errs = append(errs, errors.New("schneider threshold must be between 0 and the win threshold"))
	}
	if r.SchneiderBonus < 0 || r.SchwarzBonus < 0 || r.RunnerValue < 0 {
		errs = append(errs, errors.New("bonuses must not be negative"))
	}
	if r.ToutMultiplier < 1 || r.ContraMultiplier < 1 {
		errs = append(errs, errors.New("multipliers must be at least 1"))
	}
	if r.MaxRounds < 0 {
		errs = append(errs, errors.New("max rounds must not be negative"))
	}
	return errors.Join(errs...)
}
