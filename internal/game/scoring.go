package game

import (
	"cmp"
	"slices"

	"github.com/lox/schafkopf/internal/deck"
)

// ScoreRound computes the summary of a finished round. The scoring deltas
// always sum to zero and CardPoints sums to the points of all played cards.
func ScoreRound(s *GameState, rules Rules) RoundSummary {
	n := s.NumPlayers()
	sum := RoundSummary{
		Round:      s.Round(),
		Contract:   s.Contract,
		TrumpSuit:  s.TrumpSuit,
		TakerID:    s.TakerID,
		PartnerID:  NoPlayer,
		CardPoints: make([]int, n),
		Tricks:     make([]int, n),
		Scoring:    make([]int, n),
		Tout:       s.Tout,
		Contra:     s.Contra,
	}
	if s.CalledTakerID != NoPlayer && s.CalledTakerID != s.TakerID {
		sum.PartnerID = s.CalledTakerID
	}
	members := []int{s.TakerID}
	if sum.PartnerID != NoPlayer {
		members = append(members, sum.PartnerID)
	}
	onSide := func(id int) bool { return slices.Contains(members, id) }

	for _, t := range s.ResolvedTricks {
		sum.CardPoints[t.WinnerID] += rules.Points.Sum(t.Cards)
		sum.Tricks[t.WinnerID]++
	}

	var takerPoints, takerTricks, otherPoints, otherTricks int
	for i := range n {
		if onSide(i) {
			takerPoints += sum.CardPoints[i]
			takerTricks += sum.Tricks[i]
		} else {
			otherPoints += sum.CardPoints[i]
			otherTricks += sum.Tricks[i]
		}
	}

	switch {
	case s.Contract == ContractBettel:
		sum.TakerWon = takerTricks == 0
	case s.Tout:
		sum.TakerWon = otherTricks == 0
	default:
		sum.TakerWon = takerPoints >= rules.WinThreshold
	}

	tariff := rules.Tariffs[s.Contract]
	value := tariff.Base
	if s.Contract != ContractBettel {
		loserPoints, loserTricks := otherPoints, otherTricks
		if !sum.TakerWon {
			loserPoints, loserTricks = takerPoints, takerTricks
		}
		if loserPoints <= rules.SchneiderThreshold {
			sum.Schneider = true
			value += rules.SchneiderBonus
		}
		if loserTricks == 0 {
			sum.Schwarz = true
			value += rules.SchwarzBonus
		}
		if runners := countRunners(s, onSide); tariff.MinRunners > 0 && runners >= tariff.MinRunners {
			sum.Runners = runners
			value += runners * rules.RunnerValue
		}
	}
	if s.Tout {
		value *= rules.ToutMultiplier
	}
	if s.Contra {
		value *= rules.ContraMultiplier
	}
	sum.Value = value

	sign := 1
	if !sum.TakerWon {
		sign = -1
	}
	opponents := n - len(members)
	for i := range n {
		if !onSide(i) {
			sum.Scoring[i] = -sign * value
		}
	}
	total := sign * value * opponents
	share := total / len(members)
	for _, m := range members {
		sum.Scoring[m] = share
	}
	sum.Scoring[s.TakerID] += total - share*len(members)

	return sum
}

// countRunners counts the unbroken run of top trumps held by one side at the
// deal. Cards are traced back through the tricks they were played to.
func countRunners(s *GameState, onSide func(int) bool) int {
	n := s.NumPlayers()
	owner := make(map[deck.Card]int)
	for _, t := range s.ResolvedTricks {
		for i, c := range t.Cards {
			owner[c] = t.PlayedBy(i, n)
		}
	}
	for i, c := range s.Trick.Cards {
		owner[c] = s.Trick.PlayedBy(i, n)
	}
	for _, p := range s.Players {
		for _, c := range p.Hand {
			owner[c] = p.ID
		}
	}

	all, err := deck.NewSorted(n)
	if err != nil {
		violate("%v", err)
	}
	trumps := filterCards(all, func(c deck.Card) bool { return IsTrump(s.Contract, s.TrumpSuit, c) })
	if len(trumps) == 0 {
		return 0
	}
	slices.SortFunc(trumps, func(a, b deck.Card) int {
		return cmp.Compare(CardRank(s.Contract, s.TrumpSuit, b), CardRank(s.Contract, s.TrumpSuit, a))
	})

	top, ok := owner[trumps[0]]
	if !ok {
		return 0
	}
	side := onSide(top)
	runners := 0
	for _, c := range trumps {
		id, ok := owner[c]
		if !ok || onSide(id) != side {
			break
		}
		runners++
	}
	return runners
}
