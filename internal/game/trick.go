package game

import (
	"github.com/lox/schafkopf/internal/deck"
)

// TrickWinner returns the seat that takes trick t. When no trump was played
// only cards of the led suit can win.
func TrickWinner(contract Contract, trump deck.Suit, t Trick, numPlayers int) int {
	if len(t.Cards) == 0 {
		violate("cannot resolve an empty trick")
	}

	ranks := make([]int, len(t.Cards))
	trumped := false
	for i, c := range t.Cards {
		ranks[i] = CardRank(contract, trump, c)
		if ranks[i] >= TrumpTier {
			trumped = true
		}
	}
	if !trumped {
		lead := t.Cards[0].Suit
		for i, c := range t.Cards {
			if c.Suit != lead {
				ranks[i] = -1
			}
		}
	}

	best := 0
	for i, r := range ranks {
		if r > ranks[best] {
			best = i
		}
	}
	return t.PlayedBy(best, numPlayers)
}

// resolveTrick closes the current trick and opens the next one, led by the
// winner. It reports whether the round is over.
func (e *Engine) resolveTrick(s *GameState) bool {
	if len(s.Trick.Cards) == 0 {
		violate("cannot resolve an empty trick")
	}

	lead := s.Trick.Cards[0]
	if s.Contract == ContractAce && s.CalledCard != nil && s.CalledMayRun == RunEligible &&
		lead.Suit == s.CalledCard.Suit && !IsTrump(s.Contract, s.TrumpSuit, lead) {
		s.CalledMayRun = RunForfeited
	}

	winner := TrickWinner(s.Contract, s.TrumpSuit, s.Trick, s.NumPlayers())
	s.Trick.WinnerID = winner
	s.ResolvedTricks = append(s.ResolvedTricks, s.Trick)
	s.Trick = newTrick(winner)

	e.logger.Debug("Trick resolved",
		"trick", len(s.ResolvedTricks),
		"winner", winner,
		"cards", s.ResolvedTricks[len(s.ResolvedTricks)-1].Cards)

	if s.Contract == ContractBettel && s.Players[winner].IsTaker {
		return true
	}
	for _, p := range s.Players {
		if len(p.Hand) > 0 {
			return false
		}
	}
	return true
}

// endTrick is the placement exit hook: resolve, and score when the round is over.
func (e *Engine) endTrick(s *GameState) {
	if !e.resolveTrick(s) {
		return
	}
	summary := ScoreRound(s, e.rules)
	s.RoundSummaries = append(s.RoundSummaries, summary)
	for i := range s.Players {
		s.Players[i].Score += summary.Scoring[i]
		s.Players[i].IsReady = false
	}
	e.logger.Debug("Round scored",
		"round", summary.Round,
		"contract", summary.Contract,
		"taker", summary.TakerID,
		"won", summary.TakerWon,
		"value", summary.Value)
}
