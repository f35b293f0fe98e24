package game

import (
	"github.com/lox/schafkopf/internal/deck"
)

// DiscardStage picks the single sub-stage the discard phase runs for a
// contract. StageNone means the phase ends without a move.
func DiscardStage(contract Contract, takerHand []deck.Card) Stage {
	switch contract {
	case ContractSolo:
		return StageSelectTrump
	case ContractAce:
		return StageCallCard
	case ContractBettel:
		return StageNone
	}
	if top, ok := HighestTrump(contract); ok && deck.Contains(takerHand, top) {
		return StageAnnounceTout
	}
	return StageNone
}

// callableAces lists the aces a hand may call in an ace contract: not trump,
// not held, and backed by at least one card of the suit.
func callableAces(hand []deck.Card) []deck.Card {
	var aces []deck.Card
	for _, suit := range deck.Suits {
		ace := deck.NewCard(suit, deck.Ace)
		if IsTrump(ContractAce, deck.Herz, ace) || deck.Contains(hand, ace) {
			continue
		}
		for _, c := range hand {
			if c.Suit == suit && !IsTrump(ContractAce, deck.Herz, c) {
				aces = append(aces, ace)
				break
			}
		}
	}
	return aces
}

func (e *Engine) beginDiscard(s *GameState) {
	s.Stage = DiscardStage(s.Contract, s.Players[s.TakerID].Hand)
	e.logger.Debug("Discard stage", "stage", s.Stage, "taker", s.TakerID)
}

func discardDone(s *GameState) bool {
	return s.Stage == StageNone
}

func checkTaker(kind MoveKind, s *GameState, player int) error {
	if player != s.TakerID {
		return illegal(kind, player, "only the taker may do this")
	}
	return nil
}

func checkTrumpSuit(s *GameState, player int, suit deck.Suit) error {
	if err := checkTaker(MoveSelectTrumpSuit, s, player); err != nil {
		return err
	}
	if !suit.Valid() {
		return invalid(MoveSelectTrumpSuit, player, "suit %s out of range", suit)
	}
	return nil
}

func checkCall(s *GameState, player int, card deck.Card) error {
	if err := checkTaker(MoveCall, s, player); err != nil {
		return err
	}
	for _, ace := range callableAces(s.Players[player].Hand) {
		if ace == card {
			return nil
		}
	}
	return invalid(MoveCall, player, "cannot call %s", card)
}

// calledTaker returns the holder of the called card, or the taker when
// nobody holds it.
func calledTaker(s *GameState, card deck.Card) int {
	for i, p := range s.Players {
		if deck.Contains(p.Hand, card) {
			return i
		}
	}
	return s.TakerID
}

// endDiscard fixes the partnership of an ace contract and re-sorts hands for
// the final trump.
func (e *Engine) endDiscard(s *GameState) {
	if s.CalledCard != nil {
		called := *s.CalledCard
		s.CalledTakerID = calledTaker(s, called)

		suited := 0
		for _, c := range s.Players[s.CalledTakerID].Hand {
			if c.Suit == called.Suit && !IsTrump(s.Contract, s.TrumpSuit, c) {
				suited++
			}
		}
		s.CalledMayRun = RunUnset
		if suited >= 4 {
			s.CalledMayRun = RunEligible
		}
	}
	for i := range s.Players {
		SortHand(s.Players[i].Hand, s.Contract, s.TrumpSuit)
	}
}
