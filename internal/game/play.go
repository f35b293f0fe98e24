package game

import (
	"slices"

	"github.com/lox/schafkopf/internal/deck"
)

// PlayableCards returns the cards player may put on the current trick.
// Constraints are applied in order and each one is dropped when it would
// leave nothing to play.
func PlayableCards(s *GameState, player int) []deck.Card {
	hand := s.Players[player].Hand
	if len(hand) == 0 {
		return nil
	}

	playable := hand
	if len(s.Trick.Cards) > 0 {
		lead := s.Trick.Cards[0]
		following := filterCards(hand, func(c deck.Card) bool {
			return Follows(s.Contract, s.TrumpSuit, lead, c)
		})
		if len(following) > 0 {
			playable = following
		}
	}

	if s.CalledCard != nil && deck.Contains(playable, *s.CalledCard) {
		if restricted := calledCardRule(s, playable); len(restricted) > 0 {
			playable = restricted
		}
	}
	return slices.Clone(playable)
}

// calledCardRule applies the duties of the player holding the called ace:
// it must fall when its suit is led, it may not be thrown off on another
// suit before that, and it must be led unless the partner may still run.
func calledCardRule(s *GameState, playable []deck.Card) []deck.Card {
	called := *s.CalledCard
	isCalledSuit := func(c deck.Card) bool {
		return c.Suit == called.Suit && !IsTrump(s.Contract, s.TrumpSuit, c)
	}

	if len(s.Trick.Cards) == 0 {
		if s.CalledMayRun == RunEligible || calledSuitLed(s) {
			return playable
		}
		return filterCards(playable, func(c deck.Card) bool {
			return c == called || !isCalledSuit(c)
		})
	}

	if isCalledSuit(s.Trick.Cards[0]) {
		return []deck.Card{called}
	}
	if !calledSuitLed(s) {
		return filterCards(playable, func(c deck.Card) bool { return c != called })
	}
	return playable
}

// calledSuitLed reports whether a trick of the called suit has been led this round.
func calledSuitLed(s *GameState) bool {
	called := *s.CalledCard
	for _, t := range s.ResolvedTricks {
		lead := t.Cards[0]
		if lead.Suit == called.Suit && !IsTrump(s.Contract, s.TrumpSuit, lead) {
			return true
		}
	}
	return false
}

func filterCards(cards []deck.Card, keep func(deck.Card) bool) []deck.Card {
	var out []deck.Card
	for _, c := range cards {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// checkSelect validates a SelectCards move. In placement exactly one card is
// played; in discard the taker lays away whatever exceeds a full hand.
func checkSelect(s *GameState, player int, cards []deck.Card) error {
	if player != s.CurrentPlayer {
		return illegal(MoveSelectCards, player, "not your turn, waiting for player %d", s.CurrentPlayer)
	}
	hand := s.Players[player].Hand

	want := 1
	if s.Phase == PhaseDiscard {
		want = len(hand) - deck.HandSize
		if want <= 0 {
			return illegal(MoveSelectCards, player, "nothing to discard")
		}
	}
	if len(cards) != want {
		return invalid(MoveSelectCards, player, "selected %d cards, want %d", len(cards), want)
	}

	seen := make(map[deck.Card]bool, len(cards))
	for _, c := range cards {
		if seen[c] {
			return invalid(MoveSelectCards, player, "%s selected twice", c)
		}
		seen[c] = true
		if !deck.Contains(hand, c) {
			return invalid(MoveSelectCards, player, "%s is not in hand", c)
		}
	}

	if s.Phase == PhasePlacement {
		if len(s.Trick.Cards) >= s.NumPlayers() {
			violate("trick already holds %d cards", len(s.Trick.Cards))
		}
		if !deck.Contains(PlayableCards(s, player), cards[0]) {
			return invalid(MoveSelectCards, player, "%s may not be played on this trick", cards[0])
		}
	}
	return nil
}

func selectCards(s *GameState, player int, cards []deck.Card) {
	p := &s.Players[player]
	for _, c := range cards {
		p.Hand = deck.Remove(p.Hand, c)
	}
	if s.Phase == PhaseDiscard {
		s.Deck = append(s.Deck, cards...)
		return
	}
	s.Trick.Cards = append(s.Trick.Cards, cards[0])
}

func checkContra(s *GameState, player int) error {
	switch {
	case s.OnTakerSide(player):
		return illegal(MoveGiveContra, player, "only opponents of the taker may give contra")
	case s.Contra:
		return illegal(MoveGiveContra, player, "contra already given by player %d", s.ContraBy)
	case len(s.ResolvedTricks) > 0:
		return illegal(MoveGiveContra, player, "contra is only possible before the first trick is taken")
	}
	return nil
}

func trickFull(s *GameState) bool {
	return len(s.Trick.Cards) == s.NumPlayers()
}

func afterTrick(s *GameState) Phase {
	for _, p := range s.Players {
		if !p.IsReady {
			return PhaseRoundEnd
		}
	}
	return PhasePlacement
}
