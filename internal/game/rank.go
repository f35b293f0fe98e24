package game

import (
	"cmp"
	"slices"

	"github.com/lox/schafkopf/internal/deck"
)

// TrumpTier is the lowest rank a trump card can have. Every non-trump card
// ranks below it.
const TrumpTier = 500

const (
	oberTier  = 1000
	unterTier = 900
)

// Order of values inside a plain suit, lowest first.
var plainOrder = map[deck.Value]int{
	deck.Seven: 1,
	deck.Eight: 2,
	deck.Nine:  3,
	deck.Unter: 4,
	deck.Ober:  5,
	deck.King:  6,
	deck.Ten:   7,
	deck.Ace:   8,
}

// Bettel drops the trumps and puts the ten back between nine and Unter.
var bettelOrder = map[deck.Value]int{
	deck.Seven: 1,
	deck.Eight: 2,
	deck.Nine:  3,
	deck.Ten:   4,
	deck.Unter: 5,
	deck.Ober:  6,
	deck.King:  7,
	deck.Ace:   8,
}

// CardRank returns the strength of a card under a contract and trump suit.
// Ranks are only comparable between cards of the same trick.
func CardRank(contract Contract, trump deck.Suit, c deck.Card) int {
	switch contract {
	case ContractBettel:
		return bettelOrder[c.Value]
	case ContractWenz:
		if c.Value == deck.Unter {
			return unterTier + int(c.Suit)
		}
	default:
		switch c.Value {
		case deck.Ober:
			return oberTier + int(c.Suit)
		case deck.Unter:
			return unterTier + int(c.Suit)
		}
	}
	if trump.Valid() && c.Suit == trump {
		return TrumpTier + plainOrder[c.Value]
	}
	return plainOrder[c.Value]
}

// IsTrump reports whether c is a trump card.
func IsTrump(contract Contract, trump deck.Suit, c deck.Card) bool {
	return CardRank(contract, trump, c) >= TrumpTier
}

// Follows reports whether c follows the lead card: trump on a trump lead,
// the same plain suit otherwise.
func Follows(contract Contract, trump deck.Suit, lead, c deck.Card) bool {
	if IsTrump(contract, trump, lead) {
		return IsTrump(contract, trump, c)
	}
	return !IsTrump(contract, trump, c) && c.Suit == lead.Suit
}

// HighestTrump returns the best trump of a contract, if it has trumps.
func HighestTrump(contract Contract) (deck.Card, bool) {
	switch contract {
	case ContractBettel:
		return deck.Card{}, false
	case ContractWenz:
		return deck.NewCard(deck.Eichel, deck.Unter), true
	}
	return deck.NewCard(deck.Eichel, deck.Ober), true
}

// SortHand orders a hand for display: trumps first, then suit by suit, each
// strongest first.
func SortHand(hand []deck.Card, contract Contract, trump deck.Suit) {
	key := func(c deck.Card) int {
		r := CardRank(contract, trump, c)
		if r >= TrumpTier {
			return 10000 + r
		}
		return int(c.Suit)*100 + r
	}
	slices.SortStableFunc(hand, func(a, b deck.Card) int {
		return cmp.Compare(key(b), key(a))
	})
}

// defaultTrump is the trump suit used to sort hands before a contract exists.
func defaultTrump(numPlayers int) deck.Suit {
	if numPlayers == 4 {
		return deck.Herz
	}
	return deck.NoSuit
}
