package deck

import (
	"fmt"
	rand "math/rand/v2"
	"slices"
)

// HandSize is the number of cards dealt to each player.
const HandSize = 8

// Size returns the deck size for a supported player count.
func Size(numPlayers int) (int, error) {
	switch numPlayers {
	case 3:
		return 24, nil
	case 4:
		return 32, nil
	}
	return 0, fmt.Errorf("unsupported player count: %d", numPlayers)
}

// NewSorted builds the ordered, suit-grouped deck for the player count:
// 7 to Ace per suit for four players, 9 to Ace for three.
func NewSorted(numPlayers int) ([]Card, error) {
	size, err := Size(numPlayers)
	if err != nil {
		return nil, err
	}
	lowest := Seven
	if numPlayers == 3 {
		lowest = Nine
	}

	cards := make([]Card, 0, size)
	for _, suit := range Suits {
		for v := lowest; v <= Ace; v++ {
			cards = append(cards, NewCard(suit, v))
		}
	}
	return cards, nil
}

// Shuffle returns a shuffled copy of cards drawn from rng. The input is left
// untouched.
func Shuffle(cards []Card, rng *rand.Rand) []Card {
	if rng == nil {
		panic("rng is required for shuffling")
	}
	shuffled := slices.Clone(cards)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// Deal splits cards into numPlayers hands of HandSize and returns the hands
// together with the undealt remainder.
func Deal(cards []Card, numPlayers int) ([][]Card, []Card, error) {
	if numPlayers*HandSize > len(cards) {
		return nil, nil, fmt.Errorf("cannot deal %d hands of %d from %d cards", numPlayers, HandSize, len(cards))
	}
	hands := make([][]Card, numPlayers)
	for i := range hands {
		hands[i] = slices.Clone(cards[i*HandSize : (i+1)*HandSize])
	}
	return hands, slices.Clone(cards[numPlayers*HandSize:]), nil
}

// Contains reports whether c is in cards.
func Contains(cards []Card, c Card) bool {
	return slices.Contains(cards, c)
}

// Remove returns cards without the first occurrence of c.
func Remove(cards []Card, c Card) []Card {
	i := slices.Index(cards, c)
	if i < 0 {
		return cards
	}
	return slices.Delete(slices.Clone(cards), i, i+1)
}
