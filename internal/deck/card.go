package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit. The numeric order is also the order in which
// Obers and Unters of different suits rank against each other.
type Suit int

const (
	Schell Suit = iota
	Herz
	Gras
	Eichel
)

// NoSuit marks the absence of a suit (no trump suit, hidden card).
const NoSuit Suit = -1

// Suits lists the playable suits in deck order.
var Suits = []Suit{Schell, Herz, Gras, Eichel}

// String returns the name of a suit
func (s Suit) String() string {
	switch s {
	case Schell:
		return "Schell"
	case Herz:
		return "Herz"
	case Gras:
		return "Gras"
	case Eichel:
		return "Eichel"
	case NoSuit:
		return "-"
	default:
		return "?"
	}
}

// Letter returns the single letter used in card notation
func (s Suit) Letter() string {
	switch s {
	case Schell:
		return "S"
	case Herz:
		return "H"
	case Gras:
		return "G"
	case Eichel:
		return "E"
	default:
		return "?"
	}
}

// Valid reports whether s is one of the four playable suits.
func (s Suit) Valid() bool {
	return s >= Schell && s <= Eichel
}

// ParseSuit accepts a suit name or its letter, case insensitive.
func ParseSuit(s string) (Suit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "s", "schell", "schellen":
		return Schell, nil
	case "h", "herz":
		return Herz, nil
	case "g", "gras", "gruen", "grün":
		return Gras, nil
	case "e", "eichel":
		return Eichel, nil
	case "-", "none", "":
		return NoSuit, nil
	}
	return NoSuit, fmt.Errorf("invalid suit: %q", s)
}

// Value is the rank of a card within its suit.
type Value int

const (
	Seven Value = iota + 7
	Eight
	Nine
	Ten
	Unter
	Ober
	King
	Ace
)

// String returns the notation symbol of a value
func (v Value) String() string {
	switch v {
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "X"
	case Unter:
		return "U"
	case Ober:
		return "O"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Card is a single card. Cards are values and never change once dealt.
type Card struct {
	Suit  Suit
	Value Value
}

// Hidden is the placeholder shown in place of cards a viewer may not see.
var Hidden = Card{Suit: NoSuit, Value: 0}

// NewCard creates a new card
func NewCard(suit Suit, value Value) Card {
	return Card{Suit: suit, Value: value}
}

// IsHidden reports whether c is the placeholder card.
func (c Card) IsHidden() bool {
	return c == Hidden
}

// String returns the notation of a card, suit letter first (e.g. "EO", "HX")
func (c Card) String() string {
	if c.IsHidden() {
		return "??"
	}
	return c.Suit.Letter() + c.Value.String()
}

// ParseCard parses a card in "EO" / "H10" / "sa" notation.
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card: %q", s)
	}
	suit, err := ParseSuit(s[:1])
	if err != nil || suit == NoSuit {
		return Card{}, fmt.Errorf("invalid card suit: %q", s)
	}

	var v Value
	switch s[1:] {
	case "7":
		v = Seven
	case "8":
		v = Eight
	case "9":
		v = Nine
	case "X", "10", "T":
		v = Ten
	case "U":
		v = Unter
	case "O":
		v = Ober
	case "K":
		v = King
	case "A":
		v = Ace
	default:
		return Card{}, fmt.Errorf("invalid card value: %q", s)
	}
	return NewCard(suit, v), nil
}

// ParseCards parses a whitespace or comma separated list of cards.
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' })
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards is ParseCards for fixtures; it panics on bad input.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}
