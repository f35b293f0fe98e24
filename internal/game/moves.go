package game

import (
	"fmt"
	"strings"

	"github.com/lox/schafkopf/internal/deck"
)

// MoveKind identifies a move
type MoveKind int

const (
	MoveMakeBid MoveKind = iota
	MoveSelectCards
	MoveSelectTrumpSuit
	MoveCall
	MoveAnnounceTout
	MoveGiveContra
	MoveFinish
)

// String returns the string representation of a move kind
func (k MoveKind) String() string {
	switch k {
	case MoveMakeBid:
		return "MakeBid"
	case MoveSelectCards:
		return "SelectCards"
	case MoveSelectTrumpSuit:
		return "SelectTrumpSuit"
	case MoveCall:
		return "Call"
	case MoveAnnounceTout:
		return "AnnounceTout"
	case MoveGiveContra:
		return "GiveContra"
	case MoveFinish:
		return "Finish"
	default:
		return fmt.Sprintf("MoveKind(%d)", int(k))
	}
}

// Move is a single move submitted on behalf of a player. Only the payload
// field matching Kind is read.
type Move struct {
	Kind  MoveKind
	Bid   Contract
	Cards []deck.Card
	Suit  deck.Suit
	Card  deck.Card
	Tout  bool
}

func MakeBid(c Contract) Move {
	return Move{Kind: MoveMakeBid, Bid: c}
}

func SelectCards(cards ...deck.Card) Move {
	return Move{Kind: MoveSelectCards, Cards: cards}
}

func SelectTrumpSuit(s deck.Suit) Move {
	return Move{Kind: MoveSelectTrumpSuit, Suit: s}
}

func Call(c deck.Card) Move {
	return Move{Kind: MoveCall, Card: c}
}

func AnnounceTout(tout bool) Move {
	return Move{Kind: MoveAnnounceTout, Tout: tout}
}

func GiveContra() Move {
	return Move{Kind: MoveGiveContra}
}

func Finish() Move {
	return Move{Kind: MoveFinish}
}

func (m Move) String() string {
	switch m.Kind {
	case MoveMakeBid:
		return fmt.Sprintf("%s(%s)", m.Kind, m.Bid)
	case MoveSelectCards:
		cards := make([]string, len(m.Cards))
		for i, c := range m.Cards {
			cards[i] = c.String()
		}
		return fmt.Sprintf("%s(%s)", m.Kind, strings.Join(cards, " "))
	case MoveSelectTrumpSuit:
		return fmt.Sprintf("%s(%s)", m.Kind, m.Suit)
	case MoveCall:
		return fmt.Sprintf("%s(%s)", m.Kind, m.Card)
	case MoveAnnounceTout:
		return fmt.Sprintf("%s(%t)", m.Kind, m.Tout)
	default:
		return m.Kind.String()
	}
}
