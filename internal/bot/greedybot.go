package bot

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/schafkopf/internal/deck"
	"github.com/lox/schafkopf/internal/game"
)

const (
	soloTrumps = 6 // trumps needed in hand to play a solo
	wenzUnters = 3
)

// GreedyBot plays a solo or wenz on strong hands and otherwise takes tricks
// as cheaply as it can.
type GreedyBot struct {
	logger *log.Logger
}

// NewGreedyBot creates a new GreedyBot instance
func NewGreedyBot(logger *log.Logger) *GreedyBot {
	return &GreedyBot{logger: logger.WithPrefix("greedy-bot")}
}

func (g *GreedyBot) Choose(view *game.GameState, player int, legal []game.Move) Decision {
	var d Decision
	switch legal[0].Kind {
	case game.MoveMakeBid:
		d = g.bid(view.Players[player].Hand, legal)
	case game.MoveSelectTrumpSuit:
		suit := bestTrumpSuit(view.Players[player].Hand)
		d = Decision{Move: game.SelectTrumpSuit(suit), Reasoning: fmt.Sprintf("most trumps with %s", suit)}
	case game.MoveSelectCards:
		d = g.play(view, player, legal)
	default:
		d = Decision{Move: legal[0], Reasoning: "first option"}
	}
	if !contains(legal, d.Move) {
		d = Decision{Move: legal[0], Reasoning: "greedy-bot fallback"}
	}
	g.logger.Debug("Chose move", "player", player, "move", d.Move, "reasoning", d.Reasoning)
	return d
}

func (g *GreedyBot) bid(hand []deck.Card, legal []game.Move) Decision {
	isBid := func(c game.Contract) func(game.Move) bool {
		return func(m game.Move) bool { return m.Bid == c }
	}
	if trumps := soloTrumpCount(hand); trumps >= soloTrumps {
		if m, ok := find(legal, isBid(game.ContractSolo)); ok {
			return Decision{Move: m, Reasoning: fmt.Sprintf("%d trumps", trumps)}
		}
	}
	if unters := countValue(hand, deck.Unter); unters >= wenzUnters {
		if m, ok := find(legal, isBid(game.ContractWenz)); ok {
			return Decision{Move: m, Reasoning: fmt.Sprintf("%d unters", unters)}
		}
	}
	if m, ok := find(legal, isBid(game.ContractPass)); ok {
		return Decision{Move: m, Reasoning: "weak hand"}
	}
	return Decision{Move: legal[0], Reasoning: "no pass allowed"}
}

// play leads its strongest card, smears points onto a trick its side is
// winning, takes the trick with the cheapest winning card, or throws the
// least valuable card.
func (g *GreedyBot) play(view *game.GameState, player int, legal []game.Move) Decision {
	contract, trump := view.Contract, view.TrumpSuit
	rank := func(c deck.Card) int { return game.CardRank(contract, trump, c) }
	points := deck.DefaultPoints.Of

	var hand []deck.Card
	for _, m := range legal {
		if m.Kind == game.MoveSelectCards && len(m.Cards) == 1 {
			hand = append(hand, m.Cards[0])
		}
	}
	if len(hand) == 0 {
		return Decision{Move: legal[0], Reasoning: "no card to play"}
	}

	if contract == game.ContractBettel && player == view.TakerID {
		return Decision{Move: game.SelectCards(pick(hand, func(a, b deck.Card) bool { return rank(a) < rank(b) })), Reasoning: "bettel, stay low"}
	}

	trick := view.Trick
	if len(trick.Cards) == 0 {
		return Decision{Move: game.SelectCards(pick(hand, func(a, b deck.Card) bool { return rank(a) > rank(b) })), Reasoning: "lead strongest"}
	}

	lead := trick.Cards[0]
	counts := func(c deck.Card) bool {
		return game.IsTrump(contract, trump, c) || game.Follows(contract, trump, lead, c)
	}
	best, winner := lead, trick.LeaderID
	for i, c := range trick.Cards[1:] {
		if counts(c) && rank(c) > rank(best) {
			best, winner = c, trick.PlayedBy(i+1, view.NumPlayers())
		}
	}

	if sameSide(view, player, winner) {
		return Decision{Move: game.SelectCards(pick(hand, func(a, b deck.Card) bool { return points(a) > points(b) })), Reasoning: "smear onto own trick"}
	}

	var winning []deck.Card
	for _, c := range hand {
		if counts(c) && rank(c) > rank(best) {
			winning = append(winning, c)
		}
	}
	if len(winning) > 0 {
		return Decision{Move: game.SelectCards(pick(winning, func(a, b deck.Card) bool { return rank(a) < rank(b) })), Reasoning: "cheapest winner"}
	}
	return Decision{Move: game.SelectCards(pick(hand, func(a, b deck.Card) bool {
		if points(a) != points(b) {
			return points(a) < points(b)
		}
		return rank(a) < rank(b)
	})), Reasoning: "throw cheapest"}
}

// sameSide guesses teams from what the view reveals. Without the partnership
// only the taker is known.
func sameSide(view *game.GameState, a, b int) bool {
	if view.Contract == game.ContractNone || view.TakerID == game.NoPlayer {
		return a == b
	}
	return view.OnTakerSide(a) == view.OnTakerSide(b)
}

// pick returns the first card no other card is better than.
func pick(cards []deck.Card, better func(a, b deck.Card) bool) deck.Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if better(c, best) {
			best = c
		}
	}
	return best
}

func soloTrumpCount(hand []deck.Card) int {
	suit := bestTrumpSuit(hand)
	n := 0
	for _, c := range hand {
		if game.IsTrump(game.ContractSolo, suit, c) {
			n++
		}
	}
	return n
}

// bestTrumpSuit returns the suit giving most trumps, ties to the higher suit.
func bestTrumpSuit(hand []deck.Card) deck.Suit {
	best, most := deck.Eichel, -1
	for _, suit := range deck.Suits {
		n := 0
		for _, c := range hand {
			if c.Suit == suit && c.Value != deck.Ober && c.Value != deck.Unter {
				n++
			}
		}
		if n >= most {
			best, most = suit, n
		}
	}
	return best
}

func countValue(hand []deck.Card, v deck.Value) int {
	n := 0
	for _, c := range hand {
		if c.Value == v {
			n++
		}
	}
	return n
}
