package record

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/schafkopf/internal/deck"
	"github.com/lox/schafkopf/internal/game"
)

// FormatMove renders a move in record notation: the seat as "p<n>", a verb
// and its arguments, e.g. "p1 bid solo" or "p2 play EO".
func FormatMove(player int, m game.Move) string {
	seat := fmt.Sprintf("p%d", player)
	switch m.Kind {
	case game.MoveMakeBid:
		return fmt.Sprintf("%s bid %s", seat, m.Bid)
	case game.MoveSelectCards:
		cards := make([]string, len(m.Cards))
		for i, c := range m.Cards {
			cards[i] = c.String()
		}
		return fmt.Sprintf("%s play %s", seat, strings.Join(cards, " "))
	case game.MoveSelectTrumpSuit:
		return fmt.Sprintf("%s trump %s", seat, strings.ToLower(m.Suit.String()))
	case game.MoveCall:
		return fmt.Sprintf("%s call %s", seat, m.Card)
	case game.MoveAnnounceTout:
		if m.Tout {
			return seat + " tout yes"
		}
		return seat + " tout no"
	case game.MoveGiveContra:
		return seat + " contra"
	case game.MoveFinish:
		return seat + " finish"
	}
	return fmt.Sprintf("# %s %s", seat, m)
}

// ParseMove parses a move written by FormatMove.
func ParseMove(s string) (int, game.Move, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return 0, game.Move{}, fmt.Errorf("record: malformed action %q", s)
	}
	player, err := parseSeat(fields[0])
	if err != nil {
		return 0, game.Move{}, fmt.Errorf("record: %q: %w", s, err)
	}

	verb, args := fields[1], fields[2:]
	m, err := parseVerb(verb, args)
	if err != nil {
		return 0, game.Move{}, fmt.Errorf("record: %q: %w", s, err)
	}
	return player, m, nil
}

func parseSeat(s string) (int, error) {
	if !strings.HasPrefix(s, "p") {
		return 0, fmt.Errorf("invalid seat %q", s)
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid seat %q", s)
	}
	return n, nil
}

func parseVerb(verb string, args []string) (game.Move, error) {
	want := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("%s takes %d argument(s), got %d", verb, n, len(args))
		}
		return nil
	}

	switch verb {
	case "bid":
		if err := want(1); err != nil {
			return game.Move{}, err
		}
		c, err := game.ParseContract(args[0])
		if err != nil {
			return game.Move{}, err
		}
		return game.MakeBid(c), nil
	case "play":
		if len(args) == 0 {
			return game.Move{}, fmt.Errorf("play needs at least one card")
		}
		cards, err := deck.ParseCards(strings.Join(args, " "))
		if err != nil {
			return game.Move{}, err
		}
		return game.SelectCards(cards...), nil
	case "trump":
		if err := want(1); err != nil {
			return game.Move{}, err
		}
		suit, err := deck.ParseSuit(args[0])
		if err != nil {
			return game.Move{}, err
		}
		return game.SelectTrumpSuit(suit), nil
	case "call":
		if err := want(1); err != nil {
			return game.Move{}, err
		}
		c, err := deck.ParseCard(args[0])
		if err != nil {
			return game.Move{}, err
		}
		return game.Call(c), nil
	case "tout":
		if err := want(1); err != nil {
			return game.Move{}, err
		}
		switch args[0] {
		case "yes":
			return game.AnnounceTout(true), nil
		case "no":
			return game.AnnounceTout(false), nil
		}
		return game.Move{}, fmt.Errorf("tout takes yes or no, got %q", args[0])
	case "contra":
		if err := want(0); err != nil {
			return game.Move{}, err
		}
		return game.GiveContra(), nil
	case "finish":
		if err := want(0); err != nil {
			return game.Move{}, err
		}
		return game.Finish(), nil
	}
	return game.Move{}, fmt.Errorf("unknown action %q", verb)
}
