package bot

import (
	"slices"

	"github.com/charmbracelet/log"

	"github.com/lox/schafkopf/internal/game"
)

// PassBot never takes a contract and otherwise plays the move a timed out
// player would be given.
type PassBot struct {
	logger *log.Logger
}

// NewPassBot creates a new PassBot instance
func NewPassBot(logger *log.Logger) *PassBot {
	return &PassBot{logger: logger.WithPrefix("pass-bot")}
}

func (p *PassBot) Choose(view *game.GameState, player int, legal []game.Move) Decision {
	if m, ok := game.DefaultMove(view, player); ok && contains(legal, m) {
		return Decision{Move: m, Reasoning: "pass-bot default move"}
	}
	p.logger.Debug("Default move unavailable", "player", player, "phase", view.Phase)
	return Decision{Move: legal[0], Reasoning: "pass-bot fallback"}
}

func contains(legal []game.Move, m game.Move) bool {
	return slices.ContainsFunc(legal, func(l game.Move) bool {
		return l.Kind == m.Kind && l.Bid == m.Bid && l.Suit == m.Suit &&
			l.Card == m.Card && l.Tout == m.Tout && slices.Equal(l.Cards, m.Cards)
	})
}
