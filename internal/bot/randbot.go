package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/schafkopf/internal/game"
)

// RandBot picks a uniformly random legal move.
type RandBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandBot creates a new RandBot instance
func NewRandBot(rng *rand.Rand, logger *log.Logger) *RandBot {
	return &RandBot{rng: rng, logger: logger.WithPrefix("rand-bot")}
}

func (r *RandBot) Choose(_ *game.GameState, player int, legal []game.Move) Decision {
	m := legal[r.rng.IntN(len(legal))]
	r.logger.Debug("Chose move", "player", player, "move", m, "options", len(legal))
	return Decision{Move: m, Reasoning: "rand-bot random move"}
}
