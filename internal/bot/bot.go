// Package bot provides simple agents that pick moves for a seat. They are
// used by the simulator and to stand in for players that time out.
package bot

import (
	"fmt"
	rand "math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/lox/schafkopf/internal/game"
)

// Decision is a chosen move together with a short explanation for logs.
type Decision struct {
	Move      game.Move
	Reasoning string
}

// Bot chooses one of the legal moves of a seat. The state passed in is the
// seat's own view of the game, legal is never empty.
type Bot interface {
	Choose(view *game.GameState, player int, legal []game.Move) Decision
}

// Kinds lists the bot names accepted by New.
func Kinds() []string {
	return []string{"rand", "pass", "greedy"}
}

// New creates a bot by name. Bots that need randomness draw from rng.
func New(kind string, rng *rand.Rand, logger *log.Logger) (Bot, error) {
	switch kind {
	case "rand":
		return NewRandBot(rng, logger), nil
	case "pass":
		return NewPassBot(logger), nil
	case "greedy":
		return NewGreedyBot(logger), nil
	default:
		return nil, fmt.Errorf("unknown bot %q (want one of %v)", kind, Kinds())
	}
}

// ParseMix turns a comma separated list of bot names into one bot per seat.
// A single name is used for every seat.
func ParseMix(names []string, seats int, rng *rand.Rand, logger *log.Logger) ([]Bot, error) {
	switch {
	case len(names) == 0:
		names = []string{"rand"}
	case len(names) != 1 && len(names) != seats:
		return nil, fmt.Errorf("got %d bots for %d seats", len(names), seats)
	}
	bots := make([]Bot, seats)
	for i := range bots {
		name := names[0]
		if len(names) == seats {
			name = names[i]
		}
		b, err := New(name, rng, logger)
		if err != nil {
			return nil, err
		}
		bots[i] = b
	}
	return bots, nil
}

// find returns the first legal move matching ok.
func find(legal []game.Move, ok func(game.Move) bool) (game.Move, bool) {
	i := slices.IndexFunc(legal, ok)
	if i < 0 {
		return game.Move{}, false
	}
	return legal[i], true
}
