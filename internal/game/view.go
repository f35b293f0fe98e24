package game

import (
	"github.com/lox/schafkopf/internal/deck"
)

// Project returns the state as viewer is allowed to see it. Once the game is
// over, or for a spectator during the round end, the full state is returned.
// Otherwise other players' hands and the undealt deck are replaced by hidden
// cards of the same count, the partnership of an ace contract is withheld
// from everybody but the called partner, and every resolved trick except
// the last keeps only its leader and winner.
//
// The returned state is a copy; projecting never modifies s.
func Project(s *GameState, viewer int) *GameState {
	v := s.Clone()
	if s.GameOver || (viewer == Spectator && s.Phase == PhaseRoundEnd) {
		return v
	}

	v.Seed = 0
	for i := range v.Players {
		if i == viewer {
			continue
		}
		v.Players[i].Hand = hiddenCards(len(v.Players[i].Hand))
	}
	v.Deck = hiddenCards(len(v.Deck))

	if viewer != s.CalledTakerID || viewer == NoPlayer {
		v.CalledTakerID = NoPlayer
		v.CalledMayRun = RunUnset
	}

	for i := 0; i < len(v.ResolvedTricks)-1; i++ {
		t := v.ResolvedTricks[i]
		v.ResolvedTricks[i] = Trick{LeaderID: t.LeaderID, WinnerID: t.WinnerID}
	}
	return v
}

func hiddenCards(n int) []deck.Card {
	if n == 0 {
		return nil
	}
	out := make([]deck.Card, n)
	for i := range out {
		out[i] = deck.Hidden
	}
	return out
}
