package game

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/lox/schafkopf/internal/deck"
)

// Engine applies moves to game states. It holds no game state itself and is
// safe for concurrent use.
type Engine struct {
	rules  Rules
	logger *log.Logger
}

// Rules returns the scoring rules the engine plays with.
func (e *Engine) Rules() Rules {
	return e.rules
}

// Setup seats numPlayers players with seat 0 as dealer and deals the first
// round from seed.
func (e *Engine) Setup(numPlayers int, seed int64) (*GameState, error) {
	if _, err := deck.Size(numPlayers); err != nil {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedPlayers, numPlayers)
	}

	s := &GameState{
		TakerID:       NoPlayer,
		CalledTakerID: NoPlayer,
		ContraBy:      NoPlayer,
		TrumpSuit:     deck.NoSuit,
		Trick:         newTrick(NoPlayer),
		Players:       make([]Player, numPlayers),
		Seed:          seed,
	}
	for i := range s.Players {
		s.Players[i] = Player{ID: i, IsDealer: i == 0, IsReady: true}
	}
	e.enter(s, PhaseBidding)
	e.logger.Debug("Game set up", "players", numPlayers, "seed", seed)
	return s, nil
}

// Setup is a shorthand for New().Setup.
func Setup(numPlayers int, seed int64) (*GameState, error) {
	return New().Setup(numPlayers, seed)
}

// Apply validates m on behalf of player and returns the resulting state,
// with every phase transition it triggers already run. The given state is
// never modified; on rejection it is returned together with a *MoveError.
func (e *Engine) Apply(s *GameState, player int, m Move) (*GameState, error) {
	if err := e.check(s, player, m); err != nil {
		e.logger.Debug("Move rejected", "player", player, "move", m, "error", err)
		return s, err
	}

	next := s.Clone()
	turnEnded := e.perform(next, player, m)
	next.Moves++
	e.settle(next, turnEnded)
	return next, nil
}

func (e *Engine) check(s *GameState, player int, m Move) error {
	if s.GameOver {
		return illegal(m.Kind, player, "game is over")
	}
	if player < 0 || player >= s.NumPlayers() {
		return illegal(m.Kind, player, "no such player")
	}
	if !e.phase(s.Phase).allows(s.Stage, m.Kind) {
		return illegal(m.Kind, player, "not allowed in phase %s, stage %s", s.Phase, s.Stage)
	}

	switch m.Kind {
	case MoveMakeBid:
		return e.checkBid(s, player, m.Bid)
	case MoveSelectCards:
		return checkSelect(s, player, m.Cards)
	case MoveSelectTrumpSuit:
		return checkTrumpSuit(s, player, m.Suit)
	case MoveCall:
		return checkCall(s, player, m.Card)
	case MoveAnnounceTout:
		return checkTaker(MoveAnnounceTout, s, player)
	case MoveGiveContra:
		return checkContra(s, player)
	case MoveFinish:
		return nil
	}
	return illegal(m.Kind, player, "unknown move")
}

// perform applies a validated move and reports whether it ends the turn of
// the current player.
func (e *Engine) perform(s *GameState, player int, m Move) bool {
	switch m.Kind {
	case MoveMakeBid:
		s.Players[player].Bid = m.Bid
		return true
	case MoveSelectCards:
		selectCards(s, player, m.Cards)
		return true
	case MoveSelectTrumpSuit:
		s.TrumpSuit = m.Suit
		s.Stage = StageNone
		return true
	case MoveCall:
		card := m.Card
		s.CalledCard = &card
		s.Stage = StageNone
		return true
	case MoveAnnounceTout:
		s.Tout = m.Tout
		s.Stage = StageNone
		return true
	case MoveGiveContra:
		s.Contra = true
		s.ContraBy = player
		return false
	case MoveFinish:
		s.Players[player].IsReady = true
		return false
	}
	violate("unhandled move kind %s", m.Kind)
	return false
}

// candidates lists every move of a kind the current phase could accept,
// before validation.
func candidates(s *GameState, player int, kind MoveKind) []Move {
	var out []Move
	switch kind {
	case MoveMakeBid:
		for c := ContractPass; c <= ContractSolo; c++ {
			out = append(out, MakeBid(c))
		}
	case MoveSelectCards:
		for _, c := range s.Players[player].Hand {
			out = append(out, SelectCards(c))
		}
	case MoveSelectTrumpSuit:
		for _, suit := range deck.Suits {
			out = append(out, SelectTrumpSuit(suit))
		}
	case MoveCall:
		for _, suit := range deck.Suits {
			out = append(out, Call(deck.NewCard(suit, deck.Ace)))
		}
	case MoveAnnounceTout:
		out = append(out, AnnounceTout(true), AnnounceTout(false))
	case MoveGiveContra:
		out = append(out, GiveContra())
	case MoveFinish:
		out = append(out, Finish())
	}
	return out
}

// LegalMoves returns every move Apply would accept from player in s.
func (e *Engine) LegalMoves(s *GameState, player int) []Move {
	if s.GameOver || player < 0 || player >= s.NumPlayers() {
		return nil
	}
	spec := e.phase(s.Phase)
	kinds := append([]MoveKind(nil), spec.moves...)
	if k, ok := spec.stages[s.Stage]; ok {
		kinds = append(kinds, k)
	}

	var legal []Move
	for _, kind := range kinds {
		for _, m := range candidates(s, player, kind) {
			if e.check(s, player, m) == nil {
				legal = append(legal, m)
			}
		}
	}
	return legal
}

// CurrentActors returns the players the game is waiting for or who may
// act out of turn. During the round end these are the players that have not
// acknowledged yet.
func (e *Engine) CurrentActors(s *GameState) []int {
	if s.GameOver {
		return nil
	}
	var actors []int
	for i, p := range s.Players {
		if s.Phase == PhaseRoundEnd {
			if !p.IsReady {
				actors = append(actors, i)
			}
			continue
		}
		if len(e.LegalMoves(s, i)) > 0 {
			actors = append(actors, i)
		}
	}
	return actors
}

// NextActor picks the player to move next: the player whose turn it is when
// they may act, otherwise the first of CurrentActors. It returns NoPlayer
// when nobody can move.
func (e *Engine) NextActor(s *GameState) int {
	actors := e.CurrentActors(s)
	if len(actors) == 0 {
		return NoPlayer
	}
	if slices.Contains(actors, s.CurrentPlayer) {
		return s.CurrentPlayer
	}
	return actors[0]
}

// DefaultMove returns the move submitted for a player who ran out of time:
// a pass while bidding, the cheapest stage answer, the first playable card,
// or the round end acknowledgment. It reports false when the player owes
// no move.
func DefaultMove(s *GameState, player int) (Move, bool) {
	if s.GameOver || player < 0 || player >= s.NumPlayers() {
		return Move{}, false
	}

	switch s.Phase {
	case PhaseBidding:
		if player == s.CurrentPlayer {
			return MakeBid(ContractPass), true
		}
	case PhaseDiscard:
		if player != s.TakerID {
			return Move{}, false
		}
		switch s.Stage {
		case StageSelectTrump:
			return SelectTrumpSuit(longestSuit(s.Players[player].Hand)), true
		case StageCallCard:
			if aces := callableAces(s.Players[player].Hand); len(aces) > 0 {
				return Call(aces[0]), true
			}
		case StageAnnounceTout:
			return AnnounceTout(false), true
		}
	case PhasePlacement:
		if player == s.CurrentPlayer {
			if playable := PlayableCards(s, player); len(playable) > 0 {
				return SelectCards(playable[0]), true
			}
		}
	case PhaseRoundEnd:
		if !s.Players[player].IsReady {
			return Finish(), true
		}
	}
	return Move{}, false
}

// longestSuit returns the suit with most cards in hand, ignoring Obers and
// Unters. Ties go to the higher suit.
func longestSuit(hand []deck.Card) deck.Suit {
	counts := make(map[deck.Suit]int)
	for _, c := range hand {
		if c.Value != deck.Ober && c.Value != deck.Unter {
			counts[c.Suit]++
		}
	}
	best := deck.Eichel
	for _, suit := range deck.Suits {
		if counts[suit] >= counts[best] {
			best = suit
		}
	}
	return best
}
