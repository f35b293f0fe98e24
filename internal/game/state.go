package game

import (
	"slices"

	"github.com/lox/schafkopf/internal/deck"
)

// Phase is a top level state of the round state machine.
type Phase int

const (
	PhaseBidding Phase = iota
	PhaseDiscard
	PhasePlacement
	PhaseRoundEnd
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case PhaseBidding:
		return "bidding"
	case PhaseDiscard:
		return "discard"
	case PhasePlacement:
		return "placement"
	case PhaseRoundEnd:
		return "round_end"
	default:
		return "unknown"
	}
}

// Stage is a sub-state of a phase that restricts which moves are legal.
type Stage int

const (
	StageNone Stage = iota
	StageSelectTrump
	StageCallCard
	StageAnnounceTout
	StageGetReady
)

// String returns the string representation of a stage
func (s Stage) String() string {
	switch s {
	case StageNone:
		return "none"
	case StageSelectTrump:
		return "select_trump"
	case StageCallCard:
		return "call_card"
	case StageAnnounceTout:
		return "announce_tout"
	case StageGetReady:
		return "get_ready"
	default:
		return "unknown"
	}
}

// RunState tracks whether the called partner may still run away with the
// called suit.
type RunState int

const (
	RunUnset RunState = iota
	RunEligible
	RunForfeited
)

// NoPlayer is the id used where no player is set.
const NoPlayer = -1

// Spectator is the viewer id of someone not seated at the table.
const Spectator = -2

// Player is one seat at the table.
type Player struct {
	ID       int
	Hand     []deck.Card
	Bid      Contract
	IsDealer bool
	IsTaker  bool
	IsReady  bool
	Score    int
}

// Trick holds the cards of one trick in play order. WinnerID is NoPlayer
// until the trick is resolved.
type Trick struct {
	Cards    []deck.Card
	LeaderID int
	WinnerID int
}

func newTrick(leader int) Trick {
	return Trick{LeaderID: leader, WinnerID: NoPlayer}
}

// PlayedBy returns the seat that played the i-th card of the trick.
func (t Trick) PlayedBy(i, numPlayers int) int {
	return (t.LeaderID + i) % numPlayers
}

func (t Trick) clone() Trick {
	t.Cards = slices.Clone(t.Cards)
	return t
}

// RoundSummary is the result of a completed round. Scoring always sums to zero.
type RoundSummary struct {
	Round      int
	Contract   Contract
	TrumpSuit  deck.Suit
	TakerID    int
	PartnerID  int
	CardPoints []int // points captured per player
	Tricks     []int // tricks won per player
	TakerWon   bool
	Schneider  bool
	Schwarz    bool
	Runners    int
	Tout       bool
	Contra     bool
	Value      int
	Scoring    []int // score delta per player
}

func (r RoundSummary) clone() RoundSummary {
	r.CardPoints = slices.Clone(r.CardPoints)
	r.Tricks = slices.Clone(r.Tricks)
	r.Scoring = slices.Clone(r.Scoring)
	return r
}

// GameState is the complete authoritative state of a game. The engine never
// mutates a state it was handed; every move produces a new one.
type GameState struct {
	Phase         Phase
	Stage         Stage
	CurrentPlayer int

	Contract      Contract
	TrumpSuit     deck.Suit
	TakerID       int
	CalledCard    *deck.Card
	CalledTakerID int
	CalledMayRun  RunState
	Tout          bool
	Contra        bool
	ContraBy      int

	Deck           []deck.Card
	Trick          Trick
	ResolvedTricks []Trick
	RoundSummaries []RoundSummary
	Players        []Player

	Seed     int64 // shuffles are derived from it, hidden from players
	Deals    int
	Moves    int
	GameOver bool
}

// NumPlayers returns the number of seats
func (s *GameState) NumPlayers() int {
	return len(s.Players)
}

// Dealer returns the seat of the dealer
func (s *GameState) Dealer() int {
	for i, p := range s.Players {
		if p.IsDealer {
			return i
		}
	}
	violate("no dealer at the table")
	return NoPlayer
}

// Round returns the 1-based number of the round being played.
func (s *GameState) Round() int {
	return len(s.RoundSummaries) + 1
}

// OnTakerSide reports whether id plays with the taker this round.
func (s *GameState) OnTakerSide(id int) bool {
	return id != NoPlayer && (id == s.TakerID || id == s.CalledTakerID)
}

// CardCount counts every card of the current round wherever it is. It is
// constant between two deals and drops once the game is over and the hands
// are collected.
func (s *GameState) CardCount() int {
	n := len(s.Deck) + len(s.Trick.Cards)
	for _, p := range s.Players {
		n += len(p.Hand)
	}
	for _, t := range s.ResolvedTricks {
		n += len(t.Cards)
	}
	return n
}

// Clone returns a deep copy of the state.
func (s *GameState) Clone() *GameState {
	c := *s
	c.Players = make([]Player, len(s.Players))
	for i, p := range s.Players {
		p.Hand = slices.Clone(p.Hand)
		c.Players[i] = p
	}
	if s.CalledCard != nil {
		called := *s.CalledCard
		c.CalledCard = &called
	}
	c.Deck = slices.Clone(s.Deck)
	c.Trick = s.Trick.clone()
	if s.ResolvedTricks != nil {
		c.ResolvedTricks = make([]Trick, len(s.ResolvedTricks))
		for i, t := range s.ResolvedTricks {
			c.ResolvedTricks[i] = t.clone()
		}
	}
	if s.RoundSummaries != nil {
		c.RoundSummaries = make([]RoundSummary, len(s.RoundSummaries))
		for i, r := range s.RoundSummaries {
			c.RoundSummaries[i] = r.clone()
		}
	}
	return &c
}
