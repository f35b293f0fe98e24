package game

import (
	"github.com/lox/schafkopf/internal/deck"
	"github.com/lox/schafkopf/internal/randutil"
)

// highestBid returns the highest named contract on the table, or
// ContractSome when nobody has named one yet.
func highestBid(s *GameState) Contract {
	high := ContractSome
	for _, p := range s.Players {
		if p.Bid.Playable() && p.Bid > high {
			high = p.Bid
		}
	}
	return high
}

func (e *Engine) checkBid(s *GameState, player int, bid Contract) error {
	if player != s.CurrentPlayer {
		return illegal(MoveMakeBid, player, "not your turn, waiting for player %d", s.CurrentPlayer)
	}
	current := s.Players[player].Bid
	if current == ContractPass {
		return illegal(MoveMakeBid, player, "already passed")
	}
	if !bid.Valid() || bid == ContractNone {
		return invalid(MoveMakeBid, player, "bid %s out of range", bid)
	}

	switch bid {
	case ContractPass:
		return nil
	case ContractSome:
		if current != ContractNone {
			return invalid(MoveMakeBid, player, "cannot bid some after %s", current)
		}
		return nil
	}

	if high := highestBid(s); bid <= high {
		return invalid(MoveMakeBid, player, "bid %s does not beat %s", bid, high)
	}
	if bid == ContractAce {
		if s.NumPlayers() != 4 {
			return invalid(MoveMakeBid, player, "ace contract needs four players")
		}
		if len(callableAces(s.Players[player].Hand)) == 0 {
			return invalid(MoveMakeBid, player, "no ace can be called with this hand")
		}
	}
	return nil
}

// biddingDone decides whether the bidding phase is over: at once on a solo,
// when everybody passed, or when a single named contract is left standing.
func biddingDone(s *GameState) bool {
	if len(s.Players[0].Hand) == 0 {
		return false
	}
	named := 0
	for _, p := range s.Players {
		switch {
		case p.Bid == ContractSolo:
			return true
		case p.Bid == ContractNone, p.Bid == ContractSome:
			return false
		case p.Bid.Playable():
			named++
		}
	}
	return named <= 1
}

// beginBidding starts a round: shuffles a fresh deck from the next stream of
// the seed, deals it and resets everything the previous round left behind.
func (e *Engine) beginBidding(s *GameState) {
	n := s.NumPlayers()
	sorted, err := deck.NewSorted(n)
	if err != nil {
		violate("%v", err)
	}
	s.Deals++
	hands, rest, err := deck.Deal(deck.Shuffle(sorted, randutil.Derive(s.Seed, s.Deals)), n)
	if err != nil {
		violate("%v", err)
	}

	dealer := s.Dealer()
	s.Contract = ContractNone
	s.TrumpSuit = defaultTrump(n)
	s.TakerID = NoPlayer
	s.CalledCard = nil
	s.CalledTakerID = NoPlayer
	s.CalledMayRun = RunUnset
	s.Tout = false
	s.Contra = false
	s.ContraBy = NoPlayer
	s.Deck = rest
	s.Trick = newTrick((dealer + 1) % n)
	s.ResolvedTricks = nil

	for i := range s.Players {
		p := &s.Players[i]
		p.Bid = ContractNone
		p.IsTaker = false
		p.IsReady = true
		p.Hand = hands[i]
		SortHand(p.Hand, ContractNone, s.TrumpSuit)
	}
	e.logger.Debug("Dealt cards", "deal", s.Deals, "dealer", dealer)
}

// endBidding picks the taker. Bid levels are claimed at most once, so the
// strictly highest bid is unique; a full pass moves the deal on one seat.
func (e *Engine) endBidding(s *GameState) {
	taker := NoPlayer
	high := ContractPass
	for i := range s.Players {
		if s.Players[i].Bid > high {
			high = s.Players[i].Bid
			taker = i
		}
		s.Players[i].Bid = ContractNone
	}

	if taker == NoPlayer {
		dealer := s.Dealer()
		next := (dealer + 1) % s.NumPlayers()
		s.Players[dealer].IsDealer = false
		s.Players[next].IsDealer = true
		e.logger.Debug("All players passed", "dealer", next)
		return
	}

	s.TakerID = taker
	s.Contract = high
	s.Players[taker].IsTaker = true
	s.TrumpSuit = deck.NoSuit
	if high == ContractAce {
		s.TrumpSuit = deck.Herz
	}
	for i := range s.Players {
		SortHand(s.Players[i].Hand, s.Contract, s.TrumpSuit)
	}
	e.logger.Debug("Bidding won", "taker", taker, "contract", high)
}

func afterBidding(s *GameState) Phase {
	if s.TakerID == NoPlayer {
		return PhaseBidding
	}
	return PhaseDiscard
}
