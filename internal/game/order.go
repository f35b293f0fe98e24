package game

// Turn order functions. Each phase names a first actor, evaluated on phase
// entry, and a next actor, evaluated after a move that ends a turn.

func firstBidder(s *GameState) int {
	return (s.Dealer() + 1) % s.NumPlayers()
}

// nextBidder skips players who passed and the player holding the highest
// named contract; everybody else still owes a bid.
func nextBidder(s *GameState) int {
	n := s.NumPlayers()
	high := highestBid(s)
	i := s.CurrentPlayer
	for range n {
		i = (i + 1) % n
		bid := s.Players[i].Bid
		if bid == ContractPass || (bid.Playable() && bid == high) {
			continue
		}
		return i
	}
	violate("bidding is open but nobody can bid")
	return NoPlayer
}

func taker(s *GameState) int {
	return s.TakerID
}

func trickLeader(s *GameState) int {
	return s.Trick.LeaderID
}

func nextSeat(s *GameState) int {
	return (s.CurrentPlayer + 1) % s.NumPlayers()
}

func nobody(*GameState) int {
	return NoPlayer
}
