// Package game implements the rules of Schafkopf for three or four players.
//
// The engine is a pure reducer: Setup builds the first state from a player
// count and a seed, and Apply turns a state and a move into the next state.
// A state is never modified once returned, so snapshots can be shared with
// concurrent readers.
//
// # Basic Usage
//
//	e := game.New()
//	s, err := e.Setup(4, 42)
//	if err != nil {
//	    return err
//	}
//	s, err = e.Apply(s, s.CurrentPlayer, game.MakeBid(game.ContractPass))
//	if errors.Is(err, game.ErrIllegalMove) {
//	    // wrong player, phase or stage
//	}
//
// # Phases
//
// A round runs through four phases:
//   - Bidding: players bid contracts in turn until one is left standing
//   - Discard: the taker picks a trump suit, calls an ace or announces tout
//   - Placement: tricks are played, opponents may give contra
//   - RoundEnd: the round is scored and every player acknowledges with Finish
//
// Each phase is a row of a transition table with entry and exit hooks, turn
// order and an end condition. One move runs every transition it triggers
// before Apply returns.
//
// # Determinism
//
// Every deal is shuffled from randutil.Derive(seed, deal), so a game is fully
// reproduced by its player count, seed and move log.
//
// # Views
//
// Project filters a state for one player: the hands of the other players are
// replaced by deck.Hidden cards and history is reduced to what is public.
package game
