package game

import (
	"fmt"
	"strings"
)

// Contract is a bid level and, once bidding is over, the variant a round is
// played under. Levels are ordered: a higher value outbids a lower one.
type Contract int

const (
	ContractNone   Contract = iota // no bid made yet
	ContractPass                   // player is out of the bidding
	ContractSome                   // player wants to play, contract not named yet
	ContractAce                    // partner game, taker calls an ace
	ContractBettel                 // taker must not win a trick
	ContractWenz                   // only the Unters are trump
	ContractSolo                   // taker picks the trump suit and plays alone
)

var contractNames = map[Contract]string{
	ContractNone:   "none",
	ContractPass:   "pass",
	ContractSome:   "some",
	ContractAce:    "ace",
	ContractBettel: "bettel",
	ContractWenz:   "wenz",
	ContractSolo:   "solo",
}

// String returns the lower case name of the contract
func (c Contract) String() string {
	if name, ok := contractNames[c]; ok {
		return name
	}
	return fmt.Sprintf("contract(%d)", int(c))
}

// Valid reports whether c is inside the enumerated range.
func (c Contract) Valid() bool {
	return c >= ContractNone && c <= ContractSolo
}

// Playable reports whether c names a contract a round can be played under.
func (c Contract) Playable() bool {
	return c > ContractSome && c <= ContractSolo
}

// ParseContract parses the name of a contract
func ParseContract(s string) (Contract, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, name := range contractNames {
		if name == s {
			return c, nil
		}
	}
	return ContractNone, fmt.Errorf("unknown contract: %q", s)
}

// PlayableContracts lists the contracts a round can be played under, lowest first.
func PlayableContracts() []Contract {
	return []Contract{ContractAce, ContractBettel, ContractWenz, ContractSolo}
}
