package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/schafkopf/internal/deck"
	"github.com/lox/schafkopf/internal/randutil"
)

func TestTrickWinner(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		contract Contract
		trump    deck.Suit
		leader   int
		cards    string
		want     int
	}{
		{"highest of lead suit", ContractSolo, deck.Gras, 1, "S9 SK EA S7", 2},
		{"ober beats everything", ContractSolo, deck.Gras, 3, "SA GU EO G7", 1},
		{"trump suit beats lead suit", ContractAce, deck.Herz, 0, "GA H7 GX GK", 1},
		{"only unters are trump in wenz", ContractWenz, deck.NoSuit, 0, "EA EO SU EK", 2},
		{"bettel ranks ober above unter", ContractBettel, deck.NoSuit, 2, "HX HU HO H9", 0},
		{"ten below unter in bettel", ContractBettel, deck.NoSuit, 0, "HX H9 H8 H7", 0},
		{"ober order", ContractSolo, deck.Herz, 0, "SO GO HO EO", 3},
		{"three players", ContractWenz, deck.NoSuit, 2, "GA GX GK", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trick := Trick{LeaderID: tt.leader, Cards: cards(tt.cards)}
			n := 4
			if len(trick.Cards) == 3 {
				n = 3
			}
			assert.Equal(t, tt.want, TrickWinner(tt.contract, tt.trump, trick, n))
		})
	}
}

func TestTrickWinnerWithoutTrumpFollowsLeadSuit(t *testing.T) {
	t.Parallel()
	full, err := deck.NewSorted(4)
	require.NoError(t, err)
	rng := randutil.New(17)

	for range 500 {
		dealt := deck.Shuffle(full, rng)
		trick := Trick{LeaderID: rng.IntN(4), Cards: dealt[:4]}

		winner := TrickWinner(ContractBettel, deck.NoSuit, trick, 4)
		idx := (winner - trick.LeaderID + 4) % 4
		won := trick.Cards[idx]

		lead := trick.Cards[0].Suit
		require.Equal(t, lead, won.Suit, "trick %v", trick.Cards)
		for _, c := range trick.Cards {
			if c.Suit == lead {
				require.GreaterOrEqual(t, CardRank(ContractBettel, deck.NoSuit, won), CardRank(ContractBettel, deck.NoSuit, c))
			}
		}
	}
}

func TestTrickWinnerPanicsOnEmptyTrick(t *testing.T) {
	t.Parallel()
	assert.PanicsWithValue(t, InvariantViolation{Reason: "cannot resolve an empty trick"}, func() {
		TrickWinner(ContractSolo, deck.Eichel, Trick{LeaderID: 0}, 4)
	})
}

func TestResolveTrickForfeitsRunOnCalledSuit(t *testing.T) {
	t.Parallel()
	e := testEngine()
	s := placementState(ContractAce, deck.Herz, 1, "", "", "", "")
	called := card("GA")
	s.CalledCard = &called
	s.CalledTakerID = 2
	s.CalledMayRun = RunEligible
	s.Trick.Cards = cards("G7 GA G8 E7")

	done := e.resolveTrick(s)
	assert.True(t, done)
	assert.Equal(t, RunForfeited, s.CalledMayRun)
	require.Len(t, s.ResolvedTricks, 1)
	assert.Equal(t, 2, s.ResolvedTricks[0].WinnerID)
	assert.Equal(t, 2, s.Trick.LeaderID)
	assert.Empty(t, s.Trick.Cards)
}

func TestResolveTrickKeepsRunOnTrumpLead(t *testing.T) {
	t.Parallel()
	e := testEngine()
	s := placementState(ContractAce, deck.Herz, 1, "", "", "", "")
	called := card("GA")
	s.CalledCard = &called
	s.CalledTakerID = 2
	s.CalledMayRun = RunEligible
	s.Trick.Cards = cards("GO G7 G8 E7")

	e.resolveTrick(s)
	assert.Equal(t, RunEligible, s.CalledMayRun, "a gras ober is trump, not gras")
	assert.Equal(t, 1, s.ResolvedTricks[0].WinnerID)
}

func TestCardRankOrders(t *testing.T) {
	t.Parallel()
	solo := []string{"EO", "GO", "HO", "SO", "EU", "GU", "HU", "SU", "GA", "GX", "GK", "G9", "G8", "G7"}
	for i := 1; i < len(solo); i++ {
		assert.Greater(t, CardRank(ContractSolo, deck.Gras, card(solo[i-1])), CardRank(ContractSolo, deck.Gras, card(solo[i])),
			"%s above %s", solo[i-1], solo[i])
	}
	assert.True(t, IsTrump(ContractSolo, deck.Gras, card("G7")))
	assert.False(t, IsTrump(ContractSolo, deck.Gras, card("EA")))
	assert.False(t, IsTrump(ContractWenz, deck.NoSuit, card("EO")))
	assert.False(t, IsTrump(ContractBettel, deck.NoSuit, card("EO")))

	top, ok := HighestTrump(ContractWenz)
	assert.True(t, ok)
	assert.Equal(t, card("EU"), top)
	_, ok = HighestTrump(ContractBettel)
	assert.False(t, ok)
}

func TestSortHand(t *testing.T) {
	t.Parallel()
	hand := cards("S7 HA SU EO G9 HX")
	SortHand(hand, ContractSolo, deck.Herz)
	assert.Equal(t, cards("EO SU HA HX G9 S7"), hand)
}
