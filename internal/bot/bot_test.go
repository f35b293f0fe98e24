package bot

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/schafkopf/internal/deck"
	"github.com/lox/schafkopf/internal/game"
	"github.com/lox/schafkopf/internal/randutil"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func plays(hand string) []game.Move {
	var moves []game.Move
	for _, c := range deck.MustParseCards(hand) {
		moves = append(moves, game.SelectCards(c))
	}
	return moves
}

// trickState puts player to move in a four player trick that leader opened
// with the cards of trick.
func trickState(contract game.Contract, trump deck.Suit, leader int, trick string) *game.GameState {
	s := &game.GameState{
		Phase:         game.PhasePlacement,
		Contract:      contract,
		TrumpSuit:     trump,
		TakerID:       0,
		CalledTakerID: game.NoPlayer,
		ContraBy:      game.NoPlayer,
		Trick:         game.Trick{Cards: deck.MustParseCards(trick), LeaderID: leader, WinnerID: game.NoPlayer},
		Players:       make([]game.Player, 4),
	}
	for i := range s.Players {
		s.Players[i] = game.Player{ID: i, IsDealer: i == 3, IsTaker: i == 0}
	}
	s.CurrentPlayer = (leader + len(s.Trick.Cards)) % 4
	return s
}

func TestNew(t *testing.T) {
	t.Parallel()
	for _, kind := range Kinds() {
		b, err := New(kind, randutil.New(1), quietLogger())
		require.NoError(t, err, kind)
		assert.NotNil(t, b)
	}
	_, err := New("maniac", randutil.New(1), quietLogger())
	assert.ErrorContains(t, err, `unknown bot "maniac"`)
}

func TestParseMix(t *testing.T) {
	t.Parallel()
	rng := randutil.New(1)

	bots, err := ParseMix(nil, 3, rng, quietLogger())
	require.NoError(t, err)
	require.Len(t, bots, 3)
	assert.IsType(t, &RandBot{}, bots[2])

	bots, err = ParseMix([]string{"pass", "greedy", "rand", "pass"}, 4, rng, quietLogger())
	require.NoError(t, err)
	assert.IsType(t, &GreedyBot{}, bots[1])
	assert.IsType(t, &PassBot{}, bots[3])

	_, err = ParseMix([]string{"pass", "greedy"}, 4, rng, quietLogger())
	assert.Error(t, err)
	_, err = ParseMix([]string{"fold"}, 4, rng, quietLogger())
	assert.Error(t, err)
}

func TestRandBotIsDeterministic(t *testing.T) {
	t.Parallel()
	legal := plays("EO GO HO SO EU GU")
	a := NewRandBot(randutil.New(9), quietLogger())
	b := NewRandBot(randutil.New(9), quietLogger())
	for range 20 {
		da := a.Choose(nil, 0, legal)
		assert.Equal(t, da, b.Choose(nil, 0, legal))
		assert.Contains(t, legal, da.Move)
	}
}

func TestPassBot(t *testing.T) {
	t.Parallel()
	s, err := game.Setup(4, 5)
	require.NoError(t, err)
	e := game.New(game.WithLogger(quietLogger()))
	p := NewPassBot(quietLogger())

	d := p.Choose(game.Project(s, 1), 1, e.LegalMoves(s, 1))
	assert.Equal(t, game.MakeBid(game.ContractPass), d.Move)

	s = trickState(game.ContractSolo, deck.Eichel, 0, "SA")
	s.Players[1].Hand = deck.MustParseCards("GA SK S7")
	d = p.Choose(s, 1, plays("SK S7"))
	assert.Equal(t, game.SelectCards(deck.MustParseCards("SK")...), d.Move)
}

func TestGreedyBotBids(t *testing.T) {
	t.Parallel()
	bids := []game.Move{
		game.MakeBid(game.ContractPass), game.MakeBid(game.ContractSome), game.MakeBid(game.ContractAce),
		game.MakeBid(game.ContractBettel), game.MakeBid(game.ContractWenz), game.MakeBid(game.ContractSolo),
	}
	tests := []struct {
		hand string
		want game.Contract
	}{
		{"EO GO HO SO EU GU E7 E8", game.ContractSolo},
		{"EU GU HU S7 S8 G7 G8 H7", game.ContractWenz},
		{"EO S7 S8 G7 G8 H7 HA GA", game.ContractPass},
	}
	g := NewGreedyBot(quietLogger())
	for _, tt := range tests {
		t.Run(tt.hand, func(t *testing.T) {
			s := trickState(game.ContractNone, deck.NoSuit, 0, "")
			s.Phase = game.PhaseBidding
			s.Players[1].Hand = deck.MustParseCards(tt.hand)
			assert.Equal(t, game.MakeBid(tt.want), g.Choose(s, 1, bids).Move)
		})
	}

	s := trickState(game.ContractNone, deck.NoSuit, 0, "")
	s.Players[1].Hand = deck.MustParseCards("EO GO HO SO EU GU E7 E8")
	d := g.Choose(s, 1, []game.Move{game.MakeBid(game.ContractPass), game.MakeBid(game.ContractBettel)})
	assert.Equal(t, game.MakeBid(game.ContractPass), d.Move, "solo already outbid")
}

func TestGreedyBotSelectsTrump(t *testing.T) {
	t.Parallel()
	s := trickState(game.ContractSolo, deck.NoSuit, 0, "")
	s.Phase = game.PhaseDiscard
	s.Players[0].Hand = deck.MustParseCards("EO GU S7 G7 G8 GK HA EA")
	var legal []game.Move
	for _, suit := range deck.Suits {
		legal = append(legal, game.SelectTrumpSuit(suit))
	}
	assert.Equal(t, game.SelectTrumpSuit(deck.Gras), NewGreedyBot(quietLogger()).Choose(s, 0, legal).Move)
}

func TestGreedyBotPlays(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		contract game.Contract
		leader   int
		trick    string
		legal    string
		want     string
	}{
		{"leads strongest", game.ContractSolo, 1, "", "S7 EO GA", "EO"},
		{"throws cheapest when beaten", game.ContractSolo, 0, "SA", "S7 SK", "S7"},
		{"takes with cheapest winner", game.ContractSolo, 0, "SK", "SA SX", "SX"},
		{"trumps in low", game.ContractSolo, 0, "SA", "HO EU G7", "EU"},
		{"smears onto a partner's trick", game.ContractSolo, 1, "SA", "S7 SX", "SX"},
		{"taker stays low in bettel", game.ContractBettel, 3, "S9", "SA S7", "S7"},
	}
	g := NewGreedyBot(quietLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := trickState(tt.contract, deck.Eichel, tt.leader, tt.trick)
			if tt.contract == game.ContractBettel {
				s.TrumpSuit = deck.NoSuit
			}
			player := s.CurrentPlayer
			s.Players[player].Hand = deck.MustParseCards(tt.legal)
			d := g.Choose(s, player, plays(tt.legal))
			assert.Equal(t, game.SelectCards(deck.MustParseCards(tt.want)...), d.Move, d.Reasoning)
		})
	}
}

func TestBotsPlayLegalGames(t *testing.T) {
	t.Parallel()
	for _, kind := range Kinds() {
		for _, players := range []int{3, 4} {
			rules := game.DefaultRules()
			rules.MaxRounds = 2
			e := game.New(game.WithRules(rules), game.WithLogger(quietLogger()))
			s, err := e.Setup(players, 31)
			require.NoError(t, err)

			bots, err := ParseMix([]string{kind}, players, randutil.New(4), quietLogger())
			require.NoError(t, err)

			for range 3000 {
				if s.GameOver {
					break
				}
				player := e.NextActor(s)
				require.NotEqual(t, game.NoPlayer, player)
				d := bots[player].Choose(game.Project(s, player), player, e.LegalMoves(s, player))
				s, err = e.Apply(s, player, d.Move)
				require.NoError(t, err, "%s bot with %d players", kind, players)
			}
		}
	}
}
