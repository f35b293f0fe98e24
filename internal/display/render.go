// Package display renders rules, game states and simulation reports for the
// terminal.
package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/schafkopf/internal/deck"
	"github.com/lox/schafkopf/internal/game"
	"github.com/lox/schafkopf/internal/statistics"
)

// Seat returns the name used for a seat in reports and records.
func Seat(id int) string {
	if id == game.NoPlayer {
		return "-"
	}
	return "p" + strconv.Itoa(id)
}

// Card renders a single card in its suit colour.
func Card(c deck.Card) string {
	if c.IsHidden() {
		return InfoStyle.Render(c.String())
	}
	return suitStyles[c.Suit].Render(c.String())
}

// Cards renders cards separated by spaces.
func Cards(cards []deck.Card) string {
	if len(cards) == 0 {
		return InfoStyle.Render("-")
	}
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = Card(c)
	}
	return strings.Join(out, " ")
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(BorderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return LabelStyle.Padding(0, 1)
			}
			return CellStyle
		}).
		Headers(headers...)
}

func line(label string, value any) string {
	return fmt.Sprintf("%s %v", LabelStyle.Render(label+":"), value)
}

// Rules renders the tariff table and the scoring constants.
func Rules(r game.Rules) string {
	tariffs := newTable("Contract", "Base", "Min runners")
	for _, c := range game.PlayableContracts() {
		t := r.Tariffs[c]
		runners := "off"
		if t.MinRunners > 0 {
			runners = strconv.Itoa(t.MinRunners)
		}
		tariffs.Row(c.String(), strconv.Itoa(t.Base), runners)
	}

	values := []deck.Value{deck.Seven, deck.Eight, deck.Nine, deck.Ten, deck.Unter, deck.Ober, deck.King, deck.Ace}
	points := newTable("Card", "Points")
	for _, v := range values {
		points.Row(v.String(), strconv.Itoa(r.Points[v]))
	}

	rounds := "unlimited"
	if r.MaxRounds > 0 {
		rounds = strconv.Itoa(r.MaxRounds)
	}
	lines := []string{
		HeaderStyle.Render("Rules"),
		tariffs.Render(),
		points.Render(),
		line("Win threshold", r.WinThreshold),
		line("Schneider", fmt.Sprintf("+%d at %d points or less", r.SchneiderBonus, r.SchneiderThreshold)),
		line("Schwarz", fmt.Sprintf("+%d", r.SchwarzBonus)),
		line("Runner", fmt.Sprintf("+%d each", r.RunnerValue)),
		line("Tout", fmt.Sprintf("x%d", r.ToutMultiplier)),
		line("Contra", fmt.Sprintf("x%d", r.ContraMultiplier)),
		line("Rounds", rounds),
	}
	return strings.Join(lines, "\n")
}

// Rounds renders one row per scored round.
func Rounds(rounds []game.RoundSummary) string {
	if len(rounds) == 0 {
		return InfoStyle.Render("no rounds played")
	}
	n := len(rounds[0].Scoring)
	headers := []string{"Round", "Contract", "Trump", "Taker", "Partner", "Result", "Value"}
	for i := range n {
		headers = append(headers, Seat(i))
	}
	t := newTable(headers...)
	for _, r := range rounds {
		trump := "-"
		if r.TrumpSuit != deck.NoSuit {
			trump = r.TrumpSuit.String()
		}
		result := ErrorStyle.Render("lost")
		if r.TakerWon {
			result = SuccessStyle.Render("won")
		}
		var extras []string
		for _, e := range []struct {
			on   bool
			name string
		}{{r.Schneider, "schneider"}, {r.Schwarz, "schwarz"}, {r.Tout, "tout"}, {r.Contra, "contra"}} {
			if e.on {
				extras = append(extras, e.name)
			}
		}
		if r.Runners > 0 {
			extras = append(extras, fmt.Sprintf("%d runners", r.Runners))
		}
		if len(extras) > 0 {
			result += " " + InfoStyle.Render(strings.Join(extras, ", "))
		}
		row := []string{strconv.Itoa(r.Round), r.Contract.String(), trump, Seat(r.TakerID), Seat(r.PartnerID), result, strconv.Itoa(r.Value)}
		for _, v := range r.Scoring {
			row = append(row, strconv.Itoa(v))
		}
		t.Row(row...)
	}
	return t.Render()
}

// State renders a game state: phase, contract, hands, current trick and scores.
func State(s *game.GameState) string {
	status := fmt.Sprintf("Round %d, %s", s.Round(), s.Phase)
	if s.GameOver {
		status = fmt.Sprintf("Game over after %d rounds", len(s.RoundSummaries))
	}
	lines := []string{HeaderStyle.Render(status)}
	if s.Contract.Playable() && !s.GameOver {
		contract := s.Contract.String()
		if s.TrumpSuit != deck.NoSuit {
			contract += " " + s.TrumpSuit.String()
		}
		lines = append(lines, line("Contract", fmt.Sprintf("%s by %s", contract, Seat(s.TakerID))))
		if s.CalledCard != nil {
			lines = append(lines, line("Called", Card(*s.CalledCard)))
		}
	}
	if len(s.Trick.Cards) > 0 {
		lines = append(lines, line("Trick", fmt.Sprintf("%s led %s", Seat(s.Trick.LeaderID), Cards(s.Trick.Cards))))
	}

	players := newTable("Seat", "Hand", "Bid", "Score")
	for i, p := range s.Players {
		seat := Seat(i)
		if p.IsDealer {
			seat += " (dealer)"
		}
		if i == s.CurrentPlayer {
			seat = WarningStyle.Render(seat)
		}
		bid := "-"
		if p.Bid != game.ContractNone {
			bid = p.Bid.String()
		}
		players.Row(seat, Cards(p.Hand), bid, strconv.Itoa(p.Score))
	}
	lines = append(lines, players.Render())
	return strings.Join(lines, "\n")
}

// Statistics renders a simulation report.
func Statistics(stats *statistics.Statistics, bots string) string {
	low, high := stats.ConfidenceInterval95()
	lines := []string{
		HeaderStyle.Render("Simulation vs " + bots),
		line("Games", fmt.Sprintf("%d (%d abandoned)", stats.Games, stats.Unfinished)),
		line("Rounds", fmt.Sprintf("%d from %d deals, %d redeals", stats.Rounds, stats.Deals, stats.Redeals())),
		line("Moves", stats.Moves),
		line("Taker wins", fmt.Sprintf("%.1f%%", stats.TakerWinRate()*100)),
		line("Taker result", fmt.Sprintf("mean %.2f, median %.2f, sd %.2f, 95%% CI [%.2f, %.2f]",
			stats.Mean(), stats.Median(), stats.StdDev(), low, high)),
	}

	contracts := newTable("Contract", "Rounds", "Taker wins", "Schneider", "Schwarz", "Tout", "Contra", "Avg value")
	for _, c := range game.PlayableContracts() {
		cs := stats.Contract(c)
		avg := 0.0
		if cs.Rounds > 0 {
			avg = float64(cs.SumValue) / float64(cs.Rounds)
		}
		contracts.Row(c.String(), strconv.Itoa(cs.Rounds), fmt.Sprintf("%.1f%%", cs.WinRate()*100),
			strconv.Itoa(cs.Schneider), strconv.Itoa(cs.Schwarz), strconv.Itoa(cs.Tout), strconv.Itoa(cs.Contra),
			fmt.Sprintf("%.1f", avg))
	}
	lines = append(lines, contracts.Render())

	seats := newTable("Seat", "Total", "Per game")
	for i, total := range stats.Seats {
		seats.Row(Seat(i), strconv.Itoa(total), fmt.Sprintf("%.2f", float64(total)/float64(max(stats.Games, 1))))
	}
	lines = append(lines, seats.Render())

	if !stats.IsLedgerBalanced() {
		lines = append(lines, ErrorStyle.Render("seat totals do not sum to zero"))
	}
	return strings.Join(lines, "\n")
}
