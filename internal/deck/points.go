package deck

// PointTable maps card values to the points they are worth when captured.
// Values missing from the table count zero.
type PointTable map[Value]int

// DefaultPoints is the usual table: 120 points per deck.
var DefaultPoints = PointTable{
	Ace:   11,
	Ten:   10,
	King:  4,
	Ober:  3,
	Unter: 2,
}

// Of returns the point value of a single card.
func (t PointTable) Of(c Card) int {
	return t[c.Value]
}

// Sum returns the total point value of cards.
func (t PointTable) Sum(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += t[c.Value]
	}
	return total
}
