package display

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/schafkopf/internal/deck"
)

// Static styles for report elements
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	BorderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4"))

	CellStyle = lipgloss.NewStyle().Padding(0, 1)
)

// Card colours follow the German pattern: bells yellow, hearts red,
// leaves green, acorns brown.
var suitStyles = map[deck.Suit]lipgloss.Style{
	deck.Schell: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
	deck.Herz:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
	deck.Gras:   lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD75F")).Bold(true),
	deck.Eichel: lipgloss.NewStyle().Foreground(lipgloss.Color("#D7875F")).Bold(true),
}
