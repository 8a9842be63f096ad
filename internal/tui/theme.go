package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/jordle/internal/game"
)

// keyboardRows is the on-screen ЙЦУКЕН layout.
var keyboardRows = [][]string{
	{"Й", "Ц", "У", "К", "Е", "Н", "Г", "Ш", "Щ", "З", "Х", "Ъ"},
	{"Ф", "Ы", "В", "А", "П", "Р", "О", "Л", "Д", "Ж", "Э"},
	{"ENTER", "Я", "Ч", "С", "М", "И", "Т", "Ь", "Б", "Ю", "Ё", "⌫"},
}

var (
	colorGreen  = lipgloss.Color("#538d4e")
	colorYellow = lipgloss.Color("#b59f3b")
	colorRed    = lipgloss.Color("#8b2f2f")
	colorGrey   = lipgloss.Color("#3a3a3c")
	colorKey    = lipgloss.Color("#818384")
	colorText   = lipgloss.Color("#ffffff")
	colorError  = lipgloss.Color("#ff6b6b")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorText).MarginBottom(1)
	hintStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorError)

	cellStyle = lipgloss.NewStyle().
			Width(3).
			Align(lipgloss.Center).
			Foreground(colorText).
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorGrey)

	keyStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(colorText).Background(colorKey)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGreen).
			Padding(0, 2).
			MarginTop(1)
)

// verdictColor is the tile colour of a scored letter.
func verdictColor(v game.VerdictCode) lipgloss.Color {
	switch v {
	case game.VerdictCorrect:
		return colorGreen
	case game.VerdictPresent:
		return colorYellow
	}
	return colorGrey
}

// statusColor is the keyboard colour of a letter status.
func statusColor(s game.LetterStatus) lipgloss.Color {
	switch s {
	case game.StatusGreen:
		return colorGreen
	case game.StatusYellow:
		return colorYellow
	case game.StatusRed:
		return colorRed
	}
	return colorKey
}
