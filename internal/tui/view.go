package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/jordle/internal/game"
)

// View renders the board, or the dictionary when it is open.
func (m *Model) View() string {
	st := m.o.State()
	if st.DictionaryOpen {
		return m.dictionaryView()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("JORDLE"))
	b.WriteString("\n")
	b.WriteString(gridView(st))
	b.WriteString("\n")

	switch {
	case st.Message != "":
		b.WriteString(errorStyle.Render(st.Message))
	case st.Pending:
		b.WriteString(hintStyle.Render("…"))
	}
	b.WriteString("\n")

	if st.Over {
		b.WriteString(resultView(st))
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("enter: сыграть ещё · tab: словарь · esc: выход"))
	} else {
		b.WriteString(keyboardView(st.Keyboard))
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("tab: словарь · ctrl+n: новая игра · esc: выход"))
	}
	return b.String()
}

// gridView draws the attempts, the row being typed and the empty rows below.
func gridView(st game.Session) string {
	rows := make([]string, 0, game.MaxAttempts)
	for _, a := range st.Attempts {
		letters := a.Letters()
		cells := make([]string, game.WordLen)
		for i := range cells {
			var l string
			if i < len(letters) {
				l = string(letters[i])
			}
			var v game.VerdictCode
			if i < len(a.Mask) {
				v = a.Mask[i]
			}
			c := verdictColor(v)
			cells[i] = cellStyle.Background(c).BorderForeground(c).Render(l)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	if !st.Over && len(rows) < game.MaxAttempts {
		rows = append(rows, typingRow([]rune(st.Guess)))
	}
	for len(rows) < game.MaxAttempts {
		rows = append(rows, typingRow(nil))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func typingRow(letters []rune) string {
	cells := make([]string, game.WordLen)
	for i := range cells {
		var l string
		if i < len(letters) {
			l = string(letters[i])
		}
		cells[i] = cellStyle.Render(l)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// keyboardView colours every key by its best-known status.
func keyboardView(kb game.Keyboard) string {
	lines := make([]string, 0, len(keyboardRows))
	for _, row := range keyboardRows {
		keys := make([]string, 0, len(row))
		for _, k := range row {
			style := keyStyle
			if r := []rune(k); len(r) == 1 && game.InAlphabet(r[0]) {
				style = style.Background(statusColor(kb.Status(r[0])))
			}
			keys = append(keys, style.Render(k))
		}
		lines = append(lines, strings.Join(keys, " "))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// resultView is the end-of-game card.
func resultView(st game.Session) string {
	head := "Увы, попытки закончились"
	if st.Won {
		head = fmt.Sprintf("Победа с %d-й попытки!", len(st.Attempts))
	}
	body := []string{titleStyle.Render(head)}
	if st.Solution != nil {
		body = append(body, lipgloss.NewStyle().Bold(true).Render(st.Solution.Word))
		if st.Solution.Desc != "" {
			body = append(body, st.Solution.Desc)
		}
	}
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, body...))
}

// dictionaryView lists one page of entries starting at the scroll offset.
func (m *Model) dictionaryView() string {
	entries := m.o.Dictionary()

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Словарь JORDLE (%d)", len(entries))))
	b.WriteString("\n")
	if len(entries) == 0 {
		b.WriteString(hintStyle.Render("Словарь пуст"))
		b.WriteString("\n")
	}
	end := min(m.dictOffset+dictionaryPage, len(entries))
	for _, e := range entries[min(m.dictOffset, end):end] {
		fmt.Fprintf(&b, "%s  %s\n", lipgloss.NewStyle().Bold(true).Render(e.Word), hintStyle.Render(e.Desc))
	}
	b.WriteString(hintStyle.Render("↑/↓: прокрутка · tab/esc: закрыть"))
	return b.String()
}
