// Package tui is the terminal front-end: a Bubble Tea program around a
// game.Orchestrator. Service calls run as commands; their results come back
// as messages, so every state change happens inside Update.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/jordle/internal/game"
)

// Messages carrying service call completions.
type (
	guessedMsg struct {
		ticket game.Ticket
		res    *game.GuessResult
		err    error
	}
	resetMsg struct {
		ticket game.Ticket
		err    error
	}
	dictionaryMsg struct {
		entries []game.Entry
		err     error
	}
)

// dictionaryPage is the number of dictionary rows shown at once.
const dictionaryPage = 12

// Model is the Bubble Tea model.
type Model struct {
	ctx        context.Context
	o          *game.Orchestrator
	dictOffset int
	width      int
}

// New returns a model driving o. ctx bounds every service call.
func New(ctx context.Context, o *game.Orchestrator) *Model {
	return &Model{ctx: ctx, o: o}
}

// Run starts the program and blocks until the player quits.
func Run(ctx context.Context, o *game.Orchestrator) error {
	_, err := tea.NewProgram(New(ctx, o), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

// Init starts a new game and loads the dictionary.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.resetCmd(), m.dictionaryCmd())
}

// Update handles key presses and call completions.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case guessedMsg:
		m.o.CompleteSubmit(msg.ticket, msg.res, msg.err)
	case resetMsg:
		m.o.CompleteReset(msg.ticket, msg.err)
	case dictionaryMsg:
		if msg.err != nil {
			log.Error().Err(msg.err).Msg("failed to load dictionary")
			break
		}
		m.o.SetDictionary(msg.entries)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	st := m.o.State()
	key := msg.String()

	switch key {
	case "ctrl+c":
		return tea.Quit
	case "ctrl+n":
		return m.resetCmd()
	case "tab":
		if st.DictionaryOpen {
			m.o.CloseDictionary()
		} else {
			m.dictOffset = 0
			m.o.OpenDictionary()
		}
		return nil
	}

	if st.DictionaryOpen {
		m.scrollDictionary(key)
		return nil
	}
	if st.Over {
		switch key {
		case "enter":
			return m.resetCmd()
		case "esc":
			return tea.Quit
		}
		return nil
	}
	if key == "esc" {
		return tea.Quit
	}

	if t, ok := m.o.HandleKey(key); ok {
		return m.submitCmd(t)
	}
	return nil
}

func (m *Model) scrollDictionary(key string) {
	maxOffset := len(m.o.Dictionary()) - dictionaryPage
	if maxOffset < 0 {
		maxOffset = 0
	}
	switch key {
	case "esc":
		m.o.CloseDictionary()
	case "down", "j":
		if m.dictOffset < maxOffset {
			m.dictOffset++
		}
	case "up", "k":
		if m.dictOffset > 0 {
			m.dictOffset--
		}
	case "pgdown":
		m.dictOffset = min(m.dictOffset+dictionaryPage, maxOffset)
	case "pgup":
		m.dictOffset = max(m.dictOffset-dictionaryPage, 0)
	}
}

// ---------------------------------------------------------------------------
// commands

func (m *Model) submitCmd(t game.Ticket) tea.Cmd {
	svc, ctx := m.o.Service(), m.ctx
	return func() tea.Msg {
		res, err := svc.SubmitGuess(ctx, t.Word, t.Attempt)
		return guessedMsg{ticket: t, res: res, err: err}
	}
}

func (m *Model) resetCmd() tea.Cmd {
	t := m.o.BeginReset()
	svc, ctx := m.o.Service(), m.ctx
	return func() tea.Msg {
		return resetMsg{ticket: t, err: svc.StartNewGame(ctx)}
	}
}

func (m *Model) dictionaryCmd() tea.Cmd {
	svc, ctx := m.o.Service(), m.ctx
	return func() tea.Msg {
		entries, err := svc.FetchDictionary(ctx)
		return dictionaryMsg{entries: entries, err: err}
	}
}
