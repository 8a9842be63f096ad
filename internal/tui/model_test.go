package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/robalobadob/jordle/internal/game"
)

type stubService struct {
	masks    [][]game.VerdictCode
	solution *game.Entry
	submits  []string
	resets   int
	dict     []game.Entry
	dictErr  error
}

func (s *stubService) SubmitGuess(_ context.Context, word string, attempt int) (*game.GuessResult, error) {
	s.submits = append(s.submits, word)
	mask := s.masks[attempt%len(s.masks)]
	res := &game.GuessResult{Mask: mask}
	win := true
	for _, v := range mask {
		win = win && v == game.VerdictCorrect
	}
	res.IsWin = win
	if win || attempt == game.MaxAttempts-1 {
		res.Solution = s.solution
	}
	return res, nil
}

func (s *stubService) StartNewGame(context.Context) error {
	s.resets++
	return nil
}

func (s *stubService) FetchDictionary(context.Context) ([]game.Entry, error) {
	return s.dict, s.dictErr
}

// run executes cmd and feeds every resulting message back into m,
// expanding batches. Quit is reported instead of delivered.
func run(m *Model, cmd tea.Cmd) (quit bool) {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case tea.QuitMsg:
			quit = true
		default:
			_, next := m.Update(msg)
			queue = append(queue, next)
		}
	}
	return quit
}

func press(m *Model, keys ...tea.KeyMsg) bool {
	quit := false
	for _, k := range keys {
		_, cmd := m.Update(k)
		quit = run(m, cmd) || quit
	}
	return quit
}

func runes(word string) []tea.KeyMsg {
	var out []tea.KeyMsg
	for _, r := range word {
		out = append(out, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return out
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func newModel(t *testing.T, svc *stubService) *Model {
	t.Helper()
	m := New(context.Background(), game.NewOrchestrator(svc))
	run(m, m.Init())
	if svc.resets != 1 {
		t.Fatalf("Init started %d games", svc.resets)
	}
	return m
}

func TestModelPlaysToWin(t *testing.T) {
	all := []game.VerdictCode{2, 2, 2, 2, 2}
	svc := &stubService{
		masks:    [][]game.VerdictCode{{0, 1, 0, 0, 2}, all},
		solution: &game.Entry{Word: "ШКОЛА", Desc: "учебное заведение"},
		dict:     []game.Entry{{Word: "ШКОЛА", Desc: "учебное заведение"}},
	}
	m := newModel(t, svc)

	press(m, runes("пацан")...)
	if got := m.o.State().Guess; got != "ПАЦАН" {
		t.Fatalf("guess %q", got)
	}
	press(m, enter)
	press(m, runes("школа")...)
	press(m, enter)

	st := m.o.State()
	if !st.Over || !st.Won {
		t.Fatalf("expected win, got %+v", st)
	}
	if strings.Join(svc.submits, ",") != "ПАЦАН,ШКОЛА" {
		t.Errorf("submits %v", svc.submits)
	}
	view := m.View()
	for _, want := range []string{"Победа", "ШКОЛА", "учебное заведение"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	// Enter on the result card starts a new game.
	press(m, enter)
	if st := m.o.State(); st.Over || len(st.Attempts) != 0 || svc.resets != 2 {
		t.Errorf("after play again: %+v resets=%d", st, svc.resets)
	}
}

func TestModelShortGuessNotSent(t *testing.T) {
	svc := &stubService{masks: [][]game.VerdictCode{{0, 0, 0, 0, 0}}}
	m := newModel(t, svc)
	press(m, runes("пац")...)
	press(m, enter)
	if len(svc.submits) != 0 {
		t.Errorf("short guess submitted: %v", svc.submits)
	}
	press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.o.State().Guess; got != "ПА" {
		t.Errorf("after backspace %q", got)
	}
}

func TestModelDictionaryFreezesBoard(t *testing.T) {
	svc := &stubService{
		masks: [][]game.VerdictCode{{0, 0, 0, 0, 0}},
		dict:  []game.Entry{{Word: "КРИНЖ", Desc: "неловкость"}, {Word: "ФЛЕКС", Desc: "хвастовство"}},
	}
	m := newModel(t, svc)

	press(m, tab)
	if !m.o.State().DictionaryOpen {
		t.Fatal("dictionary not opened")
	}
	view := m.View()
	if !strings.Contains(view, "Словарь JORDLE (2)") || !strings.Contains(view, "КРИНЖ") {
		t.Errorf("dictionary view:\n%s", view)
	}

	press(m, runes("пацан")...)
	if m.o.State().Guess != "" {
		t.Error("typing reached the board while dictionary open")
	}
	if quit := press(m, esc); quit {
		t.Error("esc in dictionary quit the program")
	}
	if m.o.State().DictionaryOpen {
		t.Error("esc did not close dictionary")
	}
}

func TestModelDictionaryFailureIsNotFatal(t *testing.T) {
	svc := &stubService{masks: [][]game.VerdictCode{{0, 0, 0, 0, 0}}, dictErr: errors.New("boom")}
	m := newModel(t, svc)
	if m.o.State().Message != "" {
		t.Errorf("dictionary failure surfaced: %q", m.o.State().Message)
	}
	press(m, tab)
	if !strings.Contains(m.View(), "Словарь JORDLE (0)") {
		t.Errorf("empty dictionary view:\n%s", m.View())
	}
}

func TestModelStaleGuessAfterReset(t *testing.T) {
	svc := &stubService{masks: [][]game.VerdictCode{{2, 2, 2, 2, 2}}}
	m := newModel(t, svc)
	press(m, runes("пацан")...)

	// Capture the submit without running it, then start a new game.
	_, submit := m.Update(enter)
	press(m, tea.KeyMsg{Type: tea.KeyCtrlN})
	run(m, submit)

	if st := m.o.State(); st.Over || len(st.Attempts) != 0 {
		t.Errorf("stale response applied: %+v", st)
	}
}

func TestModelQuitKeys(t *testing.T) {
	svc := &stubService{masks: [][]game.VerdictCode{{0, 0, 0, 0, 0}}}
	m := newModel(t, svc)
	if !press(m, tea.KeyMsg{Type: tea.KeyCtrlC}) {
		t.Error("ctrl+c did not quit")
	}
	if !press(m, esc) {
		t.Error("esc did not quit")
	}
}

func TestModelDictionaryOpenDuringStartup(t *testing.T) {
	svc := &stubService{masks: [][]game.VerdictCode{{0, 0, 0, 0, 0}}}
	m := New(context.Background(), game.NewOrchestrator(svc))
	startup := m.Init()

	press(m, tab)
	run(m, startup)

	if st := m.o.State(); !st.DictionaryOpen || st.Pending {
		t.Errorf("startup closed the dictionary: %+v", st)
	}
}
