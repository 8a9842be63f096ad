package game

import (
	"errors"
	"testing"
)

func typeWord(s Session, w string) Session {
	for _, r := range w {
		s = s.AppendLetter(r)
	}
	return s
}

func TestAppendLetterCapsAtFive(t *testing.T) {
	s := typeWord(NewSession(), "ШАРАГА")
	if s.Guess != "ШАРАГ" {
		t.Errorf("expected buffer ШАРАГ, got %q", s.Guess)
	}
	if s.GuessLen() != WordLen {
		t.Errorf("expected %d letters, got %d", WordLen, s.GuessLen())
	}
}

func TestDeleteLetter(t *testing.T) {
	s := typeWord(NewSession(), "ЁЖ")
	s = s.DeleteLetter()
	if s.Guess != "Ё" {
		t.Errorf("got %q", s.Guess)
	}
	s = s.DeleteLetter().DeleteLetter()
	if s.Guess != "" {
		t.Errorf("expected empty buffer, got %q", s.Guess)
	}
}

func TestLockedSessionIgnoresEdits(t *testing.T) {
	cases := map[string]func(Session) Session{
		"over":       func(s Session) Session { s.Over = true; return s },
		"dictionary": func(s Session) Session { return s.SetDictionaryOpen(true) },
		"pending":    func(s Session) Session { s.Pending = true; return s },
	}
	for name, lock := range cases {
		t.Run(name, func(t *testing.T) {
			s := lock(typeWord(NewSession(), "ФИГ"))
			s.Message = "старое"
			if got := s.AppendLetter('Н'); got.Guess != "ФИГ" || got.Message != "старое" {
				t.Errorf("append changed locked session: %+v", got)
			}
			if got := s.DeleteLetter(); got.Guess != "ФИГ" {
				t.Errorf("delete changed locked session: %q", got.Guess)
			}
		})
	}
}

func TestKeyPressClearsMessage(t *testing.T) {
	s := NewSession()
	s.Message = "Такого слова нет в словаре"
	if got := s.AppendLetter('А'); got.Message != "" {
		t.Errorf("append kept message %q", got.Message)
	}
	if got := s.DeleteLetter(); got.Message != "" {
		t.Errorf("delete kept message %q", got.Message)
	}
}

func TestCanSubmit(t *testing.T) {
	if NewSession().CanSubmit() {
		t.Error("empty buffer should not be submittable")
	}
	if typeWord(NewSession(), "ЧУВА").CanSubmit() {
		t.Error("four letters should not be submittable")
	}
	full := typeWord(NewSession(), "ЧУВАК")
	if !full.CanSubmit() {
		t.Error("five letters should be submittable")
	}
	if full.SetDictionaryOpen(true).CanSubmit() {
		t.Error("open dictionary should block submit")
	}
}

func TestAcceptAppendsAndUpgrades(t *testing.T) {
	s := typeWord(NewSession(), "ШКОЛА")
	s.Pending = true
	next, err := s.Accept(GuessResult{Mask: mask(0, 2, 1, 0, 2)})
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if len(next.Attempts) != 1 || next.Attempts[0].Word != "ШКОЛА" {
		t.Fatalf("unexpected attempts %+v", next.Attempts)
	}
	if next.Guess != "" || next.Pending || next.Over {
		t.Errorf("unexpected state after accept: %+v", next)
	}
	if next.Keyboard.Status('К') != StatusGreen {
		t.Errorf("keyboard not upgraded")
	}
	if len(s.Attempts) != 0 || s.Keyboard.Status('К') != StatusDefault {
		t.Error("previous session was modified")
	}
}

func TestAcceptWin(t *testing.T) {
	s := typeWord(NewSession(), "ЖЕСТЬ")
	sol := &Entry{Word: "ЖЕСТЬ", Desc: "что-то шокирующее"}
	next, err := s.Accept(GuessResult{Mask: mask(2, 2, 2, 2, 2), IsWin: true, Solution: sol})
	if err != nil {
		t.Fatal(err)
	}
	if !next.Over || !next.Won {
		t.Errorf("expected win, got over=%v won=%v", next.Over, next.Won)
	}
	if next.Solution == nil || next.Solution.Word != "ЖЕСТЬ" {
		t.Errorf("solution not stored: %+v", next.Solution)
	}
}

func TestSixAttemptsEndsGame(t *testing.T) {
	s := NewSession()
	for i := 0; i < MaxAttempts; i++ {
		if s.Over {
			t.Fatalf("game over early after %d attempts", i)
		}
		s = typeWord(s, "ОБЛОМ")
		res := GuessResult{Mask: mask(0, 0, 1, 0, 0)}
		if i == MaxAttempts-1 {
			res.Solution = &Entry{Word: "ТУСНЯ", Desc: "вечеринка"}
		}
		var err error
		if s, err = s.Accept(res); err != nil {
			t.Fatalf("attempt %d: %v", i, err)
		}
	}
	if !s.Over || s.Won {
		t.Errorf("expected loss, got over=%v won=%v", s.Over, s.Won)
	}
	if s.Solution == nil || s.Solution.Word != "ТУСНЯ" {
		t.Errorf("expected solution from sixth response, got %+v", s.Solution)
	}
	if got := typeWord(s, "А"); got.Guess != "" {
		t.Errorf("buffer editable after game over: %q", got.Guess)
	}
}

func TestSolutionIgnoredWhileActive(t *testing.T) {
	s := typeWord(NewSession(), "ОБЛОМ")
	next, err := s.Accept(GuessResult{Mask: mask(0, 0, 0, 0, 0), Solution: &Entry{Word: "ТУСНЯ"}})
	if err != nil {
		t.Fatal(err)
	}
	if next.Solution != nil {
		t.Errorf("solution revealed before game over: %+v", next.Solution)
	}
}

func TestAcceptInvalidMaskIsAtomic(t *testing.T) {
	s := typeWord(NewSession(), "ПОНТЫ")
	s.Pending = true
	for _, m := range [][]VerdictCode{mask(2, 2, 9, 0, 0), mask(1, 1), nil} {
		next, err := s.Accept(GuessResult{Mask: m})
		if !errors.Is(err, ErrInvalidMaskCode) {
			t.Fatalf("mask %v: expected ErrInvalidMaskCode, got %v", m, err)
		}
		if len(next.Attempts) != 0 || next.Guess != "ПОНТЫ" {
			t.Errorf("mask %v: state changed: %+v", m, next)
		}
		if next.Keyboard.Status('П') != StatusDefault {
			t.Errorf("mask %v: keyboard changed", m)
		}
		if next.Message != MsgMalformedResponse {
			t.Errorf("mask %v: message %q", m, next.Message)
		}
		if next.Pending {
			t.Errorf("mask %v: still pending", m)
		}
	}
}

func TestFailKeepsBuffer(t *testing.T) {
	s := typeWord(NewSession(), "КАПУТ")
	s.Pending = true

	got := s.Fail(&ValidationError{Status: 400, Message: "Такого слова нет в словаре"})
	if got.Guess != "КАПУТ" || len(got.Attempts) != 0 {
		t.Errorf("rejection changed state: %+v", got)
	}
	if got.Message != "Такого слова нет в словаре" {
		t.Errorf("message %q", got.Message)
	}

	got = s.Fail(&ServiceUnavailableError{Op: "check-word", Err: errors.New("connection refused")})
	if got.Message != MsgServiceUnavailable || got.Guess != "КАПУТ" {
		t.Errorf("transport failure: %+v", got)
	}
}
