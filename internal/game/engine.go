// internal/game/engine.go
//
// Session state and its transitions.
// Responsibilities:
//   - Gate edits of the guess buffer (turn controller).
//   - Apply an accepted guess: append the attempt, upgrade the keyboard,
//     detect win/loss, all in one step.
//   - Record rejections and transport failures in the message slot.
//
// Every transition has a value receiver and returns the next Session, so the
// previous state is never partially modified.

package game

import (
	"slices"
	"unicode/utf8"
)

// Session is the full in-memory state of one game.
type Session struct {
	Attempts []Attempt
	Guess    string // letters typed for the current row
	Over     bool
	Won      bool
	Solution *Entry // set only once Over

	Keyboard Keyboard

	Message        string // last user-facing error, empty when none
	DictionaryOpen bool
	Pending        bool // a guess is waiting for the service
}

// NewSession returns the initial Active state.
func NewSession() Session {
	return Session{
		Attempts: []Attempt{},
		Keyboard: NewKeyboard(),
	}
}

// GuessLen is the number of letters in the buffer.
func (s Session) GuessLen() int { return utf8.RuneCountInString(s.Guess) }

// Row is the index of the row currently being typed.
func (s Session) Row() int { return len(s.Attempts) }

// Locked reports whether buffer edits are rejected. The buffer is also
// frozen while a guess is in flight so the scored word matches the sent one.
func (s Session) Locked() bool { return s.Over || s.DictionaryOpen || s.Pending }

// AppendLetter adds r to the buffer unless locked or full.
// An accepted key press clears the message slot.
func (s Session) AppendLetter(r rune) Session {
	if s.Locked() {
		return s
	}
	s.Message = ""
	if s.GuessLen() >= WordLen {
		return s
	}
	s.Guess += string(r)
	return s
}

// DeleteLetter removes the last letter of the buffer unless locked.
func (s Session) DeleteLetter() Session {
	if s.Locked() {
		return s
	}
	s.Message = ""
	if s.Guess == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s.Guess)
	s.Guess = s.Guess[:len(s.Guess)-size]
	return s
}

// CanSubmit reports whether the buffer may be sent to the service.
func (s Session) CanSubmit() bool {
	return !s.Locked() && s.GuessLen() == WordLen
}

// Accept applies a successful service response to the buffered guess.
// The mask is validated first; on error the session is returned unchanged
// apart from the message slot.
func (s Session) Accept(res GuessResult) (Session, error) {
	s.Pending = false
	if err := validateMask(res.Mask); err != nil {
		s.Message = userMessage(err)
		return s, err
	}
	kb, err := s.Keyboard.Upgrade(s.Guess, res.Mask)
	if err != nil {
		s.Message = userMessage(err)
		return s, err
	}

	attempt := Attempt{Word: s.Guess, Mask: slices.Clone(res.Mask)}
	s.Attempts = append(slices.Clip(s.Attempts), attempt)
	s.Keyboard = kb
	s.Guess = ""
	s.Message = ""

	if AllCorrect(res.Mask) {
		s.Over, s.Won = true, true
	} else if len(s.Attempts) >= MaxAttempts {
		s.Over = true
	}
	if s.Over && res.Solution != nil {
		sol := *res.Solution
		s.Solution = &sol
	}
	return s, nil
}

// Fail records err in the message slot. The buffer and attempts are kept
// so the player can retry.
func (s Session) Fail(err error) Session {
	s.Pending = false
	s.Message = userMessage(err)
	return s
}

// SetDictionaryOpen opens or closes the dictionary view.
func (s Session) SetDictionaryOpen(open bool) Session {
	s.DictionaryOpen = open
	return s
}
