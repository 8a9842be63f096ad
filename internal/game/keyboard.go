// internal/game/keyboard.go
//
// Keyboard status aggregation.
// Every submitted attempt folds its mask into one best-known status per
// letter. Statuses only move up the Priority ranking; equal ranks overwrite,
// which keeps re-applying the same attempt a no-op.

package game

import "fmt"

// Keyboard maps letters to their best-known status.
// Letters without an entry are StatusDefault.
type Keyboard map[rune]LetterStatus

// NewKeyboard returns a keyboard with every alphabet letter at StatusDefault.
func NewKeyboard() Keyboard {
	kb := make(Keyboard, len([]rune(Alphabet)))
	for _, r := range Alphabet {
		kb[r] = StatusDefault
	}
	return kb
}

// Status returns the status of letter r.
func (kb Keyboard) Status(r rune) LetterStatus {
	if s, ok := kb[r]; ok {
		return s
	}
	return StatusDefault
}

// Clone returns an independent copy.
func (kb Keyboard) Clone() Keyboard {
	out := make(Keyboard, len(kb))
	for k, v := range kb {
		out[k] = v
	}
	return out
}

// Upgrade returns a new keyboard with word/mask folded in. The receiver is
// not modified. Mask index i describes word letter i.
// On any invalid code the receiver's contents are returned unchanged along
// with an error wrapping ErrInvalidMaskCode.
func (kb Keyboard) Upgrade(word string, mask []VerdictCode) (Keyboard, error) {
	letters := []rune(word)
	if len(letters) != len(mask) {
		return kb, fmt.Errorf("%w: word has %d letters, mask has %d", ErrInvalidMaskCode, len(letters), len(mask))
	}

	next := kb.Clone()
	for i, code := range mask {
		status, err := Classify(code)
		if err != nil {
			return kb, err
		}
		r := letters[i]
		if status.Priority() >= next.Status(r).Priority() {
			next[r] = status
		}
	}
	return next, nil
}
