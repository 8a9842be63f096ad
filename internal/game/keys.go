package game

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// KeyAction is the logical event a key press maps to.
type KeyAction int

const (
	KeyIgnored KeyAction = iota
	KeyLetter
	KeyEnter
	KeyBackspace
)

// InAlphabet reports whether r is one of the keyboard letters.
func InAlphabet(r rune) bool { return strings.ContainsRune(Alphabet, r) }

// NormalizeKey translates a physical key name into a logical event.
// guessLen is the current buffer length; the Latin E is read as Ё only
// while the buffer still has room.
func NormalizeKey(key string, guessLen int) (KeyAction, rune) {
	k := strings.ToUpper(norm.NFC.String(key))
	switch k {
	case "ENTER":
		return KeyEnter, 0
	case "BACKSPACE":
		return KeyBackspace, 0
	}
	if utf8.RuneCountInString(k) != 1 {
		return KeyIgnored, 0
	}
	r, _ := utf8.DecodeRuneInString(k)
	if r == 'E' && guessLen < WordLen && !InAlphabet('E') {
		r = 'Ё'
	}
	if !InAlphabet(r) {
		return KeyIgnored, 0
	}
	return KeyLetter, r
}

// NormalizeWord upper-cases and NFC-normalizes a whole word.
func NormalizeWord(w string) string {
	return strings.ToUpper(norm.NFC.String(strings.TrimSpace(w)))
}
