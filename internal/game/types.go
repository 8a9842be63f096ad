// internal/game/types.go
//
// Core type definitions for the JORDLE client state machine.
// Defines:
//   - VerdictCode: per-letter correctness code produced by the game service.
//   - LetterStatus: best-known classification of an alphabet letter.
//   - Attempt: one scored guess.
//   - Entry: a dictionary word with its description (also used for the solution).

package game

const (
	// WordLen is the number of letters in every guess.
	WordLen = 5
	// MaxAttempts is the number of guesses a session allows.
	MaxAttempts = 6
)

// Alphabet is the fixed set of letters shown on the keyboard.
const Alphabet = "ЙЦУКЕНГШЩЗХЪФЫВАПРОЛДЖЭЯЧСМИТЬБЮЁ"

// VerdictCode is the service's positional verdict for one letter of a guess.
//   - 0: letter is absent from the secret word.
//   - 1: letter is present elsewhere.
//   - 2: letter is in the correct position.
type VerdictCode int

const (
	VerdictAbsent  VerdictCode = 0
	VerdictPresent VerdictCode = 1
	VerdictCorrect VerdictCode = 2
)

// LetterStatus is the keyboard colour of a letter.
type LetterStatus string

const (
	StatusDefault LetterStatus = "default"
	StatusRed     LetterStatus = "red"
	StatusYellow  LetterStatus = "yellow"
	StatusGreen   LetterStatus = "green"
)

// Attempt is a completed, scored guess. Attempts are never modified after
// they are appended to a session.
type Attempt struct {
	Word string        `json:"word"`
	Mask []VerdictCode `json:"mask"`
}

// Letters returns the guess split into runes.
func (a Attempt) Letters() []rune { return []rune(a.Word) }

// Entry is a dictionary word together with its description.
type Entry struct {
	Word string `json:"word"`
	Desc string `json:"desc"`
}

// GuessResult is the service's successful answer to a submitted guess.
type GuessResult struct {
	Mask     []VerdictCode `json:"mask"`
	IsWin    bool          `json:"isWin"`
	Solution *Entry        `json:"solution,omitempty"`
}
