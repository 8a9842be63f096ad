// internal/service/engine.go
//
// Server-side round engine for the reference game service.
// Responsibilities:
//   - Hold one player's secret word and guess count.
//   - Validate guesses (length, dictionary membership, game not finished).
//   - Score guesses and decide when to reveal the solution.
//
// State transitions:
//   - All letters correct → Finished, Won.
//   - Otherwise once Guesses reaches MaxAttempts → Finished.
//
// The solution is revealed only in a Finished round; the client's own
// attempt counter is never trusted for that.

package service

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/robalobadob/jordle/internal/game"
	"github.com/robalobadob/jordle/internal/words"
)

// Validation errors; their text is shown to players verbatim.
var (
	ErrInvalidLength   = errors.New("Слово должно состоять из 5 букв")
	ErrNotInDictionary = errors.New("Такого слова нет в словаре")
	ErrFinished        = errors.New("Игра окончена, начните новую")
)

// Game is one player's round.
type Game struct {
	ID        string
	PlayerID  string
	Answer    game.Entry
	Guesses   int
	Finished  bool
	Won       bool
	StartedAt time.Time
}

// New starts a round for player with the given answer.
func New(id, playerID string, answer game.Entry) *Game {
	return &Game{
		ID:        id,
		PlayerID:  playerID,
		Answer:    answer,
		StartedAt: time.Now().UTC(),
	}
}

// ApplyGuess validates and scores guess, mutating the round. Rejected
// guesses leave the round untouched.
func (g *Game) ApplyGuess(dict *words.Dictionary, guess string) (*game.GuessResult, error) {
	if g.Finished {
		return nil, ErrFinished
	}
	guess = game.NormalizeWord(guess)
	if utf8.RuneCountInString(guess) != game.WordLen {
		return nil, ErrInvalidLength
	}
	if !dict.IsAllowed(guess) {
		return nil, ErrNotInDictionary
	}

	mask := words.Score(guess, g.Answer.Word)
	g.Guesses++

	res := &game.GuessResult{Mask: mask}
	switch {
	case game.AllCorrect(mask):
		g.Finished, g.Won = true, true
		res.IsWin = true
	case g.Guesses >= game.MaxAttempts:
		g.Finished = true
	}
	if g.Finished {
		sol := g.Answer
		res.Solution = &sol
	}
	return res, nil
}

