package words

import "github.com/robalobadob/jordle/internal/game"

// Score compares guess against answer and returns one verdict per letter:
//   0 = absent, 1 = present elsewhere, 2 = correct position.
//
// Two passes over runes:
//   Pass 1: mark exact matches and count the answer's remaining letters.
//   Pass 2: for non-matches, mark present while unused letters remain.
// Repeated letters are therefore never over-reported.
func Score(guess, answer string) []game.VerdictCode {
	g, a := []rune(guess), []rune(answer)
	out := make([]game.VerdictCode, len(a))
	if len(g) != len(a) {
		return out
	}

	freq := make(map[rune]int, len(a))
	for i := range a {
		if g[i] == a[i] {
			out[i] = game.VerdictCorrect
		} else {
			freq[a[i]]++
		}
	}

	for i := range g {
		if out[i] == game.VerdictCorrect {
			continue
		}
		if freq[g[i]] > 0 {
			out[i] = game.VerdictPresent
			freq[g[i]]--
		}
	}
	return out
}

