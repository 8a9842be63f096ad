// internal/words/words.go
//
// Dictionary management for the reference game service.
//
// Responsibilities:
//   - Load the dictionary from DICTIONARY_FILE or fall back to the embedded default.
//   - Normalize words (NFC, upper case) and keep only five-letter alphabet words.
//   - Answer membership queries and pick secret words.
//
// Dictionary format: a JSON array of {"word": ..., "desc": ...}.

package words

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"os"
	"unicode/utf8"

	"github.com/robalobadob/jordle/assets"
	"github.com/robalobadob/jordle/internal/game"
)

// Dictionary is an ordered, read-only word list with a lookup index.
type Dictionary struct {
	entries []game.Entry
	index   map[string]int // word → position in entries
}

// Load reads the dictionary from path, or the embedded default when path is empty.
func Load(path string) (*Dictionary, error) {
	var (
		raw []byte
		err error
	)
	if path != "" {
		raw, err = os.ReadFile(path)
	} else {
		raw, err = assets.Dictionary()
	}
	if err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	var list []game.Entry
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("parse dictionary: %w", err)
	}
	return New(list)
}

// New builds a Dictionary from entries, dropping malformed words and duplicates.
// Returns an error if nothing usable remains.
func New(list []game.Entry) (*Dictionary, error) {
	d := &Dictionary{index: make(map[string]int, len(list))}
	for _, e := range list {
		w := game.NormalizeWord(e.Word)
		if !valid(w) {
			continue
		}
		if _, dup := d.index[w]; dup {
			continue
		}
		d.index[w] = len(d.entries)
		d.entries = append(d.entries, game.Entry{Word: w, Desc: e.Desc})
	}
	if len(d.entries) == 0 {
		return nil, errors.New("words: dictionary is empty")
	}
	return d, nil
}

// valid reports whether w has WordLen letters, all from the alphabet.
func valid(w string) bool {
	if utf8.RuneCountInString(w) != game.WordLen {
		return false
	}
	for _, r := range w {
		if !game.InAlphabet(r) {
			return false
		}
	}
	return true
}

// Entries returns the dictionary in file order.
func (d *Dictionary) Entries() []game.Entry { return d.entries }

// Len is the number of words.
func (d *Dictionary) Len() int { return len(d.entries) }

// At returns the i-th entry.
func (d *Dictionary) At(i int) game.Entry { return d.entries[i] }

// Lookup returns the entry for w (normalized first).
func (d *Dictionary) Lookup(w string) (game.Entry, bool) {
	i, ok := d.index[game.NormalizeWord(w)]
	if !ok {
		return game.Entry{}, false
	}
	return d.entries[i], true
}

// IsAllowed reports whether w is a playable guess.
func (d *Dictionary) IsAllowed(w string) bool {
	_, ok := d.Lookup(w)
	return ok
}

// RandomIndex returns a cryptographically random entry index.
func (d *Dictionary) RandomIndex() int {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(d.entries))))
	if err != nil {
		return 0
	}
	return int(n.Int64())
}
