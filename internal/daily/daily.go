// Package daily picks the secret word per calendar day, so every player meets
// the same word when the service runs in daily mode.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

const dayLayout = "2006-01-02"

// Schedule maps calendar days in one time zone to dictionary positions.
// The mapping is keyed by a secret salt so players cannot precompute it.
type Schedule struct {
	salt []byte
	loc  *time.Location
}

// NewSchedule returns a schedule whose days roll over at midnight in loc
// (UTC when nil).
func NewSchedule(salt string, loc *time.Location) Schedule {
	if loc == nil {
		loc = time.UTC
	}
	return Schedule{salt: []byte(salt), loc: loc}
}

// Day is the calendar day of t, formatted YYYY-MM-DD.
func (s Schedule) Day(t time.Time) string {
	return t.In(s.loc).Format(dayLayout)
}

// NextRollover is the first instant after t that belongs to the next day.
func (s Schedule) NextRollover(t time.Time) time.Time {
	y, m, d := t.In(s.loc).Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, s.loc)
}

// Index returns the word position for the day of t among n words.
func (s Schedule) Index(t time.Time, n int) int {
	if n <= 1 {
		return 0
	}
	return s.slot(s.Day(t), n)
}

// slot is HMAC-SHA256(salt, day) reduced to [0, n).
func (s Schedule) slot(day string, n int) int {
	mac := hmac.New(sha256.New, s.salt)
	mac.Write([]byte(day))
	return int(binary.BigEndian.Uint64(mac.Sum(nil)[:8]) % uint64(n))
}
