package results

import (
	"context"
	"database/sql"
	"time"

	"github.com/oklog/ulid/v2"
)

// Result is one finished round.
type Result struct {
	ID         string    `json:"id"`
	GameID     string    `json:"gameId"`
	PlayerID   string    `json:"playerId"`
	Word       string    `json:"word"`
	Guesses    int       `json:"guesses"`
	Won        bool      `json:"won"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

// Stats summarizes a player's finished rounds.
type Stats struct {
	Played int `json:"played"`
	Wins   int `json:"wins"`
}

// Store records finished rounds in SQLite.
type Store struct{ db *sql.DB }

// Open opens the database at path and applies migrations.
func Open(path string) (*Store, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Insert stores r. A second insert for the same game is ignored.
func (s *Store) Insert(ctx context.Context, r Result) error {
	if r.ID == "" {
		r.ID = ulid.Make().String()
	}
	if r.FinishedAt.IsZero() {
		r.FinishedAt = time.Now().UTC()
	}
	won := 0
	if r.Won {
		won = 1
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO results
            (id, game_id, player_id, word, guesses, won, started_at, finished_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.GameID, r.PlayerID, r.Word, r.Guesses, won,
		r.StartedAt.UTC().Format(time.RFC3339), r.FinishedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// PlayerStats counts finished rounds and wins for playerID.
func (s *Store) PlayerStats(ctx context.Context, playerID string) (Stats, error) {
	var st Stats
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1), COALESCE(SUM(won), 0) FROM results WHERE player_id=?`, playerID,
	).Scan(&st.Played, &st.Wins)
	return st, err
}
