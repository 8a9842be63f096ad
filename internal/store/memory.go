// internal/store/memory.go
//
// In-memory implementation of Store for the reference game service.
//
// Characteristics:
//   - Holds one *service.Game per player ID.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.
//   - Get returns ErrNotFound for players without a round.
//   - Update runs its callback under the write lock, so guesses for one
//     player are applied one at a time.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/jordle/internal/service"
)

// ErrNotFound is returned when a player has no round.
var ErrNotFound = errors.New("not found")

// Store persists the current round of each player.
type Store interface {
	// Save stores g as its player's current round, replacing any previous one.
	Save(ctx context.Context, g *service.Game) error

	// Get returns the player's current round.
	Get(ctx context.Context, playerID string) (*service.Game, error)

	// Update applies fn to the player's current round while holding the
	// store exclusively. When the player has none and start is non-nil, fn
	// runs on start() instead, and that round is kept only if fn succeeds.
	// Without a round and without start it returns ErrNotFound.
	Update(ctx context.Context, playerID string, start func() *service.Game, fn func(*service.Game) error) error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex             // guards games map
	games map[string]*service.Game // keyed by Game.PlayerID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*service.Game)}
}

// Save adds or replaces the player's round.
func (m *memory) Save(ctx context.Context, g *service.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.PlayerID] = g
	return nil
}

// Get looks up a player's round.
func (m *memory) Get(ctx context.Context, playerID string) (*service.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.games[playerID]; ok {
		return g, nil
	}
	return nil, ErrNotFound
}

// Update mutates a player's round atomically.
func (m *memory) Update(ctx context.Context, playerID string, start func() *service.Game, fn func(*service.Game) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[playerID]
	if !ok {
		if start == nil {
			return ErrNotFound
		}
		g = start()
	}
	if err := fn(g); err != nil {
		return err
	}
	m.games[playerID] = g
	return nil
}
