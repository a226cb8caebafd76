// internal/store/memory.go
//
// In-memory record of finished games.
// Keeps one Record per session and derives player stats (games played, wins,
// streaks, fewest rounds to win) from them.
//
// Characteristics:
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.
//   - Get returns ErrNotFound for unknown IDs.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/tomasrobino/mastermind/internal/game"
)

// ErrNotFound is returned by Get for an unknown session ID.
var ErrNotFound = errors.New("not found")

// Record is the summary of one finished game.
type Record struct {
	SessionID  string
	Status     game.Status
	Guesses    int // accepted guesses, winning one included
	Secret     string
	FinishedAt time.Time
}

// Stats aggregates all saved records.
type Stats struct {
	GamesPlayed int
	Wins        int
	Streak      int // consecutive wins up to the latest game
	BestStreak  int
	BestGuesses int // fewest guesses in a win; 0 when there are no wins
}

// Store defines where finished games are kept.
type Store interface {
	// Save records a finished game. Saving the same SessionID twice replaces
	// the earlier record without counting the game again.
	Save(ctx context.Context, r Record) error

	// Get retrieves a record by session ID.
	Get(ctx context.Context, id string) (Record, error)

	// Stats summarises every record saved so far.
	Stats(ctx context.Context) (Stats, error)
}

// memory is an in-memory Store.
type memory struct {
	mu    sync.RWMutex
	order []string          // session IDs in first-save order
	games map[string]Record // keyed by SessionID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]Record)}
}

// Save adds or replaces the record.
func (m *memory) Save(ctx context.Context, r Record) error {
	if r.SessionID == "" {
		return errors.New("store: record has no session id")
	}
	if !r.Status.Terminal() {
		return errors.New("store: game is not finished")
	}
	if r.FinishedAt.IsZero() {
		r.FinishedAt = time.Now().UTC()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[r.SessionID]; !ok {
		m.order = append(m.order, r.SessionID)
	}
	m.games[r.SessionID] = r
	return nil
}

// Get looks up a record by session ID.
func (m *memory) Get(ctx context.Context, id string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.games[id]; ok {
		return r, nil
	}
	return Record{}, ErrNotFound
}

// Stats walks the records in save order: a win extends the streak, a loss
// resets it.
func (m *memory) Stats(ctx context.Context) (Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var st Stats
	for _, id := range m.order {
		r := m.games[id]
		st.GamesPlayed++
		if r.Status == game.StatusWon {
			st.Wins++
			st.Streak++
			if st.Streak > st.BestStreak {
				st.BestStreak = st.Streak
			}
			if st.BestGuesses == 0 || r.Guesses < st.BestGuesses {
				st.BestGuesses = r.Guesses
			}
		} else {
			st.Streak = 0
		}
	}
	return st, nil
}
