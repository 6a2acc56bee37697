// Package session is the process-wide store for per-session values that must
// survive independent recompute cycles, currently just the year the user last
// committed on the slider. Sessions are keyed by opaque ids and never see
// each other's entries; lifecycle is explicit (Open once, Clear at end).
package session

import (
	"sync"

	"github.com/google/uuid"
)

type Store struct {
	mu    sync.Mutex
	years map[string]int
}

func NewStore() *Store {
	return &Store{years: make(map[string]int)}
}

// Open registers a new session and returns its id.
func (s *Store) Open() string {
	return uuid.NewString()
}

// SetYear records the year the session last committed directly.
func (s *Store) SetYear(id string, year int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.years[id] = year
}

// Year returns the persisted year for the session, if any was ever set.
func (s *Store) Year(id string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	y, ok := s.years[id]
	return y, ok
}

// Clear drops everything the session persisted. Call at session end.
func (s *Store) Clear(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.years, id)
}

// Bound ties a store to one session id and satisfies the engine's YearStore.
type Bound struct {
	Store *Store
	ID    string
}

func (b Bound) Year() (int, bool) {
	return b.Store.Year(b.ID)
}
