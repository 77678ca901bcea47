// Package engine holds the session listing store and executes structured
// queries against it.
package engine

import (
	"sync"

	"rentscout/internal/models"
)

// Store holds the normalized listings for the current session. Insertion
// order is preserved; it is the tie-break everywhere downstream. The mutex
// only guards the HTTP refresh path; the normal pipeline populates the
// store before any query is served.
type Store struct {
	mu       sync.RWMutex
	listings []models.Listing
}

// NewStore creates an empty listing store.
func NewStore() *Store {
	return &Store{}
}

// Add appends one listing.
func (s *Store) Add(l models.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listings = append(s.listings, l)
}

// AddBatch appends listings preserving their order.
func (s *Store) AddBatch(ls []models.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listings = append(s.listings, ls...)
}

// All returns a snapshot copy of the stored listings in insertion order.
func (s *Store) All() []models.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Listing, len(s.listings))
	copy(out, s.listings)

	return out
}

// Len reports the number of stored listings.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.listings)
}

// Clear discards the session's listings.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listings = nil
}
