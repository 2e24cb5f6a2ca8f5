package services

import (
	"sync"

	"curiocart/internal/models"
)

// CartStore holds per-session shopping carts, keyed by the opaque session ID
// the cookie layer issues. State is volatile and lives only as long as the
// process, matching the session semantics of the cart it models.
//
// Mutations are serialized behind the lock, so two tabs adding to the same
// cart cannot lose an update.
type CartStore struct {
	mu    sync.RWMutex
	carts map[string][]models.CartLine
}

// NewCartStore creates an empty cart store.
func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string][]models.CartLine)}
}

// Get returns a copy of the session's cart. A session with no cart yields an
// empty slice, never nil.
func (s *CartStore) Get(sessionID string) []models.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := s.carts[sessionID]
	out := make([]models.CartLine, len(lines))
	copy(out, lines)
	return out
}

// Len returns the cart size for the session, 0 when absent.
func (s *CartStore) Len(sessionID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.carts[sessionID])
}

// Add appends a line to the session's cart, creating the cart if absent.
// There is no dedup or quantity merge: the same product twice is two lines.
func (s *CartStore) Add(sessionID string, line models.CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[sessionID] = append(s.carts[sessionID], line)
}

// Remove drops every line whose product id matches. An absent cart is a
// no-op.
func (s *CartStore) Remove(sessionID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, ok := s.carts[sessionID]
	if !ok {
		return
	}

	kept := lines[:0]
	for _, line := range lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	if len(kept) == 0 {
		delete(s.carts, sessionID)
		return
	}
	s.carts[sessionID] = kept
}

// Clear drops the session's cart entirely.
func (s *CartStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}
