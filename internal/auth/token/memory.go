package token

import (
	"sync"
	"time"
)

// MemoryStorage is an in-process Storage used by tests and session restore
// outside an HTTP request.
type MemoryStorage struct {
	mu        sync.Mutex
	pair      Pair
	expiresAt time.Time
	hasPair   bool
}

// NewMemoryStorage creates an empty in-memory token store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// WriteTokens stores the pair with its expiry horizon.
func (s *MemoryStorage) WriteTokens(pair Pair, ttl time.Duration) error {
	s.mu.Lock()
	s.pair = pair
	s.expiresAt = time.Now().Add(ttl)
	s.hasPair = true
	s.mu.Unlock()
	return nil
}

// ReadTokens returns the stored pair when present and unexpired.
func (s *MemoryStorage) ReadTokens() (Pair, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasPair || time.Now().After(s.expiresAt) {
		return Pair{}, false
	}
	return s.pair, true
}

// ClearTokens removes any stored pair.
func (s *MemoryStorage) ClearTokens() error {
	s.mu.Lock()
	s.pair = Pair{}
	s.hasPair = false
	s.mu.Unlock()
	return nil
}

// ExpiresAt exposes the stored expiry horizon for TTL assertions in tests.
func (s *MemoryStorage) ExpiresAt() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expiresAt, s.hasPair
}
