// Package session holds the portal's single authenticated session and the
// state machine around it.
//
// The store is the only writer of the held identity. Token persistence is
// request-scoped in an HTTP server, so every operation takes the
// token.Storage to act on instead of owning one. Operations never return
// errors: every internal failure degrades to the anonymous state and is
// logged, which matches the portal's demo trust model.
package session

import (
	"log"
	"sync"
	"time"

	"github.com/tradelane/tradelane/internal/auth/identity"
	"github.com/tradelane/tradelane/internal/auth/token"
	"github.com/tradelane/tradelane/internal/event"
)

// State describes what the store knows about the session.
type State int

const (
	// StateUnknown means no restore has run yet.
	StateUnknown State = iota
	// StateAnonymous means the session is known to be absent.
	StateAnonymous
	// StateAuthenticated means an identity is held.
	StateAuthenticated
)

// String returns the state name for logs.
func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Store owns the current identity and broadcasts changes on the bus.
type Store struct {
	bus *event.Bus

	mu       sync.RWMutex
	identity *identity.Identity
	state    State
	loading  bool
}

// NewStore creates a store in the unknown state.
func NewStore(bus *event.Bus) *Store {
	return &Store{bus: bus}
}

// Login verifies the submitted credentials and establishes a session.
//
// On success it writes a fresh token pair with a TTL derived from
// rememberMe, holds the verified identity, and broadcasts both event kinds.
// On mismatch or storage failure it clears any persisted tokens, drops the
// identity, broadcasts the absence, and returns false.
func (s *Store) Login(tokens token.Storage, email, password string, rememberMe bool) bool {
	id, ok := identity.Verify(email, password)
	if !ok {
		log.Printf("session: login rejected for %q", email)
		s.abandon(tokens)
		return false
	}

	pair := token.Mint(time.Now())
	if err := tokens.WriteTokens(pair, token.TTL(rememberMe)); err != nil {
		log.Printf("session: write tokens: %v", err)
		s.abandon(tokens)
		return false
	}

	s.hold(&id)
	s.bus.PublishIdentityReplaced(event.IdentityReplaced{Identity: &id})
	s.bus.PublishProfileFieldsChanged(event.ProfileFieldsChanged{
		Name:      event.String(id.Name),
		Email:     event.String(id.Email),
		AvatarURI: event.String(id.AvatarURL),
	})
	log.Printf("session: login succeeded for %q", id.Email)
	return true
}

// Logout ends the session. Token clearing is best-effort: the held identity
// is dropped even when the storage medium fails, because local state is the
// source of truth for the UI.
func (s *Store) Logout(tokens token.Storage) {
	if err := tokens.ClearTokens(); err != nil {
		log.Printf("session: clear tokens on logout: %v", err)
	}
	s.drop()
	s.bus.PublishIdentityReplaced(event.IdentityReplaced{})
}

// Restore rehydrates the session from persisted tokens.
//
// Presence of either token restores the reference identity; there is no
// server-side session record to validate against. The loading flag is set
// for the duration so dependent surfaces can distinguish "not yet known"
// from "known absent". Restore is idempotent for a fixed token state.
func (s *Store) Restore(tokens token.Storage) {
	s.setLoading(true)
	defer s.setLoading(false)

	pair, ok := tokens.ReadTokens()
	if !ok || !pair.Present() {
		s.drop()
		s.bus.PublishIdentityReplaced(event.IdentityReplaced{})
		return
	}

	id := identity.Reference()
	s.hold(&id)
	s.bus.PublishIdentityReplaced(event.IdentityReplaced{Identity: &id})
}

// ApplyProfileFields applies a partial profile edit to the held identity
// after the configured latency, then broadcasts the change. Edits from
// display components route through here rather than mutating state
// directly. A nil-identity store still broadcasts, so previews keep working
// for surfaces that render before restore completes.
func (s *Store) ApplyProfileFields(fields event.ProfileFieldsChanged, latency time.Duration) {
	if latency > 0 {
		time.Sleep(latency)
	}

	s.mu.Lock()
	if s.identity != nil {
		if fields.Name != nil {
			s.identity.Name = *fields.Name
		}
		if fields.Email != nil {
			s.identity.Email = *fields.Email
		}
		if fields.Phone != nil {
			s.identity.Phone = *fields.Phone
		}
		if fields.AvatarURI != nil {
			s.identity.AvatarURL = *fields.AvatarURI
		}
		s.identity.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	s.mu.Unlock()

	s.bus.PublishProfileFieldsChanged(fields)
}

// Current returns a copy of the held identity, or nil when anonymous.
func (s *Store) Current() *identity.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	clone := s.identity.Clone()
	return &clone
}

// State reports the session state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Loading reports whether a restore is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// abandon clears persisted tokens and broadcasts the absent identity.
func (s *Store) abandon(tokens token.Storage) {
	if err := tokens.ClearTokens(); err != nil {
		log.Printf("session: clear tokens: %v", err)
	}
	s.drop()
	s.bus.PublishIdentityReplaced(event.IdentityReplaced{})
}

func (s *Store) hold(id *identity.Identity) {
	s.mu.Lock()
	s.identity = id
	s.state = StateAuthenticated
	s.mu.Unlock()
}

func (s *Store) drop() {
	s.mu.Lock()
	s.identity = nil
	s.state = StateAnonymous
	s.mu.Unlock()
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}
