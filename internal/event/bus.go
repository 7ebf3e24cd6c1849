// Package event relays session and profile changes from the auth core to
// display components.
//
// Delivery is synchronous on the publisher's goroutine: handlers run in
// subscription order and a slow handler delays the ones after it. Handlers
// must not publish the event kind they are handling; the bus does not guard
// against that recursion.
package event

import (
	"sync"

	"github.com/tradelane/tradelane/internal/auth/identity"
)

// IdentityReplaced announces that the held identity changed wholesale.
type IdentityReplaced struct {
	// Identity is nil when the session ended.
	Identity *identity.Identity
}

// ProfileFieldsChanged carries a partial set of edited profile fields.
// Nil fields were not touched by the edit.
type ProfileFieldsChanged struct {
	Name      *string
	Email     *string
	Phone     *string
	AvatarURI *string
}

type subscription[T any] struct {
	id      int
	handler func(T)
}

type registry[T any] struct {
	mu     sync.Mutex
	nextID int
	subs   []subscription[T]
}

func (r *registry[T]) subscribe(handler func(T)) func() {
	r.mu.Lock()
	r.nextID++
	id := r.nextID
	r.subs = append(r.subs, subscription[T]{id: id, handler: handler})
	r.mu.Unlock()
	return func() {
		r.mu.Lock()
		for i, sub := range r.subs {
			if sub.id == id {
				r.subs = append(r.subs[:i], r.subs[i+1:]...)
				break
			}
		}
		r.mu.Unlock()
	}
}

func (r *registry[T]) publish(ev T) {
	r.mu.Lock()
	snapshot := make([]subscription[T], len(r.subs))
	copy(snapshot, r.subs)
	r.mu.Unlock()
	for _, sub := range snapshot {
		sub.handler(ev)
	}
}

// Bus is the in-process publish/subscribe relay for the two portal event
// kinds. The zero value is not usable; construct with NewBus.
type Bus struct {
	identity registry[IdentityReplaced]
	profile  registry[ProfileFieldsChanged]
}

// NewBus creates a bus with no subscribers.
func NewBus() *Bus {
	return &Bus{}
}

// SubscribeIdentityReplaced registers a handler and returns its unsubscribe
// function. Subscribers must unsubscribe on teardown; the bus holds the
// handler only while the registration lives.
func (b *Bus) SubscribeIdentityReplaced(handler func(IdentityReplaced)) func() {
	return b.identity.subscribe(handler)
}

// SubscribeProfileFieldsChanged registers a handler and returns its
// unsubscribe function.
func (b *Bus) SubscribeProfileFieldsChanged(handler func(ProfileFieldsChanged)) func() {
	return b.profile.subscribe(handler)
}

// PublishIdentityReplaced fans the event out to current subscribers.
func (b *Bus) PublishIdentityReplaced(ev IdentityReplaced) {
	b.identity.publish(ev)
}

// PublishProfileFieldsChanged fans the event out to current subscribers.
func (b *Bus) PublishProfileFieldsChanged(ev ProfileFieldsChanged) {
	b.profile.publish(ev)
}

// String returns a pointer to s, for building partial field payloads.
func String(s string) *string {
	return &s
}
