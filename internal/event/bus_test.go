package event

import (
	"testing"

	"github.com/tradelane/tradelane/internal/auth/identity"
)

func TestPublishDeliversExactlyOnce(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	var got []IdentityReplaced
	unsubscribe := bus.SubscribeIdentityReplaced(func(ev IdentityReplaced) {
		got = append(got, ev)
	})
	defer unsubscribe()

	id := identity.Reference()
	bus.PublishIdentityReplaced(IdentityReplaced{Identity: &id})

	if len(got) != 1 {
		t.Fatalf("deliveries = %d, want 1", len(got))
	}
	if got[0].Identity == nil || got[0].Identity.Email != id.Email {
		t.Fatalf("payload = %+v, want identity %q", got[0], id.Email)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	calls := 0
	unsubscribe := bus.SubscribeIdentityReplaced(func(IdentityReplaced) { calls++ })

	bus.PublishIdentityReplaced(IdentityReplaced{})
	unsubscribe()
	bus.PublishIdentityReplaced(IdentityReplaced{})

	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	unsubscribe := bus.SubscribeProfileFieldsChanged(func(ProfileFieldsChanged) {})
	unsubscribe()
	unsubscribe()

	calls := 0
	release := bus.SubscribeProfileFieldsChanged(func(ProfileFieldsChanged) { calls++ })
	defer release()
	bus.PublishProfileFieldsChanged(ProfileFieldsChanged{})
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestHandlersRunInSubscriptionOrder(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	var order []string
	first := bus.SubscribeProfileFieldsChanged(func(ProfileFieldsChanged) { order = append(order, "first") })
	defer first()
	second := bus.SubscribeProfileFieldsChanged(func(ProfileFieldsChanged) { order = append(order, "second") })
	defer second()

	bus.PublishProfileFieldsChanged(ProfileFieldsChanged{Name: String("Austin")})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("order = %v, want [first second]", order)
	}
}

func TestEventKindsAreIndependent(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	identityCalls := 0
	profileCalls := 0
	releaseIdentity := bus.SubscribeIdentityReplaced(func(IdentityReplaced) { identityCalls++ })
	defer releaseIdentity()
	releaseProfile := bus.SubscribeProfileFieldsChanged(func(ProfileFieldsChanged) { profileCalls++ })
	defer releaseProfile()

	bus.PublishProfileFieldsChanged(ProfileFieldsChanged{})

	if identityCalls != 0 {
		t.Fatalf("identity deliveries = %d, want 0", identityCalls)
	}
	if profileCalls != 1 {
		t.Fatalf("profile deliveries = %d, want 1", profileCalls)
	}
}

func TestHandlerMayUnsubscribeDuringDispatch(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	calls := 0
	var unsubscribe func()
	unsubscribe = bus.SubscribeIdentityReplaced(func(IdentityReplaced) {
		calls++
		unsubscribe()
	})

	bus.PublishIdentityReplaced(IdentityReplaced{})
	bus.PublishIdentityReplaced(IdentityReplaced{})

	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}
