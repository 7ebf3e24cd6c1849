package web

import (
	"testing"

	"github.com/tradelane/tradelane/internal/auth/identity"
	"github.com/tradelane/tradelane/internal/event"
)

func TestViewerFollowsBusTraffic(t *testing.T) {
	t.Parallel()

	bus := event.NewBus()
	viewer := newViewerState(bus)

	if signedIn, _, _, _ := viewer.snapshot(); signedIn {
		t.Fatal("fresh viewer must be signed out")
	}

	id := identity.Reference()
	bus.PublishIdentityReplaced(event.IdentityReplaced{Identity: &id})
	signedIn, name, email, avatar := viewer.snapshot()
	if !signedIn || name != id.Name || email != id.Email || avatar != id.AvatarURL {
		t.Fatalf("snapshot = %v %q %q %q, want reference identity", signedIn, name, email, avatar)
	}

	bus.PublishProfileFieldsChanged(event.ProfileFieldsChanged{Name: event.String("Renamed")})
	if _, name, email, _ := viewer.snapshot(); name != "Renamed" || email != id.Email {
		t.Fatalf("partial edit applied wrong: name=%q email=%q", name, email)
	}

	bus.PublishIdentityReplaced(event.IdentityReplaced{})
	if signedIn, name, _, _ := viewer.snapshot(); signedIn || name != "" {
		t.Fatal("sign-out must clear the viewer")
	}
}

func TestViewerIgnoresProfileEditsWhileSignedOut(t *testing.T) {
	t.Parallel()

	bus := event.NewBus()
	viewer := newViewerState(bus)

	bus.PublishProfileFieldsChanged(event.ProfileFieldsChanged{Name: event.String("Ghost")})
	if signedIn, name, _, _ := viewer.snapshot(); signedIn || name != "" {
		t.Fatal("signed-out viewer must not apply profile edits")
	}
}
