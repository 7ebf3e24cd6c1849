package web

import (
	"sync"

	"github.com/tradelane/tradelane/internal/event"
)

// viewerState mirrors the signed-in identity for page chrome. The header and
// sidebar render from this snapshot, which follows the synchronization bus
// instead of re-reading the session store on every request.
type viewerState struct {
	mu       sync.Mutex
	signedIn bool
	name     string
	email    string
	avatar   string
}

func newViewerState(bus *event.Bus) *viewerState {
	v := &viewerState{}
	bus.SubscribeIdentityReplaced(v.onIdentityReplaced)
	bus.SubscribeProfileFieldsChanged(v.onProfileFieldsChanged)
	return v
}

func (v *viewerState) onIdentityReplaced(ev event.IdentityReplaced) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if ev.Identity == nil {
		v.signedIn = false
		v.name, v.email, v.avatar = "", "", ""
		return
	}
	v.signedIn = true
	v.name = ev.Identity.Name
	v.email = ev.Identity.Email
	v.avatar = ev.Identity.AvatarURL
}

func (v *viewerState) onProfileFieldsChanged(ev event.ProfileFieldsChanged) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.signedIn {
		return
	}
	if ev.Name != nil {
		v.name = *ev.Name
	}
	if ev.Email != nil {
		v.email = *ev.Email
	}
	if ev.AvatarURI != nil {
		v.avatar = *ev.AvatarURI
	}
}

func (v *viewerState) snapshot() (signedIn bool, name, email, avatar string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.signedIn, v.name, v.email, v.avatar
}
