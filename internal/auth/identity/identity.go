// Package identity defines the authenticated principal and the demo
// credential verifier behind the client portal.
//
// The portal has no account backend: exactly one reference identity exists
// and Verify recognises only its credential pair. The reference secret never
// leaves this package.
package identity

import (
	"strings"
	"time"
)

// DefaultAvatarURL is the avatar shown when no custom photo is set.
const DefaultAvatarURL = "https://www.pngall.com/wp-content/uploads/12/Avatar-PNG-Background.png"

// Preferences holds per-user display preferences.
type Preferences struct {
	Notifications bool
	Theme         string
}

// Identity is the signed-in principal held by the session.
//
// An Identity is either fully populated or not held at all; "logged out" is
// a nil *Identity, never a partial record.
type Identity struct {
	ID          string
	Name        string
	Email       string
	AvatarURL   string
	Role        string
	Verified    bool
	Phone       string
	Preferences Preferences
	// Extra carries optional profile fields (address, city, ...) without
	// widening the closed record.
	Extra     map[string]string
	CreatedAt string
	UpdatedAt string
}

// Clone returns a deep copy so callers cannot mutate shared state.
func (id Identity) Clone() Identity {
	clone := id
	if id.Extra != nil {
		clone.Extra = make(map[string]string, len(id.Extra))
		for key, value := range id.Extra {
			clone.Extra[key] = value
		}
	}
	return clone
}

const referencePassword = "password123"

// referenceTimestamp pins the reference identity's timestamps for the
// process lifetime so repeated restores yield identical identities.
var referenceTimestamp = time.Now().UTC().Format(time.RFC3339)

var reference = Identity{
	ID:        "user-001",
	Name:      "Austin Bediako",
	Email:     "austin@logistics.com",
	AvatarURL: DefaultAvatarURL,
	Role:      "client",
	Verified:  true,
	Phone:     "+1 (555) 123-4567",
	Preferences: Preferences{
		Notifications: true,
		Theme:         "light",
	},
	Extra: map[string]string{
		"firstName": "Austin",
		"lastName":  "Bediako",
		"address":   "2000 Global Trade Plaza",
		"city":      "Wilmington",
		"state":     "Delaware",
		"zip":       "19801",
		"country":   "United States",
	},
	CreatedAt: referenceTimestamp,
	UpdatedAt: referenceTimestamp,
}

// Reference returns a copy of the canonical reference identity.
func Reference() Identity {
	return reference.Clone()
}

// Verify checks a submitted credential pair against the reference identity.
//
// Email comparison is case-insensitive, the password must match exactly, and
// the returned identity carries no secret material. Verify is pure: no I/O,
// no logging.
func Verify(email, password string) (Identity, bool) {
	if !strings.EqualFold(strings.TrimSpace(email), reference.Email) {
		return Identity{}, false
	}
	if password != referencePassword {
		return Identity{}, false
	}
	return Reference(), true
}
