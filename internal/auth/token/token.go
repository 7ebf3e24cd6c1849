// Package token mints and inspects the opaque session token pair.
//
// Tokens are liveness markers, not credentials: the wire format is
// <kind>_<unixMilli>_<nonce> and nothing validates token integrity. A
// well-shaped forged token is indistinguishable from a minted one, which is
// the demo-grade trust model this portal is built around.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

// Cookie names shared by the persistence adapter and the router guard.
const (
	AuthCookieName    = "auth_token"
	RefreshCookieName = "refresh_token"
)

// Token kind prefixes.
const (
	KindAuth    = "auth"
	KindRefresh = "refresh"
)

// Session lifetimes keyed on the remember-me choice.
const (
	DefaultTTL    = 24 * time.Hour
	RememberMeTTL = 30 * 24 * time.Hour
)

// Pair is the primary/refresh token pair. Both values are written and
// cleared together; presence of either is treated as an active session.
type Pair struct {
	Auth    string
	Refresh string
}

// Present reports whether either token carries a value.
func (p Pair) Present() bool {
	return strings.TrimSpace(p.Auth) != "" || strings.TrimSpace(p.Refresh) != ""
}

// Mint creates a pair sharing one timestamp and one random nonce.
func Mint(now time.Time) Pair {
	nonce := randomHex(8)
	stamp := strconv.FormatInt(now.UnixMilli(), 10)
	return Pair{
		Auth:    KindAuth + "_" + stamp + "_" + nonce,
		Refresh: KindRefresh + "_" + stamp + "_" + nonce,
	}
}

// TTL maps the remember-me choice to the cookie lifetime.
func TTL(rememberMe bool) time.Duration {
	if rememberMe {
		return RememberMeTTL
	}
	return DefaultTTL
}

// Storage persists the token pair in a medium shared with the router guard.
//
// WriteTokens must leave the medium unchanged when it fails partway; readers
// never observe a half-written pair.
type Storage interface {
	WriteTokens(pair Pair, ttl time.Duration) error
	ReadTokens() (Pair, bool)
	ClearTokens() error
}

func randomHex(n int) string {
	buf := make([]byte, n)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
