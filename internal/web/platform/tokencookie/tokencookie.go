// Package tokencookie centralizes session token cookie behavior.
//
// The pair is written to two cookies with identical attributes so that the
// router guard, which reads the request cookies directly, observes either
// both tokens or neither. SetCookie only appends response headers, so the
// pair is atomic from any reader's perspective.
package tokencookie

import (
	"net/http"
	"strings"
	"time"

	"github.com/tradelane/tradelane/internal/auth/token"
	"github.com/tradelane/tradelane/internal/web/platform/requestmeta"
)

// Read returns the trimmed token pair from the request cookies.
func Read(r *http.Request) (token.Pair, bool) {
	if r == nil {
		return token.Pair{}, false
	}
	pair := token.Pair{
		Auth:    cookieValue(r, token.AuthCookieName),
		Refresh: cookieValue(r, token.RefreshCookieName),
	}
	if !pair.Present() {
		return token.Pair{}, false
	}
	return pair, true
}

// Write sets both token cookies for the current request context.
func Write(w http.ResponseWriter, r *http.Request, pair token.Pair, ttl time.Duration) {
	WriteWithPolicy(w, r, pair, ttl, requestmeta.SchemePolicy{})
}

// WriteWithPolicy sets both token cookies for the current request context.
func WriteWithPolicy(w http.ResponseWriter, r *http.Request, pair token.Pair, ttl time.Duration, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	secure := requestmeta.IsHTTPSWithPolicy(r, policy)
	setTokenCookie(w, token.AuthCookieName, pair.Auth, ttl, secure)
	setTokenCookie(w, token.RefreshCookieName, pair.Refresh, ttl, secure)
}

// Clear expires both token cookies for the current request context.
func Clear(w http.ResponseWriter, r *http.Request) {
	ClearWithPolicy(w, r, requestmeta.SchemePolicy{})
}

// ClearWithPolicy expires both token cookies for the current request context.
func ClearWithPolicy(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	secure := requestmeta.IsHTTPSWithPolicy(r, policy)
	expireTokenCookie(w, token.AuthCookieName, secure)
	expireTokenCookie(w, token.RefreshCookieName, secure)
}

// Storage adapts one request/response exchange to token.Storage so the
// session store can persist tokens without knowing about HTTP.
type Storage struct {
	W      http.ResponseWriter
	R      *http.Request
	Policy requestmeta.SchemePolicy
}

// WriteTokens sets both cookies with the shared TTL.
func (s Storage) WriteTokens(pair token.Pair, ttl time.Duration) error {
	WriteWithPolicy(s.W, s.R, pair, ttl, s.Policy)
	return nil
}

// ReadTokens returns the pair carried by the request cookies.
func (s Storage) ReadTokens() (token.Pair, bool) {
	return Read(s.R)
}

// ClearTokens expires both cookies.
func (s Storage) ClearTokens() error {
	ClearWithPolicy(s.W, s.R, s.Policy)
	return nil
}

func cookieValue(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil || cookie == nil {
		return ""
	}
	return strings.TrimSpace(cookie.Value)
}

func setTokenCookie(w http.ResponseWriter, name, value string, ttl time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    strings.TrimSpace(value),
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func expireTokenCookie(w http.ResponseWriter, name string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}
