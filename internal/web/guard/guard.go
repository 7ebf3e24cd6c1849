// Package guard enforces route-level authentication before any handler runs.
//
// The guard reads the token cookies straight off the request: presence of
// either token counts as authenticated. Nothing validates token integrity,
// so the guard's decisions are only as trustworthy as the cookies; this is
// the portal's known-weak demo trust model, not something to ship against
// real accounts.
package guard

import (
	"net/http"
	"strings"

	"github.com/tradelane/tradelane/internal/auth/token"
	"github.com/tradelane/tradelane/internal/web/routepath"
)

// Config is the ordered allow/deny table keyed by path prefix.
type Config struct {
	// LoginPath is the entry surface unauthenticated requests land on.
	LoginPath string
	// DashboardPath is where authenticated requests to "/" or the login
	// surface are sent.
	DashboardPath string
	// ProtectedPrefix scopes the authenticated area, including the
	// trailing slash (e.g. "/client/").
	ProtectedPrefix string
	// PassPrefixes are always allowed through: build assets and public
	// API paths.
	PassPrefixes []string
}

// DefaultConfig returns the portal's routing table.
func DefaultConfig() Config {
	return Config{
		LoginPath:       routepath.Login,
		DashboardPath:   routepath.ClientDashboard,
		ProtectedPrefix: routepath.ClientPrefix,
		PassPrefixes:    []string{routepath.StaticPrefix, routepath.PublicAPIPrefix},
	}
}

// duplicatePrefix returns the protected prefix nested inside itself, e.g.
// "/client/client/". Requests under it are redirected to login to break
// client-side navigation loops.
func (c Config) duplicatePrefix() string {
	return c.ProtectedPrefix + strings.TrimPrefix(c.ProtectedPrefix, "/")
}

// Middleware wraps next with the guard's decision table, evaluated in order
// with first match winning:
//
//  1. duplicate protected prefix          -> redirect to login
//  2. pass prefixes or dotted path        -> pass through
//  3. root: authenticated                 -> redirect to dashboard
//  4. login: authenticated                -> safe callbackUrl or dashboard
//  5. protected prefix: unauthenticated   -> login with callbackUrl
//  6. anything else                       -> pass through
func Middleware(cfg Config, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if strings.HasPrefix(path, cfg.duplicatePrefix()) {
			http.Redirect(w, r, cfg.LoginPath, http.StatusFound)
			return
		}

		if passesUnchecked(cfg, path) {
			next.ServeHTTP(w, r)
			return
		}

		if path == "" || path == routepath.Root {
			if authenticated(r) {
				http.Redirect(w, r, cfg.DashboardPath, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		if path == cfg.LoginPath {
			if authenticated(r) {
				target := cfg.DashboardPath
				if callback, ok := routepath.SafeCallback(r.URL.Query().Get(routepath.CallbackQueryKey)); ok {
					target = callback
				}
				http.Redirect(w, r, target, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		if strings.HasPrefix(path, cfg.ProtectedPrefix) {
			if !authenticated(r) {
				http.Redirect(w, r, routepath.LoginWithCallback(path), http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// passesUnchecked reports whether the path skips authentication entirely:
// configured pass prefixes and anything with a file extension.
func passesUnchecked(cfg Config, path string) bool {
	for _, prefix := range cfg.PassPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return strings.Contains(path, ".")
}

// authenticated reports whether either session token cookie is present.
// Presence, not validity: see the package comment.
func authenticated(r *http.Request) bool {
	for _, name := range []string{token.AuthCookieName, token.RefreshCookieName} {
		if cookie, err := r.Cookie(name); err == nil && strings.TrimSpace(cookie.Value) != "" {
			return true
		}
	}
	return false
}
