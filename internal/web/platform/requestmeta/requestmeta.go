// Package requestmeta derives scheme and origin facts from incoming requests.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"
)

// SchemePolicy controls whether proxy-supplied scheme headers are trusted.
// X-Forwarded-Proto is ignored unless TrustForwardedProto is set, so a direct
// client cannot claim an HTTPS origin it does not have.
type SchemePolicy struct {
	TrustForwardedProto bool
}

// origin is a normalized scheme/host/port triple.
type origin struct {
	scheme string
	host   string
	port   string
}

func (o origin) valid() bool {
	return o.scheme != "" && o.host != "" && o.port != ""
}

func (o origin) matches(other origin) bool {
	return o.valid() && other.valid() &&
		o.scheme == other.scheme && o.host == other.host && o.port == other.port
}

// IsHTTPS reports whether the request should be treated as HTTPS.
func IsHTTPS(r *http.Request) bool {
	return IsHTTPSWithPolicy(r, SchemePolicy{})
}

// IsHTTPSWithPolicy reports whether the request should be treated as HTTPS
// under the given scheme policy.
func IsHTTPSWithPolicy(r *http.Request, policy SchemePolicy) bool {
	return schemeOf(r, policy) == "https"
}

// HasSameOriginProof reports whether the Origin or Referer header proves the
// request came from this site.
func HasSameOriginProof(r *http.Request) bool {
	return HasSameOriginProofWithPolicy(r, SchemePolicy{})
}

// HasSameOriginProofWithPolicy reports whether Origin or Referer proves
// same-origin under the given scheme policy. Origin is consulted first;
// Referer only when Origin is absent. A request with neither header carries
// no proof.
func HasSameOriginProofWithPolicy(r *http.Request, policy SchemePolicy) bool {
	if r == nil {
		return false
	}
	req := requestOrigin(r, policy)
	if !req.valid() {
		return false
	}
	for _, header := range []string{"Origin", "Referer"} {
		if raw := strings.TrimSpace(r.Header.Get(header)); raw != "" {
			return parseOrigin(raw).matches(req)
		}
	}
	return false
}

// parseOrigin normalizes a header URL into an origin. A missing port falls
// back to the scheme default.
func parseOrigin(raw string) origin {
	parsed, err := url.Parse(raw)
	if err != nil {
		return origin{}
	}
	o := origin{
		scheme: strings.ToLower(strings.TrimSpace(parsed.Scheme)),
		host:   strings.ToLower(strings.TrimSpace(parsed.Hostname())),
		port:   strings.TrimSpace(parsed.Port()),
	}
	if o.port == "" {
		o.port = defaultPort(o.scheme)
	}
	return o
}

// requestOrigin builds the request's own origin from its host and resolved
// scheme.
func requestOrigin(r *http.Request, policy SchemePolicy) origin {
	o := origin{scheme: schemeOf(r, policy)}
	o.host, o.port = splitHost(r.Host)
	if o.host == "" && r.URL != nil {
		o.host, o.port = splitHost(r.URL.Host)
	}
	if o.port == "" {
		o.port = defaultPort(o.scheme)
	}
	return o
}

// schemeOf resolves the effective request scheme: a trusted forwarded proto
// wins, then the URL scheme, then TLS state.
func schemeOf(r *http.Request, policy SchemePolicy) string {
	if r == nil {
		return ""
	}
	if policy.TrustForwardedProto {
		forwarded := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")))
		if forwarded == "http" || forwarded == "https" {
			return forwarded
		}
	}
	if r.URL != nil {
		scheme := strings.ToLower(strings.TrimSpace(r.URL.Scheme))
		if scheme == "http" || scheme == "https" {
			return scheme
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func defaultPort(scheme string) string {
	switch scheme {
	case "https":
		return "443"
	case "http":
		return "80"
	default:
		return ""
	}
}

func splitHost(rawHost string) (string, string) {
	parsed, err := url.Parse("//" + strings.TrimSpace(rawHost))
	if err != nil {
		return "", ""
	}
	return strings.ToLower(strings.TrimSpace(parsed.Hostname())), strings.TrimSpace(parsed.Port())
}
