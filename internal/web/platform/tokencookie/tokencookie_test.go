package tokencookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tradelane/tradelane/internal/auth/token"
	"github.com/tradelane/tradelane/internal/web/platform/requestmeta"
)

func parseSetCookies(t *testing.T, rr *httptest.ResponseRecorder) map[string]*http.Cookie {
	t.Helper()
	cookies := map[string]*http.Cookie{}
	for _, raw := range rr.Header().Values("Set-Cookie") {
		cookie, err := http.ParseSetCookie(raw)
		if err != nil {
			t.Fatalf("ParseSetCookie(%q) error = %v", raw, err)
		}
		cookies[cookie.Name] = cookie
	}
	return cookies
}

func TestWriteSetsBothCookiesWithSharedAttributes(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "https://portal.example.test/login", nil)
	rr := httptest.NewRecorder()
	pair := token.Pair{Auth: "auth_1_abc", Refresh: "refresh_1_abc"}

	Write(rr, req, pair, 30*24*time.Hour)

	cookies := parseSetCookies(t, rr)
	if len(cookies) != 2 {
		t.Fatalf("cookies = %d, want 2", len(cookies))
	}
	for _, name := range []string{token.AuthCookieName, token.RefreshCookieName} {
		cookie, ok := cookies[name]
		if !ok {
			t.Fatalf("missing cookie %q", name)
		}
		if cookie.Path != "/" {
			t.Fatalf("%s path = %q, want %q", name, cookie.Path, "/")
		}
		if cookie.SameSite != http.SameSiteStrictMode {
			t.Fatalf("%s samesite = %v, want strict", name, cookie.SameSite)
		}
		if !cookie.Secure {
			t.Fatalf("expected secure cookie %q for https request", name)
		}
		if cookie.MaxAge != int((30 * 24 * time.Hour).Seconds()) {
			t.Fatalf("%s max-age = %d, want %d", name, cookie.MaxAge, int((30*24*time.Hour).Seconds()))
		}
	}
	if cookies[token.AuthCookieName].Value != "auth_1_abc" {
		t.Fatalf("auth value = %q, want %q", cookies[token.AuthCookieName].Value, "auth_1_abc")
	}
}

func TestWriteWithoutTLSIsNotSecure(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "http://localhost:8086/login", nil)
	rr := httptest.NewRecorder()

	Write(rr, req, token.Pair{Auth: "auth_1_a", Refresh: "refresh_1_a"}, time.Hour)

	for name, cookie := range parseSetCookies(t, rr) {
		if cookie.Secure {
			t.Fatalf("expected non-secure cookie %q for http request", name)
		}
	}
}

func TestWriteHonorsForwardedProtoPolicy(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "http://portal.example.test/login", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rr := httptest.NewRecorder()

	WriteWithPolicy(rr, req, token.Pair{Auth: "auth_1_a", Refresh: "refresh_1_a"}, time.Hour, requestmeta.SchemePolicy{TrustForwardedProto: true})

	for name, cookie := range parseSetCookies(t, rr) {
		if !cookie.Secure {
			t.Fatalf("expected secure cookie %q behind trusted proxy", name)
		}
	}
}

func TestReadRequiresEitherToken(t *testing.T) {
	t.Parallel()

	if _, ok := Read(nil); ok {
		t.Fatal("expected nil request to carry no tokens")
	}

	req := httptest.NewRequest(http.MethodGet, "http://portal.example.test/", nil)
	if _, ok := Read(req); ok {
		t.Fatal("expected bare request to carry no tokens")
	}

	req.AddCookie(&http.Cookie{Name: token.RefreshCookieName, Value: " refresh_1_abc "})
	pair, ok := Read(req)
	if !ok {
		t.Fatal("expected refresh-only pair to count as present")
	}
	if pair.Refresh != "refresh_1_abc" {
		t.Fatalf("refresh = %q, want %q", pair.Refresh, "refresh_1_abc")
	}
	if pair.Auth != "" {
		t.Fatalf("auth = %q, want empty", pair.Auth)
	}
}

func TestClearExpiresBothCookies(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "https://portal.example.test/", nil)
	rr := httptest.NewRecorder()

	Clear(rr, req)

	cookies := parseSetCookies(t, rr)
	if len(cookies) != 2 {
		t.Fatalf("cookies = %d, want 2", len(cookies))
	}
	for name, cookie := range cookies {
		if cookie.MaxAge >= 0 {
			t.Fatalf("%s max-age = %d, want < 0", name, cookie.MaxAge)
		}
		if cookie.Value != "" {
			t.Fatalf("%s value = %q, want empty", name, cookie.Value)
		}
	}
}

func TestStorageRoundTripAcrossRequests(t *testing.T) {
	t.Parallel()

	writeReq := httptest.NewRequest(http.MethodPost, "http://portal.example.test/login", nil)
	rr := httptest.NewRecorder()
	storage := Storage{W: rr, R: writeReq}

	pair := token.Mint(time.Now())
	if err := storage.WriteTokens(pair, time.Hour); err != nil {
		t.Fatalf("WriteTokens() error = %v", err)
	}

	// Replay the written cookies on a follow-up request, as a browser would.
	followUp := httptest.NewRequest(http.MethodGet, "http://portal.example.test/client/dashboard", nil)
	for _, cookie := range rr.Result().Cookies() {
		followUp.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	}
	got, ok := Storage{W: httptest.NewRecorder(), R: followUp}.ReadTokens()
	if !ok {
		t.Fatal("expected tokens on follow-up request")
	}
	if got != pair {
		t.Fatalf("pair = %+v, want %+v", got, pair)
	}
}
