package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTagPrefersQueryParam(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "http://portal.test/?lang=en", nil)
	req.Header.Set("Accept-Language", "fr")

	tag, persist := ResolveTag(req)
	if tag != language.English {
		t.Fatalf("tag = %v, want %v", tag, language.English)
	}
	if !persist {
		t.Fatal("expected query-selected language to request persistence")
	}
}

func TestResolveTagFallsBackToCookie(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "http://portal.test/", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en"})

	tag, persist := ResolveTag(req)
	if tag != language.English {
		t.Fatalf("tag = %v, want %v", tag, language.English)
	}
	if persist {
		t.Fatal("cookie-resolved language must not request persistence")
	}
}

func TestResolveTagDefaultsWithoutHints(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "http://portal.test/", nil)
	tag, persist := ResolveTag(req)
	if tag != Default() {
		t.Fatalf("tag = %v, want default %v", tag, Default())
	}
	if persist {
		t.Fatal("default language must not request persistence")
	}
}

func TestParseTagRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, ok := ParseTag("definitely-not-a-tag!!"); ok {
		t.Fatal("expected parse failure for invalid tag")
	}
	if _, ok := ParseTag(""); ok {
		t.Fatal("expected parse failure for empty tag")
	}
}

func TestSetLanguageCookie(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	SetLanguageCookie(rr, language.English)

	res := rr.Result()
	defer res.Body.Close()

	cookies := res.Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	if cookies[0].Name != LangCookieName || cookies[0].Value != "en" {
		t.Fatalf("cookie = %s=%s, want %s=en", cookies[0].Name, cookies[0].Value, LangCookieName)
	}
	if cookies[0].MaxAge <= 0 {
		t.Fatalf("cookie MaxAge = %d, want positive", cookies[0].MaxAge)
	}
}

func TestPrinterUsesCatalog(t *testing.T) {
	t.Parallel()

	got := Printer(language.English).Sprintf("nav.dashboard")
	if got != "Dashboard" {
		t.Fatalf("nav.dashboard = %q, want %q", got, "Dashboard")
	}
}
