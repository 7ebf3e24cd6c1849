package templates

import (
	"context"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/tradelane/tradelane/internal/web/i18n"
)

func testPage() PageContext {
	return PageContext{
		Lang:          language.English,
		Loc:           i18n.Printer(language.English),
		AppName:       "TradeLane",
		CurrentPath:   "/client/dashboard",
		SignedIn:      true,
		UserName:      "Austin Bediako",
		UserEmail:     "austin@logistics.com",
		UserAvatarURL: "https://cdn.example/avatar.png",
	}
}

func TestLoginPageEscapesUserInput(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	page := LoginPage(LoginParams{
		Page:  testPage(),
		Email: `"><script>alert(1)</script>`,
	})
	if err := page.Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := sb.String()
	if strings.Contains(out, "<script>alert(1)</script>") {
		t.Fatal("unescaped user input in login page")
	}
	if !strings.Contains(out, "name=\"email\"") {
		t.Fatal("missing email input")
	}
}

func TestLoginPageCarriesCallback(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	page := LoginPage(LoginParams{Page: testPage(), CallbackURL: "/client/settings"})
	if err := page.Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, `name="callbackUrl"`) || !strings.Contains(out, "/client/settings") {
		t.Fatal("callback hidden field missing")
	}
}

func TestDashboardPageShowsViewer(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	page := DashboardPage(testPage(), []DashboardCard{{Label: "Active shipments", Value: "12"}})
	if err := page.Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := sb.String()
	for _, want := range []string{"Austin Bediako", "austin@logistics.com", "Active shipments", ">12<"} {
		if !strings.Contains(out, want) {
			t.Fatalf("dashboard output missing %q", want)
		}
	}
	if !strings.Contains(out, `class="nav-link active"`) {
		t.Fatal("active sidebar entry not marked")
	}
}

func TestSettingsPagePrefillsForm(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	page := SettingsPage(SettingsParams{
		Page:      testPage(),
		Name:      "Austin Bediako",
		Email:     "austin@logistics.com",
		Phone:     "+1 (555) 123-4567",
		AvatarURL: "https://cdn.example/avatar.png",
		Notice:    "Your changes have been saved.",
	})
	if err := page.Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := sb.String()
	for _, want := range []string{
		"+1 (555) 123-4567",
		"Your changes have been saved.",
		`action="/client/settings/account"`,
		`action="/client/settings/avatar"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("settings output missing %q", want)
		}
	}
}

func TestTFallsBackToKey(t *testing.T) {
	t.Parallel()

	if got := T(nil, "nav.dashboard"); got != "nav.dashboard" {
		t.Fatalf("T(nil) = %q, want key fallback", got)
	}
}
