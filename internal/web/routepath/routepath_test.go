package routepath

import "testing"

func TestLoginWithCallbackEncodesPath(t *testing.T) {
	t.Parallel()

	got := LoginWithCallback("/client/dashboard")
	want := "/login?callbackUrl=%2Fclient%2Fdashboard"
	if got != want {
		t.Fatalf("LoginWithCallback = %q, want %q", got, want)
	}
}

func TestSettingsWithNotice(t *testing.T) {
	t.Parallel()

	got := SettingsWithNotice("saved")
	want := "/client/settings?notice=saved"
	if got != want {
		t.Fatalf("SettingsWithNotice = %q, want %q", got, want)
	}
}

func TestSafeCallback(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{"relative path", "/client/settings", "/client/settings", true},
		{"relative with query", "/client/settings?tab=account", "/client/settings?tab=account", true},
		{"absolute url", "https://evil.example", "", false},
		{"scheme relative", "//evil.example", "", false},
		{"backslash escape", "/\\evil.example", "", false},
		{"empty", "", "", false},
		{"whitespace", "   ", "", false},
		{"no leading slash", "client/settings", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := SafeCallback(tc.raw)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("SafeCallback(%q) = %q, %v, want %q, %v", tc.raw, got, ok, tc.want, tc.ok)
			}
		})
	}
}
