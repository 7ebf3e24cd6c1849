// Package routepath stores canonical HTTP paths for the portal.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root            = "/"
	Login           = "/login"
	Logout          = "/logout"
	Health          = "/up"
	StaticPrefix    = "/static/"
	PublicAPIPrefix = "/api/public"

	ClientPrefix          = "/client/"
	ClientDashboard       = "/client/dashboard"
	ClientSettings        = "/client/settings"
	ClientSettingsAccount = "/client/settings/account"
	ClientSettingsAvatar  = "/client/settings/avatar"

	// CallbackQueryKey carries the post-login destination on the login path.
	CallbackQueryKey = "callbackUrl"
	// NoticeQueryKey carries a one-word notice on settings redirects.
	NoticeQueryKey = "notice"
	// ErrorQueryKey carries a one-word error code on the login path.
	ErrorQueryKey = "error"
)

// LoginWithCallback returns the login route carrying the original path so a
// successful sign-in can resume the interrupted navigation.
func LoginWithCallback(path string) string {
	query := url.Values{}
	query.Set(CallbackQueryKey, path)
	return Login + "?" + query.Encode()
}

// SettingsWithNotice returns the settings route carrying a notice code.
func SettingsWithNotice(notice string) string {
	query := url.Values{}
	query.Set(NoticeQueryKey, notice)
	return ClientSettings + "?" + query.Encode()
}

// SafeCallback validates a callback target and reports whether it may be
// redirected to. Only same-origin relative paths qualify: the value must
// start with a single "/" ("//" is scheme-relative and therefore
// cross-origin).
func SafeCallback(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || !strings.HasPrefix(raw, "/") {
		return "", false
	}
	if strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return "", false
	}
	return raw, true
}
