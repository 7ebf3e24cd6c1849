// Package templates renders the portal's HTML pages as templ components.
package templates

import (
	"html"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Localizer resolves message keys for a request's language.
type Localizer = *message.Printer

// T translates key with loc, falling back to the key itself so missing
// catalog entries stay visible instead of rendering blank.
func T(loc Localizer, key string, args ...any) string {
	if loc == nil {
		return key
	}
	return loc.Sprintf(key, args...)
}

// PageContext carries the per-request data every page needs.
type PageContext struct {
	Lang        language.Tag
	Loc         Localizer
	AppName     string
	CurrentPath string

	SignedIn      bool
	UserName      string
	UserEmail     string
	UserAvatarURL string
}

func esc(s string) string {
	return html.EscapeString(s)
}
