package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/tradelane/tradelane/internal/platform/branding"
	"github.com/tradelane/tradelane/internal/web/routepath"
)

// PublicLayout wraps body in the document shell shown to signed-out visitors.
func PublicLayout(title string, page PageContext, body templ.Component) templ.Component {
	return shell(title, page, nil, body)
}

// ClientLayout wraps body in the authenticated shell with header and sidebar.
func ClientLayout(title string, page PageContext, body templ.Component) templ.Component {
	chrome := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := Header(page).Render(ctx, w); err != nil {
			return err
		}
		return Sidebar(page).Render(ctx, w)
	})
	return shell(title, page, chrome, body)
}

func shell(title string, page PageContext, chrome, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := page.Lang.String()
		if lang == "" {
			lang = "en"
		}
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang=%q>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="description" content=%q>
<title>%s</title>
<link rel="stylesheet" href="/static/styles.css">
</head>
<body>
`, esc(lang), esc(branding.Tagline), esc(title)); err != nil {
			return err
		}
		if chrome != nil {
			if err := chrome.Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<main class="content">`); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</main>\n</body>\n</html>\n")
		return err
	})
}

// Header renders the top bar with the viewer's identity and the sign-out form.
func Header(page PageContext) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<header class="topbar">
<a class="brand" href=%q>%s</a>
<div class="viewer">
<img class="avatar" src=%q alt="">
<span class="viewer-name">%s</span>
<span class="viewer-email">%s</span>
<form method="post" action=%q><button type="submit" class="link">%s</button></form>
</div>
</header>
`,
			routepath.ClientDashboard,
			esc(page.AppName),
			esc(page.UserAvatarURL),
			esc(page.UserName),
			esc(page.UserEmail),
			routepath.Logout,
			esc(T(page.Loc, "nav.sign_out")),
		); err != nil {
			return err
		}
		return nil
	})
}

// Sidebar renders client-area navigation with the active entry marked.
func Sidebar(page PageContext) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<nav class="sidebar">`); err != nil {
			return err
		}
		entries := []struct {
			path  string
			label string
		}{
			{routepath.ClientDashboard, T(page.Loc, "nav.dashboard")},
			{routepath.ClientSettings, T(page.Loc, "nav.settings")},
		}
		for _, entry := range entries {
			class := "nav-link"
			if entry.path == page.CurrentPath {
				class = "nav-link active"
			}
			if _, err := fmt.Fprintf(w, `<a class=%q href=%q>%s</a>`, class, entry.path, esc(entry.label)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</nav>\n")
		return err
	})
}
