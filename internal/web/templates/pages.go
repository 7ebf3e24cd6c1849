package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/tradelane/tradelane/internal/web/routepath"
)

// LandingPage renders the public marketing front page.
func LandingPage(page PageContext) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<section class="hero">
<h1>%s</h1>
<p class="lede">%s</p>
<a class="button" href=%q>%s</a>
</section>
`,
			esc(T(page.Loc, "landing.heading")),
			esc(T(page.Loc, "landing.lede")),
			routepath.Login,
			esc(T(page.Loc, "landing.cta.sign_in")),
		)
		return err
	})
	return PublicLayout(T(page.Loc, "title.landing", page.AppName), page, body)
}

// LoginParams holds the form state rendered on the sign-in page.
type LoginParams struct {
	Page PageContext
	// Email is echoed back after a failed attempt.
	Email string
	// CallbackURL resumes navigation after sign-in; empty means dashboard.
	CallbackURL string
	// ErrorMessage is the localized failure text, empty when none.
	ErrorMessage string
}

// LoginPage renders the sign-in form.
func LoginPage(p LoginParams) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="auth-card">
<h1>%s</h1>
`, esc(T(p.Page.Loc, "login.heading"))); err != nil {
			return err
		}
		if p.ErrorMessage != "" {
			if _, err := fmt.Fprintf(w, `<p class="form-error" role="alert">%s</p>
`, esc(p.ErrorMessage)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `<form method="post" action=%q>
`, routepath.Login); err != nil {
			return err
		}
		if p.CallbackURL != "" {
			if _, err := fmt.Fprintf(w, `<input type="hidden" name=%q value=%q>
`, routepath.CallbackQueryKey, esc(p.CallbackURL)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, `<label>%s<input type="email" name="email" value=%q autocomplete="email" required></label>
<label>%s<input type="password" name="password" autocomplete="current-password" required></label>
<label class="checkbox"><input type="checkbox" name="remember_me" value="1">%s</label>
<button type="submit">%s</button>
</form>
</section>
`,
			esc(T(p.Page.Loc, "login.email")),
			esc(p.Email),
			esc(T(p.Page.Loc, "login.password")),
			esc(T(p.Page.Loc, "login.remember_me")),
			esc(T(p.Page.Loc, "login.submit")),
		)
		return err
	})
	return PublicLayout(T(p.Page.Loc, "title.login", p.Page.AppName), p.Page, body)
}

// DashboardCard is a single stat tile on the dashboard.
type DashboardCard struct {
	Label string
	Value string
}

// DashboardPage renders the client dashboard with its stat tiles.
func DashboardPage(page PageContext, cards []DashboardCard) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>
<div class="cards">
`, esc(T(page.Loc, "dashboard.greeting", page.UserName))); err != nil {
			return err
		}
		for _, card := range cards {
			if _, err := fmt.Fprintf(w, `<div class="card"><span class="card-value">%s</span><span class="card-label">%s</span></div>
`, esc(card.Value), esc(card.Label)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</div>\n")
		return err
	})
	return ClientLayout(T(page.Loc, "title.dashboard", page.AppName), page, body)
}

// SettingsParams holds the prefilled account form and any one-shot notice.
type SettingsParams struct {
	Page PageContext

	// Notice is the localized outcome of the previous save, empty when none.
	Notice string
	// NoticeIsError renders the notice in the error style.
	NoticeIsError bool

	Name      string
	Email     string
	Phone     string
	AvatarURL string
	Address   string
	City      string
	Zip       string
	Country   string
}

// SettingsPage renders the account settings forms.
func SettingsPage(p SettingsParams) templ.Component {
	loc := p.Page.Loc
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>
`, esc(T(loc, "settings.heading"))); err != nil {
			return err
		}
		if p.Notice != "" {
			class := "notice"
			if p.NoticeIsError {
				class = "notice error"
			}
			if _, err := fmt.Fprintf(w, `<p class=%q role="status">%s</p>
`, class, esc(p.Notice)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `<section class="settings-photo">
<h2>%s</h2>
<img class="avatar large" src=%q alt="">
<form method="post" action=%q>
<input type="text" name="avatar" aria-label=%q placeholder="data:image/...">
<button type="submit">%s</button>
<button type="submit" name="action" value="delete" class="link">%s</button>
</form>
</section>
`,
			esc(T(loc, "settings.photo.heading")),
			esc(p.AvatarURL),
			routepath.ClientSettingsAvatar,
			esc(T(loc, "settings.photo.change")),
			esc(T(loc, "settings.photo.change")),
			esc(T(loc, "settings.photo.remove")),
		); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, `<form class="settings-account" method="post" action=%q>
<label>%s<input type="text" name="full_name" value=%q></label>
<label>%s<input type="email" name="email" value=%q></label>
<label>%s<input type="tel" name="phone" value=%q></label>
<label>%s<input type="text" name="address" value=%q></label>
<label>%s<input type="text" name="city" value=%q></label>
<label>%s<input type="text" name="zip" value=%q></label>
<label>%s<input type="text" name="country" value=%q></label>
<button type="submit">%s</button>
</form>
`,
			routepath.ClientSettingsAccount,
			esc(T(loc, "settings.account.full_name")), esc(p.Name),
			esc(T(loc, "settings.account.email")), esc(p.Email),
			esc(T(loc, "settings.account.phone")), esc(p.Phone),
			esc(T(loc, "settings.account.address")), esc(p.Address),
			esc(T(loc, "settings.account.city")), esc(p.City),
			esc(T(loc, "settings.account.zip")), esc(p.Zip),
			esc(T(loc, "settings.account.country")), esc(p.Country),
			esc(T(loc, "settings.account.save")),
		)
		return err
	})
	return ClientLayout(T(loc, "title.settings", p.Page.AppName), p.Page, body)
}
