package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	for key, text := range map[string]string{
		"title.landing":       "%s | Freight forwarding for growing businesses",
		"landing.heading":     "Logistics that keeps its promises",
		"landing.lede":        "Book, track, and settle international freight from a single portal.",
		"landing.cta.sign_in": "Sign in",

		"title.login":                     "Sign in | %s",
		"login.heading":                   "Sign in to your account",
		"login.email":                     "Email address",
		"login.password":                  "Password",
		"login.remember_me":               "Keep me signed in for 30 days",
		"login.submit":                    "Sign in",
		"login.error.invalid_credentials": "That email and password combination is not recognized.",
		"login.error.missing_fields":      "Enter both your email address and password.",

		"title.dashboard":                 "Dashboard | %s",
		"dashboard.greeting":              "Welcome back, %s",
		"dashboard.card.active_shipments": "Active shipments",
		"dashboard.card.in_customs":       "In customs",
		"dashboard.card.delivered":        "Delivered this month",
		"dashboard.card.open_invoices":    "Open invoices",

		"title.settings":                "Settings | %s",
		"settings.heading":              "Account settings",
		"settings.photo.heading":       "Profile photo",
		"settings.photo.change":        "Change photo",
		"settings.photo.remove":        "Remove photo",
		"settings.account.full_name":   "Full name",
		"settings.account.email":       "Email address",
		"settings.account.phone":       "Phone",
		"settings.account.address":     "Street address",
		"settings.account.city":        "City",
		"settings.account.zip":         "Postal code",
		"settings.account.country":     "Country",
		"settings.account.save":        "Save changes",
		"settings.notice.saved":        "Your changes have been saved.",
		"settings.notice.photo_saved":  "Your profile photo has been updated.",
		"settings.notice.photo_reset":  "Your profile photo has been removed.",
		"settings.error.photo_invalid": "That file does not look like an image.",

		"nav.dashboard": "Dashboard",
		"nav.settings":  "Settings",
		"nav.sign_out":  "Sign out",

		"error.method_not_allowed": "Method not allowed",
		"error.forbidden":          "Forbidden",
		"error.render":             "Something went wrong rendering this page.",
	} {
		if err := message.SetString(language.English, key, text); err != nil {
			panic(err)
		}
	}
}
