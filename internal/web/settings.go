package web

import (
	"net/http"
	"strings"

	"github.com/tradelane/tradelane/internal/auth/identity"
	"github.com/tradelane/tradelane/internal/event"
	"github.com/tradelane/tradelane/internal/web/routepath"
	webtemplates "github.com/tradelane/tradelane/internal/web/templates"
)

func (h *handler) handleSettings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	h.syncSession(w, r)
	current := h.store.Current()
	if current == nil {
		http.Redirect(w, r, routepath.LoginWithCallback(r.URL.Path), http.StatusFound)
		return
	}

	page := h.pageContext(w, r)
	params := webtemplates.SettingsParams{
		Page:      page,
		Name:      current.Name,
		Email:     current.Email,
		Phone:     current.Phone,
		AvatarURL: current.AvatarURL,
		Address:   current.Extra["address"],
		City:      current.Extra["city"],
		Zip:       current.Extra["zip"],
		Country:   current.Extra["country"],
	}
	if key, isError, ok := settingsNotice(r.URL.Query().Get(routepath.NoticeQueryKey)); ok {
		params.Notice = webtemplates.T(page.Loc, key)
		params.NoticeIsError = isError
	}
	h.render(w, r, webtemplates.SettingsPage(params))
}

// handleSettingsAccount applies the account form as a partial profile edit
// and broadcasts it on the bus.
func (h *handler) handleSettingsAccount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	h.syncSession(w, r)

	var fields event.ProfileFieldsChanged
	if v := strings.TrimSpace(r.PostFormValue("full_name")); v != "" {
		fields.Name = event.String(v)
	}
	if v := strings.TrimSpace(r.PostFormValue("email")); v != "" {
		fields.Email = event.String(v)
	}
	if v := strings.TrimSpace(r.PostFormValue("phone")); v != "" {
		fields.Phone = event.String(v)
	}

	h.store.ApplyProfileFields(fields, h.config.SaveLatency)
	http.Redirect(w, r, routepath.SettingsWithNotice("saved"), http.StatusFound)
}

// handleSettingsAvatar replaces or resets the profile photo. The form posts
// either a data URI captured client-side or action=delete.
func (h *handler) handleSettingsAvatar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	h.syncSession(w, r)

	if r.PostFormValue("action") == "delete" {
		h.store.ApplyProfileFields(event.ProfileFieldsChanged{
			AvatarURI: event.String(identity.DefaultAvatarURL),
		}, h.config.SaveLatency)
		http.Redirect(w, r, routepath.SettingsWithNotice("photo_reset"), http.StatusFound)
		return
	}

	avatar := strings.TrimSpace(r.PostFormValue("avatar"))
	if !validAvatarURI(avatar) {
		http.Redirect(w, r, routepath.SettingsWithNotice("photo_invalid"), http.StatusFound)
		return
	}

	h.store.ApplyProfileFields(event.ProfileFieldsChanged{
		AvatarURI: event.String(avatar),
	}, h.config.SaveLatency)
	http.Redirect(w, r, routepath.SettingsWithNotice("photo_saved"), http.StatusFound)
}

// validAvatarURI accepts inline image data or an absolute image URL.
func validAvatarURI(value string) bool {
	return strings.HasPrefix(value, "data:image/") ||
		strings.HasPrefix(value, "https://") ||
		strings.HasPrefix(value, "http://")
}

// settingsNotice maps a notice code to its catalog key and styling.
func settingsNotice(code string) (key string, isError, ok bool) {
	switch strings.TrimSpace(code) {
	case "saved":
		return "settings.notice.saved", false, true
	case "photo_saved":
		return "settings.notice.photo_saved", false, true
	case "photo_reset":
		return "settings.notice.photo_reset", false, true
	case "photo_invalid":
		return "settings.error.photo_invalid", true, true
	default:
		return "", false, false
	}
}
