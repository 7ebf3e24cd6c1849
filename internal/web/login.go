package web

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/tradelane/tradelane/internal/web/platform/requestmeta"
	"github.com/tradelane/tradelane/internal/web/routepath"
	webtemplates "github.com/tradelane/tradelane/internal/web/templates"
)

func (h *handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.showLogin(w, r)
	case http.MethodPost:
		h.submitLogin(w, r)
	default:
		methodNotAllowed(w, "GET, POST")
	}
}

func (h *handler) showLogin(w http.ResponseWriter, r *http.Request) {
	callback, _ := routepath.SafeCallback(r.URL.Query().Get(routepath.CallbackQueryKey))
	h.renderLogin(w, r, loginForm{
		callbackURL: callback,
		errorKey:    loginErrorKey(r.URL.Query().Get(routepath.ErrorQueryKey)),
	}, http.StatusOK)
}

func (h *handler) submitLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	rememberMe := r.PostFormValue("remember_me") != ""
	callback, _ := routepath.SafeCallback(r.PostFormValue(routepath.CallbackQueryKey))

	if email == "" || password == "" {
		h.renderLogin(w, r, loginForm{
			email:       email,
			callbackURL: callback,
			errorKey:    "login.error.missing_fields",
		}, http.StatusUnprocessableEntity)
		return
	}

	if !h.store.Login(h.storage(w, r), email, password, rememberMe) {
		h.renderLogin(w, r, loginForm{
			email:       email,
			callbackURL: callback,
			errorKey:    "login.error.invalid_credentials",
		}, http.StatusUnprocessableEntity)
		return
	}

	target := routepath.ClientDashboard
	if callback != "" {
		target = callback
	}
	http.Redirect(w, r, target, http.StatusFound)
}

type loginForm struct {
	email       string
	callbackURL string
	errorKey    string
}

func (h *handler) renderLogin(w http.ResponseWriter, r *http.Request, form loginForm, status int) {
	page := h.pageContext(w, r)
	params := webtemplates.LoginParams{
		Page:        page,
		Email:       form.email,
		CallbackURL: form.callbackURL,
	}
	if form.errorKey != "" {
		params.ErrorMessage = webtemplates.T(page.Loc, form.errorKey)
	}
	h.render(w, r, webtemplates.LoginPage(params), templ.WithStatus(status))
}

// loginErrorKey maps a query error code to its catalog key. Unknown codes
// render no message.
func loginErrorKey(code string) string {
	switch strings.TrimSpace(code) {
	case "invalid_credentials":
		return "login.error.invalid_credentials"
	case "missing_fields":
		return "login.error.missing_fields"
	default:
		return ""
	}
}

// handleLogout ends the session. A same-origin proof is required so a
// cross-site form cannot sign the user out.
func (h *handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	if !requestmeta.HasSameOriginProofWithPolicy(r, h.policy) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	h.store.Logout(h.storage(w, r))
	http.Redirect(w, r, routepath.Login, http.StatusFound)
}
