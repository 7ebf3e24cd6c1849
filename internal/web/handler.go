package web

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/tradelane/tradelane/internal/event"
	"github.com/tradelane/tradelane/internal/platform/branding"
	"github.com/tradelane/tradelane/internal/session"
	"github.com/tradelane/tradelane/internal/web/guard"
	"github.com/tradelane/tradelane/internal/web/i18n"
	"github.com/tradelane/tradelane/internal/web/platform/requestmeta"
	"github.com/tradelane/tradelane/internal/web/platform/tokencookie"
	"github.com/tradelane/tradelane/internal/web/routepath"
	webtemplates "github.com/tradelane/tradelane/internal/web/templates"
)

type handler struct {
	config  Config
	appName string
	policy  requestmeta.SchemePolicy
	store   *session.Store
	bus     *event.Bus
	viewer  *viewerState
}

// NewHandler creates the portal HTTP handler with its own session store and
// synchronization bus.
func NewHandler(config Config) http.Handler {
	bus := event.NewBus()
	return NewHandlerWithState(config, session.NewStore(bus), bus)
}

// NewHandlerWithState creates the portal HTTP handler around an existing
// store and bus, so tests can observe session state and bus traffic.
func NewHandlerWithState(config Config, store *session.Store, bus *event.Bus) http.Handler {
	appName := strings.TrimSpace(config.AppName)
	if appName == "" {
		appName = branding.AppName
	}

	h := &handler{
		config:  config,
		appName: appName,
		policy:  requestmeta.SchemePolicy{TrustForwardedProto: config.TrustForwardedProto},
		store:   store,
		bus:     bus,
		viewer:  newViewerState(bus),
	}

	mux := http.NewServeMux()
	mux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, staticHandler()))
	mux.HandleFunc(routepath.Root, h.handleRoot)
	mux.HandleFunc(routepath.Login, h.handleLogin)
	mux.HandleFunc(routepath.Logout, h.handleLogout)
	mux.HandleFunc(routepath.ClientDashboard, h.handleDashboard)
	mux.HandleFunc(routepath.ClientSettings, h.handleSettings)
	mux.HandleFunc(routepath.ClientSettingsAccount, h.handleSettingsAccount)
	mux.HandleFunc(routepath.ClientSettingsAvatar, h.handleSettingsAvatar)
	mux.HandleFunc(routepath.Health, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return guard.Middleware(guard.DefaultConfig(), mux)
}

// storage adapts the current exchange to the session store's token medium.
func (h *handler) storage(w http.ResponseWriter, r *http.Request) tokencookie.Storage {
	return tokencookie.Storage{W: w, R: r, Policy: h.policy}
}

// syncSession reconciles the held session with the request's cookies. The
// guard has already vetted access; this keeps the store in step when the
// process restarted while the browser kept its tokens, or the reverse.
func (h *handler) syncSession(w http.ResponseWriter, r *http.Request) {
	_, present := tokencookie.Read(r)
	held := h.store.State() == session.StateAuthenticated
	if present != held {
		h.store.Restore(h.storage(w, r))
	}
}

// pageContext resolves the request locale, persisting an explicit selection,
// and snapshots the viewer for page chrome.
func (h *handler) pageContext(w http.ResponseWriter, r *http.Request) webtemplates.PageContext {
	tag, persist := i18n.ResolveTag(r)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}
	signedIn, name, email, avatar := h.viewer.snapshot()
	return webtemplates.PageContext{
		Lang:          tag,
		Loc:           i18n.Printer(tag),
		AppName:       h.appName,
		CurrentPath:   r.URL.Path,
		SignedIn:      signedIn,
		UserName:      name,
		UserEmail:     email,
		UserAvatarURL: avatar,
	}
}

func (h *handler) render(w http.ResponseWriter, r *http.Request, component templ.Component, opts ...func(*templ.ComponentHandler)) {
	templ.Handler(component, opts...).ServeHTTP(w, r)
}

func methodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
}
