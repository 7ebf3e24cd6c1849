package web

import (
	"net/http"

	webtemplates "github.com/tradelane/tradelane/internal/web/templates"
)

// handleRoot renders the public landing page. The guard has already sent
// authenticated visitors to the dashboard.
func (h *handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	page := h.pageContext(w, r)
	h.render(w, r, webtemplates.LandingPage(page))
}
