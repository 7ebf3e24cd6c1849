package web

import (
	"net/http"

	"github.com/tradelane/tradelane/internal/web/routepath"
	webtemplates "github.com/tradelane/tradelane/internal/web/templates"
)

func (h *handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	h.syncSession(w, r)
	if h.store.Current() == nil {
		http.Redirect(w, r, routepath.LoginWithCallback(r.URL.Path), http.StatusFound)
		return
	}

	page := h.pageContext(w, r)
	loc := page.Loc
	cards := []webtemplates.DashboardCard{
		{Label: webtemplates.T(loc, "dashboard.card.active_shipments"), Value: "12"},
		{Label: webtemplates.T(loc, "dashboard.card.in_customs"), Value: "3"},
		{Label: webtemplates.T(loc, "dashboard.card.delivered"), Value: "28"},
		{Label: webtemplates.T(loc, "dashboard.card.open_invoices"), Value: "4"},
	}
	h.render(w, r, webtemplates.DashboardPage(page, cards))
}
