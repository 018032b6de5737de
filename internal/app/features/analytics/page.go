// internal/app/features/analytics/page.go
package analytics

import (
	"net/http"

	"github.com/dalemusser/jewelcrm/internal/app/system/viewdata"
	"github.com/dalemusser/jewelcrm/internal/app/system/viewreg"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
)

var charts = []Chart{
	{Title: "Revenue Trend", Note: "Monthly revenue chart"},
	{Title: "Sales by Category", Note: "Category breakdown chart"},
	{Title: "Customer Growth", Note: "New customers per month"},
}

// ServePage opens a fresh analytics view and loads all panels.
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	v := newView(h.Sources, h.Log)
	token, err := h.Views.Open(pageName, v)
	if err != nil {
		v.Close()
		h.ErrLog.LogServerError(w, r, "open view failed", err, "Unable to open analytics.", "/")
		return
	}
	v.loadAll(r.Context())

	h.Render.Page(w, r, "analytics_page", PageData{
		BaseVM:    viewdata.NewBaseVM(r, "Analytics", "/"),
		ViewToken: token,
		Panels:    v.panels(token),
		Charts:    charts,
	})
}

// ServePanel reloads one panel of an open view and renders it. An expired
// view is replaced by a fresh one holding only that panel's data.
func (h *Handler) ServePanel(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "section")
	if !validSection(key) {
		http.NotFound(w, r)
		return
	}

	token := query.Get(r, "view")
	v, ok := viewreg.Lookup[*view](h.Views, pageName, token)
	if !ok {
		v = newView(h.Sources, h.Log)
		var err error
		if token, err = h.Views.Open(pageName, v); err != nil {
			v.Close()
			h.ErrLog.LogServerError(w, r, "open view failed", err, "Unable to open analytics.", "/manager/analytics")
			return
		}
	}
	v.load(r.Context(), key)

	h.Render.Snippet(w, "analytics_panel", v.panel(key, token))
}

func validSection(key string) bool {
	for _, s := range sections {
		if s == key {
			return true
		}
	}
	return false
}
