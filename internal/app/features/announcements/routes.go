// internal/app/features/announcements/routes.go
package announcements

import "github.com/go-chi/chi/v5"

// Routes mounts the announcement routes (bootstrap mounts them at
// /manager/announcements). Actions are htmx posts that answer with the
// refreshed table.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Page.ServePage)
	r.Get("/table", h.Page.ServeTable)
	r.Post("/{id}/read", h.MarkRead)
	r.Post("/{id}/acknowledge", h.Acknowledge)
	return r
}
