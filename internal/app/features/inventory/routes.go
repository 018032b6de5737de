// internal/app/features/inventory/routes.go
package inventory

import "github.com/go-chi/chi/v5"

// Routes mounts the inventory routes (bootstrap mounts them at
// /manager/inventory).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Page.ServePage)
	r.Get("/table", h.Page.ServeTable)
	return r
}
