// internal/app/features/customers/routes.go
package customers

import "github.com/go-chi/chi/v5"

// Routes mounts the customer routes (bootstrap mounts them at
// /manager/customers).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Page.ServePage)
	r.Get("/table", h.Page.ServeTable)
	r.Get("/export.csv", h.Export)
	r.Get("/{id}", h.Show)
	return r
}
