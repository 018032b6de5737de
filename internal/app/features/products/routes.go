// internal/app/features/products/routes.go
package products

import "github.com/go-chi/chi/v5"

// Routes mounts the product routes under the base path
// (typically "/manager/products" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Page.ServePage)
	r.Get("/table", h.Page.ServeTable)
	return r
}
