// internal/app/features/analytics/routes.go
package analytics

import "github.com/go-chi/chi/v5"

// Routes mounts the analytics routes (bootstrap mounts them at
// /manager/analytics).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServePage)
	r.Get("/panel/{section}", h.ServePanel)
	return r
}
