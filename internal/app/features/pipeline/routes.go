// internal/app/features/pipeline/routes.go
package pipeline

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Page.ServePage)
	r.Get("/table", h.Page.ServeTable)
	return r
}
