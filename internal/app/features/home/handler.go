package home

import (
	"net/http"

	"github.com/dalemusser/jewelcrm/internal/app/system/listpage"
	"github.com/dalemusser/jewelcrm/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// Handler serves the landing page that links every dashboard page.
type Handler struct {
	Render listpage.Renderer
	Log    *zap.Logger
}

func NewHandler(render listpage.Renderer, logger *zap.Logger) *Handler {
	if render == nil {
		render = listpage.TemplateRenderer{}
	}
	return &Handler{
		Render: render,
		Log:    logger,
	}
}

// Data is the landing page view model. The link sections come from
// BaseVM.Nav.
type Data struct {
	viewdata.BaseVM
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	h.Render.Page(w, r, "home", Data{
		BaseVM: viewdata.NewBaseVM(r, "Dashboard", "/"),
	})
}
