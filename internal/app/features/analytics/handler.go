// internal/app/features/analytics/handler.go
package analytics

import (
	"github.com/dalemusser/jewelcrm/internal/app/system/listpage"
	"github.com/dalemusser/jewelcrm/internal/app/system/listview"
	"github.com/dalemusser/jewelcrm/internal/app/system/viewreg"
	"github.com/dalemusser/jewelcrm/internal/domain/models"
	"go.uber.org/zap"
)

const pageName = "analytics"

// Sources are the collections the analytics page summarizes.
type Sources struct {
	Orders    listview.Source[models.Order]
	Customers listview.Source[models.Customer]
	Products  listview.Source[models.Product]
}

// Handler serves the manager analytics page. Each panel is backed by its
// own controller and loads independently of the others.
type Handler struct {
	Sources Sources
	Views   *viewreg.Registry
	Render  listpage.Renderer
	ErrLog  listpage.ServerErrorLogger
	Log     *zap.Logger
}

// NewHandler constructs an analytics Handler from the shared list kit.
func NewHandler(src Sources, kit *listpage.Kit, logger *zap.Logger) *Handler {
	render := kit.Render
	if render == nil {
		render = listpage.TemplateRenderer{}
	}
	return &Handler{
		Sources: src,
		Views:   kit.Views,
		Render:  render,
		ErrLog:  kit.ErrLog,
		Log:     logger,
	}
}
