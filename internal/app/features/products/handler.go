// internal/app/features/products/handler.go
package products

import (
	"github.com/dalemusser/jewelcrm/internal/app/system/listpage"
	"github.com/dalemusser/jewelcrm/internal/app/system/listview"
	"github.com/dalemusser/jewelcrm/internal/domain/models"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for the product catalogue.
type Handler struct {
	Page *listpage.Page[models.Product, Row]
	Log  *zap.Logger
}

// NewHandler constructs a products Handler reading from src.
func NewHandler(src listview.Source[models.Product], kit *listpage.Kit, logger *zap.Logger) *Handler {
	return &Handler{
		Page: listpage.New(kit, pageConfig(src)),
		Log:  logger,
	}
}
