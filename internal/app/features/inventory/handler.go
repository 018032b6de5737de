// internal/app/features/inventory/handler.go
package inventory

import (
	"github.com/dalemusser/jewelcrm/internal/app/system/listpage"
	"github.com/dalemusser/jewelcrm/internal/app/system/listview"
	"github.com/dalemusser/jewelcrm/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the stock view of the product catalogue.
type Handler struct {
	Page *listpage.Page[models.Product, Row]
	Log  *zap.Logger
}

func NewHandler(src listview.Source[models.Product], kit *listpage.Kit, logger *zap.Logger) *Handler {
	return &Handler{
		Page: listpage.New(kit, pageConfig(src)),
		Log:  logger,
	}
}
