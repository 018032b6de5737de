// internal/app/features/orders/handler.go
package orders

import (
	"github.com/dalemusser/jewelcrm/internal/app/system/listpage"
	"github.com/dalemusser/jewelcrm/internal/app/system/listview"
	"github.com/dalemusser/jewelcrm/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the orders list.
type Handler struct {
	Page *listpage.Page[models.Order, Row]
	Log  *zap.Logger
}

func NewHandler(src listview.Source[models.Order], kit *listpage.Kit, logger *zap.Logger) *Handler {
	return &Handler{
		Page: listpage.New(kit, pageConfig(src)),
		Log:  logger,
	}
}
