// internal/app/features/tenants/handler.go
package tenants

import (
	"github.com/dalemusser/jewelcrm/internal/app/system/listpage"
	"github.com/dalemusser/jewelcrm/internal/app/system/listview"
	"github.com/dalemusser/jewelcrm/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the platform tenant list.
type Handler struct {
	Page *listpage.Page[models.Tenant, Row]
	Log  *zap.Logger
}

func NewHandler(src listview.Source[models.Tenant], kit *listpage.Kit, logger *zap.Logger) *Handler {
	return &Handler{
		Page: listpage.New(kit, pageConfig(src)),
		Log:  logger,
	}
}
