// internal/app/features/pipeline/handler.go
package pipeline

import (
	"github.com/dalemusser/jewelcrm/internal/app/system/listpage"
	"github.com/dalemusser/jewelcrm/internal/app/system/listview"
	"github.com/dalemusser/jewelcrm/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the sales pipeline board and deal table.
type Handler struct {
	Page *listpage.Page[models.Deal, Row]
	Log  *zap.Logger
}

func NewHandler(src listview.Source[models.Deal], kit *listpage.Kit, logger *zap.Logger) *Handler {
	return &Handler{
		Page: listpage.New(kit, pageConfig(src)),
		Log:  logger,
	}
}
