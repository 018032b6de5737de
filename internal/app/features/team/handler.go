// internal/app/features/team/handler.go
package team

import (
	"github.com/dalemusser/jewelcrm/internal/app/system/listpage"
	"github.com/dalemusser/jewelcrm/internal/app/system/listview"
	"github.com/dalemusser/jewelcrm/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the team member list.
type Handler struct {
	Page *listpage.Page[models.TeamMember, Row]
	Log  *zap.Logger
}

func NewHandler(src listview.Source[models.TeamMember], kit *listpage.Kit, logger *zap.Logger) *Handler {
	return &Handler{
		Page: listpage.New(kit, pageConfig(src)),
		Log:  logger,
	}
}
