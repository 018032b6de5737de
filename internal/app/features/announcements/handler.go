// internal/app/features/announcements/handler.go
package announcements

import (
	"context"

	uierrors "github.com/dalemusser/jewelcrm/internal/app/features/errors"
	"github.com/dalemusser/jewelcrm/internal/app/system/auditlog"
	"github.com/dalemusser/jewelcrm/internal/app/system/listpage"
	"github.com/dalemusser/jewelcrm/internal/app/system/listview"
	"github.com/dalemusser/jewelcrm/internal/domain/models"
	"go.uber.org/zap"
)

// Service is the backend surface the announcements page needs.
// crmapi.AnnouncementService satisfies it.
type Service interface {
	listview.Source[models.Announcement]
	MarkRead(ctx context.Context, id int64) error
	Acknowledge(ctx context.Context, id int64) error
}

// Handler owns the announcements list and its read/acknowledge actions.
type Handler struct {
	Page   *listpage.Page[models.Announcement, Row]
	API    Service
	Audit  *auditlog.Logger
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs an announcements Handler.
func NewHandler(api Service, kit *listpage.Kit, audit *auditlog.Logger, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Page:   listpage.New(kit, pageConfig(api)),
		API:    api,
		Audit:  audit,
		ErrLog: errLog,
		Log:    logger,
	}
}
