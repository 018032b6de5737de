// internal/app/features/customers/handler.go
package customers

import (
	"context"

	uierrors "github.com/dalemusser/jewelcrm/internal/app/features/errors"
	"github.com/dalemusser/jewelcrm/internal/app/system/auditlog"
	"github.com/dalemusser/jewelcrm/internal/app/system/listpage"
	"github.com/dalemusser/jewelcrm/internal/app/system/listview"
	"github.com/dalemusser/jewelcrm/internal/domain/models"
	"go.uber.org/zap"
)

// Service lists and fetches customers. crmapi.CustomerService satisfies it.
type Service interface {
	listview.Source[models.Customer]
	Get(ctx context.Context, id int64) (models.Customer, error)
}

// Handler owns the customer list, detail page and CSV export.
type Handler struct {
	Page   *listpage.Page[models.Customer, Row]
	API    Service
	Render listpage.Renderer
	Audit  *auditlog.Logger
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs a customers Handler.
func NewHandler(api Service, kit *listpage.Kit, audit *auditlog.Logger, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	page := listpage.New(kit, pageConfig(api))
	return &Handler{
		Page:   page,
		API:    api,
		Render: kit.Render,
		Audit:  audit,
		ErrLog: errLog,
		Log:    logger,
	}
}
