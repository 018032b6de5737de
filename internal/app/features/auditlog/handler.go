// internal/app/features/auditlog/handler.go
package auditlog

import (
	"context"

	uierrors "github.com/dalemusser/jewelcrm/internal/app/features/errors"
	"github.com/dalemusser/jewelcrm/internal/app/store/audit"
	"github.com/dalemusser/jewelcrm/internal/app/system/listpage"
	"go.uber.org/zap"
)

// EventQuerier reads audit events. *audit.Store satisfies it.
type EventQuerier interface {
	Query(ctx context.Context, filter audit.QueryFilter) ([]audit.Event, error)
	CountByFilter(ctx context.Context, filter audit.QueryFilter) (int64, error)
}

type Handler struct {
	Events EventQuerier // nil when MongoDB is not configured
	Render listpage.Renderer
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

// NewHandler constructs the staff activity handler. events may be nil, in
// which case the page explains that history is not being stored.
func NewHandler(events EventQuerier, render listpage.Renderer, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	if render == nil {
		render = listpage.TemplateRenderer{}
	}
	return &Handler{
		Events: events,
		Render: render,
		Log:    logger,
		ErrLog: errLog,
	}
}
