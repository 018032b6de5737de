// internal/app/features/announcements/actions.go
package announcements

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dalemusser/jewelcrm/internal/app/store/audit"
	"github.com/dalemusser/jewelcrm/internal/app/system/timeouts"
	"github.com/dalemusser/jewelcrm/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type action struct {
	eventType string
	verb      string
	done      string
	write     func(s Service, ctx context.Context, id int64) error
	patch     func(models.Announcement) models.Announcement
}

var (
	markRead = action{
		eventType: audit.EventAnnouncementRead,
		verb:      "mark as read",
		done:      "Marked as read.",
		write:     Service.MarkRead,
		patch:     models.MarkRead,
	}
	acknowledge = action{
		eventType: audit.EventAnnouncementAcknowledged,
		verb:      "acknowledge",
		done:      "Acknowledged.",
		write:     Service.Acknowledge,
		patch:     models.Acknowledge,
	}
)

// MarkRead handles POST /{id}/read.
func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	h.serveAction(w, r, markRead)
}

// Acknowledge handles POST /{id}/acknowledge.
func (h *Handler) Acknowledge(w http.ResponseWriter, r *http.Request) {
	h.serveAction(w, r, acknowledge)
}

// serveAction sends the write to the backend and, only once it is
// confirmed, patches the record in the view's collection. Either way the
// table is re-rendered from the view.
func (h *Handler) serveAction(w http.ResponseWriter, r *http.Request, a action) {
	idParam := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil || id <= 0 {
		h.ErrLog.LogBadRequest(w, r, "invalid announcement id", err, "Invalid announcement.", "/manager/announcements")
		return
	}

	ctrl, token, opened, err := h.Page.Resolve(r)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "open view failed", err, "Unable to open announcements.", "/manager/announcements")
		return
	}
	if opened {
		h.Page.Load(r.Context(), ctrl)
	}

	ctx, cancel := timeouts.WithWrite(r.Context())
	defer cancel()

	if err := a.write(h.API, ctx, id); err != nil {
		h.Log.Warn("announcement action failed",
			zap.String("action", a.eventType),
			zap.Int64("id", id),
			zap.Error(err))
		h.Audit.AnnouncementActionFailed(ctx, r, a.eventType, id, err.Error())
		h.Page.RenderTable(w, r, ctrl, token, fmt.Sprintf("Could not %s: %v", a.verb, err))
		return
	}

	key := strconv.FormatInt(id, 10)
	ctrl.MutateOne(key, a.patch)

	title := ""
	if rec, ok := ctrl.Find(key); ok {
		title = rec.Title
	}
	switch a.eventType {
	case audit.EventAnnouncementRead:
		h.Audit.AnnouncementRead(ctx, r, id, title)
	case audit.EventAnnouncementAcknowledged:
		h.Audit.AnnouncementAcknowledged(ctx, r, id, title)
	}

	h.Page.RenderTable(w, r, ctrl, token, a.done)
}
