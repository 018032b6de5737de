// internal/app/features/auditlog/list.go
package auditlog

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dalemusser/jewelcrm/internal/app/store/audit"
	"github.com/dalemusser/jewelcrm/internal/app/system/timeouts"
	"github.com/dalemusser/jewelcrm/internal/app/system/viewdata"
	"github.com/dalemusser/jewelcrm/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

const pageSize = 50

// ServeList handles GET / and lists recorded staff actions and exports,
// newest first, with category, event type and date filters.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	category := query.Get(r, "category")
	eventType := query.Get(r, "event_type")
	startDate := query.Get(r, "start_date")
	endDate := query.Get(r, "end_date")

	page := 1
	if p, err := strconv.Atoi(query.Get(r, "page")); err == nil && p > 0 {
		page = p
	}

	data := ListData{
		BaseVM:     viewdata.NewBaseVM(r, "Activity", "/"),
		Enabled:    h.Events != nil,
		Category:   category,
		EventType:  eventType,
		StartDate:  startDate,
		EndDate:    endDate,
		Categories: allCategories(),
		EventTypes: eventTypesForCategory(category),
		Page:       1,
		TotalPages: 1,
	}
	if h.Events == nil {
		h.Render.Page(w, r, "audit_list", data)
		return
	}

	filter := audit.QueryFilter{
		Category:  category,
		EventType: eventType,
		Limit:     pageSize,
	}
	if startDate != "" {
		if t, err := time.Parse("2006-01-02", startDate); err == nil {
			filter.StartTime = &t
		}
	}
	if endDate != "" {
		if t, err := time.Parse("2006-01-02", endDate); err == nil {
			endOfDay := t.Add(24*time.Hour - time.Second)
			filter.EndTime = &endOfDay
		}
	}

	ctx, cancel := timeouts.WithFetch(r.Context())
	defer cancel()

	total, err := h.Events.CountByFilter(ctx, filter)
	if err != nil {
		h.Log.Error("failed to count audit events", zap.Error(err))
		h.ErrLog.LogServerError(w, r, "database error", err, "A database error occurred.", "/")
		return
	}

	// Pages past the end show the last page.
	totalPages := int((total + pageSize - 1) / pageSize)
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}
	filter.Offset = int64(page-1) * pageSize

	events, err := h.Events.Query(ctx, filter)
	if err != nil {
		h.Log.Error("failed to query audit events", zap.Error(err))
		h.ErrLog.LogServerError(w, r, "database error", err, "A database error occurred.", "/")
		return
	}

	items := make([]listItem, 0, len(events))
	for _, e := range events {
		items = append(items, listItem{
			ID:        e.ID.Hex(),
			Timestamp: e.Timestamp,
			Category:  e.Category,
			EventType: e.EventType,
			Label:     models.Label(e.EventType),
			Page:      e.Page,
			RecordID:  e.RecordID,
			IP:        e.IP,
			Success:   e.Success,
			Reason:    e.FailureReason,
			Details:   e.Details,
		})
	}

	prevPage := page - 1
	if prevPage < 1 {
		prevPage = 1
	}
	nextPage := page + 1
	if nextPage > totalPages {
		nextPage = totalPages
	}

	data.Items = items
	data.Page = page
	data.TotalPages = totalPages
	data.Total = total
	data.Shown = len(items)
	data.HasPrev = page > 1
	data.HasNext = page < totalPages
	data.PrevPage = prevPage
	data.NextPage = nextPage
	h.Render.Page(w, r, "audit_list", data)
}
