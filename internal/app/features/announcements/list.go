// internal/app/features/announcements/list.go
package announcements

import (
	"strconv"

	"github.com/dalemusser/jewelcrm/internal/app/system/htmlsanitize"
	"github.com/dalemusser/jewelcrm/internal/app/system/listpage"
	"github.com/dalemusser/jewelcrm/internal/app/system/listview"
	"github.com/dalemusser/jewelcrm/internal/domain/models"
)

const excerptLen = 160

// Filters searches title and content and filters by priority and type.
var Filters = listview.Filters[models.Announcement]{
	SearchFields: []func(models.Announcement) string{
		func(a models.Announcement) string { return a.Title },
		func(a models.Announcement) string { return a.Content },
	},
	Categories: []listview.Category[models.Announcement]{
		{
			Name:  "priority",
			Label: "All priorities",
			Options: []listview.Option{
				{Value: models.PriorityHigh, Label: "High"},
				{Value: models.PriorityMedium, Label: "Medium"},
				{Value: models.PriorityLow, Label: "Low"},
			},
			Value: func(a models.Announcement) string { return a.Priority },
		},
		{
			Name:  "type",
			Label: "All types",
			Value: func(a models.Announcement) string { return a.Type },
		},
	},
}

// ComputeStats summarizes the full announcement list.
func ComputeStats(items []models.Announcement) Stats {
	st := listview.Compute(items,
		listview.CountWhere("unread", func(a models.Announcement) bool { return !a.IsRead }),
		listview.CountEq("high", func(a models.Announcement) string { return a.Priority }, models.PriorityHigh),
		listview.CountWhere("pending", func(a models.Announcement) bool { return !a.IsAcknowledged }),
	)
	return Stats{
		Total:        st.Count,
		Unread:       st.Int("unread"),
		HighPriority: st.Int("high"),
		PendingAck:   st.Int("pending"),
	}
}

func statCards(items []models.Announcement) []listpage.StatCard {
	st := ComputeStats(items)
	return []listpage.StatCard{
		{Label: "Total", Value: strconv.Itoa(st.Total)},
		{Label: "Unread", Value: strconv.Itoa(st.Unread), Tone: "warn"},
		{Label: "High Priority", Value: strconv.Itoa(st.HighPriority), Tone: "bad"},
		{Label: "Pending Acknowledgement", Value: strconv.Itoa(st.PendingAck)},
	}
}

func priorityTone(p string) string {
	switch p {
	case models.PriorityHigh:
		return "bad"
	case models.PriorityMedium:
		return "warn"
	}
	return "neutral"
}

func toRow(a models.Announcement) Row {
	return Row{
		ID:             a.RecordKey(),
		Title:          a.Title,
		Excerpt:        htmlsanitize.Excerpt(a.Content, excerptLen),
		Content:        htmlsanitize.PrepareForDisplay(a.Content),
		Priority:       a.Priority,
		PriorityTone:   priorityTone(a.Priority),
		Type:           models.Label(a.Type),
		CreatedAt:      a.CreatedAt,
		CreatedBy:      a.CreatedBy,
		IsRead:         a.IsRead,
		IsAcknowledged: a.IsAcknowledged,
	}
}

func pageConfig(src listview.Source[models.Announcement]) listpage.Config[models.Announcement, Row] {
	return listpage.Config[models.Announcement, Row]{
		Name:          "announcements",
		Title:         "Announcements",
		BasePath:      "/manager/announcements",
		TableTarget:   "announcements-table-wrap",
		PageTemplate:  "announcements_list",
		TableTemplate: "announcements_table",
		SearchLabel:   "Search announcements",
		EmptyText:     "No announcements match the current filters.",
		Source:        src,
		Filters:       Filters,
		Stats:         statCards,
		Row:           toRow,
	}
}
