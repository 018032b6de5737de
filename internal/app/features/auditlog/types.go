// internal/app/features/auditlog/types.go
package auditlog

import (
	"time"

	"github.com/dalemusser/jewelcrm/internal/app/store/audit"
	"github.com/dalemusser/jewelcrm/internal/app/system/viewdata"
	"github.com/dalemusser/jewelcrm/internal/domain/models"
)

// listItem represents a single audit event row for display.
type listItem struct {
	ID        string
	Timestamp time.Time
	Category  string
	EventType string
	Label     string
	Page      string
	RecordID  string
	IP        string
	Success   bool
	Reason    string
	Details   map[string]string
}

// ListData is the view model for the activity page.
type ListData struct {
	viewdata.BaseVM

	Enabled bool
	Items   []listItem

	// Filters
	Category  string
	EventType string
	StartDate string
	EndDate   string

	// Filter options
	Categories []categoryOption
	EventTypes []categoryOption

	// Pagination
	Page       int
	TotalPages int
	Total      int64
	Shown      int
	HasPrev    bool
	HasNext    bool
	PrevPage   int
	NextPage   int
}

// categoryOption represents an option of a filter dropdown.
type categoryOption struct {
	Value string
	Label string
}

func allCategories() []categoryOption {
	return []categoryOption{
		{Value: audit.CategoryAction, Label: "Staff actions"},
		{Value: audit.CategoryExport, Label: "Exports"},
	}
}

// eventTypesForCategory returns the event types for a category, or every
// event type when category is empty.
func eventTypesForCategory(category string) []categoryOption {
	var types []string
	switch category {
	case audit.CategoryAction:
		types = []string{audit.EventAnnouncementRead, audit.EventAnnouncementAcknowledged}
	case audit.CategoryExport:
		types = []string{audit.EventCustomersExported}
	case "":
		types = []string{audit.EventAnnouncementRead, audit.EventAnnouncementAcknowledged, audit.EventCustomersExported}
	}
	out := make([]categoryOption, 0, len(types))
	for _, t := range types {
		out = append(out, categoryOption{Value: t, Label: models.Label(t)})
	}
	return out
}
