// internal/app/features/announcements/types.go
package announcements

import "html/template"

// Row is one announcement card.
type Row struct {
	ID             string
	Title          string
	Excerpt        string
	Content        template.HTML
	Priority       string
	PriorityTone   string
	Type           string
	CreatedAt      string
	CreatedBy      string
	IsRead         bool
	IsAcknowledged bool
}

// Stats are the announcement summary figures.
type Stats struct {
	Total        int
	Unread       int
	HighPriority int
	PendingAck   int
}
