// internal/domain/models/announcement.go
package models

import "strconv"

// Announcement priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Announcement is a message to the team. Content may contain HTML.
type Announcement struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Content        string `json:"content"`
	Priority       string `json:"priority"`
	Type           string `json:"type"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
	CreatedBy      string `json:"created_by"`
	IsRead         bool   `json:"is_read"`
	IsAcknowledged bool   `json:"is_acknowledged"`
}

func (a Announcement) RecordKey() string { return strconv.FormatInt(a.ID, 10) }

// MarkRead is the local patch applied after a confirmed mark-read write.
func MarkRead(a Announcement) Announcement {
	a.IsRead = true
	return a
}

// Acknowledge is the local patch applied after a confirmed acknowledge write.
func Acknowledge(a Announcement) Announcement {
	a.IsAcknowledged = true
	return a
}
