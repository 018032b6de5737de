// internal/app/system/auditlog/logger.go
package auditlog

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dalemusser/jewelcrm/internal/app/store/audit"
	"go.uber.org/zap"
)

// Destinations accepted by Config fields.
const (
	ToAll = "all" // MongoDB + zap
	ToDB  = "db"  // MongoDB only
	ToLog = "log" // zap only
	ToOff = "off" // disabled
)

// Config holds audit logging configuration.
type Config struct {
	// Actions controls logging for confirmed staff writes (mark read, acknowledge).
	Actions string
	// Exports controls logging for data exports (customer CSV).
	Exports string
}

// ValidDestination reports whether v is an accepted Config value.
func ValidDestination(v string) bool {
	switch v {
	case ToAll, ToDB, ToLog, ToOff:
		return true
	}
	return false
}

// EventStore persists audit events.
type EventStore interface {
	Log(ctx context.Context, event audit.Event) error
}

// Logger provides convenience methods for logging audit events.
// It logs to MongoDB (via an EventStore) and to structured logs (via zap).
// With a nil store, "all" and "db" degrade to zap only.
type Logger struct {
	store  EventStore
	zapLog *zap.Logger
	config Config
}

// New creates a new audit Logger.
func New(store EventStore, zapLog *zap.Logger, config Config) *Logger {
	if zapLog == nil {
		zapLog = zap.NewNop()
	}
	return &Logger{
		store:  store,
		zapLog: zapLog,
		config: config,
	}
}

// getClientIP extracts the client IP from the request.
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

// logToZap logs the event to zap with consistent structure.
func (l *Logger) logToZap(event audit.Event) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("category", event.Category),
		zap.String("event_type", event.EventType),
		zap.String("page", event.Page),
		zap.Bool("success", event.Success),
		zap.String("ip", event.IP),
	}
	if event.RecordID != "" {
		fields = append(fields, zap.String("record_id", event.RecordID))
	}
	if event.FailureReason != "" {
		fields = append(fields, zap.String("failure_reason", event.FailureReason))
	}
	for k, v := range event.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}

	if event.Success {
		l.zapLog.Info("audit event", fields...)
	} else {
		l.zapLog.Warn("audit event", fields...)
	}
}

// Log records an audit event based on configuration.
// If the logger is nil, this is a no-op (allows tests to use nil audit logger).
func (l *Logger) Log(ctx context.Context, event audit.Event) {
	if l == nil {
		return
	}

	var setting string
	switch event.Category {
	case audit.CategoryAction:
		setting = l.config.Actions
	case audit.CategoryExport:
		setting = l.config.Exports
	}
	if setting == "" {
		setting = ToAll
	}
	if setting == ToOff {
		return
	}

	if setting == ToAll || setting == ToLog || l.store == nil {
		l.logToZap(event)
	}

	if (setting == ToAll || setting == ToDB) && l.store != nil {
		if err := l.store.Log(ctx, event); err != nil {
			l.zapLog.Error("failed to store audit event",
				zap.Error(err),
				zap.String("event_type", event.EventType),
			)
		}
	}
}

// --- Announcement actions ---

// AnnouncementRead logs a confirmed mark-as-read.
func (l *Logger) AnnouncementRead(ctx context.Context, r *http.Request, id int64, title string) {
	l.announcement(ctx, r, audit.EventAnnouncementRead, id, title)
}

// AnnouncementAcknowledged logs a confirmed acknowledgement.
func (l *Logger) AnnouncementAcknowledged(ctx context.Context, r *http.Request, id int64, title string) {
	l.announcement(ctx, r, audit.EventAnnouncementAcknowledged, id, title)
}

func (l *Logger) announcement(ctx context.Context, r *http.Request, eventType string, id int64, title string) {
	l.Log(ctx, audit.Event{
		Category:  audit.CategoryAction,
		EventType: eventType,
		Page:      "announcements",
		RecordID:  strconv.FormatInt(id, 10),
		IP:        getClientIP(r),
		UserAgent: r.UserAgent(),
		Success:   true,
		Details: map[string]string{
			"title": title,
		},
	})
}

// AnnouncementActionFailed logs a write the backend rejected.
func (l *Logger) AnnouncementActionFailed(ctx context.Context, r *http.Request, eventType string, id int64, reason string) {
	l.Log(ctx, audit.Event{
		Category:      audit.CategoryAction,
		EventType:     eventType,
		Page:          "announcements",
		RecordID:      strconv.FormatInt(id, 10),
		IP:            getClientIP(r),
		UserAgent:     r.UserAgent(),
		Success:       false,
		FailureReason: reason,
	})
}

// --- Exports ---

// CustomersExported logs a customer CSV download.
func (l *Logger) CustomersExported(ctx context.Context, r *http.Request, rows int, filter string) {
	l.Log(ctx, audit.Event{
		Category:  audit.CategoryExport,
		EventType: audit.EventCustomersExported,
		Page:      "customers",
		IP:        getClientIP(r),
		UserAgent: r.UserAgent(),
		Success:   true,
		Details: map[string]string{
			"rows":   strconv.Itoa(rows),
			"filter": filter,
		},
	})
}
