package audit_test

import (
	"testing"
	"time"

	"github.com/dalemusser/jewelcrm/internal/app/store/audit"
	"github.com/dalemusser/jewelcrm/internal/testutil"
)

func TestStore_Log_AutoGeneratesIDAndTimestamp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	before := time.Now().Add(-time.Second)
	err := store.Log(ctx, audit.Event{
		Category:  audit.CategoryAction,
		EventType: audit.EventAnnouncementRead,
		Page:      "announcements",
		RecordID:  "5",
		IP:        "192.168.1.1",
		Success:   true,
	})
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	events, err := store.Query(ctx, audit.QueryFilter{Limit: 10})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].ID.IsZero() {
		t.Error("expected ID to be auto-generated")
	}
	if events[0].Timestamp.Before(before) {
		t.Errorf("expected timestamp after %v, got %v", before, events[0].Timestamp)
	}
}

func TestStore_Query_ByRecord(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes failed: %v", err)
	}

	base := time.Now().UTC().Add(-time.Hour)
	for i, e := range []audit.Event{
		{Category: audit.CategoryAction, EventType: audit.EventAnnouncementRead, Page: "announcements", RecordID: "5", Success: true},
		{Category: audit.CategoryAction, EventType: audit.EventAnnouncementAcknowledged, Page: "announcements", RecordID: "5", Success: true},
		{Category: audit.CategoryAction, EventType: audit.EventAnnouncementRead, Page: "announcements", RecordID: "6", Success: true},
	} {
		e.Timestamp = base.Add(time.Duration(i) * time.Minute)
		if err := store.Log(ctx, e); err != nil {
			t.Fatalf("Log failed: %v", err)
		}
	}

	events, err := store.Query(ctx, audit.QueryFilter{Page: "announcements", RecordID: "5", Limit: 10})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].EventType != audit.EventAnnouncementAcknowledged {
		t.Errorf("expected newest first, got %q", events[0].EventType)
	}

	n, err := store.CountByFilter(ctx, audit.QueryFilter{EventType: audit.EventAnnouncementRead})
	if err != nil {
		t.Fatalf("CountByFilter failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 read events, got %d", n)
	}
}

func TestStore_Query_TimeRange(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	old := time.Now().UTC().Add(-48 * time.Hour)
	recent := time.Now().UTC().Add(-time.Minute)
	_ = store.Log(ctx, audit.Event{Category: audit.CategoryExport, EventType: audit.EventCustomersExported, Page: "customers", Timestamp: old, Success: true})
	_ = store.Log(ctx, audit.Event{Category: audit.CategoryExport, EventType: audit.EventCustomersExported, Page: "customers", Timestamp: recent, Success: true})

	since := time.Now().UTC().Add(-24 * time.Hour)
	events, err := store.Query(ctx, audit.QueryFilter{Category: audit.CategoryExport, StartTime: &since})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 recent event, got %d", len(events))
	}
}
