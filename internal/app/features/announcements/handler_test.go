package announcements_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/dalemusser/jewelcrm/internal/app/features/announcements"
	uierrors "github.com/dalemusser/jewelcrm/internal/app/features/errors"
	"github.com/dalemusser/jewelcrm/internal/app/system/auditlog"
	"github.com/dalemusser/jewelcrm/internal/app/system/listpage"
	"github.com/dalemusser/jewelcrm/internal/app/system/listview"
	"github.com/dalemusser/jewelcrm/internal/domain/models"
	"github.com/dalemusser/jewelcrm/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var board = []map[string]any{
	{"id": 1, "title": "Gold rate update", "content": "<p>Rates revised <b>today</b>.</p>", "priority": "high",
		"type": "pricing", "is_read": false, "is_acknowledged": false, "created_by": "admin"},
	{"id": 2, "title": "Diwali hours", "content": "Store open till 10pm", "priority": "medium",
		"type": "general", "is_read": true, "is_acknowledged": false},
	{"id": 3, "title": "Audit done", "content": "Thanks all", "priority": "low",
		"type": "general", "is_read": true, "is_acknowledged": true},
}

type fixture struct {
	srv    *testutil.CRMServer
	router http.Handler
	rend   *testutil.Renderer
	logs   *observer.ObservedLogs
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	srv := testutil.NewCRMServer(t)
	srv.OK(http.MethodGet, "/announcements/", board)

	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	kit, rend := testutil.NewKit(t)
	audit := auditlog.New(nil, logger, auditlog.Config{})
	h := announcements.NewHandler(srv.APIClient().Announcements(), kit, audit, uierrors.NewErrorLogger(logger), logger)
	return &fixture{srv: srv, router: announcements.Routes(h), rend: rend, logs: logs}
}

func (f *fixture) vm(t *testing.T) listpage.ViewModel[announcements.Row] {
	t.Helper()
	vm, ok := f.rend.Last(t).Data.(listpage.ViewModel[announcements.Row])
	require.True(t, ok, "rendered %T", f.rend.Last(t).Data)
	return vm
}

func (f *fixture) open(t *testing.T) string {
	t.Helper()
	f.router.ServeHTTP(testutil.NewRecorder(), testutil.NewRequest(http.MethodGet, "/"))
	return f.vm(t).ViewToken
}

func (f *fixture) post(t *testing.T, path, token string) *testutil.ResponseRecorder {
	t.Helper()
	req := testutil.NewFormRequest(path, url.Values{"view": {token}})
	req.Header.Set("HX-Request", "true")
	rec := testutil.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func row(vm listpage.ViewModel[announcements.Row], id string) (announcements.Row, bool) {
	for _, r := range vm.Rows {
		if r.ID == id {
			return r, true
		}
	}
	return announcements.Row{}, false
}

func TestComputeStats(t *testing.T) {
	st := announcements.ComputeStats([]models.Announcement{
		{ID: 1, Priority: models.PriorityHigh},
		{ID: 2, Priority: models.PriorityLow, IsRead: true},
		{ID: 3, Priority: models.PriorityHigh, IsRead: true, IsAcknowledged: true},
	})
	assert.Equal(t, announcements.Stats{Total: 3, Unread: 1, HighPriority: 2, PendingAck: 2}, st)
	assert.Equal(t, announcements.Stats{}, announcements.ComputeStats(nil))
}

func TestList_SanitizesContent(t *testing.T) {
	f := newFixture(t)
	f.open(t)

	vm := f.vm(t)
	require.Len(t, vm.Rows, 3)
	assert.Equal(t, "Rates revised today.", vm.Rows[0].Excerpt)
	assert.Contains(t, string(vm.Rows[0].Content), "<b>today</b>")
	assert.Equal(t, "Pricing", vm.Rows[0].Type)
	assert.Equal(t, "bad", vm.Rows[0].PriorityTone)
	assert.Equal(t, "3", vm.Stats[0].Value)
	assert.Equal(t, "1", vm.Stats[1].Value)
}

func TestMarkRead_PatchesViewAfterConfirmedWrite(t *testing.T) {
	f := newFixture(t)
	f.srv.OK(http.MethodPost, "/announcements/1/mark-read/", nil)
	token := f.open(t)

	rec := f.post(t, "/1/read", token)
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "snippet:announcements_table")

	vm := f.vm(t)
	assert.Equal(t, token, vm.ViewToken)
	assert.Equal(t, "Marked as read.", vm.Notice)
	r, ok := row(vm, "1")
	require.True(t, ok)
	assert.True(t, r.IsRead)
	assert.False(t, r.IsAcknowledged)
	assert.Equal(t, "0", vm.Stats[1].Value, "unread count follows the patch")

	assert.Equal(t, 1, f.srv.Hits(http.MethodGet, "/announcements/"), "no refetch after a write")
	assert.Equal(t, 1, f.srv.Hits(http.MethodPost, "/announcements/1/mark-read/"))

	entries := f.logs.FilterMessage("audit event").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "announcement_read", fields["event_type"])
	assert.Equal(t, "1", fields["record_id"])
	assert.Equal(t, "Gold rate update", fields["detail_title"])
}

func TestAcknowledge_FailureLeavesViewUnchanged(t *testing.T) {
	f := newFixture(t)
	f.srv.Fail(http.MethodPost, "/announcements/2/acknowledge/", "not allowed")
	token := f.open(t)

	rec := f.post(t, "/2/acknowledge", token)
	rec.AssertStatus(t, http.StatusOK)

	vm := f.vm(t)
	assert.Contains(t, vm.Notice, "Could not acknowledge")
	assert.Contains(t, vm.Notice, "not allowed")
	r, ok := row(vm, "2")
	require.True(t, ok)
	assert.False(t, r.IsAcknowledged)

	assert.Equal(t, 1, f.logs.FilterMessage("announcement action failed").Len())
	audits := f.logs.FilterMessage("audit event").All()
	require.Len(t, audits, 1)
	assert.Equal(t, false, audits[0].ContextMap()["success"])
}

func TestAcknowledge_UnknownIDIsNoOp(t *testing.T) {
	f := newFixture(t)
	f.srv.OK(http.MethodPost, "/announcements/99/acknowledge/", nil)
	token := f.open(t)

	f.post(t, "/99/acknowledge", token).AssertStatus(t, http.StatusOK)

	vm := f.vm(t)
	require.Len(t, vm.Rows, 3)
	for _, r := range vm.Rows {
		if r.ID == "1" || r.ID == "2" {
			assert.False(t, r.IsAcknowledged, r.ID)
		}
	}
}

func TestAction_ExpiredViewOpensFreshOne(t *testing.T) {
	f := newFixture(t)
	f.srv.OK(http.MethodPost, "/announcements/1/acknowledge/", nil)

	f.post(t, "/1/acknowledge", "stale-token").AssertStatus(t, http.StatusOK)

	vm := f.vm(t)
	assert.NotEqual(t, "stale-token", vm.ViewToken)
	assert.Equal(t, listview.RenderReady, vm.State)
	r, ok := row(vm, "1")
	require.True(t, ok)
	assert.True(t, r.IsAcknowledged)
	assert.Equal(t, 1, f.srv.Hits(http.MethodGet, "/announcements/"))
}

func TestAction_InvalidID(t *testing.T) {
	f := newFixture(t)

	rec := f.post(t, "/abc/read", "")
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Invalid announcement.")
	assert.Zero(t, f.srv.Hits(http.MethodGet, "/announcements/"))
}
