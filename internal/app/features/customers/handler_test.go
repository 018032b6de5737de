package customers_test

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/dalemusser/jewelcrm/internal/app/features/customers"
	uierrors "github.com/dalemusser/jewelcrm/internal/app/features/errors"
	"github.com/dalemusser/jewelcrm/internal/app/system/auditlog"
	"github.com/dalemusser/jewelcrm/internal/app/system/listpage"
	"github.com/dalemusser/jewelcrm/internal/domain/models"
	"github.com/dalemusser/jewelcrm/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var clients = []map[string]any{
	{"id": 1, "first_name": "Padma", "last_name": "Rao", "email": "padma@example.com", "phone": "98480 11111",
		"customer_type": "retail", "status": "active", "city": "Hyderabad", "state": "Telangana", "created_at": "2025-01-04T10:00:00Z"},
	{"id": 2, "first_name": "Arjun", "last_name": "Mehta", "email": "arjun@example.com", "phone": "99000 22222",
		"customer_type": "wholesale", "status": "lead", "city": "Mumbai", "created_at": "2025-02-10T08:30:00Z"},
	{"id": 3, "first_name": "Leela", "last_name": "Nair", "email": "leela@example.com", "phone": "90000 33333",
		"customer_type": "retail", "status": "active", "city": "Kochi", "state": "Kerala", "created_at": "2025-03-01"},
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
	srv.OK(http.MethodGet, "/clients/clients/", clients)

	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)
	kit, rend := testutil.NewKit(t)
	h := customers.NewHandler(srv.APIClient().Customers(), kit,
		auditlog.New(nil, logger, auditlog.Config{}), uierrors.NewErrorLogger(logger), logger)
	return &fixture{srv: srv, router: customers.Routes(h), rend: rend, logs: logs}
}

func (f *fixture) get(path string) *testutil.ResponseRecorder {
	rec := testutil.NewRecorder()
	f.router.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, path))
	return rec
}

func (f *fixture) listVM(t *testing.T) listpage.ViewModel[customers.Row] {
	t.Helper()
	vm, ok := f.rend.Last(t).Data.(listpage.ViewModel[customers.Row])
	require.True(t, ok, "rendered %T", f.rend.Last(t).Data)
	return vm
}

func fmtData(v any) string { return fmt.Sprintf("%+v", v) }

func TestComputeStats(t *testing.T) {
	st := customers.ComputeStats([]models.Customer{
		{ID: 1, Status: models.CustomerLead},
		{ID: 2, Status: models.CustomerActive},
		{ID: 3, Status: models.CustomerActive},
		{ID: 4, Status: "archived"},
	})
	assert.Equal(t, customers.Stats{Total: 4, Leads: 1, Active: 2}, st)
}

func TestList_SearchByPhoneAndEmail(t *testing.T) {
	f := newFixture(t)
	f.get("/")
	token := f.listVM(t).ViewToken

	f.get("/table?" + url.Values{"view": {token}, "q": {"99000"}}.Encode())
	vm := f.listVM(t)
	require.Len(t, vm.Rows, 1)
	assert.Equal(t, "Arjun Mehta", vm.Rows[0].Name)
	assert.Equal(t, "Mumbai", vm.Rows[0].Location)
	assert.Equal(t, "2025-02-10", vm.Rows[0].Since)

	f.get("/table?" + url.Values{"view": {token}, "q": {"LEELA@"}}.Encode())
	vm = f.listVM(t)
	require.Len(t, vm.Rows, 1)
	assert.Equal(t, "3", vm.Rows[0].ID)

	assert.Equal(t, 1, f.srv.Hits(http.MethodGet, "/clients/clients/"))
}

func TestExport_WritesFilteredViewAsCSV(t *testing.T) {
	f := newFixture(t)
	f.get("/")
	token := f.listVM(t).ViewToken

	rec := f.get("/export.csv?" + url.Values{"view": {token}, "status": {"active"}}.Encode())
	rec.AssertStatus(t, http.StatusOK)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment; filename=\"customers-")

	records, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "First Name", records[0][1])
	assert.Equal(t, []string{"1", "Padma", "Rao", "padma@example.com", "98480 11111", "retail", "active", "Hyderabad", "Telangana", "2025-01-04"}, records[1])
	assert.Equal(t, "3", records[2][0])

	assert.Equal(t, 1, f.srv.Hits(http.MethodGet, "/clients/clients/"), "export reuses the view")

	audits := f.logs.FilterMessage("audit event").All()
	require.Len(t, audits, 1)
	fields := audits[0].ContextMap()
	assert.Equal(t, "customers_exported", fields["event_type"])
	assert.Equal(t, "2", fields["detail_rows"])
	assert.Equal(t, "status=active", fields["detail_filter"])
}

func TestExport_WithoutViewLoadsFresh(t *testing.T) {
	f := newFixture(t)

	rec := f.get("/export.csv")
	rec.AssertStatus(t, http.StatusOK)

	records, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 4)
	assert.Equal(t, 1, f.srv.Hits(http.MethodGet, "/clients/clients/"))
}

func TestExport_FailedFetch(t *testing.T) {
	srv := testutil.NewCRMServer(t)
	srv.Fail(http.MethodGet, "/clients/clients/", "unauthorized")
	kit, _ := testutil.NewKit(t)
	h := customers.NewHandler(srv.APIClient().Customers(), kit, nil, uierrors.NewErrorLogger(zap.NewNop()), zap.NewNop())

	req := testutil.NewRequest(http.MethodGet, "/export.csv")
	req.Header.Set("HX-Request", "true")
	rec := testutil.NewRecorder()
	customers.Routes(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusInternalServerError)
	rec.AssertContains(t, "Unable to export customers.")
}

func TestShow(t *testing.T) {
	f := newFixture(t)
	f.srv.OK(http.MethodGet, "/clients/clients/2/", clients[1])

	rec := f.get("/2")
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "page:customer_detail")

	got := f.rend.Last(t)
	assert.True(t, got.Page)
	rec.AssertNotContains(t, "snippet:")
	assert.Contains(t, fmtData(got.Data), "Arjun Mehta")
}

func TestShow_NotFound(t *testing.T) {
	f := newFixture(t)

	rec := f.get("/42")
	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, "page:customer_detail")
	assert.Contains(t, fmtData(f.rend.Last(t).Data), "Customer not found.")
}

func TestShow_BackendFailure(t *testing.T) {
	f := newFixture(t)
	f.srv.Raw(http.MethodGet, "/clients/clients/7/", http.StatusInternalServerError, "<html>boom</html>")

	f.get("/7").AssertStatus(t, http.StatusBadGateway)
}

func TestShow_InvalidID(t *testing.T) {
	f := newFixture(t)
	req := testutil.NewRequest(http.MethodGet, "/abc")
	req.Header.Set("HX-Request", "true")
	rec := testutil.NewRecorder()
	f.router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	assert.Zero(t, f.rend.Count())
}
