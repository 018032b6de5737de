package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/jewelcrm/internal/app/features/health"
	"github.com/dalemusser/jewelcrm/internal/testutil"
	"go.uber.org/zap"
)

type healthBody struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	API      string `json:"api"`
	Message  string `json:"message"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) healthBody {
	t.Helper()
	var body healthBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return body
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestServe_DatabaseConnected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	srv := testutil.NewCRMServer(t)
	handler := health.NewHandler(db.Client(), srv.APIClient(), zap.NewNop())

	rec := httptest.NewRecorder()
	handler.Serve(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want %q", ct, "application/json")
	}
	body := decode(t, rec)
	if body.Status != "ok" || body.Database != "connected" || body.API != "reachable" {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestServe_APIReachableWithoutDatabase(t *testing.T) {
	srv := testutil.NewCRMServer(t)
	handler := health.NewHandler(nil, srv.APIClient(), zap.NewNop())

	rec := httptest.NewRecorder()
	handler.Serve(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	body := decode(t, rec)
	if body.Status != "ok" || body.Database != "disabled" || body.API != "reachable" {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestServe_APIUnreachableIsDegraded(t *testing.T) {
	down := pingFunc(func(ctx context.Context) error { return errors.New("connection refused") })
	handler := health.NewHandler(nil, down, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.Serve(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	body := decode(t, rec)
	if body.Status != "degraded" || body.API != "unreachable" {
		t.Errorf("unexpected body: %+v", body)
	}
	if body.Message != "CRM API unavailable" {
		t.Errorf("message: got %q", body.Message)
	}
}
