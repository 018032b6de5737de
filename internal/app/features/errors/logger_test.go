package errors_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	uierrors "github.com/dalemusser/jewelcrm/internal/app/features/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogServerError_HTMXGetsPlainText(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	el := uierrors.NewErrorLogger(zap.New(core))

	req := httptest.NewRequest(http.MethodPost, "/manager/announcements/1/read", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	el.LogServerError(rec, req, "mark read failed", errors.New("boom"), "Could not update the announcement.", "")

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if got := rec.Body.String(); got != "Could not update the announcement.\n" {
		t.Errorf("body: got %q", got)
	}
	if logs.Len() != 1 {
		t.Fatalf("expected 1 log entry, got %d", logs.Len())
	}
	entry := logs.All()[0]
	if entry.Message != "mark read failed" {
		t.Errorf("log message: got %q", entry.Message)
	}
	if entry.ContextMap()["path"] != "/manager/announcements/1/read" {
		t.Errorf("log path: got %v", entry.ContextMap()["path"])
	}
}

func TestLogBadRequest_LogsAtWarn(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	el := uierrors.NewErrorLogger(zap.New(core))

	req := httptest.NewRequest(http.MethodPost, "/manager/announcements/x/read", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	el.LogBadRequest(rec, req, "bad announcement id", errors.New("parse"), "", "")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if logs.Len() != 1 || logs.All()[0].Level != zap.WarnLevel {
		t.Errorf("expected one warn entry, got %v", logs.All())
	}
}
