package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/jewelcrm/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Pinger checks that the CRM backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds dependencies needed for health checks.
type Handler struct {
	Client *mongo.Client
	API    Pinger
	Log    *zap.Logger
}

// NewHandler constructs a health Handler with the Mongo client, the CRM API
// client and logger.
func NewHandler(client *mongo.Client, api Pinger, logger *zap.Logger) *Handler {
	return &Handler{
		Client: client,
		API:    api,
		Log:    logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	API      string `json:"api"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "database":"connected", "api":"reachable" }
//
// On DB failure: 503 and
//
//	{ "status":"error", "database":"disconnected", "message":"Database unavailable", "error":"…" }
//
// An unreachable CRM API is reported as "degraded" with 200: list pages
// still render (in their error state) without it.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:   "ok",
		Database: "connected",
		API:      "reachable",
	}

	if h.Client == nil {
		resp.Database = "disabled"
	} else if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Error("health-check: mongo ping failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Database = "disconnected"
		resp.API = ""
		resp.Message = "Database unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	if h.API != nil {
		if err := h.API.Ping(ctx); err != nil {
			h.Log.Warn("health-check: crm api ping failed", zap.Error(err))
			resp.Status = "degraded"
			resp.API = "unreachable"
			resp.Message = "CRM API unavailable"
			resp.Error = err.Error()
		}
	} else {
		resp.API = "disabled"
	}

	_ = json.NewEncoder(w).Encode(resp)
}
