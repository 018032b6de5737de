package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/dalemusser/jewelcrm/internal/app/system/crmapi"
	"go.uber.org/zap"
)

// CRMServer is a fake CRM backend for handler and client tests.
// Unregistered routes answer 404 with a DRF-style detail body.
type CRMServer struct {
	*httptest.Server

	t        *testing.T
	mu       sync.Mutex
	routes   map[string]cannedResponse
	hits     map[string]int
	lastAuth string
}

type cannedResponse struct {
	status int
	body   []byte
}

// NewCRMServer starts a fake backend that is closed when the test ends.
func NewCRMServer(t *testing.T) *CRMServer {
	t.Helper()
	s := &CRMServer{
		t:      t,
		routes: make(map[string]cannedResponse),
		hits:   make(map[string]int),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

func routeKey(method, path string) string { return method + " " + path }

func (s *CRMServer) serve(w http.ResponseWriter, r *http.Request) {
	key := routeKey(r.Method, r.URL.Path)

	s.mu.Lock()
	s.hits[key]++
	s.lastAuth = r.Header.Get("Authorization")
	resp, ok := s.routes[key]
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Not found."}`))
		return
	}
	w.WriteHeader(resp.status)
	_, _ = w.Write(resp.body)
}

// Raw registers a literal response body for method and path.
func (s *CRMServer) Raw(method, path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[routeKey(method, path)] = cannedResponse{status: status, body: []byte(body)}
}

// JSON registers v, encoded as JSON, as the response for method and path.
func (s *CRMServer) JSON(method, path string, status int, v any) {
	s.t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		s.t.Fatalf("encode canned response: %v", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[routeKey(method, path)] = cannedResponse{status: status, body: b}
}

// OK registers a success envelope carrying data.
func (s *CRMServer) OK(method, path string, data any) {
	s.JSON(method, path, http.StatusOK, map[string]any{"success": true, "data": data})
}

// Fail registers a success=false envelope with message.
func (s *CRMServer) Fail(method, path, message string) {
	s.JSON(method, path, http.StatusOK, map[string]any{"success": false, "message": message})
}

// Hits reports how many requests reached method and path.
func (s *CRMServer) Hits(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[routeKey(method, path)]
}

// LastAuthorization returns the Authorization header of the latest request.
func (s *CRMServer) LastAuthorization() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAuth
}

// APIClient builds a crmapi.Client pointed at the fake backend.
func (s *CRMServer) APIClient() *crmapi.Client {
	s.t.Helper()
	c, err := crmapi.New(crmapi.Config{
		BaseURL: s.URL,
		Token:   "test-token",
		Timeout: 5 * time.Second,
	}, zap.NewNop())
	if err != nil {
		s.t.Fatalf("crmapi.New: %v", err)
	}
	return c
}
