package testutil

import (
	"bytes"
	"fmt"
	"net/http"
	"sync"
	"testing"

	uierrors "github.com/dalemusser/jewelcrm/internal/app/features/errors"
	"github.com/dalemusser/jewelcrm/internal/app/system/listpage"
	"github.com/dalemusser/jewelcrm/internal/app/system/viewreg"
	"go.uber.org/zap"
)

// Rendered is one call captured by Renderer.
type Rendered struct {
	Page bool
	Name string
	Data any
}

// Renderer captures template renders instead of executing templates.
// It writes "page:<name>" or "snippet:<name>" as the response body.
type Renderer struct {
	mu    sync.Mutex
	calls []Rendered
}

func (r *Renderer) Page(w http.ResponseWriter, req *http.Request, name string, data any) {
	r.record(Rendered{Page: true, Name: name, Data: data})
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "page:%s", name)
}

func (r *Renderer) Snippet(w http.ResponseWriter, name string, data any) {
	r.record(Rendered{Name: name, Data: data})
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "snippet:%s", name)
}

func (r *Renderer) record(c Rendered) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, c)
}

// Last returns the most recent render. It fails the test if nothing was rendered.
func (r *Renderer) Last(t *testing.T) Rendered {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		t.Fatal("nothing was rendered")
	}
	return r.calls[len(r.calls)-1]
}

// Count returns the number of renders so far.
func (r *Renderer) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// NewKit builds a listpage.Kit with a fresh view registry and a capturing
// renderer.
func NewKit(t *testing.T) (*listpage.Kit, *Renderer) {
	t.Helper()
	views, err := viewreg.New(viewreg.Config{Key: bytes.Repeat([]byte("t"), 32)}, zap.NewNop())
	if err != nil {
		t.Fatalf("viewreg.New: %v", err)
	}
	t.Cleanup(views.Purge)

	rend := &Renderer{}
	return &listpage.Kit{
		Views:  views,
		Render: rend,
		ErrLog: uierrors.NewErrorLogger(zap.NewNop()),
		Log:    zap.NewNop(),
	}, rend
}
