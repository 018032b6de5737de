// internal/app/system/listpage/render.go
package listpage

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
)

// Renderer writes a full page or an htmx snippet.
type Renderer interface {
	Page(w http.ResponseWriter, r *http.Request, name string, data any)
	Snippet(w http.ResponseWriter, name string, data any)
}

// TemplateRenderer renders through the shared template engine.
type TemplateRenderer struct{}

func (TemplateRenderer) Page(w http.ResponseWriter, r *http.Request, name string, data any) {
	templates.Render(w, r, name, data)
}

func (TemplateRenderer) Snippet(w http.ResponseWriter, name string, data any) {
	templates.RenderSnippet(w, name, data)
}

// ServerErrorLogger logs an unexpected handler failure and writes a
// friendly error response.
type ServerErrorLogger interface {
	LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string)
}

// IsHTMXTarget reports whether r is an htmx request swapping into target.
func IsHTMXTarget(r *http.Request, target string) bool {
	return r.Header.Get("HX-Request") != "" && r.Header.Get("HX-Target") == target
}
