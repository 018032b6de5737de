// internal/app/system/listpage/page.go
package listpage

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/dalemusser/jewelcrm/internal/app/system/listview"
	"github.com/dalemusser/jewelcrm/internal/app/system/timeouts"
	"github.com/dalemusser/jewelcrm/internal/app/system/viewdata"
	"github.com/dalemusser/jewelcrm/internal/app/system/viewreg"
	"github.com/dalemusser/jewelcrm/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

// Kit carries the dependencies shared by every list page.
type Kit struct {
	Views  *viewreg.Registry
	Render Renderer
	ErrLog ServerErrorLogger
	Log    *zap.Logger
}

// Config describes one list page.
type Config[T listview.Record, R any] struct {
	Name          string // view registry page name, also used in logs
	Title         string
	BasePath      string // mount point, e.g. /manager/products
	TableTarget   string // id of the element the table snippet replaces
	PageTemplate  string
	TableTemplate string
	SearchLabel   string
	EmptyText     string

	Source  listview.Source[T]
	Filters listview.Filters[T]

	// Stats builds the summary cards from the full collection.
	Stats func(items []T) []StatCard
	// Extra builds page-specific data from the full collection.
	Extra func(items []T) any
	// Row maps a record to its table row.
	Row func(T) R
}

// Page serves one list page: a full-page GET that opens a fresh view and
// an htmx table endpoint that filters and refreshes that view.
type Page[T listview.Record, R any] struct {
	cfg Config[T, R]
	kit *Kit
}

// New builds a Page.
func New[T listview.Record, R any](kit *Kit, cfg Config[T, R]) *Page[T, R] {
	if kit.Render == nil {
		kit.Render = TemplateRenderer{}
	}
	if kit.Log == nil {
		kit.Log = zap.NewNop()
	}
	if cfg.EmptyText == "" {
		cfg.EmptyText = "No records match the current filters."
	}
	return &Page[T, R]{cfg: cfg, kit: kit}
}

// Name returns the page name.
func (p *Page[T, R]) Name() string { return p.cfg.Name }

// ServePage handles GET on the page root. Every full page load opens a new
// view with its own controller and loads it once.
func (p *Page[T, R]) ServePage(w http.ResponseWriter, r *http.Request) {
	ctrl, token, err := p.open()
	if err != nil {
		p.kit.ErrLog.LogServerError(w, r, "open view failed", err, "Unable to open "+strings.ToLower(p.cfg.Title)+".", "/")
		return
	}
	p.load(r.Context(), ctrl)

	vm := p.ViewModel(r, ctrl, token)
	if IsHTMXTarget(r, p.cfg.TableTarget) {
		vm.Partial = true
		p.kit.Render.Snippet(w, p.cfg.TableTemplate, vm)
		return
	}
	p.kit.Render.Page(w, r, p.cfg.PageTemplate, vm)
}

// ServeTable handles GET table: it re-filters the view named by the view
// token, reloading it first when refresh=1. An unknown or expired token
// opens a fresh view.
func (p *Page[T, R]) ServeTable(w http.ResponseWriter, r *http.Request) {
	ctrl, token, opened, err := p.Resolve(r)
	if err != nil {
		p.kit.ErrLog.LogServerError(w, r, "open view failed", err, "Unable to open "+strings.ToLower(p.cfg.Title)+".", p.cfg.BasePath)
		return
	}
	if opened || param(r, "refresh") == "1" {
		p.load(r.Context(), ctrl)
	}
	p.RenderTable(w, r, ctrl, token, "")
}

// Resolve returns the controller of the view named by the request's view
// token. When the token is missing, invalid or expired, it opens a fresh
// view and reports opened=true; the caller must Load it.
func (p *Page[T, R]) Resolve(r *http.Request) (ctrl *listview.Controller[T], token string, opened bool, err error) {
	token = param(r, "view")
	if c, ok := viewreg.Lookup[*listview.Controller[T]](p.kit.Views, p.cfg.Name, token); ok {
		return c, token, false, nil
	}
	ctrl, token, err = p.open()
	return ctrl, token, err == nil, err
}

// Load fetches the collection into ctrl under the fetch timeout.
func (p *Page[T, R]) Load(ctx context.Context, ctrl *listview.Controller[T]) {
	p.load(ctx, ctrl)
}

// RenderTable writes the table snippet for ctrl, filtered by the request.
// notice is shown above the table when non-empty.
func (p *Page[T, R]) RenderTable(w http.ResponseWriter, r *http.Request, ctrl *listview.Controller[T], token, notice string) {
	vm := p.ViewModel(r, ctrl, token)
	vm.Notice = notice
	vm.Partial = true
	p.kit.Render.Snippet(w, p.cfg.TableTemplate, vm)
}

// FilterState parses the request's search term and categorical filters.
// Category values that are not among a category's fixed options are
// treated as "all".
func (p *Page[T, R]) FilterState(r *http.Request) listview.FilterState {
	st := listview.FilterState{
		Search:     param(r, "q"),
		Categories: make(map[string]string, len(p.cfg.Filters.Categories)),
	}
	if r.Method == http.MethodGet {
		st.Search = query.Search(r, "q")
	}
	// query.Search caps the term by bytes and can split the last rune.
	st.Search = strings.ToValidUTF8(st.Search, "")
	for _, c := range p.cfg.Filters.Categories {
		v := param(r, c.Name)
		if v == "" || v == listview.All {
			continue
		}
		if len(c.Options) > 0 && !hasOption(c.Options, v) {
			continue
		}
		st.Categories[c.Name] = v
	}
	return st
}

// Visible returns the records of ctrl that the request's filters keep.
func (p *Page[T, R]) Visible(r *http.Request, ctrl *listview.Controller[T]) []T {
	return ctrl.Filtered(p.cfg.Filters, p.FilterState(r))
}

// ViewModel assembles the page data for ctrl. Stats and Extra are computed
// from the full collection; rows from the filtered one.
func (p *Page[T, R]) ViewModel(r *http.Request, ctrl *listview.Controller[T], token string) ViewModel[R] {
	snap := ctrl.Snapshot()
	st := p.FilterState(r)
	visible := p.cfg.Filters.Apply(snap.Items, st)

	vm := ViewModel[R]{
		BaseVM:      viewdata.NewBaseVM(r, p.cfg.Title, "/"),
		Page:        p.cfg.Name,
		BasePath:    p.cfg.BasePath,
		TableTarget: p.cfg.TableTarget,
		ViewToken:   token,
		Search:      st.Search,
		SearchLabel: p.cfg.SearchLabel,
		Filters:     p.controls(snap.Items, st),
		Filtered:    !st.IsZero(),
		State:       listview.RenderStateOf(snap.State, len(visible)),
		Shown:       len(visible),
		Total:       len(snap.Items),
		EmptyText:   p.cfg.EmptyText,
	}
	if snap.Err != nil {
		vm.Error = snap.Err.Error()
	}
	if snap.State == listview.Success {
		if p.cfg.Stats != nil {
			vm.Stats = p.cfg.Stats(snap.Items)
		}
		if p.cfg.Extra != nil {
			vm.Extra = p.cfg.Extra(snap.Items)
		}
	}
	if p.cfg.Row != nil {
		vm.Rows = make([]R, 0, len(visible))
		for _, it := range visible {
			vm.Rows = append(vm.Rows, p.cfg.Row(it))
		}
	}
	return vm
}

func (p *Page[T, R]) open() (*listview.Controller[T], string, error) {
	ctrl := listview.New[T](p.cfg.Name, p.cfg.Source, p.kit.Log)
	token, err := p.kit.Views.Open(p.cfg.Name, ctrl)
	if err != nil {
		return nil, "", err
	}
	return ctrl, token, nil
}

func (p *Page[T, R]) load(ctx context.Context, ctrl *listview.Controller[T]) {
	ctx, cancel := timeouts.WithFetch(ctx)
	defer cancel()
	ctrl.Load(ctx)
}

// controls builds the filter selects. A category without fixed options
// offers the distinct values present in the collection, sorted.
func (p *Page[T, R]) controls(items []T, st listview.FilterState) []FilterControl {
	out := make([]FilterControl, 0, len(p.cfg.Filters.Categories))
	for _, c := range p.cfg.Filters.Categories {
		opts := c.Options
		if len(opts) == 0 {
			opts = distinctOptions(items, c.Value)
		}
		out = append(out, FilterControl{
			Name:     c.Name,
			Label:    c.Label,
			Selected: st.Value(c.Name),
			Options:  opts,
		})
	}
	return out
}

func distinctOptions[T any](items []T, value func(T) string) []listview.Option {
	seen := make(map[string]bool)
	var vals []string
	for _, it := range items {
		v := value(it)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		vals = append(vals, v)
	}
	slices.Sort(vals)
	opts := make([]listview.Option, 0, len(vals))
	for _, v := range vals {
		opts = append(opts, listview.Option{Value: v, Label: models.Label(v)})
	}
	return opts
}

func hasOption(opts []listview.Option, v string) bool {
	for _, o := range opts {
		if o.Value == v {
			return true
		}
	}
	return false
}

// param reads key from the URL query on GET and from the form otherwise.
func param(r *http.Request, key string) string {
	if r.Method == http.MethodGet {
		return query.Get(r, key)
	}
	return strings.TrimSpace(r.FormValue(key))
}
