// internal/app/system/listpage/types.go
package listpage

import (
	"github.com/dalemusser/jewelcrm/internal/app/system/listview"
	"github.com/dalemusser/jewelcrm/internal/app/system/viewdata"
)

// StatCard is one summary figure above a table.
type StatCard struct {
	Label string
	Value string
	Hint  string
	Tone  string // neutral, good, warn, bad
}

// FilterControl is one categorical select in the filter bar.
type FilterControl struct {
	Name     string
	Label    string
	Selected string
	Options  []listview.Option
}

// ViewModel is the data for a list page and for its table snippet.
// R is the feature's row type.
type ViewModel[R any] struct {
	viewdata.BaseVM

	Page        string
	BasePath    string
	TableTarget string
	ViewToken   string

	Search      string
	SearchLabel string
	Filters     []FilterControl
	Filtered    bool

	Stats []StatCard
	Extra any

	State     listview.RenderState
	Error     string
	Notice    string
	Rows      []R
	Shown     int
	Total     int
	EmptyText string

	// Partial is set when the data renders as an htmx snippet; the
	// snippet then also swaps the stats out of band.
	Partial bool
}

// SwapStats reports whether a snippet should replace the stats out of
// band. While a load is in flight there are no stats to show, so the
// previous cards stay.
func (vm ViewModel[R]) SwapStats() bool {
	return vm.Partial && vm.State != listview.RenderLoading
}

// Polling reports whether the table should fetch itself again shortly,
// which it does until the in-flight load settles.
func (vm ViewModel[R]) Polling() bool { return vm.State == listview.RenderLoading }

// Ready reports whether the table has rows to show.
func (vm ViewModel[R]) Ready() bool { return vm.State == listview.RenderReady }
