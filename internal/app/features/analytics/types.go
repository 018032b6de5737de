// internal/app/features/analytics/types.go
package analytics

import (
	"github.com/dalemusser/jewelcrm/internal/app/system/listpage"
	"github.com/dalemusser/jewelcrm/internal/app/system/listview"
	"github.com/dalemusser/jewelcrm/internal/app/system/viewdata"
)

// Panel is one KPI section of the analytics page.
type Panel struct {
	Key       string
	Title     string
	ViewToken string
	State     listview.RenderState
	Error     string
	Cards     []listpage.StatCard
}

// Chart is a chart area. Charts render as placeholders.
type Chart struct {
	Title string
	Note  string
}

// PageData is the view model of the analytics page.
type PageData struct {
	viewdata.BaseVM

	ViewToken string
	Panels    []Panel
	Charts    []Chart
}
