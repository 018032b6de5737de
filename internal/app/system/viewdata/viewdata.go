// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"strings"
	"sync"

	"github.com/dalemusser/waffle/pantry/httpnav"
)

// DefaultSiteName is used until SetSiteName is called.
const DefaultSiteName = "Jewel CRM"

// NavItem is one link in the dashboard navigation.
type NavItem struct {
	Label  string
	Href   string
	Active bool
}

// NavSection groups navigation links under a heading.
type NavSection struct {
	Heading string
	Items   []NavItem
}

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title", "/default-back"),
//	}
type BaseVM struct {
	SiteName string

	Title       string
	BackURL     string
	CurrentPath string

	Nav []NavSection
}

var (
	mu       sync.RWMutex
	siteName = DefaultSiteName
)

// SetSiteName sets the site name shown in every page header.
// Call this once at startup from bootstrap.
func SetSiteName(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultSiteName
	}
	mu.Lock()
	siteName = name
	mu.Unlock()
}

// SiteName returns the configured site name.
func SiteName() string {
	mu.RLock()
	defer mu.RUnlock()
	return siteName
}

var navigation = []NavSection{
	{Heading: "Manager", Items: []NavItem{
		{Label: "Analytics", Href: "/manager/analytics"},
		{Label: "Products", Href: "/manager/products"},
		{Label: "Inventory", Href: "/manager/inventory"},
		{Label: "Customers", Href: "/manager/customers"},
		{Label: "Orders", Href: "/manager/orders"},
		{Label: "Pipeline", Href: "/manager/pipeline"},
		{Label: "Team", Href: "/manager/team"},
		{Label: "Announcements", Href: "/manager/announcements"},
		{Label: "Activity", Href: "/manager/activity"},
	}},
	{Heading: "Platform", Items: []NavItem{
		{Label: "Tenants", Href: "/platform/tenants"},
	}},
}

// Nav returns the dashboard navigation with the entry for currentPath
// marked active.
func Nav(currentPath string) []NavSection {
	out := make([]NavSection, len(navigation))
	for i, sec := range navigation {
		items := make([]NavItem, len(sec.Items))
		for j, it := range sec.Items {
			it.Active = currentPath == it.Href || strings.HasPrefix(currentPath, it.Href+"/")
			items[j] = it
		}
		out[i] = NavSection{Heading: sec.Heading, Items: items}
	}
	return out
}

// NewBaseVM creates a fully populated BaseVM for a page.
//
// Parameters:
//   - r: the HTTP request
//   - title: the page title
//   - backDefault: default URL for the back button if none in request
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	current := httpnav.CurrentPath(r)
	return BaseVM{
		SiteName:    SiteName(),
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: current,
		Nav:         Nav(r.URL.Path),
	}
}
