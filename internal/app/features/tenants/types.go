// internal/app/features/tenants/types.go
package tenants

// Row is one tenant business.
type Row struct {
	ID           string
	Name         string
	BusinessType string
	Subscription string
	Tone         string
	Users        int
	Admins       []string
	Created      string
}

// Stats are the platform-wide tenant figures.
type Stats struct {
	Total  int
	Active int
	Trial  int
	Users  int
}
