// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers
// the framework-level settings (ports, TLS, logging, CORS); AppConfig is
// everything specific to the CRM dashboard.
type AppConfig struct {
	// CRM backend API
	APIBaseURL string        // e.g. http://localhost:8000/api
	APIToken   string        // bearer token sent with every request
	APITimeout time.Duration // per-request timeout of the HTTP client
	APIDebug   bool          // log raw API requests and responses

	// MongoDB stores the staff activity log. Blank MongoURI disables it.
	MongoURI      string
	MongoDatabase string

	// Page views (one per open browser page)
	ViewKey      string        // signing key for view tokens, at least 32 bytes; blank generates one per process
	ViewTTL      time.Duration // lifetime of a view from when it is opened
	ViewCapacity int           // maximum live views; 0 uses the default

	// Handler timeouts
	FetchTimeout  time.Duration
	WriteTimeout  time.Duration
	ExportTimeout time.Duration

	// Per-client request limits per minute; 0 disables
	ActionRateLimit int // announcement read/acknowledge posts
	ExportRateLimit int // customer CSV exports

	// Audit logging destinations: all, db, log or off
	AuditLogActions string
	AuditLogExports string

	SiteName string
}
