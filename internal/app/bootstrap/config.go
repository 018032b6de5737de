// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/jewelcrm/internal/app/system/auditlog"
	"github.com/dalemusser/jewelcrm/internal/app/system/crmapi"
	"github.com/dalemusser/jewelcrm/internal/app/system/viewdata"
	"github.com/dalemusser/jewelcrm/internal/app/system/viewreg"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the CRM dashboard.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: api_base_url, mongo_uri, etc.
//   - Environment variables: JEWELCRM_API_BASE_URL, JEWELCRM_MONGO_URI, etc.
//   - Command-line flags: --api_base_url, --mongo_uri, etc.
var appConfigKeys = []config.AppKey{
	// CRM backend
	{Name: "api_base_url", Default: "http://localhost:8000/api", Desc: "CRM backend API base URL"},
	{Name: "api_token", Default: "", Desc: "Bearer token for the CRM backend"},
	{Name: "api_timeout", Default: "15s", Desc: "Per-request timeout for CRM backend calls"},
	{Name: "api_debug", Default: false, Desc: "Log raw CRM backend requests and responses"},

	// Activity log storage
	{Name: "mongo_uri", Default: "", Desc: "MongoDB connection URI (blank disables the stored activity log)"},
	{Name: "mongo_database", Default: "jewel_crm", Desc: "MongoDB database name"},

	// Page views
	{Name: "view_key", Default: "", Desc: "Signing key for view tokens, at least 32 bytes (blank generates one per process)"},
	{Name: "view_ttl", Default: "30m", Desc: "Lifetime of an open page view, counted from when it is opened"},
	{Name: "view_capacity", Default: viewreg.DefaultCapacity, Desc: "Maximum open page views (0 uses the default)"},

	// Handler timeouts
	{Name: "fetch_timeout", Default: "15s", Desc: "Timeout for loading a page's collection"},
	{Name: "write_timeout", Default: "5s", Desc: "Timeout for write actions (mark read, acknowledge)"},
	{Name: "export_timeout", Default: "30s", Desc: "Timeout for CSV exports"},

	// Rate limits
	{Name: "action_rate_limit", Default: 30, Desc: "Announcement actions per client per minute (0 disables)"},
	{Name: "export_rate_limit", Default: 5, Desc: "Customer CSV exports per client per minute (0 disables)"},

	// Audit logging settings
	{Name: "audit_log_actions", Default: "all", Desc: "Staff action logging: 'all' (db+log), 'db', 'log', or 'off'"},
	{Name: "audit_log_exports", Default: "all", Desc: "Export logging: 'all' (db+log), 'db', 'log', or 'off'"},

	{Name: "site_name", Default: viewdata.DefaultSiteName, Desc: "Site name shown in the page header"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles .env files, config files,
// environment variables (WAFFLE_* for core, JEWELCRM_* for app) and
// command-line flags, merged with precedence flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "JEWELCRM", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		APIBaseURL: appValues.String("api_base_url"),
		APIToken:   appValues.String("api_token"),
		APITimeout: appValues.Duration("api_timeout", 15*time.Second),
		APIDebug:   appValues.Bool("api_debug"),

		MongoURI:      appValues.String("mongo_uri"),
		MongoDatabase: appValues.String("mongo_database"),

		ViewKey:      appValues.String("view_key"),
		ViewTTL:      appValues.Duration("view_ttl", viewreg.DefaultTTL),
		ViewCapacity: appValues.Int("view_capacity"),

		FetchTimeout:  appValues.Duration("fetch_timeout", 15*time.Second),
		WriteTimeout:  appValues.Duration("write_timeout", 5*time.Second),
		ExportTimeout: appValues.Duration("export_timeout", 30*time.Second),

		ActionRateLimit: appValues.Int("action_rate_limit"),
		ExportRateLimit: appValues.Int("export_rate_limit"),

		AuditLogActions: appValues.String("audit_log_actions"),
		AuditLogExports: appValues.String("audit_log_exports"),

		SiteName: appValues.String("site_name"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// It rejects a malformed MongoDB URI or API base URL, a short view key and
// unknown audit destinations before anything connects.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.MongoURI != "" {
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
	}

	if err := crmapi.ValidateBaseURL(appCfg.APIBaseURL); err != nil {
		logger.Error("invalid API base URL", zap.Error(err))
		return err
	}

	if appCfg.ViewKey != "" && len(appCfg.ViewKey) < 32 {
		return fmt.Errorf("view_key must be at least 32 bytes, got %d", len(appCfg.ViewKey))
	}
	if appCfg.ViewCapacity < 0 {
		return fmt.Errorf("view_capacity must not be negative, got %d", appCfg.ViewCapacity)
	}
	if appCfg.ViewTTL <= 0 {
		return fmt.Errorf("view_ttl must be positive, got %s", appCfg.ViewTTL)
	}

	if appCfg.ActionRateLimit < 0 || appCfg.ExportRateLimit < 0 {
		return fmt.Errorf("rate limits must not be negative")
	}

	for name, v := range map[string]string{
		"audit_log_actions": appCfg.AuditLogActions,
		"audit_log_exports": appCfg.AuditLogExports,
	} {
		if v != "" && !auditlog.ValidDestination(v) {
			return fmt.Errorf("%s must be one of all, db, log, off; got %q", name, v)
		}
	}

	return nil
}
