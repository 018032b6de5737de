// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/jewelcrm/internal/app/resources"
	"github.com/dalemusser/jewelcrm/internal/app/system/timeouts"
	"github.com/dalemusser/jewelcrm/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	timeouts.Configure(timeouts.Config{
		Fetch:  appCfg.FetchTimeout,
		Write:  appCfg.WriteTimeout,
		Export: appCfg.ExportTimeout,
	})
	timeouts.LogCurrent(logger)

	if appCfg.SiteName != "" {
		viewdata.SetSiteName(appCfg.SiteName)
	}

	resources.LoadSharedTemplates()
	return nil
}
