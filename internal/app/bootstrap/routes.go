// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"sync"
	"time"

	analyticsfeature "github.com/dalemusser/jewelcrm/internal/app/features/analytics"
	announcementsfeature "github.com/dalemusser/jewelcrm/internal/app/features/announcements"
	activityfeature "github.com/dalemusser/jewelcrm/internal/app/features/auditlog"
	customersfeature "github.com/dalemusser/jewelcrm/internal/app/features/customers"
	errorsfeature "github.com/dalemusser/jewelcrm/internal/app/features/errors"
	healthfeature "github.com/dalemusser/jewelcrm/internal/app/features/health"
	homefeature "github.com/dalemusser/jewelcrm/internal/app/features/home"
	inventoryfeature "github.com/dalemusser/jewelcrm/internal/app/features/inventory"
	ordersfeature "github.com/dalemusser/jewelcrm/internal/app/features/orders"
	pipelinefeature "github.com/dalemusser/jewelcrm/internal/app/features/pipeline"
	productsfeature "github.com/dalemusser/jewelcrm/internal/app/features/products"
	teamfeature "github.com/dalemusser/jewelcrm/internal/app/features/team"
	tenantsfeature "github.com/dalemusser/jewelcrm/internal/app/features/tenants"
	"github.com/dalemusser/jewelcrm/internal/app/store/audit"
	"github.com/dalemusser/jewelcrm/internal/app/system/auditlog"
	"github.com/dalemusser/jewelcrm/internal/app/system/crmapi"
	"github.com/dalemusser/jewelcrm/internal/app/system/listpage"
	"github.com/dalemusser/jewelcrm/internal/app/system/ratelimit"
	"github.com/dalemusser/jewelcrm/internal/app/system/viewreg"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	viewsMu sync.Mutex
	views   *viewreg.Registry
)

// liveViews returns the registry built by BuildHandler, or nil.
func liveViews() *viewreg.Registry {
	viewsMu.Lock()
	defer viewsMu.Unlock()
	return views
}

// routerDeps is everything the router needs once the process-level pieces
// (template engine, API client, view registry, audit logger) exist.
type routerDeps struct {
	API    *crmapi.Client
	Mongo  *mongo.Client
	Kit    *listpage.Kit
	ErrLog *errorsfeature.ErrorLogger
	Audit  *auditlog.Logger
	Events activityfeature.EventQuerier // nil when no database is configured
	Log    *zap.Logger

	ActionLimit *ratelimit.Limiter // nil disables
	ExportLimit *ratelimit.Limiter // nil disables
}

// minuteLimiter returns a per-minute limiter, or nil when perMinute is 0.
func minuteLimiter(perMinute int) *ratelimit.Limiter {
	if perMinute <= 0 {
		return nil
	}
	return ratelimit.New(perMinute, time.Minute)
}

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. It boots the template engine, builds the
// CRM API client and the page-view registry, and mounts every feature.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)

	api, err := crmapi.New(crmapi.Config{
		BaseURL: appCfg.APIBaseURL,
		Token:   appCfg.APIToken,
		Timeout: appCfg.APITimeout,
		Debug:   appCfg.APIDebug,
	}, logger)
	if err != nil {
		logger.Error("crm api client init failed", zap.Error(err))
		return nil, err
	}

	var key []byte
	if appCfg.ViewKey != "" {
		key = []byte(appCfg.ViewKey)
	}
	reg, err := viewreg.New(viewreg.Config{
		Key:      key,
		TTL:      appCfg.ViewTTL,
		Capacity: appCfg.ViewCapacity,
	}, logger)
	if err != nil {
		logger.Error("view registry init failed", zap.Error(err))
		return nil, err
	}
	viewsMu.Lock()
	views = reg
	viewsMu.Unlock()

	// The audit store and the activity page query stay nil interfaces
	// without a database.
	var (
		store  auditlog.EventStore
		events activityfeature.EventQuerier
	)
	if deps.MongoDatabase != nil {
		s := audit.New(deps.MongoDatabase)
		store, events = s, s
	}
	auditLogger := auditlog.New(store, logger, auditlog.Config{
		Actions: appCfg.AuditLogActions,
		Exports: appCfg.AuditLogExports,
	})

	return newRouter(routerDeps{
		API:    api,
		Mongo:  deps.MongoClient,
		Kit:    &listpage.Kit{Views: reg, Render: listpage.TemplateRenderer{}, ErrLog: errLog, Log: logger},
		ErrLog: errLog,
		Audit:  auditLogger,
		Events: events,
		Log:    logger,

		ActionLimit: minuteLimiter(appCfg.ActionRateLimit),
		ExportLimit: minuteLimiter(appCfg.ExportRateLimit),
	}), nil
}

// newRouter mounts every feature router.
func newRouter(d routerDeps) chi.Router {
	r := chi.NewRouter()

	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(d.Mongo, d.API, d.Log)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	homeHandler := homefeature.NewHandler(d.Kit.Render, d.Log)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Tenant manager pages
	analyticsHandler := analyticsfeature.NewHandler(analyticsfeature.Sources{
		Orders:    d.API.Orders(),
		Customers: d.API.Customers(),
		Products:  d.API.Products(),
	}, d.Kit, d.Log)
	r.Mount("/manager/analytics", analyticsfeature.Routes(analyticsHandler))

	productsHandler := productsfeature.NewHandler(d.API.Products(), d.Kit, d.Log)
	r.Mount("/manager/products", productsfeature.Routes(productsHandler))

	inventoryHandler := inventoryfeature.NewHandler(d.API.Products(), d.Kit, d.Log)
	r.Mount("/manager/inventory", inventoryfeature.Routes(inventoryHandler))

	customersHandler := customersfeature.NewHandler(d.API.Customers(), d.Kit, d.Audit, d.ErrLog, d.Log)
	r.With(ratelimit.Middleware(d.ExportLimit, ratelimit.PathSuffix(".csv"), d.Log)).
		Mount("/manager/customers", customersfeature.Routes(customersHandler))

	ordersHandler := ordersfeature.NewHandler(d.API.Orders(), d.Kit, d.Log)
	r.Mount("/manager/orders", ordersfeature.Routes(ordersHandler))

	pipelineHandler := pipelinefeature.NewHandler(d.API.Pipeline(), d.Kit, d.Log)
	r.Mount("/manager/pipeline", pipelinefeature.Routes(pipelineHandler))

	teamHandler := teamfeature.NewHandler(d.API.Team(), d.Kit, d.Log)
	r.Mount("/manager/team", teamfeature.Routes(teamHandler))

	announcementsHandler := announcementsfeature.NewHandler(d.API.Announcements(), d.Kit, d.Audit, d.ErrLog, d.Log)
	r.With(ratelimit.Middleware(d.ActionLimit, ratelimit.Writes, d.Log)).
		Mount("/manager/announcements", announcementsfeature.Routes(announcementsHandler))

	activityHandler := activityfeature.NewHandler(d.Events, d.Kit.Render, d.ErrLog, d.Log)
	r.Mount("/manager/activity", activityfeature.Routes(activityHandler))

	// Platform administration
	tenantsHandler := tenantsfeature.NewHandler(d.API.Tenants(), d.Kit, d.Log)
	r.Mount("/platform/tenants", tenantsfeature.Routes(tenantsHandler))

	return r
}
