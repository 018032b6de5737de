// Package timeouts provides centralized timeout values for handler operations.
//
// Handlers wrap their request context with one of these before calling the
// CRM API or MongoDB. The API client also carries its own per-request
// timeout (api_timeout); whichever expires first wins.
//
// Guidelines for choosing a timeout:
//   - Ping: health checks and connectivity verification
//   - Write: a single narrow update (mark read, acknowledge) or audit insert
//   - Fetch: loading one list collection or one detail record
//   - Export: building a CSV download from a loaded collection
package timeouts

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultPing   = 2 * time.Second
	DefaultWrite  = 5 * time.Second
	DefaultFetch  = 15 * time.Second
	DefaultExport = 30 * time.Second
)

var mu sync.RWMutex

var (
	ping   = DefaultPing
	write  = DefaultWrite
	fetch  = DefaultFetch
	export = DefaultExport
)

// Ping returns the timeout for health checks.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Write returns the timeout for single-record writes.
func Write() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return write
}

// Fetch returns the timeout for loading a collection or record.
func Fetch() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return fetch
}

// Export returns the timeout for CSV exports.
func Export() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return export
}

// Config holds timeout configuration values.
// Zero values are ignored (defaults are kept).
type Config struct {
	Ping   time.Duration
	Write  time.Duration
	Fetch  time.Duration
	Export time.Duration
}

// Configure sets custom timeout values. Zero values in the config are ignored,
// keeping the current (or default) values. Call during startup before
// handlers are registered.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Write > 0 {
		write = cfg.Write
	}
	if cfg.Fetch > 0 {
		fetch = cfg.Fetch
	}
	if cfg.Export > 0 {
		export = cfg.Export
	}
}

// Reset restores all timeouts to their default values.
// Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	write = DefaultWrite
	fetch = DefaultFetch
	export = DefaultExport
}

// Current returns the current timeout configuration.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{Ping: ping, Write: write, Fetch: fetch, Export: export}
}

// LogCurrent writes the active timeouts to logger at info level.
func LogCurrent(logger *zap.Logger) {
	c := Current()
	logger.Info("handler timeouts configured",
		zap.Duration("ping", c.Ping),
		zap.Duration("write", c.Write),
		zap.Duration("fetch", c.Fetch),
		zap.Duration("export", c.Export))
}

// WithFetch derives a context bounded by the Fetch timeout.
func WithFetch(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, Fetch())
}

// WithWrite derives a context bounded by the Write timeout.
func WithWrite(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, Write())
}
