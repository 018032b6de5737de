package bootstrap

import (
	"strings"
	"testing"

	"github.com/dalemusser/jewelcrm/internal/app/system/viewreg"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func validAppConfig() AppConfig {
	return AppConfig{
		APIBaseURL:      "http://localhost:8000/api",
		ViewTTL:         viewreg.DefaultTTL,
		ViewCapacity:    viewreg.DefaultCapacity,
		AuditLogActions: "all",
		AuditLogExports: "log",
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr string
	}{
		{name: "defaults", mutate: func(*AppConfig) {}},
		{name: "mongo uri", mutate: func(c *AppConfig) { c.MongoURI = "mongodb://localhost:27017" }},
		{name: "bad mongo uri", mutate: func(c *AppConfig) { c.MongoURI = "http://localhost" }, wantErr: "MongoDB URI"},
		{name: "missing api url", mutate: func(c *AppConfig) { c.APIBaseURL = "" }, wantErr: "base URL is required"},
		{name: "relative api url", mutate: func(c *AppConfig) { c.APIBaseURL = "/api" }, wantErr: "absolute"},
		{name: "short view key", mutate: func(c *AppConfig) { c.ViewKey = "short" }, wantErr: "view_key"},
		{name: "long view key", mutate: func(c *AppConfig) { c.ViewKey = strings.Repeat("k", 32) }},
		{name: "negative capacity", mutate: func(c *AppConfig) { c.ViewCapacity = -1 }, wantErr: "view_capacity"},
		{name: "zero ttl", mutate: func(c *AppConfig) { c.ViewTTL = 0 }, wantErr: "view_ttl"},
		{name: "unknown audit destination", mutate: func(c *AppConfig) { c.AuditLogExports = "file" }, wantErr: "audit_log_exports"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validAppConfig()
			tc.mutate(&cfg)
			err := ValidateConfig(nil, cfg, zap.NewNop())
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}
