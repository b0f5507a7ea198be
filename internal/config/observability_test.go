package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultObservabilityConfigIsValid(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Empty(t, cfg.NewRelic.LicenseKey, "telemetry is opt-in")
	assert.Contains(t, cfg.HealthChecks.Checks, "database")
}

func TestObservabilityValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ObservabilityConfig)
		wantErr bool
	}{
		{"defaults pass", func(c *ObservabilityConfig) {}, false},
		{"console format", func(c *ObservabilityConfig) { c.Logging.Format = "console" }, false},
		{"bad format", func(c *ObservabilityConfig) { c.Logging.Format = "xml" }, true},
		{"bad level", func(c *ObservabilityConfig) { c.Logging.Level = "verbose" }, true},
		{"interval too short", func(c *ObservabilityConfig) { c.HealthChecks.Interval = 100 * time.Millisecond }, true},
		{"timeout too short", func(c *ObservabilityConfig) { c.HealthChecks.Timeout = 0 }, true},
		{"short interval ok when checks disabled", func(c *ObservabilityConfig) {
			c.HealthChecks.Enabled = false
			c.HealthChecks.Interval = 0
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultObservabilityConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
