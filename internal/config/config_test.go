package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultFeedURL, cfg.FeedURL)
	assert.Equal(t, DefaultLookupBaseURL, cfg.LookupBaseURL)
	assert.Equal(t, 20, cfg.MaxItems)
	assert.Equal(t, 20, cfg.LookupConcurrency)
	assert.Equal(t, 10*time.Second, cfg.LookupTimeout)
	assert.Equal(t, ":8080", cfg.BindAddr)
	assert.Zero(t, cfg.LookupRatePerSec)
}

func TestLoadYAMLThenEnv(t *testing.T) {
	path := writeConfig(t, `
feed_url: https://feeds.example.com/popular
lookup_concurrency: 4
lookup_timeout: 3s
log_format: json
`)
	t.Setenv("LOOKUP_CONCURRENCY", "8")
	t.Setenv("QIITA_ACCESS_TOKEN", "secret")
	t.Setenv("LOOKUP_RATE_PER_SEC", "2.5")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://feeds.example.com/popular", cfg.FeedURL)
	assert.Equal(t, 8, cfg.LookupConcurrency, "env overrides yaml")
	assert.Equal(t, 3*time.Second, cfg.LookupTimeout)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "secret", cfg.AccessToken)
	assert.Equal(t, 2.5, cfg.LookupRatePerSec)
}

func TestLoadEmptyFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultFeedURL, cfg.FeedURL)
}

func TestLoadClampsMaxItems(t *testing.T) {
	t.Setenv("MAX_ITEMS", "50")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, MaxFeedItems, cfg.MaxItems)
}

func TestLoadUnknownField(t *testing.T) {
	_, err := Load(writeConfig(t, "feeds:\n  - https://example.com\n"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"relative feed url", func(c *Config) { c.FeedURL = "/popular-items/feed" }},
		{"empty lookup url", func(c *Config) { c.LookupBaseURL = "" }},
		{"zero concurrency", func(c *Config) { c.LookupConcurrency = 0 }},
		{"zero lookup timeout", func(c *Config) { c.LookupTimeout = 0 }},
		{"negative rate", func(c *Config) { c.LookupRatePerSec = -1 }},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, Default().Validate())
}
