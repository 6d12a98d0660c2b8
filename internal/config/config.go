// Package config loads runtime settings: defaults, then an optional YAML
// file, then environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFeedURL       = "https://qiita.com/popular-items/feed"
	DefaultLookupBaseURL = "https://qiita.com/api/v2"

	// MaxFeedItems is the hard cap on items entering the pipeline.
	MaxFeedItems = 20
)

type Config struct {
	// Upstream settings
	FeedURL       string `yaml:"feed_url"`
	LookupBaseURL string `yaml:"lookup_base_url"`
	AccessToken   string `yaml:"access_token"`
	MaxItems      int    `yaml:"max_items"`

	// Tag lookup fan-out
	LookupConcurrency int           `yaml:"lookup_concurrency"`
	LookupTimeout     time.Duration `yaml:"lookup_timeout"`
	LookupRatePerSec  float64       `yaml:"lookup_rate_per_sec"`

	FeedTimeout    time.Duration `yaml:"feed_timeout"`
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// HTTP server
	BindAddr string `yaml:"bind_addr"`

	// Logging
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	Debug     bool   `yaml:"debug"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		FeedURL:           DefaultFeedURL,
		LookupBaseURL:     DefaultLookupBaseURL,
		MaxItems:          MaxFeedItems,
		LookupConcurrency: MaxFeedItems,
		LookupTimeout:     10 * time.Second,
		FeedTimeout:       30 * time.Second,
		RequestTimeout:    60 * time.Second,
		BindAddr:          ":8080",
		LogLevel:          "info",
		LogFormat:         "text",
	}
}

// Load builds the config. An empty path skips the YAML layer.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if cfg.MaxItems > MaxFeedItems {
		cfg.MaxItems = MaxFeedItems
	}

	return cfg, cfg.Validate()
}

func (c *Config) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		// An empty file decodes to io.EOF; keep the defaults.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.FeedURL = getEnvOrDefault("FEED_URL", c.FeedURL)
	c.LookupBaseURL = getEnvOrDefault("QIITA_API_BASE_URL", c.LookupBaseURL)
	c.AccessToken = getEnvOrDefault("QIITA_ACCESS_TOKEN", c.AccessToken)
	c.MaxItems = getEnvIntOrDefault("MAX_ITEMS", c.MaxItems)
	c.LookupConcurrency = getEnvIntOrDefault("LOOKUP_CONCURRENCY", c.LookupConcurrency)
	c.LookupTimeout = getEnvDurationOrDefault("LOOKUP_TIMEOUT", c.LookupTimeout)
	c.FeedTimeout = getEnvDurationOrDefault("FEED_TIMEOUT", c.FeedTimeout)
	c.RequestTimeout = getEnvDurationOrDefault("REQUEST_TIMEOUT", c.RequestTimeout)
	c.BindAddr = getEnvOrDefault("BIND_ADDR", c.BindAddr)
	c.LogLevel = getEnvOrDefault("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnvOrDefault("LOG_FORMAT", c.LogFormat)

	if v := os.Getenv("LOOKUP_RATE_PER_SEC"); v != "" {
		if val, err := strconv.ParseFloat(v, 64); err == nil && val >= 0 {
			c.LookupRatePerSec = val
		}
	}

	if debug := os.Getenv("DEBUG"); debug == "true" {
		c.Debug = true
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func (c *Config) Validate() error {
	if err := validateURL("feed_url", c.FeedURL); err != nil {
		return err
	}
	if err := validateURL("lookup_base_url", c.LookupBaseURL); err != nil {
		return err
	}
	if c.MaxItems <= 0 {
		return errors.New("max_items must be > 0")
	}
	if c.LookupConcurrency <= 0 {
		return errors.New("lookup_concurrency must be > 0")
	}
	if c.LookupTimeout <= 0 {
		return errors.New("lookup_timeout must be > 0")
	}
	if c.FeedTimeout <= 0 {
		return errors.New("feed_timeout must be > 0")
	}
	if c.LookupRatePerSec < 0 {
		return errors.New("lookup_rate_per_sec must be >= 0")
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("log_format must be 'text' or 'json', got %q", c.LogFormat)
	}
	return nil
}

func validateURL(name, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", name)
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s must be an absolute URL, got %q", name, raw)
	}
	return nil
}
