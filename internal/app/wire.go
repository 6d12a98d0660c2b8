package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/deusflow/trenddigest/internal/config"
	"github.com/deusflow/trenddigest/internal/metrics"
	"github.com/deusflow/trenddigest/internal/news"
	"github.com/deusflow/trenddigest/internal/pubdate"
	"github.com/deusflow/trenddigest/internal/qiita"
	"github.com/deusflow/trenddigest/internal/ratelimit"
	"github.com/deusflow/trenddigest/internal/rss"
)

// NewFromConfig wires the production collaborators. Call it once per
// process and reuse the result.
func NewFromConfig(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}

	httpClient := &http.Client{Timeout: cfg.FeedTimeout}
	lookupClient := &http.Client{Timeout: cfg.LookupTimeout}

	burst := int(cfg.LookupRatePerSec)
	limiter := ratelimit.New(cfg.LookupRatePerSec, max(burst, 1))

	fetcher := rss.NewFetcher(cfg.FeedURL, httpClient, cfg.FeedTimeout, cfg.MaxItems, logger.With("component", "rss"))
	lookup := qiita.NewClient(cfg.LookupBaseURL, cfg.AccessToken, lookupClient, limiter)
	enricher := news.NewEnricher(lookup, cfg.LookupConcurrency, cfg.LookupTimeout, logger.With("component", "enricher"), m)

	return New(Deps{
		Fetcher:  fetcher,
		Enricher: enricher,
		Dates:    pubdate.Deriver{Now: time.Now, Logger: logger.With("component", "pubdate")},
		Logger:   logger,
		Metrics:  m,
	})
}
