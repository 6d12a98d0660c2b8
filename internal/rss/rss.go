package rss

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/deusflow/trenddigest/internal/news"
)

// MaxItems is the upper bound on entries taken from the feed.
const MaxItems = 20

// ErrFeedUnavailable is returned when the trend feed cannot be fetched or
// does not have the expected Atom shape.
var ErrFeedUnavailable = errors.New("feed unavailable")

// Fetcher pulls the trend feed and normalizes its entries.
type Fetcher struct {
	feedURL  string
	timeout  time.Duration
	maxItems int
	parser   *gofeed.Parser
	logger   *slog.Logger
}

// NewFetcher creates a fetcher for a single feed. maxItems is clamped to
// MaxItems; a nil client uses http.DefaultClient.
func NewFetcher(feedURL string, client *http.Client, timeout time.Duration, maxItems int, logger *slog.Logger) *Fetcher {
	if maxItems <= 0 || maxItems > MaxItems {
		maxItems = MaxItems
	}
	if logger == nil {
		logger = slog.Default()
	}

	parser := gofeed.NewParser()
	parser.UserAgent = "trenddigest/1.0"
	parser.Client = client

	return &Fetcher{
		feedURL:  feedURL,
		timeout:  timeout,
		maxItems: maxItems,
		parser:   parser,
		logger:   logger,
	}
}

// Fetch downloads the feed and returns the first entries in document order.
// Any failure is wrapped with ErrFeedUnavailable.
func (f *Fetcher) Fetch(ctx context.Context) (news.FeedSnapshot, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	feed, err := f.parser.ParseURLWithContext(f.feedURL, ctx)
	if err != nil {
		return news.FeedSnapshot{}, fmt.Errorf("%w: failed to fetch RSS feed: %w", ErrFeedUnavailable, err)
	}
	if feed.FeedType != "atom" {
		return news.FeedSnapshot{}, fmt.Errorf("%w: failed to fetch RSS feed: expected atom document, got %q", ErrFeedUnavailable, feed.FeedType)
	}

	snapshot := news.FeedSnapshot{
		Items:       make([]news.Item, 0, min(len(feed.Items), f.maxItems)),
		FeedUpdated: feed.Updated,
	}
	for _, entry := range feed.Items {
		if len(snapshot.Items) >= f.maxItems {
			break
		}
		snapshot.Items = append(snapshot.Items, news.Item{
			Title:   entry.Title,
			Link:    CleanURL(entryLink(entry)),
			Updated: entry.Updated,
		})
	}

	f.logger.Info("feed fetched", "url", f.feedURL, "entries", len(feed.Items), "items", len(snapshot.Items), "feed_updated", snapshot.FeedUpdated)
	return snapshot, nil
}

func entryLink(entry *gofeed.Item) string {
	if entry.Link != "" {
		return entry.Link
	}
	if len(entry.Links) > 0 {
		return entry.Links[0]
	}
	return ""
}
