package news

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/deusflow/trenddigest/internal/metrics"
)

// TagLookup resolves the tag names of a single article.
type TagLookup interface {
	ItemTags(ctx context.Context, itemID string) ([]string, error)
}

// Enricher attaches tags to items with one lookup per item.
type Enricher struct {
	lookup      TagLookup
	concurrency int
	timeout     time.Duration
	logger      *slog.Logger
	metrics     *metrics.Metrics
}

// NewEnricher builds an Enricher. concurrency caps in-flight lookups and
// timeout bounds each lookup; non-positive values disable the bound.
func NewEnricher(lookup TagLookup, concurrency int, timeout time.Duration, logger *slog.Logger, m *metrics.Metrics) *Enricher {
	if logger == nil {
		logger = slog.Default()
	}
	if m == nil {
		m = metrics.Global
	}
	return &Enricher{
		lookup:      lookup,
		concurrency: concurrency,
		timeout:     timeout,
		logger:      logger,
		metrics:     m,
	}
}

// FetchAllTags returns a copy of items, in the same order, with Tags set.
// A failed lookup leaves that item with an empty tag list; it never fails
// the batch. Items without an article id are copied untouched.
func (e *Enricher) FetchAllTags(ctx context.Context, items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)

	var g errgroup.Group
	if e.concurrency > 0 {
		g.SetLimit(e.concurrency)
	}

	for i := range out {
		id, ok := ExtractItemID(out[i].Link)
		if !ok {
			e.logger.Debug("no item id in link, skipping tag lookup", "link", out[i].Link)
			continue
		}

		// each goroutine writes only out[i]
		g.Go(func() error {
			out[i].Tags = e.resolve(ctx, id)
			return nil
		})
	}
	_ = g.Wait()

	return out
}

func (e *Enricher) resolve(ctx context.Context, id string) []Tag {
	e.metrics.IncrementTagLookups()

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	names, err := e.lookup.ItemTags(ctx, id)
	if err != nil {
		e.metrics.IncrementTagLookupsFailed()
		e.logger.Warn("tag lookup failed", "item_id", id, "error", err)
		return []Tag{}
	}

	tags := make([]Tag, 0, len(names))
	for _, name := range names {
		tags = append(tags, Tag{Name: name})
	}
	return tags
}
