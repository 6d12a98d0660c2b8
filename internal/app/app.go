package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/deusflow/trenddigest/internal/digest"
	"github.com/deusflow/trenddigest/internal/metrics"
	"github.com/deusflow/trenddigest/internal/news"
	"github.com/deusflow/trenddigest/internal/pubdate"
)

const (
	noteTagLimit    = 5
	youtubeTagLimit = 10
)

// FeedFetcher loads the current trend snapshot.
type FeedFetcher interface {
	Fetch(ctx context.Context) (news.FeedSnapshot, error)
}

// TagEnricher attaches tags to items without failing.
type TagEnricher interface {
	FetchAllTags(ctx context.Context, items []news.Item) []news.Item
}

// Document is the generated text and the filename it should be saved as.
type Document struct {
	Content  string
	FileName string
}

type Deps struct {
	Fetcher  FeedFetcher
	Enricher TagEnricher
	Dates    pubdate.Deriver
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
}

// Pipeline turns the trend feed into a Document. It holds no per-run state
// and is safe for concurrent use.
type Pipeline struct {
	fetcher  FeedFetcher
	enricher TagEnricher
	dates    pubdate.Deriver
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

func New(d Deps) *Pipeline {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Metrics == nil {
		d.Metrics = metrics.Global
	}
	if d.Dates.Logger == nil {
		d.Dates.Logger = d.Logger
	}
	return &Pipeline{
		fetcher:  d.Fetcher,
		enricher: d.Enricher,
		dates:    d.Dates,
		logger:   d.Logger,
		metrics:  d.Metrics,
	}
}

// Generate runs one fetch → enrich → rank → render pass. The only error it
// returns is a feed failure, wrapping rss.ErrFeedUnavailable.
func (p *Pipeline) Generate(ctx context.Context) (Document, error) {
	startTime := time.Now()
	p.metrics.IncrementRuns()
	defer func() {
		p.metrics.RecordProcessingTime(time.Since(startTime))
	}()

	snapshot, err := p.fetcher.Fetch(ctx)
	if err != nil {
		p.metrics.SetError(err.Error())
		p.logger.Error("trend feed unavailable", "error", err)
		return Document{}, fmt.Errorf("generate trend document: %w", err)
	}
	p.metrics.AddItemsFetched(len(snapshot.Items))

	items := p.enricher.FetchAllTags(ctx, snapshot.Items)

	top10 := news.TopTags(items, youtubeTagLimit)
	top5 := top10[:min(noteTagLimit, len(top10))]

	date := p.dates.NextDay(snapshot.FeedUpdated)
	doc := Document{
		Content:  digest.Build(items, top5, top10, date),
		FileName: p.dates.FileName(snapshot.FeedUpdated),
	}

	p.metrics.SetLastRun()
	p.logger.Info("trend document generated",
		"items", len(items),
		"top_tags", news.TagNames(top5),
		"publish_date", date.Formatted,
		"file", doc.FileName,
		"bytes", len(doc.Content),
	)
	return doc, nil
}
