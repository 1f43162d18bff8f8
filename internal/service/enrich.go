package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"newsintel/internal/config"
	"newsintel/internal/domain"
	"newsintel/internal/oracle"
)

// Enricher runs content items through the oracle in fixed-size batches.
// Calls within a batch run concurrently; a pause between batches keeps the
// call rate inside external limits. A failing item never takes the batch
// down with it.
type Enricher struct {
	oracle    Oracle
	batchSize int
	pause     time.Duration
	logger    *slog.Logger
}

func NewEnricher(o Oracle, cfg config.PipelineConfig, logger *slog.Logger) *Enricher {
	return &Enricher{
		oracle:    o,
		batchSize: cfg.EnrichBatchSize,
		pause:     cfg.EnrichBatchPause,
		logger:    logger.With("component", "enricher"),
	}
}

// Enrich annotates items and reports per-item failures separately. Enriched
// items keep their original url, so storage stays idempotent regardless of
// output order.
func (e *Enricher) Enrich(ctx context.Context, items []domain.ContentItem) ([]domain.ContentItem, []domain.EnrichmentError) {
	var enriched []domain.ContentItem
	var failures []domain.EnrichmentError

	for start := 0; start < len(items); start += e.batchSize {
		end := min(start+e.batchSize, len(items))
		batch := items[start:end]

		annotations := make([]*oracle.Annotation, len(batch))
		errs := make([]error, len(batch))

		var wg sync.WaitGroup
		for i := range batch {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				item := batch[i]
				annotations[i], errs[i] = e.oracle.AnalyzeArticle(ctx, item.Title, item.Content, item.URL)
			}(i)
		}
		wg.Wait()

		for i, item := range batch {
			if errs[i] != nil {
				e.logger.Warn("item enrichment failed", "url", item.URL, "error", errs[i])
				failures = append(failures, domain.EnrichmentError{URL: item.URL, Err: errs[i]})
				continue
			}
			enriched = append(enriched, applyAnnotation(item, annotations[i]))
		}

		if end < len(items) {
			select {
			case <-ctx.Done():
				return enriched, failures
			case <-time.After(e.pause):
			}
		}
	}

	return enriched, failures
}

func applyAnnotation(item domain.ContentItem, a *oracle.Annotation) domain.ContentItem {
	item.Summary = a.Summary
	item.KeyTakeaways = a.KeyTakeaways
	item.PrimaryTheme = a.PrimaryTheme
	item.SecondaryThemes = a.SecondaryThemes
	item.ConfidenceScore = a.ConfidenceScore
	item.Region = a.Region
	item.Sectors = a.Sectors
	item.SentimentLabel = a.Sentiment
	item.SentimentScore = a.SentimentScore
	item.SignalStrength = a.SignalStrength
	item.TimeHorizon = a.TimeHorizon
	item.IsEmerging = a.IsEmerging
	return item
}
