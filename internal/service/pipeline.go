package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"newsintel/internal/config"
	"newsintel/internal/domain"
	"newsintel/internal/oracle"
)

// PipelineDeps bundles everything a PipelineService needs.
type PipelineDeps struct {
	Source      ContentSource
	Oracle      Oracle
	Articles    ArticleStore
	Vocab       VocabStore
	Insights    InsightStore
	Trends      TrendStore
	TxManager   TransactionManager
	Publisher   Publisher
	Enricher    *Enricher
	TrendEngine *TrendEngine
	Synthesizer *Synthesizer
	Config      config.PipelineConfig
	Logger      *slog.Logger
}

// PipelineService runs the full ingest-enrich-persist-analyze cycle. All
// writes of one run share a single transaction: either the whole run lands
// or none of it does.
type PipelineService struct {
	deps PipelineDeps
	mu   sync.Mutex
}

func NewPipelineService(deps PipelineDeps) *PipelineService {
	deps.Logger = deps.Logger.With("component", "pipeline")
	return &PipelineService{deps: deps}
}

// Run executes one pipeline cycle. Concurrent calls serialize: a second Run
// blocks until the first finishes.
func (p *PipelineService) Run(ctx context.Context) (*domain.RunReport, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	started := time.Now()
	report := &domain.RunReport{
		RunID:  uuid.NewString(),
		Status: domain.RunStatusSuccess,
	}
	logger := p.deps.Logger.With("run_id", report.RunID)
	logger.Info("pipeline run started", "source", p.deps.Source.Name())

	items, fetchErrs := p.deps.Source.FetchAll(ctx)
	report.Fetched = len(items)
	for _, fe := range fetchErrs {
		report.Errors = append(report.Errors, domain.RunError{
			Stage:   "fetch",
			Ref:     fe.Feed,
			Message: fe.Error(),
		})
	}

	novel, err := p.selectNovel(ctx, items)
	if err != nil {
		return p.fail(report, started, err)
	}
	if len(novel) == 0 {
		report.Duration = time.Since(started)
		logger.Info("pipeline run completed, nothing new", "fetched", report.Fetched)
		return report, nil
	}

	enriched, enrichErrs := p.deps.Enricher.Enrich(ctx, novel)
	for _, ee := range enrichErrs {
		report.Errors = append(report.Errors, domain.RunError{
			Stage:   "enrich",
			Ref:     ee.URL,
			Message: ee.Error(),
		})
	}

	var stored []domain.Article
	now := time.Now()
	err = p.deps.TxManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var txErr error
		stored, txErr = p.storeArticles(txCtx, enriched, now)
		if txErr != nil {
			return txErr
		}
		report.NewArticles = len(stored)

		if txErr := p.updateTrends(txCtx, report, now); txErr != nil {
			return txErr
		}
		return p.deps.Synthesizer.Synthesize(txCtx, report, now)
	})
	if err != nil {
		return p.fail(report, started, err)
	}

	for i := range stored {
		if pubErr := p.deps.Publisher.PublishArticle(ctx, &stored[i]); pubErr != nil {
			report.Errors = append(report.Errors, domain.RunError{
				Stage:   "publish",
				Ref:     stored[i].URL,
				Message: pubErr.Error(),
			})
		}
	}

	report.Duration = time.Since(started)
	logger.Info("pipeline run completed",
		"fetched", report.Fetched,
		"new_articles", report.NewArticles,
		"insights", report.InsightsCreated,
		"trends_created", report.TrendsCreated,
		"trends_updated", report.TrendsUpdated,
		"errors", len(report.Errors),
		"duration", report.Duration)
	return report, nil
}

func (p *PipelineService) selectNovel(ctx context.Context, items []domain.ContentItem) ([]domain.ContentItem, error) {
	unique := Dedupe(items)
	urls := make([]string, 0, len(unique))
	for _, item := range unique {
		urls = append(urls, item.URL)
	}

	known, err := p.deps.Articles.ExistingURLs(ctx, urls)
	if err != nil {
		return nil, fmt.Errorf("check existing urls: %w", err)
	}

	novel := FilterNovel(unique, known)
	return FilterQuality(novel, p.deps.Config.MinContentLength), nil
}

func (p *PipelineService) storeArticles(ctx context.Context, items []domain.ContentItem, now time.Time) ([]domain.Article, error) {
	stored := make([]domain.Article, 0, len(items))
	for _, item := range items {
		article := domain.NewArticle(item, now)
		id, err := p.deps.Articles.Insert(ctx, &article)
		if err != nil {
			return nil, fmt.Errorf("insert article %q: %w", item.URL, err)
		}
		article.ID = id

		if err := p.reconcileVocab(ctx, &article); err != nil {
			return nil, err
		}
		stored = append(stored, article)
	}
	return stored, nil
}

// reconcileVocab links the article to vocabulary entries the enrichment named.
// Names outside the seeded vocabulary are ignored rather than created.
func (p *PipelineService) reconcileVocab(ctx context.Context, article *domain.Article) error {
	themeNames := article.SecondaryThemes
	if article.PrimaryTheme != "" {
		themeNames = append([]string{article.PrimaryTheme}, themeNames...)
	}
	if len(themeNames) > 0 {
		ids, err := p.deps.Vocab.ThemeIDs(ctx, themeNames)
		if err != nil {
			return fmt.Errorf("resolve themes for %q: %w", article.URL, err)
		}
		if len(ids) > 0 {
			themeIDs := make([]int64, 0, len(ids))
			for _, id := range ids {
				themeIDs = append(themeIDs, id)
			}
			if err := p.deps.Vocab.LinkThemes(ctx, article.ID, themeIDs); err != nil {
				return fmt.Errorf("link themes for %q: %w", article.URL, err)
			}
		}
	}

	if len(article.Sectors) > 0 {
		ids, err := p.deps.Vocab.SectorIDs(ctx, article.Sectors)
		if err != nil {
			return fmt.Errorf("resolve sectors for %q: %w", article.URL, err)
		}
		if len(ids) > 0 {
			sectorIDs := make([]int64, 0, len(ids))
			for _, id := range ids {
				sectorIDs = append(sectorIDs, id)
			}
			if err := p.deps.Vocab.LinkSectors(ctx, article.ID, sectorIDs); err != nil {
				return fmt.Errorf("link sectors for %q: %w", article.URL, err)
			}
		}
	}
	return nil
}

func (p *PipelineService) updateTrends(ctx context.Context, report *domain.RunReport, now time.Time) error {
	since := now.AddDate(0, 0, -p.deps.Config.TrendLookbackDays)
	recent, err := p.deps.Articles.PublishedBetween(ctx, since, now)
	if err != nil {
		return fmt.Errorf("load lookback articles: %w", err)
	}

	if len(recent) > 0 {
		known, err := p.deps.Trends.Names(ctx)
		if err != nil {
			return fmt.Errorf("load trend names: %w", err)
		}

		briefs := make([]oracle.ArticleBrief, 0, len(recent))
		for _, a := range recent {
			brief := oracle.ArticleBrief{
				Title:        a.Title,
				Summary:      a.Summary,
				PrimaryTheme: a.PrimaryTheme,
			}
			if a.SignalStrength != nil {
				brief.SignalStrength = *a.SignalStrength
			}
			briefs = append(briefs, brief)
		}

		drafts, err := p.deps.Oracle.DetectTrends(ctx, briefs, known)
		if err != nil {
			p.deps.Logger.Warn("trend detection failed", "error", err)
			report.Errors = append(report.Errors, domain.RunError{
				Stage:   "trends",
				Message: err.Error(),
			})
		} else {
			candidates := make([]domain.TrendCandidate, 0, len(drafts))
			for _, d := range drafts {
				candidates = append(candidates, domain.TrendCandidate{
					Name:        strings.TrimSpace(d.Name),
					Description: d.Description,
					Keywords:    d.Keywords,
					Status:      domain.TrendStatus(d.Status),
					Momentum:    d.Momentum,
				})
			}
			created, err := p.deps.TrendEngine.EvaluateCandidates(ctx, candidates, now)
			if err != nil {
				return err
			}
			report.TrendsCreated = created
		}
	}

	updated, err := p.deps.TrendEngine.UpdateDailyPoints(ctx, now)
	if err != nil {
		return err
	}
	report.TrendsUpdated = updated
	return nil
}

func (p *PipelineService) fail(report *domain.RunReport, started time.Time, err error) (*domain.RunReport, error) {
	report.Status = domain.RunStatusError
	report.Message = err.Error()
	report.Duration = time.Since(started)
	p.deps.Logger.Error("pipeline run failed", "run_id", report.RunID, "error", err)
	return report, err
}
