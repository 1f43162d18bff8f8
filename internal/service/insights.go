package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"newsintel/internal/config"
	"newsintel/internal/domain"
	"newsintel/internal/oracle"
)

// Synthesizer turns the recent high-signal window into stored insights.
type Synthesizer struct {
	oracle     Oracle
	articles   ArticleStore
	insights   InsightStore
	windowDays int
	limit      int
	logger     *slog.Logger
}

func NewSynthesizer(o Oracle, articles ArticleStore, insights InsightStore, cfg config.PipelineConfig, logger *slog.Logger) *Synthesizer {
	return &Synthesizer{
		oracle:     o,
		articles:   articles,
		insights:   insights,
		windowDays: cfg.InsightWindowDays,
		limit:      cfg.InsightArticleLimit,
		logger:     logger.With("component", "synthesizer"),
	}
}

// Synthesize extracts insights from the recent window and stores them. An
// oracle failure is recorded on the report and the run continues; only
// storage errors abort.
func (s *Synthesizer) Synthesize(ctx context.Context, report *domain.RunReport, now time.Time) error {
	since := now.AddDate(0, 0, -s.windowDays)
	recent, err := s.articles.TopBySignalSince(ctx, since, s.limit)
	if err != nil {
		return fmt.Errorf("load recent articles: %w", err)
	}
	if len(recent) == 0 {
		return nil
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

	drafts, err := s.oracle.ExtractInsights(ctx, briefs)
	if err != nil {
		s.logger.Warn("insight extraction failed", "error", err)
		report.Errors = append(report.Errors, domain.RunError{
			Stage:   "insights",
			Message: err.Error(),
		})
		return nil
	}

	anchorID := recent[0].ID
	for _, d := range drafts {
		if d.Title == "" {
			continue
		}
		insight := &domain.Insight{
			ArticleID:      anchorID,
			Title:          d.Title,
			Description:    d.Description,
			RelevanceScore: d.RelevanceScore,
			CreatedAt:      now,
		}
		if domain.ValidImpactLevel(d.ImpactLevel) {
			impact := d.ImpactLevel
			insight.ImpactLevel = &impact
		}
		if domain.ValidTimeHorizon(d.TimeHorizon) {
			horizon := d.TimeHorizon
			insight.TimeHorizon = &horizon
		}
		if _, err := s.insights.Insert(ctx, insight); err != nil {
			return fmt.Errorf("insert insight %q: %w", d.Title, err)
		}
		report.InsightsCreated++
	}
	return nil
}
