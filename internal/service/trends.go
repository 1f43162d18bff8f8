package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"newsintel/internal/config"
	"newsintel/internal/domain"
)

// TrendEngine owns the trend lifecycle: accepting oracle-proposed candidates
// and rolling the daily time series forward.
type TrendEngine struct {
	trends           TrendStore
	articles         ArticleStore
	vocab            VocabStore
	overlapThreshold float64
	logger           *slog.Logger
}

func NewTrendEngine(trends TrendStore, articles ArticleStore, vocab VocabStore, cfg config.PipelineConfig, logger *slog.Logger) *TrendEngine {
	return &TrendEngine{
		trends:           trends,
		articles:         articles,
		vocab:            vocab,
		overlapThreshold: cfg.NameOverlapThreshold,
		logger:           logger.With("component", "trend_engine"),
	}
}

// EvaluateCandidates creates trends for candidates that do not collide with
// an existing trend name. Collisions are skipped silently; they are the
// common case once a topic has been running for a while.
func (e *TrendEngine) EvaluateCandidates(ctx context.Context, candidates []domain.TrendCandidate, now time.Time) (int, error) {
	existing, err := e.trends.Names(ctx)
	if err != nil {
		return 0, fmt.Errorf("load trend names: %w", err)
	}

	created := 0
	for _, c := range candidates {
		if strings.TrimSpace(c.Name) == "" {
			continue
		}
		if e.matchesAny(c.Name, existing) {
			e.logger.Debug("trend candidate matches existing trend", "name", c.Name)
			continue
		}

		status := c.Status
		if !status.Valid() {
			status = domain.TrendEmerging
		}

		trend := &domain.Trend{
			ThemeID:     e.themeFor(ctx, c.Keywords),
			Name:        c.Name,
			Description: c.Description,
			Keywords:    c.Keywords,
			StartDate:   now,
			LastUpdated: now,
			Momentum:    c.Momentum,
			Status:      status,
			Region:      "Global",
		}
		if _, err := e.trends.Insert(ctx, trend); err != nil {
			return created, fmt.Errorf("insert trend %q: %w", c.Name, err)
		}
		created++
		existing = append(existing, c.Name)
	}
	return created, nil
}

// UpdateDailyPoints recomputes today's data point for every trend with
// keywords and advances the lifecycle status from the day-over-day article
// count movement.
func (e *TrendEngine) UpdateDailyPoints(ctx context.Context, now time.Time) (int, error) {
	trends, err := e.trends.All(ctx)
	if err != nil {
		return 0, fmt.Errorf("load trends: %w", err)
	}

	day := now.Truncate(24 * time.Hour)
	updated := 0
	for _, t := range trends {
		if len(t.Keywords) == 0 {
			continue
		}

		count, sentimentSum, signalSum := 0, 0.0, 0.0
		for _, kw := range t.Keywords {
			matches, err := e.articles.MatchKeywordSince(ctx, kw, day)
			if err != nil {
				return updated, fmt.Errorf("match keyword %q: %w", kw, err)
			}
			// An article matching several keywords counts once per keyword.
			for _, a := range matches {
				count++
				if a.SentimentScore != nil {
					sentimentSum += *a.SentimentScore
				}
				if a.SignalStrength != nil {
					signalSum += *a.SignalStrength
				}
			}
		}
		if count == 0 {
			continue
		}

		dp := &domain.TrendDataPoint{
			TrendID:           t.ID,
			Date:              day,
			ArticleCount:      count,
			SentimentAvg:      sentimentSum / float64(count),
			SignalStrengthAvg: signalSum / float64(count),
		}
		if err := e.trends.UpsertDataPoint(ctx, dp); err != nil {
			return updated, fmt.Errorf("upsert data point for trend %d: %w", t.ID, err)
		}

		prev, err := e.trends.LatestDataPointBefore(ctx, t.ID, day)
		if err != nil {
			return updated, fmt.Errorf("load previous data point for trend %d: %w", t.ID, err)
		}
		status := t.Status
		if prev != nil {
			status = NextStatus(t.Status, prev.ArticleCount, count)
		}

		if err := e.trends.UpdateMetrics(ctx, t.ID, count, status, now); err != nil {
			return updated, fmt.Errorf("update trend %d: %w", t.ID, err)
		}
		updated++
	}
	return updated, nil
}

// NextStatus moves a trend along emerging -> growing -> peak when activity
// rises and down to declining when activity falls off a peak. A declining
// trend that picks back up returns to growing.
func NextStatus(cur domain.TrendStatus, prevCount, curCount int) domain.TrendStatus {
	switch {
	case curCount > prevCount:
		switch cur {
		case domain.TrendEmerging:
			return domain.TrendGrowing
		case domain.TrendGrowing:
			return domain.TrendPeak
		case domain.TrendDeclining:
			return domain.TrendGrowing
		}
	case curCount < prevCount:
		if cur == domain.TrendPeak {
			return domain.TrendDeclining
		}
	}
	return cur
}

func (e *TrendEngine) matchesAny(name string, existing []string) bool {
	for _, other := range existing {
		if strings.EqualFold(name, other) {
			return true
		}
		if jaccard(tokenize(name), tokenize(other)) >= e.overlapThreshold {
			return true
		}
	}
	return false
}

func (e *TrendEngine) themeFor(ctx context.Context, keywords []string) *int64 {
	for _, kw := range keywords {
		theme, err := e.vocab.ThemeByKeyword(ctx, strings.ToLower(kw))
		if err != nil {
			e.logger.Warn("theme lookup failed", "keyword", kw, "error", err)
			return nil
		}
		if theme != nil {
			return &theme.ID
		}
	}
	return nil
}

func tokenize(s string) map[string]struct{} {
	tokens := map[string]struct{}{}
	for _, t := range strings.Fields(strings.ToLower(s)) {
		tokens[strings.Trim(t, ".,:;!?\"'()")] = struct{}{}
	}
	delete(tokens, "")
	return tokens
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}
