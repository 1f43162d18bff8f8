package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"newsintel/internal/domain"
	"newsintel/internal/oracle"
)

const (
	digestTopArticles = 15
	digestTopInsights = 5
	digestTopTrends   = 5
)

// Composer assembles periodic digests from already-stored material. It makes
// no article-level oracle calls; only one copywriting call per digest, and
// even that one is optional.
type Composer struct {
	oracle    Oracle
	articles  ArticleStore
	insights  InsightStore
	trends    TrendStore
	digests   DigestStore
	publisher Publisher
	logger    *slog.Logger
}

func NewComposer(o Oracle, articles ArticleStore, insights InsightStore, trends TrendStore, digests DigestStore, publisher Publisher, logger *slog.Logger) *Composer {
	return &Composer{
		oracle:    o,
		articles:  articles,
		insights:  insights,
		trends:    trends,
		digests:   digests,
		publisher: publisher,
		logger:    logger.With("component", "composer"),
	}
}

// Compose builds and stores one digest for the period ending at now. It
// returns (nil, nil) when the period holds no articles: an empty digest is
// noise, not information.
func (c *Composer) Compose(ctx context.Context, digestType domain.DigestType, now time.Time) (*domain.Digest, error) {
	from, to := digestType.Period(now)

	articles, err := c.articles.PublishedBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("load period articles: %w", err)
	}
	if len(articles) == 0 {
		c.logger.Info("no articles in period, skipping digest", "type", digestType)
		return nil, nil
	}

	top := articles
	if len(top) > digestTopArticles {
		top = top[:digestTopArticles]
	}

	insights, err := c.insights.TopByRelevanceSince(ctx, from, digestTopInsights)
	if err != nil {
		return nil, fmt.Errorf("load period insights: %w", err)
	}
	trends, err := c.trends.EmergingTopByMomentum(ctx, digestTopTrends)
	if err != nil {
		return nil, fmt.Errorf("load emerging trends: %w", err)
	}

	copyText := c.composeCopy(ctx, digestType, top, insights, trends)

	digest := &domain.Digest{
		DigestType:     digestType,
		PeriodStart:    from,
		PeriodEnd:      to,
		CreatedAt:      now,
		Title:          copyText.Title,
		Summary:        copyText.Summary,
		TopStories:     copyText.TopStories,
		KeyInsights:    copyText.StrategicImplications,
		TotalArticles:  len(articles),
		ThemesCovered:  distinctThemes(top),
		RegionsCovered: distinctRegions(top),
	}
	for _, t := range trends {
		digest.EmergingTrends = append(digest.EmergingTrends, t.Name)
	}

	if _, err := c.digests.Insert(ctx, digest); err != nil {
		return nil, fmt.Errorf("insert digest: %w", err)
	}

	if err := c.publisher.PublishDigest(ctx, digest); err != nil {
		c.logger.Warn("digest publish failed", "type", digestType, "error", err)
	}

	c.logger.Info("digest composed",
		"type", digestType,
		"articles", digest.TotalArticles,
		"insights", len(insights),
		"trends", len(digest.EmergingTrends))
	return digest, nil
}

func (c *Composer) composeCopy(ctx context.Context, digestType domain.DigestType, articles []domain.Article, insights []domain.Insight, trends []domain.Trend) *oracle.DigestCopy {
	req := oracle.DigestRequest{Period: string(digestType)}
	for _, a := range articles {
		brief := oracle.ArticleBrief{
			Title:        a.Title,
			Summary:      a.Summary,
			PrimaryTheme: a.PrimaryTheme,
		}
		if a.SignalStrength != nil {
			brief.SignalStrength = *a.SignalStrength
		}
		req.Articles = append(req.Articles, brief)
	}
	for _, in := range insights {
		brief := oracle.InsightBrief{Title: in.Title, Description: in.Description}
		if in.ImpactLevel != nil {
			brief.ImpactLevel = *in.ImpactLevel
		}
		req.Insights = append(req.Insights, brief)
	}
	for _, t := range trends {
		brief := oracle.TrendBrief{Name: t.Name, Description: t.Description}
		if t.Momentum != nil {
			brief.Momentum = *t.Momentum
		}
		req.Trends = append(req.Trends, brief)
	}

	copyText, err := c.oracle.ComposeDigest(ctx, req)
	if err != nil {
		c.logger.Warn("digest copy generation failed, using fallback", "error", err)
		return fallbackCopy(digestType, articles)
	}
	return copyText
}

func fallbackCopy(digestType domain.DigestType, articles []domain.Article) *oracle.DigestCopy {
	label := "Daily"
	if digestType == domain.DigestWeekly {
		label = "Weekly"
	}
	copyText := &oracle.DigestCopy{
		Title:   label + " HR Signals Digest",
		Summary: fmt.Sprintf("%d notable stories across workforce and HR technology.", len(articles)),
	}
	for _, a := range articles {
		copyText.TopStories = append(copyText.TopStories, a.Title)
		if len(copyText.TopStories) == 5 {
			break
		}
	}
	return copyText
}

func distinctThemes(articles []domain.Article) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, a := range articles {
		if a.PrimaryTheme == "" {
			continue
		}
		if _, ok := seen[a.PrimaryTheme]; ok {
			continue
		}
		seen[a.PrimaryTheme] = struct{}{}
		out = append(out, a.PrimaryTheme)
	}
	return out
}

func distinctRegions(articles []domain.Article) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, a := range articles {
		if a.Region == "" {
			continue
		}
		if _, ok := seen[a.Region]; ok {
			continue
		}
		seen[a.Region] = struct{}{}
		out = append(out, a.Region)
	}
	return out
}
