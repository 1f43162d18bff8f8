package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"newsintel/internal/domain"
	"newsintel/internal/oracle"
)

// ContentSource yields raw content items. The batch may contain duplicates
// and previously-seen urls; the pipeline narrows it down.
type ContentSource interface {
	Name() string
	FetchAll(ctx context.Context) ([]domain.ContentItem, []domain.SourceFetchError)
}

// Oracle is the external text-analysis service.
type Oracle interface {
	AnalyzeArticle(ctx context.Context, title, content, url string) (*oracle.Annotation, error)
	ExtractInsights(ctx context.Context, articles []oracle.ArticleBrief) ([]oracle.InsightDraft, error)
	DetectTrends(ctx context.Context, articles []oracle.ArticleBrief, knownTrends []string) ([]oracle.TrendDraft, error)
	ComposeDigest(ctx context.Context, req oracle.DigestRequest) (*oracle.DigestCopy, error)
}

type ArticleStore interface {
	ExistingURLs(ctx context.Context, urls []string) (map[string]struct{}, error)
	Insert(ctx context.Context, article *domain.Article) (int64, error)
	TopBySignalSince(ctx context.Context, since time.Time, limit int) ([]domain.Article, error)
	PublishedBetween(ctx context.Context, from, to time.Time) ([]domain.Article, error)
	MatchKeywordSince(ctx context.Context, keyword string, since time.Time) ([]domain.Article, error)
}

type VocabStore interface {
	Seed(ctx context.Context, themes, sectors []string) error
	ThemeIDs(ctx context.Context, names []string) (map[string]int64, error)
	SectorIDs(ctx context.Context, names []string) (map[string]int64, error)
	ThemeByKeyword(ctx context.Context, keyword string) (*domain.Theme, error)
	LinkThemes(ctx context.Context, articleID int64, themeIDs []int64) error
	LinkSectors(ctx context.Context, articleID int64, sectorIDs []int64) error
}

type InsightStore interface {
	Insert(ctx context.Context, insight *domain.Insight) (int64, error)
	TopByRelevanceSince(ctx context.Context, since time.Time, limit int) ([]domain.Insight, error)
}

type TrendStore interface {
	All(ctx context.Context) ([]domain.Trend, error)
	Names(ctx context.Context) ([]string, error)
	Insert(ctx context.Context, trend *domain.Trend) (int64, error)
	UpdateMetrics(ctx context.Context, trendID int64, articleCount int, status domain.TrendStatus, lastUpdated time.Time) error
	UpsertDataPoint(ctx context.Context, dp *domain.TrendDataPoint) error
	LatestDataPointBefore(ctx context.Context, trendID int64, day time.Time) (*domain.TrendDataPoint, error)
	EmergingTopByMomentum(ctx context.Context, limit int) ([]domain.Trend, error)
}

type DigestStore interface {
	Insert(ctx context.Context, digest *domain.Digest) (int64, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	PublishArticle(ctx context.Context, article *domain.Article) error
	PublishDigest(ctx context.Context, digest *domain.Digest) error
	Close() error
}
