package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"newsintel/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

type articleRow struct {
	ID              int64           `db:"id"`
	URL             string          `db:"url"`
	Title           string          `db:"title"`
	Source          string          `db:"source"`
	SourceType      string          `db:"source_type"`
	Author          string          `db:"author"`
	PublishedDate   time.Time       `db:"published_date"`
	ScrapedAt       time.Time       `db:"scraped_at"`
	Content         string          `db:"content"`
	Summary         string          `db:"summary"`
	KeyTakeaways    pq.StringArray  `db:"key_takeaways"`
	PrimaryTheme    string          `db:"primary_theme"`
	SecondaryThemes pq.StringArray  `db:"secondary_themes"`
	ConfidenceScore sql.NullFloat64 `db:"confidence_score"`
	Region          string          `db:"region"`
	Sectors         pq.StringArray  `db:"sectors"`
	SentimentLabel  string          `db:"sentiment_label"`
	SentimentScore  sql.NullFloat64 `db:"sentiment_score"`
	SignalStrength  sql.NullFloat64 `db:"signal_strength"`
	TimeHorizon     string          `db:"time_horizon"`
	IsEmerging      bool            `db:"is_emerging"`
	IsFeatured      bool            `db:"is_featured"`
	ViewCount       int             `db:"view_count"`
}

const articleColumns = `id, url, title, source, source_type, author, published_date, scraped_at,
	content, summary, key_takeaways, primary_theme, secondary_themes, confidence_score,
	region, sectors, sentiment_label, sentiment_score, signal_strength, time_horizon,
	is_emerging, is_featured, view_count`

func (r articleRow) toDomain() domain.Article {
	return domain.Article{
		ID: r.ID,
		ContentItem: domain.ContentItem{
			URL:             r.URL,
			Title:           r.Title,
			Source:          r.Source,
			SourceType:      r.SourceType,
			Author:          r.Author,
			PublishedDate:   r.PublishedDate,
			Content:         r.Content,
			Summary:         r.Summary,
			KeyTakeaways:    r.KeyTakeaways,
			PrimaryTheme:    r.PrimaryTheme,
			SecondaryThemes: r.SecondaryThemes,
			ConfidenceScore: nullToPtr(r.ConfidenceScore),
			Region:          r.Region,
			Sectors:         r.Sectors,
			SentimentLabel:  r.SentimentLabel,
			SentimentScore:  nullToPtr(r.SentimentScore),
			SignalStrength:  nullToPtr(r.SignalStrength),
			TimeHorizon:     r.TimeHorizon,
			IsEmerging:      r.IsEmerging,
		},
		IsFeatured: r.IsFeatured,
		ViewCount:  r.ViewCount,
		ScrapedAt:  r.ScrapedAt,
	}
}

// ExistingURLs returns the subset of urls already present in the store.
func (s *ArticleStore) ExistingURLs(ctx context.Context, urls []string) (map[string]struct{}, error) {
	result := make(map[string]struct{})
	if len(urls) == 0 {
		return result, nil
	}

	var known []string
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &known,
		`SELECT url FROM articles WHERE url = ANY($1)`, pq.Array(urls))
	if err != nil {
		return nil, err
	}

	for _, u := range known {
		result[u] = struct{}{}
	}
	return result, nil
}

// Insert stores a new article. A conflicting url is a no-op that still
// returns the existing row's id, keeping storage idempotent per url.
func (s *ArticleStore) Insert(ctx context.Context, article *domain.Article) (int64, error) {
	exec := GetExecutor(ctx, s.db)

	query := `
		INSERT INTO articles (
			url, title, source, source_type, author, published_date, scraped_at,
			content, summary, key_takeaways, primary_theme, secondary_themes,
			confidence_score, region, sectors, sentiment_label, sentiment_score,
			signal_strength, time_horizon, is_emerging, is_featured
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21
		)
		ON CONFLICT (url) DO NOTHING
		RETURNING id`

	var id int64
	err := exec.QueryRowxContext(ctx, query,
		article.URL,
		article.Title,
		article.Source,
		article.SourceType,
		article.Author,
		article.PublishedDate,
		article.ScrapedAt,
		article.Content,
		article.Summary,
		pq.Array(article.KeyTakeaways),
		article.PrimaryTheme,
		pq.Array(article.SecondaryThemes),
		ptrToNull(article.ConfidenceScore),
		article.Region,
		pq.Array(article.Sectors),
		article.SentimentLabel,
		ptrToNull(article.SentimentScore),
		ptrToNull(article.SignalStrength),
		article.TimeHorizon,
		article.IsEmerging,
		article.IsFeatured,
	).Scan(&id)

	if errors.Is(err, sql.ErrNoRows) {
		err = exec.QueryRowxContext(ctx,
			"SELECT id FROM articles WHERE url = $1", article.URL,
		).Scan(&id)
	}

	if err != nil {
		return 0, err
	}

	return id, nil
}

// TopBySignalSince returns the highest-signal articles published after since.
func (s *ArticleStore) TopBySignalSince(ctx context.Context, since time.Time, limit int) ([]domain.Article, error) {
	query, args, err := psql.
		Select(articleColumns).
		From("articles").
		Where(sq.GtOrEq{"published_date": since}).
		OrderBy("signal_strength DESC NULLS LAST").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	return s.selectArticles(ctx, query, args...)
}

// PublishedBetween returns all articles in [from, to), ordered by signal
// strength descending.
func (s *ArticleStore) PublishedBetween(ctx context.Context, from, to time.Time) ([]domain.Article, error) {
	query, args, err := psql.
		Select(articleColumns).
		From("articles").
		Where(sq.GtOrEq{"published_date": from}).
		Where(sq.Lt{"published_date": to}).
		OrderBy("signal_strength DESC NULLS LAST").
		ToSql()
	if err != nil {
		return nil, err
	}

	return s.selectArticles(ctx, query, args...)
}

// MatchKeywordSince returns articles published after since whose title or
// summary contains the keyword, case-insensitively.
func (s *ArticleStore) MatchKeywordSince(ctx context.Context, keyword string, since time.Time) ([]domain.Article, error) {
	pattern := "%" + keyword + "%"

	query, args, err := psql.
		Select(articleColumns).
		From("articles").
		Where(sq.GtOrEq{"published_date": since}).
		Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"summary": pattern},
		}).
		ToSql()
	if err != nil {
		return nil, err
	}

	return s.selectArticles(ctx, query, args...)
}

func (s *ArticleStore) selectArticles(ctx context.Context, query string, args ...interface{}) ([]domain.Article, error) {
	var rows []articleRow
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query, args...); err != nil {
		return nil, err
	}

	articles := make([]domain.Article, 0, len(rows))
	for _, r := range rows {
		articles = append(articles, r.toDomain())
	}
	return articles, nil
}

func nullToPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func ptrToNull(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
