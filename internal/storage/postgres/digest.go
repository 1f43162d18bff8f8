package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"newsintel/internal/domain"
)

type DigestStore struct {
	db *sqlx.DB
}

func NewDigestStore(db *sqlx.DB) *DigestStore {
	return &DigestStore{db: db}
}

// Insert stores a composed digest. Digests are insert-only.
func (s *DigestStore) Insert(ctx context.Context, digest *domain.Digest) (int64, error) {
	query := `
		INSERT INTO digests (digest_type, period_start, period_end, created_at, title, summary,
			top_stories, emerging_trends, key_insights, total_articles, themes_covered, regions_covered)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		string(digest.DigestType),
		digest.PeriodStart,
		digest.PeriodEnd,
		digest.CreatedAt,
		digest.Title,
		digest.Summary,
		pq.Array(digest.TopStories),
		pq.Array(digest.EmergingTrends),
		pq.Array(digest.KeyInsights),
		digest.TotalArticles,
		pq.Array(digest.ThemesCovered),
		pq.Array(digest.RegionsCovered),
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}
