package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"newsintel/internal/domain"
)

type InsightStore struct {
	db *sqlx.DB
}

func NewInsightStore(db *sqlx.DB) *InsightStore {
	return &InsightStore{db: db}
}

type insightRow struct {
	ID             int64          `db:"id"`
	ArticleID      int64          `db:"article_id"`
	Title          string         `db:"title"`
	Description    string         `db:"description"`
	ImpactLevel    sql.NullString `db:"impact_level"`
	TimeHorizon    sql.NullString `db:"time_horizon"`
	RelevanceScore float64        `db:"relevance_score"`
	CreatedAt      time.Time      `db:"created_at"`
}

func (r insightRow) toDomain() domain.Insight {
	return domain.Insight{
		ID:             r.ID,
		ArticleID:      r.ArticleID,
		Title:          r.Title,
		Description:    r.Description,
		ImpactLevel:    nullStrToPtr(r.ImpactLevel),
		TimeHorizon:    nullStrToPtr(r.TimeHorizon),
		RelevanceScore: r.RelevanceScore,
		CreatedAt:      r.CreatedAt,
	}
}

func (s *InsightStore) Insert(ctx context.Context, insight *domain.Insight) (int64, error) {
	query := `
		INSERT INTO insights (article_id, title, description, impact_level, time_horizon, relevance_score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		insight.ArticleID,
		insight.Title,
		insight.Description,
		strPtrToNull(insight.ImpactLevel),
		strPtrToNull(insight.TimeHorizon),
		insight.RelevanceScore,
		insight.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// TopByRelevanceSince returns the most relevant insights created after since.
func (s *InsightStore) TopByRelevanceSince(ctx context.Context, since time.Time, limit int) ([]domain.Insight, error) {
	query := `
		SELECT id, article_id, title, description, impact_level, time_horizon, relevance_score, created_at
		FROM insights
		WHERE created_at >= $1
		ORDER BY relevance_score DESC
		LIMIT $2`

	var rows []insightRow
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query, since, limit); err != nil {
		return nil, err
	}

	insights := make([]domain.Insight, 0, len(rows))
	for _, r := range rows {
		insights = append(insights, r.toDomain())
	}
	return insights, nil
}

func nullStrToPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func strPtrToNull(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}
