package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"newsintel/internal/domain"
)

type TrendStore struct {
	db *sqlx.DB
}

func NewTrendStore(db *sqlx.DB) *TrendStore {
	return &TrendStore{db: db}
}

type trendRow struct {
	ID           int64           `db:"id"`
	ThemeID      sql.NullInt64   `db:"theme_id"`
	Name         string          `db:"name"`
	Description  string          `db:"description"`
	Keywords     pq.StringArray  `db:"keywords"`
	StartDate    time.Time       `db:"start_date"`
	LastUpdated  time.Time       `db:"last_updated"`
	ArticleCount int             `db:"article_count"`
	Momentum     sql.NullFloat64 `db:"momentum"`
	Status       string          `db:"status"`
	Region       string          `db:"region"`
}

const trendColumns = `id, theme_id, name, description, keywords, start_date, last_updated,
	article_count, momentum, status, region`

func (r trendRow) toDomain() domain.Trend {
	t := domain.Trend{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Keywords:     r.Keywords,
		StartDate:    r.StartDate,
		LastUpdated:  r.LastUpdated,
		ArticleCount: r.ArticleCount,
		Momentum:     nullToPtr(r.Momentum),
		Status:       domain.TrendStatus(r.Status),
		Region:       r.Region,
	}
	if r.ThemeID.Valid {
		id := r.ThemeID.Int64
		t.ThemeID = &id
	}
	return t
}

func (s *TrendStore) All(ctx context.Context) ([]domain.Trend, error) {
	var rows []trendRow
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows,
		`SELECT `+trendColumns+` FROM trends ORDER BY id`)
	if err != nil {
		return nil, err
	}

	trends := make([]domain.Trend, 0, len(rows))
	for _, r := range rows {
		trends = append(trends, r.toDomain())
	}
	return trends, nil
}

func (s *TrendStore) Names(ctx context.Context) ([]string, error) {
	var names []string
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &names,
		`SELECT name FROM trends ORDER BY id`)
	return names, err
}

func (s *TrendStore) Insert(ctx context.Context, trend *domain.Trend) (int64, error) {
	query := `
		INSERT INTO trends (theme_id, name, description, keywords, start_date, last_updated,
			article_count, momentum, status, region)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var themeID sql.NullInt64
	if trend.ThemeID != nil {
		themeID = sql.NullInt64{Int64: *trend.ThemeID, Valid: true}
	}

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		themeID,
		trend.Name,
		trend.Description,
		pq.Array(trend.Keywords),
		trend.StartDate,
		trend.LastUpdated,
		trend.ArticleCount,
		ptrToNull(trend.Momentum),
		string(trend.Status),
		trend.Region,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// UpdateMetrics writes the per-run recomputed fields of one trend.
func (s *TrendStore) UpdateMetrics(ctx context.Context, trendID int64, articleCount int, status domain.TrendStatus, lastUpdated time.Time) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE trends SET article_count = $2, status = $3, last_updated = $4 WHERE id = $1`,
		trendID, articleCount, string(status), lastUpdated)
	return err
}

// UpsertDataPoint writes a trend's data point for one day. A second write for
// the same (trend, day) overwrites the metrics instead of appending.
func (s *TrendStore) UpsertDataPoint(ctx context.Context, dp *domain.TrendDataPoint) error {
	query := `
		INSERT INTO trend_data_points (trend_id, date, article_count, sentiment_avg, signal_strength_avg)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (trend_id, date) DO UPDATE SET
			article_count = EXCLUDED.article_count,
			sentiment_avg = EXCLUDED.sentiment_avg,
			signal_strength_avg = EXCLUDED.signal_strength_avg`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		dp.TrendID,
		dp.Date,
		dp.ArticleCount,
		dp.SentimentAvg,
		dp.SignalStrengthAvg,
	)
	return err
}

// LatestDataPointBefore returns the most recent data point strictly before
// day, or nil when the trend has no earlier history.
func (s *TrendStore) LatestDataPointBefore(ctx context.Context, trendID int64, day time.Time) (*domain.TrendDataPoint, error) {
	type row struct {
		ID                int64     `db:"id"`
		TrendID           int64     `db:"trend_id"`
		Date              time.Time `db:"date"`
		ArticleCount      int       `db:"article_count"`
		SentimentAvg      float64   `db:"sentiment_avg"`
		SignalStrengthAvg float64   `db:"signal_strength_avg"`
	}

	var r row
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &r, `
		SELECT id, trend_id, date, article_count, sentiment_avg, signal_strength_avg
		FROM trend_data_points
		WHERE trend_id = $1 AND date < $2
		ORDER BY date DESC
		LIMIT 1`, trendID, day)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &domain.TrendDataPoint{
		ID:                r.ID,
		TrendID:           r.TrendID,
		Date:              r.Date,
		ArticleCount:      r.ArticleCount,
		SentimentAvg:      r.SentimentAvg,
		SignalStrengthAvg: r.SignalStrengthAvg,
	}, nil
}

// EmergingTopByMomentum returns trends in status emerging, strongest first.
func (s *TrendStore) EmergingTopByMomentum(ctx context.Context, limit int) ([]domain.Trend, error) {
	var rows []trendRow
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows,
		`SELECT `+trendColumns+` FROM trends
		WHERE status = $1
		ORDER BY momentum DESC NULLS LAST
		LIMIT $2`, string(domain.TrendEmerging), limit)
	if err != nil {
		return nil, err
	}

	trends := make([]domain.Trend, 0, len(rows))
	for _, r := range rows {
		trends = append(trends, r.toDomain())
	}
	return trends, nil
}
