package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"newsintel/internal/domain"
)

// VocabStore manages the controlled theme and sector vocabularies and their
// article associations. The vocabularies are seed-only: enrichment output
// that names an unknown theme or sector is dropped, never inserted.
type VocabStore struct {
	db *sqlx.DB
}

func NewVocabStore(db *sqlx.DB) *VocabStore {
	return &VocabStore{db: db}
}

// Seed inserts missing vocabulary entries. Existing entries are untouched.
func (s *VocabStore) Seed(ctx context.Context, themes, sectors []string) error {
	exec := GetExecutor(ctx, s.db)

	for _, name := range themes {
		keywords := themeKeywords(name)
		_, err := exec.ExecContext(ctx,
			`INSERT INTO themes (name, keywords) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
			name, pq.Array(keywords))
		if err != nil {
			return err
		}
	}

	for _, name := range sectors {
		_, err := exec.ExecContext(ctx,
			`INSERT INTO sectors (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name)
		if err != nil {
			return err
		}
	}

	return nil
}

// ThemeIDs resolves theme names to ids. Names absent from the vocabulary are
// simply missing from the result.
func (s *VocabStore) ThemeIDs(ctx context.Context, names []string) (map[string]int64, error) {
	return s.resolveNames(ctx, "themes", names)
}

// SectorIDs resolves sector names to ids.
func (s *VocabStore) SectorIDs(ctx context.Context, names []string) (map[string]int64, error) {
	return s.resolveNames(ctx, "sectors", names)
}

func (s *VocabStore) resolveNames(ctx context.Context, table string, names []string) (map[string]int64, error) {
	result := make(map[string]int64)
	if len(names) == 0 {
		return result, nil
	}

	type row struct {
		ID   int64  `db:"id"`
		Name string `db:"name"`
	}

	var rows []row
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows,
		`SELECT id, name FROM `+table+` WHERE name = ANY($1)`, pq.Array(names))
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		result[r.Name] = r.ID
	}
	return result, nil
}

// ThemeByKeyword returns the first theme whose keyword set contains the
// keyword, or nil when none does.
func (s *VocabStore) ThemeByKeyword(ctx context.Context, keyword string) (*domain.Theme, error) {
	type row struct {
		ID       int64          `db:"id"`
		Name     string         `db:"name"`
		Keywords pq.StringArray `db:"keywords"`
	}

	var r row
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &r,
		`SELECT id, name, keywords FROM themes WHERE $1 = ANY(keywords) LIMIT 1`,
		strings.ToLower(keyword))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &domain.Theme{ID: r.ID, Name: r.Name, Keywords: r.Keywords}, nil
}

// LinkThemes attaches themes to an article. Additions only: links that
// already exist are kept, nothing is removed.
func (s *VocabStore) LinkThemes(ctx context.Context, articleID int64, themeIDs []int64) error {
	return s.link(ctx, "article_themes", "theme_id", articleID, themeIDs)
}

// LinkSectors attaches sectors to an article, additions only.
func (s *VocabStore) LinkSectors(ctx context.Context, articleID int64, sectorIDs []int64) error {
	return s.link(ctx, "article_sectors", "sector_id", articleID, sectorIDs)
}

func (s *VocabStore) link(ctx context.Context, table, column string, articleID int64, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	exec := GetExecutor(ctx, s.db)
	query := `INSERT INTO ` + table + ` (article_id, ` + column + `)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING`

	_, err := exec.ExecContext(ctx, query, articleID, pq.Array(ids))
	return err
}

// themeKeywords derives a lowercase keyword list from a theme name so
// trend candidates can be associated with a theme by keyword.
func themeKeywords(name string) []string {
	fields := strings.Fields(strings.ToLower(name))
	keywords := make([]string, 0, len(fields))
	for _, f := range fields {
		if f == "and" || f == "of" || f == "the" {
			continue
		}
		keywords = append(keywords, f)
	}
	return keywords
}
