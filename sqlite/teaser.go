package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	tagesschau "github.com/Kaschi14/TagesschauScraper"
)

// Compile-time interface verification.
var _ tagesschau.TeaserService = (*TeaserService)(nil)

// TeaserService implements tagesschau.TeaserService using SQLite.
type TeaserService struct {
	db *DB
}

// NewTeaserService creates a new TeaserService.
func NewTeaserService(db *DB) *TeaserService {
	return &TeaserService{db: db}
}

// CreateTeaser persists a teaser. The ID is content-derived, so INSERT
// OR IGNORE makes replaying the same archive page a no-op rather than a
// duplicate or a conflict error.
func (s *TeaserService) CreateTeaser(ctx context.Context, t *tagesschau.Teaser) error {
	if err := t.Validate(); err != nil {
		return err
	}

	if t.ID == "" {
		t.ID = tagesschau.DeriveID(t.Link, t.PublishedAt)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO teasers (id, published_at, topline, headline, shorttext, link, tags)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, t.ID, t.PublishedAt.Format(tagesschau.TimeLayout), t.Topline, t.Headline,
		t.Shorttext, t.Link, strings.Join(t.Tags, ","))

	return err
}

// FindTeaserByID retrieves a teaser by ID.
func (s *TeaserService) FindTeaserByID(ctx context.Context, id string) (*tagesschau.Teaser, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, published_at, topline, headline, shorttext, link, tags
		FROM teasers
		WHERE id = ?
	`, id)

	teaser, err := scanTeaser(row.Scan)
	if err == sql.ErrNoRows {
		return nil, tagesschau.Errorf(tagesschau.ENOTFOUND, "teaser not found")
	}
	if err != nil {
		return nil, err
	}
	return teaser, nil
}

// FindTeasers retrieves teasers matching the filter, most recently
// published first.
func (s *TeaserService) FindTeasers(ctx context.Context, filter tagesschau.TeaserFilter) ([]*tagesschau.Teaser, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, published_at, topline, headline, shorttext, link, tags FROM teasers WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Link != nil {
		query.WriteString(" AND link = ?")
		args = append(args, *filter.Link)
	}
	if filter.Day != nil {
		// published_at is stored as "YYYY-MM-DD HH:MM:SS", so a day
		// filter is a prefix match.
		query.WriteString(" AND published_at LIKE ?")
		args = append(args, filter.Day.Format("2006-01-02")+"%")
	}

	query.WriteString(" ORDER BY published_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teasers []*tagesschau.Teaser
	for rows.Next() {
		teaser, err := scanTeaser(rows.Scan)
		if err != nil {
			return nil, err
		}
		teasers = append(teasers, teaser)
	}

	return teasers, rows.Err()
}

// scanTeaser reads one teaser row via the given scan function.
func scanTeaser(scan func(dest ...any) error) (*tagesschau.Teaser, error) {
	var t tagesschau.Teaser
	var publishedAt, tags string

	if err := scan(&t.ID, &publishedAt, &t.Topline, &t.Headline, &t.Shorttext, &t.Link, &tags); err != nil {
		return nil, err
	}

	parsed, err := time.Parse(tagesschau.TimeLayout, publishedAt)
	if err != nil {
		return nil, tagesschau.Errorf(tagesschau.EINTERNAL, "failed to parse published_at %q: %v", publishedAt, err)
	}
	t.PublishedAt = parsed

	if tags != "" {
		t.Tags = strings.Split(tags, ",")
	}

	return &t, nil
}

// appendPagination appends LIMIT and OFFSET clauses if values are > 0.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
