// Package video implements the video record repository using PostgreSQL.
package video

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/edustream-backend/internal/adapter/postgres"
	"github.com/heartmarshall/edustream-backend/internal/domain"
)

const table = "videos"

var columns = []string{"id", "subject", "topic", "subtopic", "title", "url"}

// row mirrors a videos table row for pgxscan.
type row struct {
	ID       string `db:"id"`
	Subject  string `db:"subject"`
	Topic    string `db:"topic"`
	Subtopic string `db:"subtopic"`
	Title    string `db:"title"`
	URL      string `db:"url"`
}

func (r row) toDomain() domain.Video {
	return domain.Video{
		ID:       r.ID,
		Subject:  r.Subject,
		Topic:    r.Topic,
		Subtopic: r.Subtopic,
		Title:    r.Title,
		URL:      r.URL,
	}
}

// Repo provides video record persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new video repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns every video record.
func (r *Repo) List(ctx context.Context) ([]domain.Video, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("subject", "topic", "subtopic", "title").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list videos: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, r.q, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "video", "*")
	}

	videos := make([]domain.Video, len(rows))
	for i, rw := range rows {
		videos[i] = rw.toDomain()
	}
	return videos, nil
}

// GetByID returns a video record by id.
// Returns domain.ErrNotFound if no record has that id.
func (r *Repo) GetByID(ctx context.Context, id string) (domain.Video, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Video{}, fmt.Errorf("build get video: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, r.q, &rw, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return domain.Video{}, fmt.Errorf("video %s: %w", id, domain.ErrNotFound)
		}
		return domain.Video{}, postgres.MapError(err, "video", id)
	}
	return rw.toDomain(), nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new video record under v.ID.
func (r *Repo) Create(ctx context.Context, v domain.Video) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(v.ID, v.Subject, v.Topic, v.Subtopic, v.Title, v.URL).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert video: %w", err)
	}

	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "video", v.ID)
	}
	return nil
}

// Update replaces every non-id field of the record with id.
// Returns domain.ErrNotFound if no record has that id.
func (r *Repo) Update(ctx context.Context, v domain.Video) error {
	query, args, err := postgres.Builder().
		Update(table).
		Set("subject", v.Subject).
		Set("topic", v.Topic).
		Set("subtopic", v.Subtopic).
		Set("title", v.Title).
		Set("url", v.URL).
		Where(sq.Eq{"id": v.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update video: %w", err)
	}

	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "video", v.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("video %s: %w", v.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes the record with id. Idempotent: deleting a missing id is not an error.
func (r *Repo) Delete(ctx context.Context, id string) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete video: %w", err)
	}

	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "video", id)
	}
	return nil
}
