// Package download implements the append-only download event log using PostgreSQL.
package download

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/edustream-backend/internal/adapter/postgres"
	"github.com/heartmarshall/edustream-backend/internal/domain"
)

const table = "downloads"

type row struct {
	ID        string    `db:"id"`
	UID       string    `db:"uid"`
	LectureID string    `db:"lecture_id"`
	Title     string    `db:"title"`
	Src       string    `db:"src"`
	CreatedAt time.Time `db:"created_at"`
}

// Repo provides download event persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new download repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// Append stores ev and returns the store-assigned event id.
// The log never deduplicates: identical events produce distinct rows.
func (r *Repo) Append(ctx context.Context, ev domain.DownloadEvent) (string, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("uid", "lecture_id", "title", "src", "created_at").
		Values(ev.UID, ev.LectureID, ev.Title, ev.Src, ev.CreatedAt).
		Suffix("RETURNING id::text").
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build insert download: %w", err)
	}

	var id string
	if err := r.q.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return "", postgres.MapError(err, "download", ev.UID)
	}
	return id, nil
}

// ListByUID returns every event recorded for uid, newest first.
// Matching is exact and case-sensitive.
func (r *Repo) ListByUID(ctx context.Context, uid string) ([]domain.DownloadEvent, error) {
	query, args, err := postgres.Builder().
		Select("id::text AS id", "uid", "lecture_id", "title", "src", "created_at").
		From(table).
		Where(sq.Eq{"uid": uid}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list downloads: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, r.q, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "download", uid)
	}

	events := make([]domain.DownloadEvent, len(rows))
	for i, rw := range rows {
		events[i] = domain.DownloadEvent{
			ID:        rw.ID,
			UID:       rw.UID,
			LectureID: rw.LectureID,
			Title:     rw.Title,
			Src:       rw.Src,
			CreatedAt: rw.CreatedAt.UTC(),
		}
	}
	return events, nil
}
