package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/edustream-backend/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedVideo inserts a video record with generated fields and returns it.
func SeedVideo(t *testing.T, pool *pgxpool.Pool) domain.Video {
	t.Helper()

	suffix := UniqueSuffix()
	v := domain.Video{
		ID:       "vid-" + suffix,
		Subject:  "Math",
		Topic:    "Algebra",
		Subtopic: "Linear equations " + suffix,
		Title:    "Intro " + suffix,
		URL:      "https://cdn.example.com/videos/" + suffix + ".mp4",
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO videos (id, subject, topic, subtopic, title, url) VALUES ($1, $2, $3, $4, $5, $6)`,
		v.ID, v.Subject, v.Topic, v.Subtopic, v.Title, v.URL,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVideo insert: %v", err)
	}

	return v
}

// SeedDownload inserts a download event for uid and returns it with the
// store-assigned id.
func SeedDownload(t *testing.T, pool *pgxpool.Pool, uid, lectureID string, at time.Time) domain.DownloadEvent {
	t.Helper()

	ev := domain.DownloadEvent{
		UID:       uid,
		LectureID: lectureID,
		Title:     "Lecture " + lectureID,
		Src:       "https://cdn.example.com/videos/" + lectureID + ".mp4",
		CreatedAt: at.UTC().Truncate(time.Microsecond),
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO downloads (uid, lecture_id, title, src, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id::text`,
		ev.UID, ev.LectureID, ev.Title, ev.Src, ev.CreatedAt,
	).Scan(&ev.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedDownload insert: %v", err)
	}

	return ev
}
