package video_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/edustream-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/edustream-backend/internal/adapter/postgres/video"
	"github.com/heartmarshall/edustream-backend/internal/domain"
)

// newRepo sets up a test DB and returns a ready Repo + pool.
func newRepo(t *testing.T) (*video.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return video.New(pool), pool
}

func TestRepo_CreateThenGet(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	suffix := testhelper.UniqueSuffix()
	want := domain.Video{
		ID:       "blob-" + suffix,
		Subject:  "Chemistry",
		Topic:    "Organic",
		Subtopic: "Alkanes",
		Title:    "Naming " + suffix,
		URL:      "https://cdn.example.com/videos/" + suffix + ".mp4",
	}

	if err := repo.Create(ctx, want); err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	got, err := repo.GetByID(ctx, want.ID)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("GetByID = %+v, want %+v", got, want)
	}
}

func TestRepo_List_ContainsSeeded(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	seeded := testhelper.SeedVideo(t, pool)

	videos, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: unexpected error: %v", err)
	}

	for _, v := range videos {
		if v.ID == seeded.ID {
			if v != seeded {
				t.Errorf("listed record = %+v, want %+v", v, seeded)
			}
			return
		}
	}
	t.Errorf("seeded video %s not found in List", seeded.ID)
}

func TestRepo_Update_FullReplace(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	seeded := testhelper.SeedVideo(t, pool)

	updated := seeded.Apply(domain.VideoFields{
		Subject:  "Biology",
		Topic:    "Cells",
		Subtopic: "Mitosis",
		Title:    "Division",
		URL:      "https://cdn.example.com/other.mp4",
	})

	if err := repo.Update(ctx, updated); err != nil {
		t.Fatalf("Update: unexpected error: %v", err)
	}

	got, err := repo.GetByID(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got != updated {
		t.Errorf("after Update = %+v, want %+v", got, updated)
	}
}

func TestRepo_Update_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	err := repo.Update(context.Background(), domain.Video{ID: "missing-" + testhelper.UniqueSuffix(), Subject: "x"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Update missing: error = %v, want ErrNotFound", err)
	}
}

func TestRepo_Delete_TwiceSucceeds(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	seeded := testhelper.SeedVideo(t, pool)

	if err := repo.Delete(ctx, seeded.ID); err != nil {
		t.Fatalf("first Delete: %v", err)
	}
	if err := repo.Delete(ctx, seeded.ID); err != nil {
		t.Fatalf("second Delete: %v", err)
	}

	_, err := repo.GetByID(ctx, seeded.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByID after Delete: error = %v, want ErrNotFound", err)
	}
}
