package catalog

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heartmarshall/edustream-backend/internal/domain"
)

var (
	videosCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "edustream_videos_created_total",
		Help: "Video records published to the catalog.",
	})

	orphanedBlobs = promauto.NewCounter(prometheus.CounterOpts{
		Name: "edustream_orphaned_blobs_total",
		Help: "Blobs uploaded whose video record could not be persisted.",
	})

	blobUploadFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "edustream_blob_upload_failures_total",
		Help: "Video blob uploads that failed before any record was written.",
	})
)

type videoRepo interface {
	Create(ctx context.Context, v domain.Video) error
	List(ctx context.Context) ([]domain.Video, error)
	GetByID(ctx context.Context, id string) (domain.Video, error)
	Update(ctx context.Context, v domain.Video) error
	Delete(ctx context.Context, id string) error
}

type blobStore interface {
	Upload(ctx context.Context, data []byte) (locator, blobID string, err error)
}

// Service manages the video catalog. A record is only written after its
// blob upload has succeeded.
type Service struct {
	videos videoRepo
	blobs  blobStore
	log    *slog.Logger
}

// NewService creates a new Catalog service.
func NewService(
	log *slog.Logger,
	videos videoRepo,
	blobs blobStore,
) *Service {
	return &Service{
		videos: videos,
		blobs:  blobs,
		log:    log.With("service", "catalog"),
	}
}
