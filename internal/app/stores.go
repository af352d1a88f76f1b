package app

import (
	"context"

	"github.com/heartmarshall/edustream-backend/internal/domain"
)

// videoStore is satisfied by both the postgres and dynamodb video repos.
type videoStore interface {
	Create(ctx context.Context, v domain.Video) error
	List(ctx context.Context) ([]domain.Video, error)
	GetByID(ctx context.Context, id string) (domain.Video, error)
	Update(ctx context.Context, v domain.Video) error
	Delete(ctx context.Context, id string) error
}

type downloadStore interface {
	Append(ctx context.Context, ev domain.DownloadEvent) (string, error)
	ListByUID(ctx context.Context, uid string) ([]domain.DownloadEvent, error)
}

type blobStore interface {
	Upload(ctx context.Context, data []byte) (locator, blobID string, err error)
	Ping(ctx context.Context) error
}
