package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/heartmarshall/edustream-backend/internal/adapter/blob"
	"github.com/heartmarshall/edustream-backend/internal/adapter/dynamo"
	"github.com/heartmarshall/edustream-backend/internal/adapter/postgres"
	pgdownload "github.com/heartmarshall/edustream-backend/internal/adapter/postgres/download"
	pgvideo "github.com/heartmarshall/edustream-backend/internal/adapter/postgres/video"
	"github.com/heartmarshall/edustream-backend/internal/config"
	"github.com/heartmarshall/edustream-backend/internal/service/catalog"
	"github.com/heartmarshall/edustream-backend/internal/service/tracking"
	"github.com/heartmarshall/edustream-backend/internal/transport/rest"
	"github.com/heartmarshall/edustream-backend/migrations"
)

// Backend holds the services built from the configured stores.
type Backend struct {
	Catalog  *catalog.Service
	Tracking *tracking.Service

	// Checks are probed by the health endpoints.
	Checks []rest.Check

	// Media serves fs blobs; nil for the s3 driver.
	Media http.Handler

	closers []func()
}

// NewBackend connects to the configured catalog store, download log and
// blob store, and builds the services on top of them.
func NewBackend(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Backend, error) {
	b := &Backend{}

	var awsCfg *aws.Config
	loadAWS := func() (aws.Config, error) {
		if awsCfg != nil {
			return *awsCfg, nil
		}
		c, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWS.Region))
		if err != nil {
			return aws.Config{}, fmt.Errorf("load aws config: %w", err)
		}
		awsCfg = &c
		return c, nil
	}

	var (
		videos    videoStore
		downloads downloadStore
	)

	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		if cfg.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS, logger); err != nil {
				return nil, err
			}
		}
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, pool.Close)
		b.Checks = append(b.Checks, rest.Check{Name: "database", Pinger: pool})
		videos = pgvideo.New(pool)
		downloads = pgdownload.New(pool)

	case config.BackendDynamoDB:
		c, err := loadAWS()
		if err != nil {
			return nil, err
		}
		client := dynamo.NewClient(c, cfg.AWS.Endpoint)
		videoRepo := dynamo.NewVideoRepo(client, cfg.DynamoDB.VideosTable)
		downloadRepo := dynamo.NewDownloadRepo(client, cfg.DynamoDB.DownloadsTable, cfg.DynamoDB.UIDIndex)
		b.Checks = append(b.Checks,
			rest.Check{Name: "videos", Pinger: videoRepo},
			rest.Check{Name: "downloads", Pinger: downloadRepo},
		)
		videos = videoRepo
		downloads = downloadRepo

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	var blobs blobStore
	switch cfg.Blob.Driver {
	case config.BlobDriverS3:
		c, err := loadAWS()
		if err != nil {
			b.Close()
			return nil, err
		}
		store := blob.NewS3Store(blob.NewS3Client(c, cfg.AWS.Endpoint), blob.S3Options{
			Bucket:        cfg.Blob.Bucket,
			Region:        cfg.AWS.Region,
			Prefix:        cfg.Blob.Prefix,
			PublicBaseURL: cfg.Blob.PublicBaseURL,
			PublicRead:    cfg.Blob.PublicRead,
		})
		b.Checks = append(b.Checks, rest.Check{Name: "blob", Pinger: store})
		blobs = store

	case config.BlobDriverFS:
		if err := os.MkdirAll(cfg.Blob.RootDir, 0o755); err != nil {
			b.Close()
			return nil, fmt.Errorf("create blob root: %w", err)
		}
		store := blob.NewFSStore(cfg.Blob.RootDir, cfg.Blob.Prefix, cfg.Blob.PublicBaseURL)
		b.Checks = append(b.Checks, rest.Check{Name: "blob", Pinger: store})
		b.Media = store.Handler()
		blobs = store

	default:
		b.Close()
		return nil, fmt.Errorf("unknown blob driver %q", cfg.Blob.Driver)
	}

	b.Catalog = catalog.NewService(logger, videos, blobs)
	b.Tracking = tracking.NewService(logger, downloads)

	logger.Info("backend ready",
		slog.String("storage", cfg.Storage.Backend),
		slog.String("blob", cfg.Blob.Driver),
	)
	return b, nil
}

// Close releases store connections.
func (b *Backend) Close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}
