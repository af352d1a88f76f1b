package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("server.max_upload_bytes must be > 0 (got %d)", c.Server.MaxUploadBytes)
	}
	if c.Server.RateLimitPerMinute < 0 {
		return fmt.Errorf("server.rate_limit_per_minute must be >= 0 (got %d)", c.Server.RateLimitPerMinute)
	}

	switch c.Storage.Backend {
	case BackendPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for storage backend %q", BackendPostgres)
		}
	case BackendDynamoDB:
		if c.DynamoDB.VideosTable == "" || c.DynamoDB.DownloadsTable == "" {
			return fmt.Errorf("dynamodb.videos_table and dynamodb.downloads_table are required for storage backend %q", BackendDynamoDB)
		}
	default:
		return fmt.Errorf("storage.backend must be %q or %q (got %q)", BackendPostgres, BackendDynamoDB, c.Storage.Backend)
	}

	if err := c.Blob.validate(); err != nil {
		return fmt.Errorf("blob: %w", err)
	}

	if c.Auth.Enabled() && len(c.Auth.TokenSecret) < 32 {
		return fmt.Errorf("auth.token_secret must be at least 32 characters (got %d)", len(c.Auth.TokenSecret))
	}

	return nil
}

func (b *BlobConfig) validate() error {
	switch b.Driver {
	case BlobDriverS3:
		if b.Bucket == "" {
			return fmt.Errorf("bucket is required for driver %q", BlobDriverS3)
		}
	case BlobDriverFS:
		if b.RootDir == "" {
			return fmt.Errorf("root_dir is required for driver %q", BlobDriverFS)
		}
		if b.PublicBaseURL == "" {
			return fmt.Errorf("public_base_url is required for driver %q", BlobDriverFS)
		}
	default:
		return fmt.Errorf("driver must be %q or %q (got %q)", BlobDriverS3, BlobDriverFS, b.Driver)
	}
	return nil
}
