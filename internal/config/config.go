package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Storage  StorageConfig  `yaml:"storage"`
	AWS      AWSConfig      `yaml:"aws"`
	DynamoDB DynamoDBConfig `yaml:"dynamodb"`
	Blob     BlobConfig     `yaml:"blob"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// Storage backends for the catalog and download log.
const (
	BackendPostgres = "postgres"
	BackendDynamoDB = "dynamodb"
)

// Blob drivers for raw video bytes.
const (
	BlobDriverS3 = "s3"
	BlobDriverFS = "fs"
)

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"5001"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes" env:"SERVER_MAX_UPLOAD_BYTES" env-default:"536870912"`

	// RateLimitPerMinute caps write requests per client IP; 0 disables the limit.
	RateLimitPerMinute int `yaml:"rate_limit_per_minute" env:"SERVER_RATE_LIMIT_PER_MINUTE" env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// StorageConfig selects where video records and download events live.
type StorageConfig struct {
	Backend string `yaml:"backend" env:"STORAGE_BACKEND" env-default:"postgres"`
}

// AWSConfig holds settings shared by the S3 and DynamoDB clients.
// Endpoint overrides the service endpoint (LocalStack, MinIO).
type AWSConfig struct {
	Region   string `yaml:"region"   env:"AWS_REGION"   env-default:"us-east-1"`
	Endpoint string `yaml:"endpoint" env:"AWS_ENDPOINT"`
}

// DynamoDBConfig names the tables used by the dynamodb storage backend.
type DynamoDBConfig struct {
	VideosTable    string `yaml:"videos_table"    env:"DYNAMODB_VIDEOS_TABLE"    env-default:"videos"`
	DownloadsTable string `yaml:"downloads_table" env:"DYNAMODB_DOWNLOADS_TABLE" env-default:"downloads"`
	UIDIndex       string `yaml:"uid_index"       env:"DYNAMODB_UID_INDEX"       env-default:"uid-index"`
}

// BlobConfig holds settings for the video blob store.
type BlobConfig struct {
	Driver        string `yaml:"driver"          env:"BLOB_DRIVER"          env-default:"s3"`
	Bucket        string `yaml:"bucket"          env:"BLOB_BUCKET"`
	Prefix        string `yaml:"prefix"          env:"BLOB_PREFIX"`
	PublicBaseURL string `yaml:"public_base_url" env:"BLOB_PUBLIC_BASE_URL"`
	PublicRead    bool   `yaml:"public_read"     env:"BLOB_PUBLIC_READ"     env-default:"true"`
	RootDir       string `yaml:"root_dir"        env:"BLOB_ROOT_DIR"        env-default:"./uploads"`
}

// AuthConfig holds bearer token settings. An empty TokenSecret disables
// token parsing entirely.
type AuthConfig struct {
	TokenSecret string `yaml:"token_secret" env:"AUTH_TOKEN_SECRET"`
	TokenIssuer string `yaml:"token_issuer" env:"AUTH_TOKEN_ISSUER" env-default:"edustream"`
}

// Enabled reports whether bearer tokens should be verified.
func (c AuthConfig) Enabled() bool {
	return c.TokenSecret != ""
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
