package blob

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3API is the subset of *s3.Client used by S3Store.
type S3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadBucket(ctx context.Context, in *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

// S3Options configures an S3Store.
type S3Options struct {
	Bucket        string
	Region        string
	Prefix        string
	PublicBaseURL string // when empty, the virtual-hosted bucket URL is used
	PublicRead    bool
}

// S3Store uploads video blobs with PutObject.
type S3Store struct {
	api   S3API
	opts  S3Options
	newID func() string
}

// NewS3Client builds an S3 client. A non-empty endpoint switches to
// path-style addressing against that endpoint (MinIO, LocalStack).
func NewS3Client(cfg aws.Config, endpoint string) *s3.Client {
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
}

// NewS3Store creates an S3-backed blob store.
func NewS3Store(api S3API, opts S3Options) *S3Store {
	return &S3Store{api: api, opts: opts, newID: newBlobID}
}

// Upload stores data under a fresh blob id and returns its public locator.
func (s *S3Store) Upload(ctx context.Context, data []byte) (string, string, error) {
	blobID := s.newID()
	key := objectKey(s.opts.Prefix, blobID)

	in := &s3.PutObjectInput{
		Bucket:        aws.String(s.opts.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if s.opts.PublicRead {
		in.ACL = types.ObjectCannedACLPublicRead
	}

	if _, err := s.api.PutObject(ctx, in); err != nil {
		return "", "", fmt.Errorf("put s3://%s/%s: %w", s.opts.Bucket, key, err)
	}

	return s.locator(key), blobID, nil
}

func (s *S3Store) locator(key string) string {
	if s.opts.PublicBaseURL != "" {
		return joinURL(s.opts.PublicBaseURL, key)
	}
	return joinURL(fmt.Sprintf("https://%s.s3.%s.amazonaws.com", s.opts.Bucket, s.opts.Region), key)
}

// Ping checks that the bucket exists and is reachable.
func (s *S3Store) Ping(ctx context.Context) error {
	_, err := s.api.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.opts.Bucket)})
	if err != nil {
		return fmt.Errorf("head bucket %s: %w", s.opts.Bucket, err)
	}
	return nil
}
