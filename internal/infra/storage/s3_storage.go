// Package storage implements the object-storage adapter over an S3 bucket
// through the Go CDK blob portable type.
package storage

import (
	"context"
	"fmt"

	"streesilk/config"
	"streesilk/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/s3blob" // register the s3:// scheme
)

type s3Storage struct {
	bucket     *blob.Bucket
	bucketName string
	region     string
}

// NewObjectStorage opens the configured S3 bucket. The returned storage
// writes objects and derives their public retrieval URLs; it never lists or
// deletes.
func NewObjectStorage(ctx context.Context, cfg *config.Config) (service.ObjectStorage, error) {
	if cfg.AWS == nil || cfg.AWS.Bucket.Name == "" {
		return nil, errors.New("bucket configuration is missing")
	}

	region := cfg.AWS.Bucket.Region
	if region == "" {
		region = cfg.AWS.Region
	}

	url := fmt.Sprintf("s3://%s?region=%s", cfg.AWS.Bucket.Name, region)
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open bucket")
	}

	return &s3Storage{
		bucket:     bucket,
		bucketName: cfg.AWS.Bucket.Name,
		region:     region,
	}, nil
}

// Upload writes the payload under key and returns its public URL.
func (s *s3Storage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", errors.Wrap(err, "failed to write object")
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucketName, s.region, key), nil
}

// Close releases the underlying bucket handle.
func (s *s3Storage) Close() error {
	return s.bucket.Close()
}
