package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appconfig "curiocart/internal/config"
)

// S3Storage implements StorageService against any S3-compatible bucket
// (AWS S3, Cloudflare R2, MinIO).
type S3Storage struct {
	client   *s3.Client
	uploader *manager.Uploader
	cfg      appconfig.S3Config
}

// NewS3Storage creates an S3 storage service. It fails fast when credentials
// or the bucket are not configured.
func NewS3Storage(cfg appconfig.S3Config) (*S3Storage, error) {
	if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" || cfg.Bucket == "" {
		return nil, errors.New("s3 storage not configured")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Storage{
		client:   client,
		uploader: manager.NewUploader(client),
		cfg:      cfg,
	}, nil
}

// Upload streams the file into the bucket.
func (s *S3Storage) Upload(ctx context.Context, key string, reader io.Reader, contentType string) (string, error) {
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        reader,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("storage: s3 upload %s: %w", key, err)
	}
	return s.URL(key), nil
}

// Delete removes an object from the bucket.
func (s *S3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("storage: s3 delete %s: %w", key, err)
	}
	return nil
}

// URL returns the public URL for an object.
func (s *S3Storage) URL(key string) string {
	return strings.TrimRight(s.cfg.PublicURL, "/") + "/" + strings.TrimLeft(key, "/")
}

// HealthCheck verifies the bucket is reachable.
func (s *S3Storage) HealthCheck(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.cfg.Bucket)})
	if err != nil {
		return fmt.Errorf("storage: s3 head bucket: %w", err)
	}
	return nil
}

// NewStorageService picks the S3 driver when it is configured and healthy,
// local disk otherwise.
func NewStorageService(cfg *appconfig.Config, log *slog.Logger) StorageService {
	s3Storage, err := NewS3Storage(cfg.S3)
	if err != nil {
		log.Info("using local upload storage", "dir", cfg.Upload.Dir)
		return NewLocalStorage(cfg.Upload.Dir, cfg.Upload.PublicPath)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s3Storage.HealthCheck(ctx); err != nil {
		log.Warn("s3 storage unhealthy, falling back to local disk", "error", err)
		return NewLocalStorage(cfg.Upload.Dir, cfg.Upload.PublicPath)
	}

	log.Info("using s3 upload storage", "bucket", cfg.S3.Bucket)
	return s3Storage
}
