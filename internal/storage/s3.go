// Package storage persists uploaded media assets in S3-compatible
// object storage (MinIO in local development).
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Config holds connection settings for the object store
type S3Config struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	Region          string
	PublicURL       string // base URL the bucket is served from
}

// S3Storage stores client briefings and post assets
type S3Storage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewS3Storage creates a new S3 storage client. Path-style addressing is
// forced so the same configuration works against MinIO.
func NewS3Storage(cfg S3Config) (*S3Storage, error) {
	client := s3.New(s3.Options{
		Region:       cfg.Region,
		BaseEndpoint: aws.String(cfg.Endpoint),
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID, cfg.SecretAccessKey, "",
		),
		UsePathStyle: true,
	})

	return &S3Storage{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: cfg.PublicURL,
	}, nil
}

// UploadInput represents input for uploading a file
type UploadInput struct {
	Reader      io.Reader
	ContentType string
	Size        int64
	Filename    string
}

// UploadOutput represents output from uploading a file
type UploadOutput struct {
	Key        string
	URL        string
	Size       int64
	UploadedAt time.Time
}

var extByContentType = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
	"video/mp4":       ".mp4",
	"video/quicktime": ".mov",
	"application/pdf": ".pdf",
}

// objectKey builds a date-partitioned key so assets of one day share a
// prefix and keys never collide
func objectKey(filename, contentType string, now time.Time) string {
	ext := path.Ext(filename)
	if ext == "" {
		ext = extByContentType[contentType]
	}
	return fmt.Sprintf("assets/%s/%s%s", now.Format("2006/01/02"), uuid.New().String(), ext)
}

// Upload stores a file and returns its public URL
func (s *S3Storage) Upload(ctx context.Context, in UploadInput) (*UploadOutput, error) {
	now := time.Now()
	key := objectKey(in.Filename, in.ContentType, now)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          in.Reader,
		ContentType:   aws.String(in.ContentType),
		ContentLength: aws.Int64(in.Size),
	})
	if err != nil {
		return nil, fmt.Errorf("uploading to s3: %w", err)
	}

	return &UploadOutput{
		Key:        key,
		URL:        s.publicURL + "/" + key,
		Size:       in.Size,
		UploadedAt: now,
	}, nil
}

// Delete removes a file from the bucket
func (s *S3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("deleting from s3: %w", err)
	}
	return nil
}
