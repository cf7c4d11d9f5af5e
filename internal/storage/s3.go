package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ImageStore is the narrow boundary the upload endpoint talks to. The rest
// of the system only ever sees the returned HTTPS URL; the key doubles as
// the deletion handle.
type ImageStore interface {
	Put(ctx context.Context, data io.Reader, contentType string) (url, key string, err error)
	Delete(ctx context.Context, key string) error
}

// S3Config holds configuration for S3-compatible object storage.
type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string // Optional: DO Spaces, R2, MinIO, etc.
	AccessKeyID     string
	SecretAccessKey string
	Prefix          string // key prefix, e.g. "listings"
}

type s3Store struct {
	client *s3.Client
	cfg    S3Config
}

// NewS3ImageStore builds an ImageStore over an S3-compatible bucket.
func NewS3ImageStore(ctx context.Context, cfg S3Config) (ImageStore, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	var client *s3.Client
	if cfg.Endpoint != "" {
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	} else {
		client = s3.NewFromConfig(awsCfg)
	}

	return &s3Store{client: client, cfg: cfg}, nil
}

func (s *s3Store) Put(ctx context.Context, data io.Reader, contentType string) (string, string, error) {
	ext := extensionFor(contentType)
	key := strings.TrimSuffix(s.cfg.Prefix, "/") + "/" + uuid.NewString() + ext

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        data,
		ContentType: aws.String(contentType),
		ACL:         "public-read",
	})
	if err != nil {
		return "", "", fmt.Errorf("put object: %w", err)
	}
	return s.publicURL(key), key, nil
}

func (s *s3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

func (s *s3Store) publicURL(key string) string {
	if s.cfg.Endpoint != "" {
		host := strings.TrimPrefix(s.cfg.Endpoint, "https://")
		return fmt.Sprintf("https://%s.%s/%s", s.cfg.Bucket, host, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}
