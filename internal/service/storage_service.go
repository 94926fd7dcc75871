package service

import (
	"context"
	"io"
	"time"

	"ime-admin-service/config"
	"ime-admin-service/pkg/apperr"

	"github.com/minio/minio-go/v7"
)

// StorageService is the opaque-key object storage contract: store bytes
// and get back a key, or turn a key into a time-limited download URL.
type StorageService interface {
	Upload(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) error
	PresignedGetURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error)
}

type minioStorageService struct {
	client *minio.Client
	bucket string
}

func NewMinioStorageService(client *minio.Client, cfg config.MinioConfig) StorageService {
	return &minioStorageService{
		client: client,
		bucket: cfg.Bucket,
	}
}

func (s *minioStorageService) Upload(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, objectKey, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return apperr.Dependency("failed to store document", err)
	}
	return nil
}

func (s *minioStorageService) PresignedGetURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, objectKey, expiry, nil)
	if err != nil {
		return "", apperr.Dependency("failed to create download link", err)
	}
	return u.String(), nil
}
