package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	portssvc "github.com/invomate/invomate_app/internal/core/ports/services"
	"github.com/invomate/invomate_app/internal/middleware"
	"github.com/invomate/invomate_app/internal/platform/config"
)

// MinioStorage uploads files to an S3-compatible bucket and returns public
// URLs. Uploads are a single attempt; failures surface to the caller.
type MinioStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

var _ portssvc.FileStorageSvc = (*MinioStorage)(nil)

// NewMinioStorage connects to the configured endpoint and ensures the bucket exists.
func NewMinioStorage(ctx context.Context, cfg *config.Config) (*MinioStorage, error) {
	client, err := minio.New(cfg.StorageEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.StorageAccessKey, cfg.StorageSecretKey, ""),
		Secure: cfg.StorageUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.StorageBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.StorageBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.StorageBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.StorageBucket, err)
		}
	}

	return &MinioStorage{
		client:    client,
		bucket:    cfg.StorageBucket,
		publicURL: strings.TrimSuffix(cfg.StoragePublicURL, "/"),
	}, nil
}

// Upload stores data under folder/filename and returns its public URL.
func (s *MinioStorage) Upload(ctx context.Context, folder string, filename string, contentType string, data []byte) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	objectName := folder + "/" + filename
	_, err := s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		logger.Error("object upload failed", "bucket", s.bucket, "object", objectName, "error", err)
		return "", fmt.Errorf("failed to upload %s: %w", objectName, err)
	}

	logger.Info("object uploaded", "bucket", s.bucket, "object", objectName, "bytes", len(data))
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, objectName), nil
}
