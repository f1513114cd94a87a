package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOService implements ImageStore using MinIO.
type MinIOService struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
	maxFileSize   int64
}

// NewMinIOService creates a new MinIO-backed image store.
func NewMinIOService(cfg Config) (*MinIOService, error) {
	if !cfg.IsMinIOEnabled() {
		return nil, fmt.Errorf("MinIO is not configured")
	}

	client, err := minio.New(cfg.GetMinIOEndpoint(), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.GetMinIOAccessKey(), cfg.GetMinIOSecretKey(), ""),
		Secure: cfg.GetMinIOUseSSL(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	publicBaseURL := cfg.GetMinIOPublicBaseURL()
	if publicBaseURL == "" {
		scheme := "http"
		if cfg.GetMinIOUseSSL() {
			scheme = "https"
		}
		publicBaseURL = fmt.Sprintf("%s://%s/%s", scheme, cfg.GetMinIOEndpoint(), cfg.GetMinioBucketCMSImages())
	}

	return &MinIOService{
		client:        client,
		bucket:        cfg.GetMinioBucketCMSImages(),
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		maxFileSize:   cfg.GetMinIOMaxFileSize(),
	}, nil
}

var _ ImageStore = (*MinIOService)(nil)

// EnsureBucket creates the bucket if it doesn't exist.
func (s *MinIOService) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
		}
	}

	return nil
}

// Upload stores an image under a unique key so repeated uploads of the
// same file name never overwrite each other.
func (s *MinIOService) Upload(ctx context.Context, folder, fileName, contentType string, reader io.Reader, size int64) (string, error) {
	ext := path.Ext(fileName)
	baseName := strings.TrimSuffix(fileName, ext)
	uniqueFileName := fmt.Sprintf("%s_%s%s", baseName, uuid.New().String()[:8], ext)
	fileKey := filepath.ToSlash(filepath.Join(folder, uniqueFileName))

	_, err := s.client.PutObject(ctx, s.bucket, fileKey, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file %s: %w", fileKey, err)
	}
	return fileKey, nil
}

// List returns the stored images under a folder prefix.
func (s *MinIOService) List(ctx context.Context, folder string) ([]Object, error) {
	prefix := strings.TrimRight(folder, "/")
	if prefix != "" {
		prefix += "/"
	}

	var objects []Object
	for info := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if info.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", info.Err)
		}
		objects = append(objects, Object{
			Key:          info.Key,
			Size:         info.Size,
			ContentType:  info.ContentType,
			LastModified: info.LastModified,
			URL:          s.PublicURL(info.Key),
		})
	}

	return objects, nil
}

// Delete removes one stored image.
func (s *MinIOService) Delete(ctx context.Context, fileKey string) error {
	err := s.client.RemoveObject(ctx, s.bucket, fileKey, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", fileKey, err)
	}
	return nil
}

// PublicURL builds the browser-reachable URL of a stored image.
func (s *MinIOService) PublicURL(fileKey string) string {
	return s.publicBaseURL + "/" + strings.TrimLeft(fileKey, "/")
}
