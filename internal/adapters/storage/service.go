// Package storage provides an S3-compatible object store adapter for
// the CMS image library.
package storage

import (
	"context"
	"io"
	"time"
)

// Object describes a stored image for the admin media library.
type Object struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"contentType"`
	LastModified time.Time `json:"lastModified"`
	URL          string    `json:"url"`
}

// ImageStore defines the object storage operations the CMS needs.
type ImageStore interface {
	// Upload stores an image under the folder prefix and returns the
	// generated file key.
	Upload(ctx context.Context, folder, fileName, contentType string, reader io.Reader, size int64) (string, error)

	// List returns the stored images under a folder prefix.
	List(ctx context.Context, folder string) ([]Object, error)

	// Delete removes one stored image.
	Delete(ctx context.Context, fileKey string) error

	// PublicURL builds the browser-reachable URL of a stored image.
	PublicURL(fileKey string) string

	// ValidateImage checks content type and size before accepting an upload.
	ValidateImage(contentType string, sizeBytes int64) error

	// EnsureBucket creates the backing bucket if it doesn't exist.
	EnsureBucket(ctx context.Context) error
}

// Config defines the configuration surface for the store.
type Config interface {
	GetMinIOEndpoint() string
	GetMinIOAccessKey() string
	GetMinIOSecretKey() string
	GetMinIOUseSSL() bool
	GetMinIOPublicBaseURL() string
	GetMinIOMaxFileSize() int64
	GetMinioBucketCMSImages() string
	IsMinIOEnabled() bool
}
