package storage

import (
	"fmt"
	"strings"
)

// AllowedImageTypes defines the accepted MIME types for CMS uploads.
// The media library holds page imagery only, so everything else is
// rejected at the door.
var AllowedImageTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// ValidateImage checks content type and size before accepting an upload.
func (s *MinIOService) ValidateImage(contentType string, sizeBytes int64) error {
	normalized := strings.Split(contentType, ";")[0]
	normalized = strings.TrimSpace(strings.ToLower(normalized))

	if !AllowedImageTypes[normalized] {
		return fmt.Errorf("content type %q is not allowed", contentType)
	}
	if sizeBytes <= 0 {
		return fmt.Errorf("file size must be greater than 0")
	}
	if sizeBytes > s.maxFileSize {
		return fmt.Errorf("file size %d bytes exceeds maximum allowed size of %d bytes", sizeBytes, s.maxFileSize)
	}
	return nil
}
