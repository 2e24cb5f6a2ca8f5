package services

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StorageService defines the interface for file storage operations. Upload
// returns the public path or URL the stored file is reachable under.
type StorageService interface {
	Upload(ctx context.Context, key string, reader io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// uploadKey builds a collision-resistant object key from the submission time
// and the original extension, e.g. "1714412345678-9f1c2a.png".
func uploadKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:6], ext)
}

// contentTypeFor guesses a content type from the file extension, falling back
// to octet-stream.
func contentTypeFor(filename string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
