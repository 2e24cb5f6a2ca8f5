package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage stores files on the local filesystem under a fixed root and
// serves them under a public URL prefix.
type LocalStorage struct {
	root       string
	publicPath string
}

// NewLocalStorage creates a local storage service rooted at dir.
func NewLocalStorage(dir, publicPath string) *LocalStorage {
	return &LocalStorage{
		root:       dir,
		publicPath: strings.TrimRight(publicPath, "/"),
	}
}

func (s *LocalStorage) abs(key string) string {
	return filepath.Join(s.root, filepath.FromSlash(key))
}

// Upload writes the file to disk. The write is synchronous: when Upload
// returns, the file is durably on disk.
func (s *LocalStorage) Upload(ctx context.Context, key string, reader io.Reader, contentType string) (string, error) {
	full := s.abs(key)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("storage: mkdir for %s: %w", key, err)
	}

	f, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("storage: create %s: %w", key, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, reader); err != nil {
		return "", fmt.Errorf("storage: write %s: %w", key, err)
	}
	if err := f.Sync(); err != nil {
		return "", fmt.Errorf("storage: sync %s: %w", key, err)
	}
	return s.URL(key), nil
}

// Delete removes a stored file. A missing file is not an error.
func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	if err := os.Remove(s.abs(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: delete %s: %w", key, err)
	}
	return nil
}

// URL returns the public path for a stored key.
func (s *LocalStorage) URL(key string) string {
	return s.publicPath + "/" + strings.TrimLeft(filepath.ToSlash(key), "/")
}
