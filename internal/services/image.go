package services

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"
	"io"
	"strings"

	"github.com/disintegration/imaging"
)

// Thumbnail bounding box.
const (
	thumbWidth  = 300
	thumbHeight = 300
)

// ImageService stores uploaded images and derives a thumbnail variant.
type ImageService struct {
	storage StorageService
}

// NewImageService creates a new image service.
func NewImageService(storage StorageService) *ImageService {
	return &ImageService{storage: storage}
}

// StoredImage describes where an upload and its variants landed.
type StoredImage struct {
	Path      string
	Thumbnail string
}

// Store persists the uploaded file under a timestamp-derived key and, when the
// payload decodes as an image, a thumbnail next to it under thumbs/. A payload
// that does not decode is still stored as-is; only the variant is skipped.
func (s *ImageService) Store(ctx context.Context, reader io.Reader, filename string) (*StoredImage, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	key := uploadKey(filename)
	path, err := s.storage.Upload(ctx, key, bytes.NewReader(data), contentTypeFor(filename))
	if err != nil {
		return nil, err
	}

	stored := &StoredImage{Path: path}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return stored, nil
	}

	thumb := imaging.Fit(img, thumbWidth, thumbHeight, imaging.Lanczos)
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: 85}); err != nil {
		return stored, nil
	}

	thumbKey := "thumbs/" + strings.TrimSuffix(key, strings.ToLower(keyExt(key))) + ".jpg"
	thumbPath, err := s.storage.Upload(ctx, thumbKey, &buf, "image/jpeg")
	if err != nil {
		// The original is already stored; a failed variant is not fatal.
		return stored, nil
	}
	stored.Thumbnail = thumbPath

	return stored, nil
}

func keyExt(key string) string {
	if i := strings.LastIndex(key, "."); i >= 0 {
		return key[i:]
	}
	return ""
}
