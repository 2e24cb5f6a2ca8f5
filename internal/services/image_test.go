package services

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestImageServiceStoreGeneratesThumbnail(t *testing.T) {
	files := newMemStorage()
	svc := NewImageService(files)

	stored, err := svc.Store(context.Background(), bytes.NewReader(pngBytes(t, 800, 600)), "big.png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stored.Path, "/uploads/"))
	assert.True(t, strings.HasSuffix(stored.Path, ".png"))
	assert.True(t, strings.HasPrefix(stored.Thumbnail, "/uploads/thumbs/"))
	assert.True(t, strings.HasSuffix(stored.Thumbnail, ".jpg"))
	assert.Len(t, files.files, 2)
}

func TestImageServiceStoreNonImagePayload(t *testing.T) {
	files := newMemStorage()
	svc := NewImageService(files)

	stored, err := svc.Store(context.Background(), strings.NewReader("not an image"), "odd.png")
	require.NoError(t, err)

	// The original is stored as-is; only the variant is skipped.
	assert.NotEmpty(t, stored.Path)
	assert.Empty(t, stored.Thumbnail)
	assert.Len(t, files.files, 1)
}
