package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"compare-audius-be/internal/pkg/apperror"
	"compare-audius-be/internal/pkg/logger"
	"compare-audius-be/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
	svgBytes = []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><rect width="10" height="10"/></svg>`)
)

type fakeImageStore struct {
	uploads []string
	err     error
}

func (f *fakeImageStore) Upload(ctx context.Context, filename string, data []byte) (*storage.UploadedImage, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.uploads = append(f.uploads, filename)
	return &storage.UploadedImage{
		URL:      "https://res.cloudinary.test/logos/" + filename,
		PublicId: "logos/" + filename,
		Width:    200,
		Height:   200,
		Format:   "png",
	}, nil
}

func TestDetectImageType(t *testing.T) {
	assert.Equal(t, "image/png", DetectImageType(pngBytes, "image/png"))
	assert.Equal(t, "image/png", DetectImageType(pngBytes, "application/octet-stream"))
	assert.Equal(t, "image/svg+xml", DetectImageType(svgBytes, ""))
	assert.Equal(t, "", DetectImageType([]byte("%PDF-1.7\n"), "image/png"), "declared type never overrides binary content")
	assert.Equal(t, "", DetectImageType([]byte("just text"), "text/plain"))
}

func TestUploadService_UploadLogo(t *testing.T) {
	ctx := context.Background()

	t.Run("stores valid image", func(t *testing.T) {
		store := &fakeImageStore{}
		s := NewUploadService(store, logger.NewNopLogger())

		res, err := s.UploadLogo(ctx, "spotify.png", "image/png", pngBytes)
		require.NoError(t, err)
		assert.Equal(t, "https://res.cloudinary.test/logos/spotify.png", res.Url)
		assert.Equal(t, []string{"spotify.png"}, store.uploads)
	})

	t.Run("rejects empty file", func(t *testing.T) {
		s := NewUploadService(&fakeImageStore{}, logger.NewNopLogger())
		_, err := s.UploadLogo(ctx, "a.png", "image/png", nil)
		assert.EqualError(t, err, "No file provided")
	})

	t.Run("rejects oversized file", func(t *testing.T) {
		store := &fakeImageStore{}
		s := NewUploadService(store, logger.NewNopLogger())
		big := append(append([]byte{}, pngBytes...), bytes.Repeat([]byte{0}, MaxUploadBytes)...)

		_, err := s.UploadLogo(ctx, "big.png", "image/png", big)
		require.Error(t, err)
		assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
		assert.Contains(t, err.Error(), "Max: 2.0 MiB")
		assert.Empty(t, store.uploads)
	})

	t.Run("rejects other types", func(t *testing.T) {
		s := NewUploadService(&fakeImageStore{}, logger.NewNopLogger())
		_, err := s.UploadLogo(ctx, "doc.pdf", "application/pdf", []byte("%PDF-1.7\n"))
		assert.EqualError(t, err, "Invalid file type: application/pdf. Allowed: PNG, JPG, WebP, SVG")
	})

	t.Run("image host failure is internal", func(t *testing.T) {
		s := NewUploadService(&fakeImageStore{err: errors.New("503")}, logger.NewNopLogger())
		_, err := s.UploadLogo(ctx, "a.png", "image/png", pngBytes)
		assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
		assert.Equal(t, "Internal server error", apperror.PublicMessage(err))
	})
}
