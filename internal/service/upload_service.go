// FILE: internal/service/upload_service.go
// Validates logo uploads and hands them to the image host
package service

import (
	"context"
	"strings"

	"compare-audius-be/internal/dto"
	"compare-audius-be/internal/pkg/apperror"
	"compare-audius-be/internal/pkg/logger"
	"compare-audius-be/pkg/storage"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
)

const MaxUploadBytes = 2 * 1024 * 1024

const svgMIME = "image/svg+xml"

var allowedImageTypes = []string{"image/png", "image/jpeg", "image/webp", svgMIME}

type IUploadService interface {
	UploadLogo(ctx context.Context, filename, declaredType string, data []byte) (*dto.UploadResponse, error)
}

type uploadService struct {
	store  storage.ImageStore
	logger logger.ILogger
}

func NewUploadService(store storage.ImageStore, logger logger.ILogger) IUploadService {
	return &uploadService{store: store, logger: logger}
}

func (s *uploadService) UploadLogo(ctx context.Context, filename, declaredType string, data []byte) (*dto.UploadResponse, error) {
	if len(data) == 0 {
		return nil, apperror.Validation("No file provided")
	}
	if len(data) > MaxUploadBytes {
		return nil, FileTooLargeError(int64(len(data)))
	}

	contentType := DetectImageType(data, declaredType)
	if contentType == "" {
		shown := declaredType
		if shown == "" {
			shown = mimetype.Detect(data).String()
		}
		return nil, apperror.Validation("Invalid file type: %s. Allowed: PNG, JPG, WebP, SVG", shown)
	}

	img, err := s.store.Upload(ctx, filename, data)
	if err != nil {
		s.logger.Error("UPLOAD", "Image upload failed", map[string]interface{}{"file": filename, "error": err.Error()})
		return nil, apperror.Wrap(apperror.KindInternal, err, "Upload failed")
	}

	s.logger.Info("UPLOAD", "Logo uploaded", map[string]interface{}{
		"file":     filename,
		"publicId": img.PublicId,
		"size":     humanize.Bytes(uint64(len(data))),
	})

	return &dto.UploadResponse{
		Url:      img.URL,
		PublicId: img.PublicId,
		Width:    img.Width,
		Height:   img.Height,
		Format:   img.Format,
	}, nil
}

func FileTooLargeError(size int64) error {
	return apperror.Validation("File too large: %s. Max: %s", humanize.IBytes(uint64(size)), humanize.IBytes(MaxUploadBytes))
}

// DetectImageType sniffs the content and returns the allowed MIME type it
// matches, or "". SVG sniffs as XML or text, so the declared type is
// trusted for it when the content is textual.
func DetectImageType(data []byte, declaredType string) string {
	detected := mimetype.Detect(data)
	for _, allowed := range allowedImageTypes {
		if detected.Is(allowed) {
			return allowed
		}
	}

	if strings.EqualFold(strings.TrimSpace(declaredType), svgMIME) {
		for m := detected; m != nil; m = m.Parent() {
			if m.Is("text/plain") {
				return svgMIME
			}
		}
	}
	return ""
}
