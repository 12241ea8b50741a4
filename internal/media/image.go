// Package media validates and stores uploaded images. Validation happens
// before any byte reaches storage; storage is an interface with a local-dir
// backend and an S3/MinIO backend.
package media

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/gassama94/drf-api/internal/shared/apperr"
)

const (
	MaxBytes = 2 * 1024 * 1024
	MaxDim   = 4096
)

// ValidateImage rejects payloads over 2 MiB or with either pixel dimension
// over 4096. The first violated check determines the message; a valid image
// passes through unchanged.
func ValidateImage(data []byte) error {
	if len(data) > MaxBytes {
		return apperr.Validation("Image size larger than 2MB!")
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return apperr.Validation("file is not a valid image")
	}
	if cfg.Height > MaxDim {
		return apperr.Validation("Image height larger than 4096px!")
	}
	if cfg.Width > MaxDim {
		return apperr.Validation("Image width larger than 4096px!")
	}
	return nil
}
