package storage

import (
	"context"
	"io"
)

// UploadedImage is the stored asset reference returned after an upload.
type UploadedImage struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
}

// StorageService stores salon branding assets and staff photos.
type StorageService interface {
	UploadImage(ctx context.Context, file io.Reader, folder string) (*UploadedImage, error)
	DeleteImage(ctx context.Context, publicID string) error
}
