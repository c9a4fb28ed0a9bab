package model

import (
	"context"
	"io"
)

// Storage abstracts the S3-compatible object store used for avatar and
// project images. Upload returns the public URL of the stored object.
type Storage interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader, size int64) (string, error)
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
}
