package storage

import (
	"context"
	"fmt"
	"io"

	"lawconnect.backend/internal/config"
)

// Storage stores uploaded objects under slash-separated keys.
type Storage interface {
	Save(ctx context.Context, key string, r io.Reader) error
	// Delete removes the object. A missing object is not an error.
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

var newS3Storage = func(ctx context.Context, cfg S3Config) (Storage, error) {
	return NewS3Storage(ctx, cfg)
}

// New builds the driver selected by STORAGE_DRIVER.
func New(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.Storage.Driver {
	case "", "local":
		return NewLocalStorage(cfg.Upload.Dir, "/uploads")
	case "s3":
		return newS3Storage(ctx, S3Config{
			Region:    cfg.Storage.Region,
			Bucket:    cfg.Storage.Bucket,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Endpoint:  cfg.Storage.Endpoint,
		})
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
