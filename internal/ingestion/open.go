package ingestion

import (
	"context"
	"fmt"
	"os"

	"github.com/resumate/resumate/pkg/config"
)

// OpenStorage builds the StorageClient selected by cfg.Backend. S3
// credentials fall back to the default AWS chain unless
// AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY are set.
func OpenStorage(ctx context.Context, cfg config.StorageConfig) (StorageClient, error) {
	switch cfg.Backend {
	case "", "local":
		dir := cfg.LocalDir
		if dir == "" {
			dir = "./data"
		}
		return NewLocalStorage(dir), nil
	case "s3":
		if cfg.Bucket == "" {
			return nil, fmt.Errorf("storage: s3 backend requires a bucket")
		}
		return NewS3Storage(ctx, S3Config{
			Bucket:    cfg.Bucket,
			Region:    cfg.Region,
			Endpoint:  cfg.Endpoint,
			Prefix:    cfg.Prefix,
			AccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		})
	case "gcs":
		if cfg.Bucket == "" {
			return nil, fmt.Errorf("storage: gcs backend requires a bucket")
		}
		return NewGCSStorage(ctx, cfg.Bucket, cfg.Prefix)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", cfg.Backend)
	}
}
