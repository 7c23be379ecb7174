package storage

import (
	"context"
	"time"
)

// ObjectInfo describes one stored blob.
type ObjectInfo struct {
	Name      string
	CreatedAt time.Time
	Size      int64
}

// BlobStore is the object-storage capability the backup pipeline and the
// retention sweeper run against. Implementations must overwrite on Upload
// when an object with the same name already exists.
type BlobStore interface {
	Upload(ctx context.Context, bucket, name string, data []byte, contentType string) error
	Download(ctx context.Context, bucket, name string) ([]byte, error)
	List(ctx context.Context, bucket string) ([]ObjectInfo, error)
	Remove(ctx context.Context, bucket, name string) error
	RemoveMany(ctx context.Context, bucket string, names []string) error
}
