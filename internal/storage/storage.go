package storage

import (
	"context"
	"errors"
)

// ObjectStore defines the capability the comparer needs from a remote
// object store. Implementations include S3 for production, MinIO for
// local development, and an in-memory store for tests.
type ObjectStore interface {
	// FetchObject retrieves the raw bytes of the object identified by
	// bucket and key. Returns a descriptive error on any access problem,
	// including a missing object.
	FetchObject(ctx context.Context, bucket, key string) ([]byte, error)

	// Close releases any resources held by the store client.
	Close() error
}

// validateObjectRef validates that bucket and key are not empty.
func validateObjectRef(bucket, key string) error {
	if bucket == "" {
		return errors.New("bucket is required")
	}
	if key == "" {
		return errors.New("key is required")
	}
	return nil
}
