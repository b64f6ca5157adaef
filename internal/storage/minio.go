package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOStore implements the ObjectStore interface using MinIO
// (S3-compatible storage).
type MinIOStore struct {
	client *minio.Client
}

// MinIOConfig holds the configuration for MinIO client initialization.
type MinIOConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
}

// NewMinIOStore creates a new MinIO store client.
func NewMinIOStore(config MinIOConfig) (*MinIOStore, error) {
	if config.Endpoint == "" {
		return nil, errors.New("endpoint is required")
	}
	if config.AccessKeyID == "" {
		return nil, errors.New("access key ID is required")
	}
	if config.SecretAccessKey == "" {
		return nil, errors.New("secret access key is required")
	}

	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKeyID, config.SecretAccessKey, ""),
		Secure: config.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	return &MinIOStore{client: client}, nil
}

// FetchObject retrieves the object at bucket/key and returns its content.
func (m *MinIOStore) FetchObject(ctx context.Context, bucket, key string) ([]byte, error) {
	if err := validateObjectRef(bucket, key); err != nil {
		return nil, err
	}

	obj, err := m.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s from bucket %s: %w", key, bucket, err)
	}
	defer obj.Close()

	// GetObject is lazy; missing objects only surface on read
	data, err := io.ReadAll(obj)
	if err != nil {
		var minioErr minio.ErrorResponse
		if errors.As(err, &minioErr) && minioErr.Code == "NoSuchKey" {
			return nil, fmt.Errorf("object %s does not exist in bucket %s", key, bucket)
		}
		return nil, fmt.Errorf("failed to read object %s from bucket %s: %w", key, bucket, err)
	}

	return data, nil
}

// Close releases resources held by the store client.
// The MinIO client doesn't require explicit cleanup.
func (m *MinIOStore) Close() error {
	return nil
}
