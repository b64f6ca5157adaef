package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// S3Store implements the ObjectStore interface using Amazon S3.
type S3Store struct {
	client *s3.Client
}

// S3Config holds optional overrides for S3 client initialization.
// Credentials come from the SDK default chain (environment, shared
// config, instance metadata).
type S3Config struct {
	// Region overrides the region resolved by the default chain.
	Region string
	// Endpoint points the client at an S3-compatible endpoint
	// (e.g. MinIO or localstack). Enables path-style addressing.
	Endpoint string
}

// NewS3Store creates a new S3 store client using the default credential chain.
func NewS3Store(ctx context.Context, config S3Config) (*S3Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	if config.Region != "" {
		cfg.Region = config.Region
	}

	var opts []func(*s3.Options)
	if config.Endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(config.Endpoint)
			// Custom endpoints rarely support virtual-hosted-style requests
			o.UsePathStyle = true
		})
	}

	return &S3Store{
		client: s3.NewFromConfig(cfg, opts...),
	}, nil
}

// FetchObject retrieves the object at bucket/key and returns its content.
func (s *S3Store) FetchObject(ctx context.Context, bucket, key string) ([]byte, error) {
	if err := validateObjectRef(bucket, key); err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			switch apiErr.ErrorCode() {
			case "NoSuchKey":
				return nil, fmt.Errorf("object %s does not exist in bucket %s", key, bucket)
			case "NoSuchBucket":
				return nil, fmt.Errorf("bucket %s does not exist", bucket)
			}
		}
		return nil, fmt.Errorf("failed to get object %s from bucket %s: %w", key, bucket, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s from bucket %s: %w", key, bucket, err)
	}

	return data, nil
}

// Close releases resources held by the store client.
// The S3 client doesn't require explicit cleanup.
func (s *S3Store) Close() error {
	return nil
}
