package config

import (
	"fmt"
	"os"
)

// StorageType represents the type of object store backend to use.
type StorageType string

const (
	StorageTypeS3    StorageType = "s3"
	StorageTypeMinIO StorageType = "minio"
)

// Config holds all configuration for s3diff.
type Config struct {
	Storage StorageConfig
}

// StorageConfig holds object store backend configuration.
type StorageConfig struct {
	Type StorageType

	// S3 configuration
	Region   string
	Endpoint string

	// MinIO configuration
	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOUseSSL    bool
}

// Load loads configuration from environment variables.
// Credentials for the S3 backend are not configured here; they come
// from the AWS SDK default chain.
func Load() (*Config, error) {
	cfg := &Config{}

	storageType := StorageType(getEnv("S3DIFF_STORAGE_TYPE", string(StorageTypeS3)))
	cfg.Storage.Type = storageType

	switch storageType {
	case StorageTypeS3:
		cfg.Storage.Region = os.Getenv("S3DIFF_REGION")
		cfg.Storage.Endpoint = os.Getenv("S3DIFF_ENDPOINT")
	case StorageTypeMinIO:
		cfg.Storage.MinIOEndpoint = os.Getenv("S3DIFF_MINIO_ENDPOINT")
		cfg.Storage.MinIOAccessKey = os.Getenv("S3DIFF_MINIO_ACCESS_KEY")
		cfg.Storage.MinIOSecretKey = os.Getenv("S3DIFF_MINIO_SECRET_KEY")
		cfg.Storage.MinIOUseSSL = getEnv("S3DIFF_MINIO_USE_SSL", "false") == "true"

		if cfg.Storage.MinIOEndpoint == "" {
			return nil, fmt.Errorf("S3DIFF_MINIO_ENDPOINT is required for minio storage")
		}
		if cfg.Storage.MinIOAccessKey == "" {
			return nil, fmt.Errorf("S3DIFF_MINIO_ACCESS_KEY is required for minio storage")
		}
		if cfg.Storage.MinIOSecretKey == "" {
			return nil, fmt.Errorf("S3DIFF_MINIO_SECRET_KEY is required for minio storage")
		}
	default:
		return nil, fmt.Errorf("invalid storage type: %s", storageType)
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
