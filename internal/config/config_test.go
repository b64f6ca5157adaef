package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"S3DIFF_STORAGE_TYPE",
		"S3DIFF_REGION",
		"S3DIFF_ENDPOINT",
		"S3DIFF_MINIO_ENDPOINT",
		"S3DIFF_MINIO_ACCESS_KEY",
		"S3DIFF_MINIO_SECRET_KEY",
		"S3DIFF_MINIO_USE_SSL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_DefaultsToS3(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StorageTypeS3, cfg.Storage.Type)
	assert.Empty(t, cfg.Storage.Region)
	assert.Empty(t, cfg.Storage.Endpoint)
}

func TestLoad_S3WithOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("S3DIFF_STORAGE_TYPE", "s3")
	t.Setenv("S3DIFF_REGION", "eu-west-1")
	t.Setenv("S3DIFF_ENDPOINT", "http://localhost:9000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StorageTypeS3, cfg.Storage.Type)
	assert.Equal(t, "eu-west-1", cfg.Storage.Region)
	assert.Equal(t, "http://localhost:9000", cfg.Storage.Endpoint)
}

func TestLoad_MinIO_Success(t *testing.T) {
	clearEnv(t)
	t.Setenv("S3DIFF_STORAGE_TYPE", "minio")
	t.Setenv("S3DIFF_MINIO_ENDPOINT", "localhost:9000")
	t.Setenv("S3DIFF_MINIO_ACCESS_KEY", "minioadmin")
	t.Setenv("S3DIFF_MINIO_SECRET_KEY", "minioadmin")
	t.Setenv("S3DIFF_MINIO_USE_SSL", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StorageTypeMinIO, cfg.Storage.Type)
	assert.Equal(t, "localhost:9000", cfg.Storage.MinIOEndpoint)
	assert.Equal(t, "minioadmin", cfg.Storage.MinIOAccessKey)
	assert.Equal(t, "minioadmin", cfg.Storage.MinIOSecretKey)
	assert.True(t, cfg.Storage.MinIOUseSSL)
}

func TestLoad_MinIO_MissingVars(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name: "missing endpoint",
			env: map[string]string{
				"S3DIFF_MINIO_ACCESS_KEY": "minioadmin",
				"S3DIFF_MINIO_SECRET_KEY": "minioadmin",
			},
			wantErr: "S3DIFF_MINIO_ENDPOINT is required",
		},
		{
			name: "missing access key",
			env: map[string]string{
				"S3DIFF_MINIO_ENDPOINT":   "localhost:9000",
				"S3DIFF_MINIO_SECRET_KEY": "minioadmin",
			},
			wantErr: "S3DIFF_MINIO_ACCESS_KEY is required",
		},
		{
			name: "missing secret key",
			env: map[string]string{
				"S3DIFF_MINIO_ENDPOINT":   "localhost:9000",
				"S3DIFF_MINIO_ACCESS_KEY": "minioadmin",
			},
			wantErr: "S3DIFF_MINIO_SECRET_KEY is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("S3DIFF_STORAGE_TYPE", "minio")
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_InvalidStorageType(t *testing.T) {
	clearEnv(t)
	t.Setenv("S3DIFF_STORAGE_TYPE", "gcs")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "invalid storage type")
}
