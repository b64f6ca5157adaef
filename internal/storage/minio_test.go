package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMinIOStore(t *testing.T) {
	tests := []struct {
		name      string
		config    MinIOConfig
		wantError bool
		errorMsg  string
	}{
		{
			name: "empty endpoint",
			config: MinIOConfig{
				Endpoint:        "",
				AccessKeyID:     "minioadmin",
				SecretAccessKey: "minioadmin",
			},
			wantError: true,
			errorMsg:  "endpoint is required",
		},
		{
			name: "empty access key ID",
			config: MinIOConfig{
				Endpoint:        "localhost:9000",
				AccessKeyID:     "",
				SecretAccessKey: "minioadmin",
			},
			wantError: true,
			errorMsg:  "access key ID is required",
		},
		{
			name: "empty secret access key",
			config: MinIOConfig{
				Endpoint:        "localhost:9000",
				AccessKeyID:     "minioadmin",
				SecretAccessKey: "",
			},
			wantError: true,
			errorMsg:  "secret access key is required",
		},
		{
			name: "valid config",
			config: MinIOConfig{
				Endpoint:        "localhost:9000",
				AccessKeyID:     "minioadmin",
				SecretAccessKey: "minioadmin",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewMinIOStore(tt.config)
			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, store)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, store)
			assert.NoError(t, store.Close())
		})
	}
}
