package server_test

import (
	"context"
	"testing"

	server "github.com/acearchive/files/server"
	config "github.com/acearchive/files/server/config"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
	zap "go.uber.org/zap"
	zaptest "go.uber.org/zap/zaptest"
)

type testFactory struct {
	provider string
}

func (f *testFactory) SupportedProvider() string {
	return f.provider
}

func TestProviderRegistry(t *testing.T) {
	registry := server.NewProviderRegistry[*testFactory]("test store")

	registry.Register("zeta", &testFactory{provider: "zeta"})
	registry.Register("alpha", &testFactory{provider: "alpha"})

	assert.Equal(t, []string{"alpha", "zeta"}, registry.GetProviders())

	factory, err := registry.GetFactory("alpha")
	require.NoError(t, err)
	assert.Equal(t, "alpha", factory.SupportedProvider())

	_, err = registry.GetFactory("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported test store provider: missing")
	assert.Contains(t, err.Error(), "alpha")
}

func TestProviderRegistry_MismatchPanics(t *testing.T) {
	registry := server.NewProviderRegistry[*testFactory]("test store")

	assert.Panics(t, func() {
		registry.Register("alpha", &testFactory{provider: "beta"})
	})
}

func TestSupportedProviders(t *testing.T) {
	assert.Equal(t, []string{"filesystem", "minio"}, server.GetSupportedObjectStoreProviders())
	assert.Equal(t, []string{"redis", "sqlite"}, server.GetSupportedMetadataStoreProviders())
}

func TestObjectStoreFactoryValidation(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.ObjectStoreConfig
		expectError string
	}{
		{
			name:        "unknown provider",
			cfg:         config.ObjectStoreConfig{Provider: "gcs"},
			expectError: "unsupported object store provider: gcs",
		},
		{
			name:        "minio without endpoint",
			cfg:         config.ObjectStoreConfig{Provider: "minio", BucketName: "artifacts"},
			expectError: "endpoint is required",
		},
		{
			name:        "minio without bucket",
			cfg:         config.ObjectStoreConfig{Provider: "minio", Endpoint: "localhost:9000"},
			expectError: "bucket name is required",
		},
		{
			name:        "filesystem without base path",
			cfg:         config.ObjectStoreConfig{Provider: "filesystem"},
			expectError: "base path is required",
		},
		{
			name:        "filesystem with missing directory",
			cfg:         config.ObjectStoreConfig{Provider: "filesystem", BasePath: "/nonexistent/objects"},
			expectError: "failed to open object directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := server.CreateObjectStore(context.Background(), "primary", tt.cfg, zap.NewNop())
			require.Error(t, err)
			assert.Nil(t, store)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestCreateStoreChain(t *testing.T) {
	logger := zaptest.NewLogger(t)

	t.Run("primary only", func(t *testing.T) {
		chain, err := server.CreateStoreChain(context.Background(), config.StorageConfig{
			Primary: config.ObjectStoreConfig{Provider: "filesystem", BasePath: t.TempDir()},
		}, logger)
		require.NoError(t, err)
		require.Len(t, chain, 1)
		assert.Equal(t, "primary", chain[0].Name())
		assert.NoError(t, chain.Close())
	})

	t.Run("primary and secondary", func(t *testing.T) {
		chain, err := server.CreateStoreChain(context.Background(), config.StorageConfig{
			Primary:   config.ObjectStoreConfig{Provider: "filesystem", BasePath: t.TempDir()},
			Secondary: config.ObjectStoreConfig{Provider: "filesystem", BasePath: t.TempDir()},
		}, logger)
		require.NoError(t, err)
		require.Len(t, chain, 2)
		assert.Equal(t, "primary", chain[0].Name())
		assert.Equal(t, "secondary", chain[1].Name())
	})

	t.Run("no primary", func(t *testing.T) {
		_, err := server.CreateStoreChain(context.Background(), config.StorageConfig{}, logger)
		assert.Error(t, err)
	})

	t.Run("broken secondary", func(t *testing.T) {
		_, err := server.CreateStoreChain(context.Background(), config.StorageConfig{
			Primary:   config.ObjectStoreConfig{Provider: "filesystem", BasePath: t.TempDir()},
			Secondary: config.ObjectStoreConfig{Provider: "filesystem"},
		}, logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "secondary")
	})
}

func TestMetadataStoreFactoryValidation(t *testing.T) {
	_, err := server.CreateMetadataStore(context.Background(), config.MetadataConfig{Provider: "postgres"}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported metadata store provider: postgres")

	_, err = server.CreateMetadataStore(context.Background(), config.MetadataConfig{Provider: "sqlite"}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "URL is required")

	store, err := server.CreateMetadataStore(context.Background(), config.MetadataConfig{
		Provider: "sqlite",
		URL:      ":memory:",
		Migrate:  true,
	}, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer func() {
		_ = store.Close()
	}()
	_, ok := store.(*server.SQLiteMetadataStore)
	assert.True(t, ok)
}
