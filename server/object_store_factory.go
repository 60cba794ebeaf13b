package server

import (
	"context"
	"fmt"

	config "github.com/acearchive/files/server/config"
	"go.uber.org/zap"
)

// ObjectStoreFactory creates object stores for one provider
type ObjectStoreFactory interface {
	ProviderFactory

	// CreateObjectStore creates a store instance with the given configuration
	CreateObjectStore(ctx context.Context, name string, cfg config.ObjectStoreConfig, logger *zap.Logger) (ObjectStore, error)

	// ValidateConfig validates the configuration for this provider
	ValidateConfig(cfg config.ObjectStoreConfig) error
}

var objectStoreRegistry = NewProviderRegistry[ObjectStoreFactory]("object store")

// RegisterObjectStoreProvider registers an object store factory
func RegisterObjectStoreProvider(provider string, factory ObjectStoreFactory) {
	objectStoreRegistry.Register(provider, factory)
}

// GetSupportedObjectStoreProviders returns the registered object store providers
func GetSupportedObjectStoreProviders() []string {
	return objectStoreRegistry.GetProviders()
}

// CreateObjectStore creates an object store using the registered factories
func CreateObjectStore(ctx context.Context, name string, cfg config.ObjectStoreConfig, logger *zap.Logger) (ObjectStore, error) {
	factory, err := objectStoreRegistry.GetFactory(cfg.Provider)
	if err != nil {
		return nil, err
	}

	if err := factory.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration for object store provider %s: %w", cfg.Provider, err)
	}

	return factory.CreateObjectStore(ctx, name, cfg, logger)
}

// CreateStoreChain creates the primary store and, when configured, the secondary
func CreateStoreChain(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (StoreChain, error) {
	if !cfg.Primary.Enabled() {
		return nil, fmt.Errorf("primary object store provider must be set")
	}

	primary, err := CreateObjectStore(ctx, "primary", cfg.Primary, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create primary object store: %w", err)
	}

	if !cfg.Secondary.Enabled() {
		logger.Info("secondary object store disabled")
		return NewStoreChain(primary, nil), nil
	}

	secondary, err := CreateObjectStore(ctx, "secondary", cfg.Secondary, logger)
	if err != nil {
		_ = primary.Close()
		return nil, fmt.Errorf("failed to create secondary object store: %w", err)
	}

	return NewStoreChain(primary, secondary), nil
}

// MinIOObjectStoreFactory implements ObjectStoreFactory for S3 compatible stores
type MinIOObjectStoreFactory struct{}

// SupportedProvider returns the provider name
func (f *MinIOObjectStoreFactory) SupportedProvider() string {
	return "minio"
}

// ValidateConfig validates the configuration for MinIO storage
func (f *MinIOObjectStoreFactory) ValidateConfig(cfg config.ObjectStoreConfig) error {
	if cfg.Endpoint == "" {
		return fmt.Errorf("endpoint is required for minio storage")
	}
	if cfg.BucketName == "" {
		return fmt.Errorf("bucket name is required for minio storage")
	}
	return nil
}

// CreateObjectStore creates a MinIO object store
func (f *MinIOObjectStoreFactory) CreateObjectStore(ctx context.Context, name string, cfg config.ObjectStoreConfig, logger *zap.Logger) (ObjectStore, error) {
	logger.Info("creating minio object store",
		zap.String("store", name),
		zap.String("endpoint", cfg.Endpoint),
		zap.String("bucket", cfg.BucketName))

	store, err := NewMinIOObjectStore(ctx, name, cfg.Endpoint, cfg.AccessKey, cfg.SecretKey, cfg.BucketName, cfg.Region, cfg.UseSSL, logger)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// FilesystemObjectStoreFactory implements ObjectStoreFactory for local directories
type FilesystemObjectStoreFactory struct{}

// SupportedProvider returns the provider name
func (f *FilesystemObjectStoreFactory) SupportedProvider() string {
	return "filesystem"
}

// ValidateConfig validates the configuration for filesystem storage
func (f *FilesystemObjectStoreFactory) ValidateConfig(cfg config.ObjectStoreConfig) error {
	if cfg.BasePath == "" {
		return fmt.Errorf("base path is required for filesystem storage")
	}
	return nil
}

// CreateObjectStore creates a filesystem object store
func (f *FilesystemObjectStoreFactory) CreateObjectStore(ctx context.Context, name string, cfg config.ObjectStoreConfig, logger *zap.Logger) (ObjectStore, error) {
	logger.Info("creating filesystem object store",
		zap.String("store", name),
		zap.String("base_path", cfg.BasePath))

	store, err := NewFilesystemObjectStore(name, cfg.BasePath, logger)
	if err != nil {
		return nil, err
	}
	return store, nil
}

func init() {
	RegisterObjectStoreProvider("minio", &MinIOObjectStoreFactory{})
	RegisterObjectStoreProvider("filesystem", &FilesystemObjectStoreFactory{})
}
