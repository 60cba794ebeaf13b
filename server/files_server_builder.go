package server

import (
	"context"
	"fmt"

	config "github.com/acearchive/files/server/config"
	otel "github.com/acearchive/files/server/otel"
	"go.uber.org/zap"
)

// FilesServerBuilder provides a fluent interface for building files servers.
// Stores that are not supplied are created from configuration through the
// registered providers.
//
// Example:
//
//	srv, err := NewFilesServerBuilder(cfg, logger).
//	  WithMetadataStore(store).
//	  Build(ctx)
type FilesServerBuilder interface {
	// WithLogger sets a custom logger for the builder and resulting server
	WithLogger(logger *zap.Logger) FilesServerBuilder

	// WithMetadataStore sets the metadata store instead of creating one from configuration
	WithMetadataStore(store MetadataStore) FilesServerBuilder

	// WithStoreChain sets the object stores instead of creating them from configuration
	WithStoreChain(chain StoreChain) FilesServerBuilder

	// WithTelemetry sets the telemetry implementation
	WithTelemetry(telemetry otel.OpenTelemetry) FilesServerBuilder

	// Build creates and returns the configured files server
	Build(ctx context.Context) (FilesServer, error)
}

var _ FilesServerBuilder = (*FilesServerBuilderImpl)(nil)

// FilesServerBuilderImpl is the concrete implementation of the FilesServerBuilder interface
type FilesServerBuilderImpl struct {
	cfg       *config.Config
	logger    *zap.Logger
	metadata  MetadataStore
	chain     StoreChain
	telemetry otel.OpenTelemetry
}

// NewFilesServerBuilder creates a new files server builder
func NewFilesServerBuilder(cfg *config.Config, logger *zap.Logger) FilesServerBuilder {
	return &FilesServerBuilderImpl{
		cfg:    cfg,
		logger: logger,
	}
}

// WithLogger sets a custom logger for the builder
func (b *FilesServerBuilderImpl) WithLogger(logger *zap.Logger) FilesServerBuilder {
	b.logger = logger
	return b
}

// WithMetadataStore sets the metadata store
func (b *FilesServerBuilderImpl) WithMetadataStore(store MetadataStore) FilesServerBuilder {
	b.metadata = store
	return b
}

// WithStoreChain sets the object stores
func (b *FilesServerBuilderImpl) WithStoreChain(chain StoreChain) FilesServerBuilder {
	b.chain = chain
	return b
}

// WithTelemetry sets the telemetry implementation
func (b *FilesServerBuilderImpl) WithTelemetry(telemetry otel.OpenTelemetry) FilesServerBuilder {
	b.telemetry = telemetry
	return b
}

// Build creates and returns the configured files server
func (b *FilesServerBuilderImpl) Build(ctx context.Context) (FilesServer, error) {
	if b.cfg == nil {
		return nil, fmt.Errorf("configuration must be provided")
	}
	if b.logger == nil {
		b.logger = zap.NewNop()
	}

	metadata := b.metadata
	if metadata == nil {
		store, err := CreateMetadataStore(ctx, b.cfg.MetadataConfig, b.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create metadata store: %w", err)
		}
		metadata = store
	}

	chain := b.chain
	if len(chain) == 0 {
		created, err := CreateStoreChain(ctx, b.cfg.StorageConfig, b.logger)
		if err != nil {
			if b.metadata == nil {
				_ = metadata.Close()
			}
			return nil, fmt.Errorf("failed to create object stores: %w", err)
		}
		chain = created
	}

	telemetry := b.telemetry
	if telemetry == nil && b.cfg.TelemetryConfig.Enable {
		created, err := otel.NewOpenTelemetry(b.cfg, b.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
		}
		telemetry = created
	}

	return NewFilesServer(b.cfg, b.logger, metadata, chain, telemetry), nil
}
