package server

import (
	"context"
	"fmt"
	"strconv"
	"time"

	config "github.com/acearchive/files/server/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// MetadataStoreFactory creates metadata stores for one provider
type MetadataStoreFactory interface {
	ProviderFactory

	// CreateMetadataStore creates a store instance with the given configuration
	CreateMetadataStore(ctx context.Context, cfg config.MetadataConfig, logger *zap.Logger) (MetadataStore, error)

	// ValidateConfig validates the configuration for this provider
	ValidateConfig(cfg config.MetadataConfig) error
}

var metadataStoreRegistry = NewProviderRegistry[MetadataStoreFactory]("metadata store")

// RegisterMetadataStoreProvider registers a metadata store factory
func RegisterMetadataStoreProvider(provider string, factory MetadataStoreFactory) {
	metadataStoreRegistry.Register(provider, factory)
}

// GetSupportedMetadataStoreProviders returns the registered metadata store providers
func GetSupportedMetadataStoreProviders() []string {
	return metadataStoreRegistry.GetProviders()
}

// CreateMetadataStore creates a metadata store using the registered factories
func CreateMetadataStore(ctx context.Context, cfg config.MetadataConfig, logger *zap.Logger) (MetadataStore, error) {
	factory, err := metadataStoreRegistry.GetFactory(cfg.Provider)
	if err != nil {
		return nil, err
	}

	if err := factory.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration for metadata store provider %s: %w", cfg.Provider, err)
	}

	return factory.CreateMetadataStore(ctx, cfg, logger)
}

// SQLiteMetadataStoreFactory implements MetadataStoreFactory for SQLite
type SQLiteMetadataStoreFactory struct{}

// SupportedProvider returns the provider name
func (f *SQLiteMetadataStoreFactory) SupportedProvider() string {
	return "sqlite"
}

// ValidateConfig validates the configuration for SQLite
func (f *SQLiteMetadataStoreFactory) ValidateConfig(cfg config.MetadataConfig) error {
	if cfg.URL == "" {
		return fmt.Errorf("URL is required for sqlite metadata provider")
	}
	return nil
}

// CreateMetadataStore opens the SQLite database
func (f *SQLiteMetadataStoreFactory) CreateMetadataStore(ctx context.Context, cfg config.MetadataConfig, logger *zap.Logger) (MetadataStore, error) {
	store, err := NewSQLiteMetadataStore(ctx, cfg.URL, cfg.Migrate, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("opened sqlite metadata store", zap.Bool("migrate", cfg.Migrate))
	return store, nil
}

// RedisMetadataStoreFactory implements MetadataStoreFactory for Redis
type RedisMetadataStoreFactory struct{}

// SupportedProvider returns the provider name
func (f *RedisMetadataStoreFactory) SupportedProvider() string {
	return "redis"
}

// ValidateConfig validates the configuration for Redis
func (f *RedisMetadataStoreFactory) ValidateConfig(cfg config.MetadataConfig) error {
	if cfg.URL == "" {
		return fmt.Errorf("URL is required for redis metadata provider")
	}
	return nil
}

// CreateMetadataStore connects to Redis
func (f *RedisMetadataStoreFactory) CreateMetadataStore(ctx context.Context, cfg config.MetadataConfig, logger *zap.Logger) (MetadataStore, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis URL: %w", err)
	}

	if dbStr, exists := cfg.Options["db"]; exists {
		if db, err := strconv.Atoi(dbStr); err == nil {
			opt.DB = db
		}
	}

	if maxRetriesStr, exists := cfg.Options["max_retries"]; exists {
		if maxRetries, err := strconv.Atoi(maxRetriesStr); err == nil {
			opt.MaxRetries = maxRetries
		}
	}

	if timeoutStr, exists := cfg.Options["timeout"]; exists {
		if timeout, err := time.ParseDuration(timeoutStr); err == nil {
			opt.DialTimeout = timeout
			opt.ReadTimeout = timeout
			opt.WriteTimeout = timeout
		}
	}

	if username, exists := cfg.Credentials["username"]; exists {
		opt.Username = username
	}
	if password, exists := cfg.Credentials["password"]; exists {
		opt.Password = password
	}

	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("connected to Redis",
		zap.String("addr", opt.Addr),
		zap.Int("db", opt.DB))

	return NewRedisMetadataStore(client, cfg.KeyPrefix, logger), nil
}

func init() {
	RegisterMetadataStoreProvider("sqlite", &SQLiteMetadataStoreFactory{})
	RegisterMetadataStoreProvider("redis", &RedisMetadataStoreFactory{})
}
