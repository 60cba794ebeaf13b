package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all application configuration
type Config struct {
	ServiceName     string          // Build-time metadata, not configurable via environment
	ServiceVersion  string          // Build-time metadata, not configurable via environment
	Environment     string          `env:"ENVIRONMENT,default=development" description:"Runtime environment (development, production)"`
	Debug           bool            `env:"DEBUG,default=false"`
	ServerConfig    ServerConfig    `env:",prefix=SERVER_"`
	DomainConfig    DomainConfig    `env:",prefix=DOMAIN_"`
	StorageConfig   StorageConfig   `env:",prefix=STORAGE_"`
	MetadataConfig  MetadataConfig  `env:",prefix=METADATA_"`
	DeliveryConfig  DeliveryConfig  `env:",prefix=DELIVERY_"`
	TelemetryConfig TelemetryConfig `env:",prefix=TELEMETRY_"`
}

// TLSConfig holds TLS configuration
type TLSConfig struct {
	Enable   bool   `env:"ENABLE,default=false"`
	CertPath string `env:"CERT_PATH" description:"TLS certificate path"`
	KeyPath  string `env:"KEY_PATH" description:"TLS key path"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host                  string        `env:"HOST,default=0.0.0.0" description:"HTTP server host"`
	Port                  string        `env:"PORT,default=8080" description:"HTTP server port"`
	ReadTimeout           time.Duration `env:"READ_TIMEOUT,default=30s" description:"HTTP server read timeout"`
	WriteTimeout          time.Duration `env:"WRITE_TIMEOUT,default=0s" description:"HTTP server write timeout (0 = no timeout, large files stream for a long time)"`
	IdleTimeout           time.Duration `env:"IDLE_TIMEOUT,default=120s" description:"HTTP server idle timeout"`
	ShutdownTimeout       time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s" description:"Graceful shutdown timeout"`
	DisableHealthcheckLog bool          `env:"DISABLE_HEALTHCHECK_LOG,default=true" description:"Disable logging for health check requests"`
	TLSConfig             TLSConfig     `env:",prefix=TLS_"`
}

// DomainConfig holds the public domain names the server renders links for
type DomainConfig struct {
	ArchiveDomain string `env:"ARCHIVE,default=acearchive.lgbt" description:"Domain of the main archive site linked from file pages"`
	FilesDomain   string `env:"FILES,default=files.acearchive.lgbt" description:"Domain this server is reachable on; short links redirect here"`
}

// StorageConfig holds the ordered chain of object stores
type StorageConfig struct {
	KeyPrefix string            `env:"KEY_PREFIX,default=artifacts/" description:"Prefix prepended to the multihash to form the object key"`
	Primary   ObjectStoreConfig `env:",prefix=PRIMARY_" description:"Primary object store"`
	Secondary ObjectStoreConfig `env:",prefix=SECONDARY_" description:"Optional secondary object store consulted when the primary misses"`
}

// ObjectStoreConfig holds configuration for one object store in the chain
type ObjectStoreConfig struct {
	Provider   string `env:"PROVIDER" description:"Object store provider (minio, filesystem). Empty disables the store"`
	BasePath   string `env:"BASE_PATH,default=./artifacts" description:"Base path for filesystem storage"`
	Endpoint   string `env:"ENDPOINT" description:"Storage endpoint (for MinIO, S3, R2, etc.)"`
	AccessKey  string `env:"ACCESS_KEY" description:"Storage access key"`
	SecretKey  string `env:"SECRET_KEY" description:"Storage secret key"`
	BucketName string `env:"BUCKET_NAME,default=artifacts" description:"Storage bucket name"`
	Region     string `env:"REGION,default=us-east-1" description:"Storage region"`
	UseSSL     bool   `env:"USE_SSL,default=true" description:"Use SSL for storage connections"`
}

// Enabled reports whether a provider is configured for the store
func (c ObjectStoreConfig) Enabled() bool {
	return c.Provider != ""
}

// MetadataConfig holds configuration for the metadata query service
type MetadataConfig struct {
	Provider    string            `env:"PROVIDER,default=sqlite" description:"Metadata provider (sqlite, redis)"`
	URL         string            `env:"URL,default=file:artifacts.db" description:"SQLite DSN or Redis URL"`
	KeyPrefix   string            `env:"KEY_PREFIX,default=artifacts:" description:"Key prefix for key-value metadata providers"`
	Migrate     bool              `env:"MIGRATE,default=false" description:"Create the relational schema at start-up if it does not exist"`
	Credentials map[string]string `env:"CREDENTIALS" description:"Provider-specific credentials"`
	Options     map[string]string `env:"OPTIONS" description:"Provider-specific configuration options"`
}

// DeliveryConfig holds the values of the hardened response headers
type DeliveryConfig struct {
	CacheMaxAge           time.Duration `env:"CACHE_MAX_AGE,default=4h" description:"max-age advertised in Cache-Control"`
	StrictTransportMaxAge time.Duration `env:"HSTS_MAX_AGE,default=8760h" description:"max-age advertised in Strict-Transport-Security"`
	AllowOrigin           string        `env:"ALLOW_ORIGIN,default=*" description:"Access-Control-Allow-Origin value"`
	ReferrerPolicy        string        `env:"REFERRER_POLICY,default=strict-origin" description:"Referrer-Policy value"`
	DebugHeaders          bool          `env:"DEBUG_HEADERS,default=false" description:"Log request and response headers at debug level"`
}

// MetricsConfig holds metrics server configuration
type MetricsConfig struct {
	Port         string        `env:"PORT,default=9090" description:"Metrics server port"`
	Host         string        `env:"HOST,default=" description:"Metrics server host (empty for all interfaces)"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT,default=30s" description:"Metrics server read timeout"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT,default=30s" description:"Metrics server write timeout"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT,default=60s" description:"Metrics server idle timeout"`
}

// TelemetryConfig holds telemetry configuration
type TelemetryConfig struct {
	Enable        bool          `env:"ENABLE,default=false" description:"Enable telemetry collection"`
	MetricsConfig MetricsConfig `env:",prefix=METRICS_"`
}

// Load loads configuration from environment variables, merging with the provided base config.
func Load(ctx context.Context, baseConfig *Config) (*Config, error) {
	return LoadWithLookuper(ctx, baseConfig, envconfig.OsLookuper())
}

// LoadWithLookuper creates and loads configuration using a custom lookuper and merges with user config
func LoadWithLookuper(ctx context.Context, baseConfig *Config, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config

	if baseConfig != nil {
		cfg = *baseConfig
	}

	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	})
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// NewWithDefaults creates a new config with defaults applied from struct tags.
func NewWithDefaults(ctx context.Context, baseConfig *Config) (*Config, error) {
	return LoadWithLookuper(ctx, baseConfig, &emptyLookuper{})
}

// emptyLookuper ensures that only default values from struct tags are used
type emptyLookuper struct{}

func (e *emptyLookuper) Lookup(key string) (string, bool) {
	return "", false
}

// Validate validates the configuration and applies corrections for invalid values
func (c *Config) Validate() error {
	if c.MetadataConfig.Provider == "" {
		return fmt.Errorf("metadata provider must be set")
	}

	if c.StorageConfig.Secondary.Enabled() && !c.StorageConfig.Primary.Enabled() {
		return fmt.Errorf("secondary object store configured without a primary object store")
	}

	if c.DeliveryConfig.CacheMaxAge < 0 {
		c.DeliveryConfig.CacheMaxAge = 0
	}

	if c.DeliveryConfig.StrictTransportMaxAge < 0 {
		c.DeliveryConfig.StrictTransportMaxAge = 0
	}

	if c.DeliveryConfig.AllowOrigin == "" {
		c.DeliveryConfig.AllowOrigin = "*"
	}

	return nil
}
