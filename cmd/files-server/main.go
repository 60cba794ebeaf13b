package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	zap "go.uber.org/zap"

	server "github.com/acearchive/files/server"
	config "github.com/acearchive/files/server/config"
)

// Files server
//
// Serves artifact files by their human-readable locators, reading content
// from a primary object store with an optional secondary fallback.
//
// Configuration via environment variables:
//   - ENVIRONMENT: Runtime environment (default: development)
//   - SERVER_PORT: HTTP server port (default: 8080)
//   - DOMAIN_ARCHIVE: Archive site domain (default: acearchive.lgbt)
//   - DOMAIN_FILES: Files domain used in redirects (default: files.acearchive.lgbt)
//   - STORAGE_PRIMARY_PROVIDER: Primary object store (minio, filesystem)
//   - STORAGE_SECONDARY_PROVIDER: Secondary object store (optional)
//   - METADATA_PROVIDER: Metadata store (sqlite, redis)
//   - METADATA_URL: Metadata store connection URL
//   - TELEMETRY_ENABLE: Expose prometheus metrics (default: false)
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx, &config.Config{
		ServiceName:    server.BuildServiceName,
		ServiceVersion: server.BuildServiceVersion,
	})
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	var logger *zap.Logger
	if cfg.Environment == "development" || cfg.Environment == "dev" || cfg.Debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("server starting",
		zap.String("environment", cfg.Environment),
		zap.String("version", cfg.ServiceVersion),
		zap.String("port", cfg.ServerConfig.Port),
		zap.String("files_domain", cfg.DomainConfig.FilesDomain),
		zap.String("primary_store", cfg.StorageConfig.Primary.Provider),
		zap.String("secondary_store", cfg.StorageConfig.Secondary.Provider),
		zap.String("metadata_store", cfg.MetadataConfig.Provider),
		zap.Bool("telemetry_enabled", cfg.TelemetryConfig.Enable),
		zap.Bool("debug", cfg.Debug),
	)

	filesServer, err := server.NewFilesServerBuilder(cfg, logger).Build(ctx)
	if err != nil {
		logger.Fatal("failed to create files server", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		if err := filesServer.Start(ctx); err != nil {
			logger.Fatal("files server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ServerConfig.ShutdownTimeout)
	defer shutdownCancel()

	if err := filesServer.Stop(shutdownCtx); err != nil {
		logger.Error("files server shutdown error", zap.Error(err))
	}
}
