package main

import (
	"context"
	"io"
	"log"
	"os"

	zap "go.uber.org/zap"

	server "github.com/acearchive/files/server"
	config "github.com/acearchive/files/server/config"
)

// Files import
//
// Publishes artifact versions to the metadata store the files server reads
// from. Each argument names a file holding a stream of JSON artifact records;
// with no arguments the records are read from standard input.
//
// Configuration via environment variables:
//   - METADATA_PROVIDER: Metadata store (sqlite, redis)
//   - METADATA_URL: Metadata store connection URL
//   - METADATA_MIGRATE: Create the relational schema if it does not exist
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

	store, err := server.CreateMetadataStore(ctx, cfg.MetadataConfig, logger)
	if err != nil {
		logger.Fatal("failed to create metadata store", zap.Error(err))
	}
	defer func() {
		_ = store.Close()
	}()

	sources := os.Args[1:]
	if len(sources) == 0 {
		sources = []string{"-"}
	}

	total := 0
	for _, source := range sources {
		imported, err := importSource(ctx, store, source, logger)
		total += imported
		if err != nil {
			logger.Error("import failed",
				zap.String("source", source),
				zap.Int("imported", total),
				zap.Error(err))
			_ = store.Close()
			_ = logger.Sync()
			os.Exit(1)
		}
	}

	logger.Info("import complete",
		zap.String("metadata_store", cfg.MetadataConfig.Provider),
		zap.Int("artifacts", total))
}

func importSource(ctx context.Context, store server.MetadataStore, source string, logger *zap.Logger) (int, error) {
	var r io.Reader = os.Stdin
	if source != "-" {
		file, err := os.Open(source)
		if err != nil {
			return 0, err
		}
		defer func() {
			_ = file.Close()
		}()
		r = file
	}

	return server.ImportArtifacts(ctx, store, r, logger.With(zap.String("source", source)))
}
