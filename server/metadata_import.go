package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// ImportArtifacts reads a stream of JSON artifact records from r and
// publishes each one to store, which must also be a MetadataWriter. Records
// are written in order; the first invalid or failed record stops the import.
// It returns the number of records written.
func ImportArtifacts(ctx context.Context, store MetadataStore, r io.Reader, logger *zap.Logger) (int, error) {
	writer, ok := store.(MetadataWriter)
	if !ok {
		return 0, fmt.Errorf("metadata store %T does not accept writes", store)
	}

	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	imported := 0
	for {
		var record ArtifactRecord
		if err := decoder.Decode(&record); err != nil {
			if errors.Is(err, io.EOF) {
				return imported, nil
			}
			return imported, fmt.Errorf("failed to decode artifact record %d: %w", imported+1, err)
		}

		if err := record.Validate(); err != nil {
			return imported, fmt.Errorf("invalid artifact record %d: %w", imported+1, err)
		}

		if err := writer.PutArtifact(ctx, record); err != nil {
			return imported, fmt.Errorf("failed to publish artifact %s: %w", record.ArtifactID, err)
		}

		logger.Debug("artifact published",
			zap.String("artifact_id", record.ArtifactID),
			zap.String("slug", record.Slug),
			zap.Int("files", len(record.Files)))
		imported++
	}
}
