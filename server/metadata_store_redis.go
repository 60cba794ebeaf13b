package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/acearchive/files/types"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisMetadataStore implements MetadataStore on Redis. The layout is:
//
//	{prefix}slug:{slug}                        artifact ID, for the canonical slug and every alias
//	{prefix}artifact:{id}                      hash of the canonical slug and latest version
//	{prefix}file:{id}:{version}:{filename}     file metadata JSON, for the canonical filename and every alias
type RedisMetadataStore struct {
	client    *redis.Client
	keyPrefix string
	logger    *zap.Logger
}

// NewRedisMetadataStore wraps a connected client
func NewRedisMetadataStore(client *redis.Client, keyPrefix string, logger *zap.Logger) *RedisMetadataStore {
	return &RedisMetadataStore{
		client:    client,
		keyPrefix: keyPrefix,
		logger:    logger,
	}
}

func (s *RedisMetadataStore) slugKey(slug string) string {
	return s.keyPrefix + "slug:" + slug
}

func (s *RedisMetadataStore) artifactKey(id string) string {
	return s.keyPrefix + "artifact:" + id
}

func (s *RedisMetadataStore) fileKey(id string, version int, filename string) string {
	return fmt.Sprintf("%sfile:%s:%d:%s", s.keyPrefix, id, version, filename)
}

// LookupFile finds the file in the latest version of the artifact
func (s *RedisMetadataStore) LookupFile(ctx context.Context, locator types.ArtifactFileLocator, filenames []string) (types.ArtifactFileMetadata, bool, error) {
	artifactID := locator.ID
	if !locator.ByID() {
		id, err := s.client.Get(ctx, s.slugKey(locator.Slug)).Result()
		if errors.Is(err, redis.Nil) {
			return types.ArtifactFileMetadata{}, false, nil
		}
		if err != nil {
			return types.ArtifactFileMetadata{}, false, fmt.Errorf("failed to look up slug %s: %w", locator.Slug, err)
		}
		artifactID = id
	}

	artifact, err := s.client.HGetAll(ctx, s.artifactKey(artifactID)).Result()
	if err != nil {
		return types.ArtifactFileMetadata{}, false, fmt.Errorf("failed to look up artifact %s: %w", artifactID, err)
	}
	if len(artifact) == 0 {
		return types.ArtifactFileMetadata{}, false, nil
	}

	version, err := strconv.Atoi(artifact["version"])
	if err != nil {
		return types.ArtifactFileMetadata{}, false, fmt.Errorf("artifact %s has malformed version %q: %w", artifactID, artifact["version"], err)
	}

	for _, filename := range filenames {
		data, err := s.client.Get(ctx, s.fileKey(artifactID, version, filename)).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return types.ArtifactFileMetadata{}, false, fmt.Errorf("failed to look up file %s: %w", filename, err)
		}

		var metadata types.ArtifactFileMetadata
		if err := json.Unmarshal(data, &metadata); err != nil {
			return types.ArtifactFileMetadata{}, false, fmt.Errorf("failed to decode file metadata %s: %w", filename, err)
		}

		// The canonical slug may have changed since the file was written.
		metadata.CanonicalSlug = artifact["slug"]
		metadata.ArtifactID = artifactID
		return metadata, true, nil
	}

	return types.ArtifactFileMetadata{}, false, nil
}

// PutArtifact records a new version of an artifact. A zero Version is
// assigned the next version number.
func (s *RedisMetadataStore) PutArtifact(ctx context.Context, artifact ArtifactRecord) error {
	if err := artifact.Validate(); err != nil {
		return err
	}

	version := artifact.Version
	if version == 0 {
		current, err := s.client.HGet(ctx, s.artifactKey(artifact.ArtifactID), "version").Int()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("failed to read artifact version: %w", err)
		}
		version = current + 1
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, file := range artifact.Files {
			metadata := artifact.metadata(file)
			data, err := json.Marshal(metadata)
			if err != nil {
				return fmt.Errorf("failed to encode file metadata: %w", err)
			}

			pipe.Set(ctx, s.fileKey(artifact.ArtifactID, version, metadata.CanonicalFilename), data, 0)
			for _, alias := range file.Aliases {
				pipe.Set(ctx, s.fileKey(artifact.ArtifactID, version, alias), data, 0)
			}
		}

		pipe.HSet(ctx, s.artifactKey(artifact.ArtifactID), map[string]any{
			"slug":    artifact.Slug,
			"version": version,
		})

		pipe.Set(ctx, s.slugKey(artifact.Slug), artifact.ArtifactID, 0)
		for _, alias := range artifact.SlugAliases {
			pipe.Set(ctx, s.slugKey(alias), artifact.ArtifactID, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to write artifact %s: %w", artifact.ArtifactID, err)
	}

	s.logger.Debug("artifact version recorded",
		zap.String("artifact_id", artifact.ArtifactID),
		zap.String("slug", artifact.Slug),
		zap.Int("version", version),
		zap.Int("files", len(artifact.Files)))
	return nil
}

// Close closes the Redis connection
func (s *RedisMetadataStore) Close() error {
	return s.client.Close()
}
