package server

import (
	"context"
	"fmt"

	"github.com/acearchive/files/types"
)

//go:generate counterfeiter -o mocks/fake_metadata_store.go . MetadataStore

// MetadataStore answers which file a locator names. Filenames are the
// candidate spellings to match against canonical filenames and aliases;
// the first candidate is the one the client sent.
type MetadataStore interface {
	// LookupFile finds the file in the latest version of the artifact
	LookupFile(ctx context.Context, locator types.ArtifactFileLocator, filenames []string) (types.ArtifactFileMetadata, bool, error)

	// Close releases resources held by the store
	Close() error
}

// MetadataWriter publishes artifact versions to a metadata store
type MetadataWriter interface {
	// PutArtifact records a new version of an artifact
	PutArtifact(ctx context.Context, artifact ArtifactRecord) error
}

// ArtifactRecord is one version of an artifact as published to a metadata store
type ArtifactRecord struct {
	ArtifactID  string       `json:"artifact_id"`
	Slug        string       `json:"slug"`
	SlugAliases []string     `json:"slug_aliases,omitempty"`
	Version     int          `json:"version,omitempty"`
	Files       []FileRecord `json:"files"`
}

// FileRecord is a file within an artifact version. Filename is stored in
// uglified form.
type FileRecord struct {
	Filename  string              `json:"filename"`
	MediaType string              `json:"media_type,omitempty"`
	Multihash types.FileMultihash `json:"multihash"`
	Aliases   []string            `json:"aliases,omitempty"`
}

// Validate checks the record before it is written
func (r ArtifactRecord) Validate() error {
	if r.ArtifactID == "" {
		return fmt.Errorf("artifact id is required")
	}
	if r.Slug == "" {
		return fmt.Errorf("artifact slug is required")
	}
	if r.Version < 0 {
		return fmt.Errorf("artifact version must not be negative")
	}
	for _, file := range r.Files {
		if file.Filename == "" {
			return fmt.Errorf("artifact %s has a file without a filename", r.ArtifactID)
		}
		if _, err := file.Multihash.Decode(); err != nil {
			return fmt.Errorf("file %s: %w", file.Filename, err)
		}
	}
	return nil
}

// metadata returns the resolved metadata of one file in the record
func (r ArtifactRecord) metadata(file FileRecord) types.ArtifactFileMetadata {
	return types.ArtifactFileMetadata{
		Multihash:         file.Multihash,
		ArtifactID:        r.ArtifactID,
		CanonicalSlug:     r.Slug,
		CanonicalFilename: types.UglifyFilename(file.Filename),
		MediaType:         file.MediaType,
	}
}
