package server

import (
	"context"
	"fmt"

	"github.com/acearchive/files/types"
	"go.uber.org/zap"
)

// StorageKeyStatus is the outcome of resolving a locator to a storage key
type StorageKeyStatus string

const (
	StorageKeyFound    StorageKeyStatus = "found"
	StorageKeyRedirect StorageKeyStatus = "redirect"
	StorageKeyNotFound StorageKeyStatus = "not_found"
)

// StorageKeyResult holds what the request should do next. StorageKey and
// Metadata are set when found, URL when redirecting.
type StorageKeyResult struct {
	Status     StorageKeyStatus
	StorageKey string
	Metadata   types.ArtifactFileMetadata
	URL        string
}

// LocatorResolver resolves locators against the metadata store and decides
// whether the request used the canonical spelling
type LocatorResolver struct {
	store       MetadataStore
	keyPrefix   string
	filesDomain string
	logger      *zap.Logger
}

// NewLocatorResolver creates a resolver. keyPrefix is prepended to the
// multihash to form the object key.
func NewLocatorResolver(store MetadataStore, keyPrefix, filesDomain string, logger *zap.Logger) *LocatorResolver {
	return &LocatorResolver{
		store:       store,
		keyPrefix:   keyPrefix,
		filesDomain: filesDomain,
		logger:      logger,
	}
}

// Resolve looks the locator up under the spelling the client sent and under
// its uglified form, so `dir/` and `dir` both find `dir/index.html`
func (r *LocatorResolver) Resolve(ctx context.Context, locator types.ArtifactFileLocator) (types.ArtifactFileMetadata, bool, error) {
	filenames := []string{locator.Filename}
	if uglified := types.UglifyFilename(locator.Filename); uglified != locator.Filename {
		filenames = append(filenames, uglified)
	}

	metadata, ok, err := r.store.LookupFile(ctx, locator, filenames)
	if err != nil {
		return types.ArtifactFileMetadata{}, false, fmt.Errorf("failed to resolve %s: %w", locator, err)
	}
	if !ok {
		r.logger.Debug("artifact file not found in metadata store", zap.Stringer("locator", locator))
		return types.ArtifactFileMetadata{}, false, nil
	}

	return metadata, true, nil
}

// StorageKey returns the object key of a resolved file
func (r *LocatorResolver) StorageKey(metadata types.ArtifactFileMetadata) string {
	return r.keyPrefix + metadata.Multihash.String()
}

// ResolveStorageKey resolves the locator and decides between serving the
// object and redirecting to the canonical URL for the endpoint family
func (r *LocatorResolver) ResolveStorageKey(ctx context.Context, locator types.ArtifactFileLocator, family types.EndpointFamily) (StorageKeyResult, error) {
	metadata, ok, err := r.Resolve(ctx, locator)
	if err != nil {
		return StorageKeyResult{}, err
	}
	if !ok {
		return StorageKeyResult{Status: StorageKeyNotFound}, nil
	}

	if !types.IsCanonical(locator, metadata) {
		url := types.CanonicalURL(family, metadata, r.filesDomain)
		r.logger.Debug("redirecting to canonical url",
			zap.Stringer("locator", locator),
			zap.String("family", family.String()),
			zap.String("url", url))
		return StorageKeyResult{Status: StorageKeyRedirect, Metadata: metadata, URL: url}, nil
	}

	return StorageKeyResult{
		Status:     StorageKeyFound,
		StorageKey: r.StorageKey(metadata),
		Metadata:   metadata,
	}, nil
}
