package types

import "fmt"

// ArtifactFileLocator identifies a requested artifact file. Exactly one of
// Slug or ID is set. Either may be any alias of the artifact, and Filename
// may be any alias of the file, prettified or not.
type ArtifactFileLocator struct {
	// Slug is the canonical artifact slug or any slug alias
	Slug string

	// ID is the stable artifact identifier used by short links
	ID string

	// Filename is the canonical filename or any filename alias
	Filename string
}

// NewSlugLocator creates a locator keyed by artifact slug
func NewSlugLocator(slug, filename string) ArtifactFileLocator {
	return ArtifactFileLocator{Slug: slug, Filename: filename}
}

// NewIDLocator creates a locator keyed by stable artifact ID
func NewIDLocator(id, filename string) ArtifactFileLocator {
	return ArtifactFileLocator{ID: id, Filename: filename}
}

// ByID reports whether the locator identifies the artifact by ID rather than slug
func (l ArtifactFileLocator) ByID() bool {
	return l.ID != ""
}

// Key returns the slug or ID, whichever the locator carries
func (l ArtifactFileLocator) Key() string {
	if l.ByID() {
		return l.ID
	}
	return l.Slug
}

// String returns a human readable form of the locator for logging
func (l ArtifactFileLocator) String() string {
	if l.ByID() {
		return fmt.Sprintf("id:%s/%s", l.ID, l.Filename)
	}
	return fmt.Sprintf("%s/%s", l.Slug, l.Filename)
}

// ArtifactFileMetadata is the canonical description of a resolved file.
// CanonicalFilename is always stored in uglified form.
type ArtifactFileMetadata struct {
	Multihash         FileMultihash `json:"multihash"`
	ArtifactID        string        `json:"artifact_id,omitempty"`
	CanonicalSlug     string        `json:"slug"`
	CanonicalFilename string        `json:"filename"`
	MediaType         string        `json:"media_type"`
}

// Health status constants
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusDegraded  = "degraded"
	HealthStatusUnhealthy = "unhealthy"
)
