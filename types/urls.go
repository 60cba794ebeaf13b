package types

import (
	"fmt"
	"net/url"
	"strings"
)

// EndpointFamily identifies which URL shape a request arrived on. Canonical
// form is decided per family.
type EndpointFamily string

const (
	// EndpointArtifactPage is `/artifacts/{slug}/{filename}`
	EndpointArtifactPage EndpointFamily = "artifact_page"

	// EndpointRaw is `/raw/{slug}/{filename}`
	EndpointRaw EndpointFamily = "raw"

	// EndpointShortPage is `/a/{id}/{filename}`
	EndpointShortPage EndpointFamily = "short_page"

	// EndpointShortRaw is `/r/{id}/{filename}`
	EndpointShortRaw EndpointFamily = "short_raw"
)

// String returns the string representation of the EndpointFamily
func (f EndpointFamily) String() string {
	return string(f)
}

// IsShort reports whether the family is keyed by artifact ID
func (f EndpointFamily) IsShort() bool {
	return f == EndpointShortPage || f == EndpointShortRaw
}

// Long returns the slug-keyed family a short family canonicalises to
func (f EndpointFamily) Long() EndpointFamily {
	switch f {
	case EndpointShortPage:
		return EndpointArtifactPage
	case EndpointShortRaw:
		return EndpointRaw
	default:
		return f
	}
}

func (f EndpointFamily) prefix() string {
	switch f {
	case EndpointArtifactPage:
		return "/artifacts"
	case EndpointRaw:
		return "/raw"
	case EndpointShortPage:
		return "/a"
	case EndpointShortRaw:
		return "/r"
	default:
		return ""
	}
}

// LocatorPath returns the request path for the locator in the given family,
// spelled exactly as the locator carries it
func LocatorPath(family EndpointFamily, locator ArtifactFileLocator) string {
	return fmt.Sprintf("%s/%s/%s", family.prefix(), locator.Key(), locator.Filename)
}

// FilePagePath returns the canonical file page path for the metadata
func FilePagePath(metadata ArtifactFileMetadata) string {
	return fmt.Sprintf("/artifacts/%s/%s", metadata.CanonicalSlug, PrettifyFilename(metadata.CanonicalFilename))
}

// RawFilePath returns the canonical raw file path for the metadata
func RawFilePath(metadata ArtifactFileMetadata) string {
	return fmt.Sprintf("/raw/%s/%s", metadata.CanonicalSlug, PrettifyFilename(metadata.CanonicalFilename))
}

// ShortPath returns the ID-keyed short link path for the metadata in the given family
func ShortPath(family EndpointFamily, metadata ArtifactFileMetadata) string {
	short := EndpointShortPage
	if family.Long() == EndpointRaw {
		short = EndpointShortRaw
	}
	return fmt.Sprintf("%s/%s/%s", short.prefix(), metadata.ArtifactID, PrettifyFilename(metadata.CanonicalFilename))
}

// CanonicalPath returns the path every spelling of the file redirects to when
// requested through the given family. Short families canonicalise to their
// long, slug-keyed form.
func CanonicalPath(family EndpointFamily, metadata ArtifactFileMetadata) string {
	if family.Long() == EndpointRaw {
		return RawFilePath(metadata)
	}
	return FilePagePath(metadata)
}

// CanonicalURL returns the redirect target for the family. Short links are
// typically served from a separate domain, so when filesDomain is set they
// redirect to an absolute URL on it. Everything else stays a path.
func CanonicalURL(family EndpointFamily, metadata ArtifactFileMetadata, filesDomain string) string {
	u := url.URL{Path: CanonicalPath(family, metadata)}
	if family.IsShort() && filesDomain != "" {
		u.Scheme = "https"
		u.Host = filesDomain
	}
	return u.String()
}

// ArtifactPageURL returns the URL of the artifact's page on the main archive site
func ArtifactPageURL(archiveDomain string, metadata ArtifactFileMetadata) string {
	u := url.URL{
		Scheme: "https",
		Host:   strings.TrimSuffix(archiveDomain, "/"),
		Path:   "/artifacts/" + metadata.CanonicalSlug,
	}
	return u.String()
}
