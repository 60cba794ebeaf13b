package types

import (
	"errors"
	"strings"
)

var (
	// ErrBlankArtifactKey is returned when the slug or ID path segment is empty
	ErrBlankArtifactKey = errors.New("artifact slug or id is blank")

	// ErrBlankFilename is returned when no filename follows the artifact key
	ErrBlankFilename = errors.New("filename is blank")

	// ErrInvalidFilename is returned for filenames with empty or relative segments
	ErrInvalidFilename = errors.New("filename contains empty or relative path segments")
)

// ParseLocatorPath builds a locator from the artifact key segment and the
// remaining filename path. The filename may carry a leading slash, as router
// catch-all parameters do. A trailing slash is kept because it is the
// prettified spelling of an HTML file.
func ParseLocatorPath(family EndpointFamily, key, filename string) (ArtifactFileLocator, error) {
	if key == "" || strings.Contains(key, "/") {
		return ArtifactFileLocator{}, ErrBlankArtifactKey
	}

	filename = strings.TrimPrefix(filename, "/")
	if filename == "" || filename == "/" {
		return ArtifactFileLocator{}, ErrBlankFilename
	}

	segments := strings.Split(strings.TrimSuffix(filename, "/"), "/")
	for _, segment := range segments {
		if segment == "" || segment == "." || segment == ".." {
			return ArtifactFileLocator{}, ErrInvalidFilename
		}
	}

	if family.IsShort() {
		return NewIDLocator(key, filename), nil
	}
	return NewSlugLocator(key, filename), nil
}
