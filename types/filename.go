package types

import "strings"

const indexDocument = "index.html"

// PrettifyFilename turns `foo/index.html` into `foo/`. Any other filename is
// returned unchanged.
func PrettifyFilename(filename string) string {
	if strings.HasSuffix(filename, "/"+indexDocument) {
		return strings.TrimSuffix(filename, indexDocument)
	}
	return filename
}

// UglifyFilename turns a pretty HTML filename into the stored form by
// appending `/index.html`. Filenames with an extension are assumed to already
// be in stored form.
func UglifyFilename(filename string) string {
	if strings.Contains(filename, ".") {
		return filename
	}

	if strings.HasSuffix(filename, "/") {
		return filename + indexDocument
	}

	return filename + "/" + indexDocument
}

// IsPrettified reports whether the filename is already in its pretty form
func IsPrettified(filename string) bool {
	return PrettifyFilename(filename) == filename
}

// FilenamesEquivalent reports whether two spellings denote the same file
// without regard for whether they are prettified
func FilenamesEquivalent(a, b string) bool {
	return UglifyFilename(a) == UglifyFilename(b)
}

// IsCanonical reports whether the locator already is the canonical spelling
// of the resolved file. Locators keyed by ID are never canonical.
func IsCanonical(locator ArtifactFileLocator, metadata ArtifactFileMetadata) bool {
	if locator.ByID() {
		return false
	}

	return locator.Slug == metadata.CanonicalSlug &&
		FilenamesEquivalent(locator.Filename, metadata.CanonicalFilename) &&
		IsPrettified(locator.Filename)
}
