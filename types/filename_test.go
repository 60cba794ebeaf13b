package types_test

import (
	"testing"

	assert "github.com/stretchr/testify/assert"

	types "github.com/acearchive/files/types"
)

func TestPrettifyFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected string
	}{
		{name: "strips trailing index.html", filename: "bar/index.html", expected: "bar/"},
		{name: "nested directories", filename: "a/b/index.html", expected: "a/b/"},
		{name: "bare index.html is unchanged", filename: "index.html", expected: "index.html"},
		{name: "other html files are unchanged", filename: "bar/page.html", expected: "bar/page.html"},
		{name: "already pretty", filename: "bar/", expected: "bar/"},
		{name: "plain file", filename: "image.png", expected: "image.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, types.PrettifyFilename(tt.filename))
		})
	}
}

func TestUglifyFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected string
	}{
		{name: "appends index.html after trailing slash", filename: "bar/", expected: "bar/index.html"},
		{name: "appends slash and index.html", filename: "bar", expected: "bar/index.html"},
		{name: "filenames with an extension are unchanged", filename: "image.png", expected: "image.png"},
		{name: "already ugly", filename: "bar/index.html", expected: "bar/index.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, types.UglifyFilename(tt.filename))
		})
	}
}

func TestUglifyFilename_Properties(t *testing.T) {
	withoutExtension := []string{"bar", "bar/", "a/b/c", "a/b/c/", "transcript"}
	for _, filename := range withoutExtension {
		ugly := types.UglifyFilename(filename)
		assert.True(t, len(ugly) > len("/index.html"))
		assert.Equal(t, "/index.html", ugly[len(ugly)-len("/index.html"):], filename)
		assert.True(t, types.FilenamesEquivalent(types.PrettifyFilename(ugly), filename), filename)
		assert.Equal(t, ugly, types.UglifyFilename(ugly), "uglify must be idempotent for %s", filename)
	}

	withExtension := []string{"image.png", "a/b.txt", "bar/index.html", ".hidden"}
	for _, filename := range withExtension {
		assert.Equal(t, filename, types.UglifyFilename(filename))
	}
}

func TestFilenamesEquivalent(t *testing.T) {
	assert.True(t, types.FilenamesEquivalent("bar/", "bar/index.html"))
	assert.True(t, types.FilenamesEquivalent("bar", "bar/"))
	assert.False(t, types.FilenamesEquivalent("bar/", "baz/"))
	assert.False(t, types.FilenamesEquivalent("image.png", "image.jpg"))
}

func TestIsCanonical(t *testing.T) {
	metadata := types.ArtifactFileMetadata{
		Multihash:         "1220e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		ArtifactID:        "42",
		CanonicalSlug:     "foo",
		CanonicalFilename: "bar/index.html",
		MediaType:         "text/html",
	}

	tests := []struct {
		name     string
		locator  types.ArtifactFileLocator
		expected bool
	}{
		{name: "canonical slug and pretty filename", locator: types.NewSlugLocator("foo", "bar/"), expected: true},
		{name: "ugly filename is not canonical", locator: types.NewSlugLocator("foo", "bar/index.html"), expected: false},
		{name: "slug alias is not canonical", locator: types.NewSlugLocator("alias-of-foo", "bar/"), expected: false},
		{name: "filename alias is not canonical", locator: types.NewSlugLocator("foo", "old-bar/"), expected: false},
		{name: "id locators are never canonical", locator: types.NewIDLocator("42", "bar/"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, types.IsCanonical(tt.locator, metadata))
		})
	}
}
