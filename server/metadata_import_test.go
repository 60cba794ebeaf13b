package server_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	server "github.com/acearchive/files/server"
	mocks "github.com/acearchive/files/server/mocks"
	types "github.com/acearchive/files/types"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
	zaptest "go.uber.org/zap/zaptest"
)

func TestImportArtifacts(t *testing.T) {
	store := newSQLiteMetadataStore(t)
	ctx := context.Background()

	input := fmt.Sprintf(`{"artifact_id": "abc123", "slug": "canonical-foo", "slug_aliases": ["foo"], "files": [{"filename": "image.png", "media_type": "image/png", "multihash": "%s"}]}
{"artifact_id": "def456", "slug": "other", "files": [{"filename": "notes.txt", "multihash": "%s"}]}
`, tenDigitsMultihash, tenDigitsMultihash)

	imported, err := server.ImportArtifacts(ctx, store, strings.NewReader(input), zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, 2, imported)

	file, found, err := store.LookupFile(ctx, types.NewSlugLocator("foo", "image.png"), []string{"image.png"})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "abc123", file.ArtifactID)
	assert.Equal(t, "canonical-foo", file.CanonicalSlug)
	assert.Equal(t, "image/png", file.MediaType)

	file, found, err = store.LookupFile(ctx, types.NewIDLocator("def456", "notes.txt"), []string{"notes.txt"})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "other", file.CanonicalSlug)
}

func TestImportArtifacts_Errors(t *testing.T) {
	tests := []struct {
		name             string
		input            string
		expectedImported int
		expectedError    string
	}{
		{
			name:          "malformed json",
			input:         `{"artifact_id": `,
			expectedError: "failed to decode artifact record 1",
		},
		{
			name:          "unknown field",
			input:         `{"artifact_id": "abc123", "slug": "foo", "owner": "someone"}`,
			expectedError: "failed to decode artifact record 1",
		},
		{
			name:          "missing slug",
			input:         `{"artifact_id": "abc123", "files": []}`,
			expectedError: "invalid artifact record 1",
		},
		{
			name: "stops at the first invalid record",
			input: `{"artifact_id": "abc123", "slug": "foo", "files": []}
{"artifact_id": "def456", "slug": "bar", "files": [{"filename": "a.txt", "multihash": "zz"}]}`,
			expectedImported: 1,
			expectedError:    "invalid artifact record 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newSQLiteMetadataStore(t)

			imported, err := server.ImportArtifacts(context.Background(), store, strings.NewReader(tt.input), zaptest.NewLogger(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
			assert.Equal(t, tt.expectedImported, imported)
		})
	}
}

func TestImportArtifacts_ReadOnlyStore(t *testing.T) {
	store := &mocks.FakeMetadataStore{}

	imported, err := server.ImportArtifacts(context.Background(), store, strings.NewReader(`{}`), zaptest.NewLogger(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not accept writes")
	assert.Zero(t, imported)
}
