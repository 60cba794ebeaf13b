package server_test

import (
	"context"
	"path/filepath"
	"testing"

	server "github.com/acearchive/files/server"
	types "github.com/acearchive/files/types"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
	zaptest "go.uber.org/zap/zaptest"
)

func newSQLiteMetadataStore(t *testing.T) *server.SQLiteMetadataStore {
	t.Helper()

	store, err := server.NewSQLiteMetadataStore(context.Background(), ":memory:", true, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func TestSQLiteMetadataStore(t *testing.T) {
	exerciseMetadataStore(t, newSQLiteMetadataStore(t))
}

func TestSQLiteMetadataStore_ExplicitVersion(t *testing.T) {
	store := newSQLiteMetadataStore(t)
	ctx := context.Background()

	record := testArtifactRecord()
	record.Version = 5
	require.NoError(t, store.PutArtifact(ctx, record))

	err := store.PutArtifact(ctx, record)
	assert.Error(t, err, "a version can only be recorded once")

	record.Version = 0
	record.Files = record.Files[1:]
	require.NoError(t, store.PutArtifact(ctx, record))

	_, found, err := store.LookupFile(ctx, types.NewSlugLocator("canonical-foo", "bar/index.html"), []string{"bar/index.html"})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSQLiteMetadataStore_InvalidRecord(t *testing.T) {
	store := newSQLiteMetadataStore(t)

	record := testArtifactRecord()
	record.Files[0].Multihash = "not-a-multihash"

	assert.Error(t, store.PutArtifact(context.Background(), record))

	_, found, err := store.LookupFile(context.Background(), types.NewSlugLocator("canonical-foo", "image.png"), []string{"image.png"})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSQLiteMetadataStore_MigrationsAreRepeatable(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "artifacts.db")
	ctx := context.Background()

	store, err := server.NewSQLiteMetadataStore(ctx, dsn, true, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NoError(t, store.PutArtifact(ctx, testArtifactRecord()))
	require.NoError(t, store.Close())

	reopened, err := server.NewSQLiteMetadataStore(ctx, dsn, true, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer func() {
		_ = reopened.Close()
	}()

	metadata, found, err := reopened.LookupFile(ctx, types.NewSlugLocator("foo", "image.png"), []string{"image.png"})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, tenDigitsMultihash, metadata.Multihash)
}

func TestSQLiteMetadataStore_WithoutSchema(t *testing.T) {
	store, err := server.NewSQLiteMetadataStore(context.Background(), ":memory:", false, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer func() {
		_ = store.Close()
	}()

	_, _, err = store.LookupFile(context.Background(), types.NewSlugLocator("foo", "bar.txt"), []string{"bar.txt"})
	assert.Error(t, err)
}
