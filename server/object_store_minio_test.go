package server_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	server "github.com/acearchive/files/server"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
	zaptest "go.uber.org/zap/zaptest"
)

type fakeS3Object struct {
	body               string
	etag               string
	contentType        string
	contentDisposition string
}

// fakeS3 answers the path-style requests the minio client issues for a
// single bucket
type fakeS3 struct {
	bucket  string
	objects map[string]fakeS3Object
	denied  map[string]bool
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	bucket, key, _ := strings.Cut(strings.TrimPrefix(r.URL.Path, "/"), "/")

	if bucket != f.bucket {
		f.writeError(w, r, http.StatusNotFound, "NoSuchBucket")
		return
	}
	if key == "" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if f.denied[key] {
		f.writeError(w, r, http.StatusForbidden, "AccessDenied")
		return
	}

	object, ok := f.objects[key]
	if !ok {
		f.writeError(w, r, http.StatusNotFound, "NoSuchKey")
		return
	}

	if ifMatch := r.Header.Get("If-Match"); ifMatch != "" && strings.Trim(ifMatch, `"`) != object.etag {
		f.writeError(w, r, http.StatusPreconditionFailed, "PreconditionFailed")
		return
	}

	h := w.Header()
	h.Set("ETag", `"`+object.etag+`"`)
	h.Set("Last-Modified", testModTime.Format(http.TimeFormat))
	h.Set("Accept-Ranges", "bytes")
	if object.contentType != "" {
		h.Set("Content-Type", object.contentType)
	}
	if object.contentDisposition != "" {
		h.Set("Content-Disposition", object.contentDisposition)
	}

	body := object.body
	status := http.StatusOK
	if rangeHeader := r.Header.Get("Range"); rangeHeader != "" && r.Method == http.MethodGet {
		var start, end int
		if _, err := fmt.Sscanf(rangeHeader, "bytes=%d-%d", &start, &end); err != nil {
			f.writeError(w, r, http.StatusRequestedRangeNotSatisfiable, "InvalidRange")
			return
		}
		h.Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", start, end, len(body)))
		body = body[start : end+1]
		status = http.StatusPartialContent
	}

	h.Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	if r.Method != http.MethodHead {
		_, _ = w.Write([]byte(body))
	}
}

func (f *fakeS3) writeError(w http.ResponseWriter, r *http.Request, status int, code string) {
	if r.Method == http.MethodHead {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(status)
	_, _ = fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>%s</Code><Message>%s</Message><Resource>%s</Resource><RequestId>test</RequestId></Error>`, code, code, r.URL.Path)
}

func newFakeS3Store(t *testing.T, fake *fakeS3) *server.MinIOObjectStore {
	t.Helper()

	ts := httptest.NewServer(fake)
	t.Cleanup(ts.Close)

	endpoint := strings.TrimPrefix(ts.URL, "http://")
	store, err := server.NewMinIOObjectStore(context.Background(), "primary", endpoint, "access", "secret", "artifacts", "us-east-1", false, zaptest.NewLogger(t))
	require.NoError(t, err)
	return store
}

func testFakeS3() *fakeS3 {
	return &fakeS3{
		bucket: "artifacts",
		objects: map[string]fakeS3Object{
			testObjectKey: {
				body:               "0123456789",
				etag:               "0123456789abcdef",
				contentType:        "text/plain",
				contentDisposition: `inline; filename="bar.txt"`,
			},
		},
		denied: map[string]bool{
			"artifacts/forbidden": true,
		},
	}
}

func TestNewMinIOObjectStore_MissingBucket(t *testing.T) {
	ts := httptest.NewServer(&fakeS3{bucket: "other"})
	defer ts.Close()

	endpoint := strings.TrimPrefix(ts.URL, "http://")
	_, err := server.NewMinIOObjectStore(context.Background(), "primary", endpoint, "access", "secret", "artifacts", "us-east-1", false, zaptest.NewLogger(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestMinIOObjectStore_Head(t *testing.T) {
	store := newFakeS3Store(t, testFakeS3())
	ctx := context.Background()

	result, err := store.Head(ctx, testObjectKey)
	require.NoError(t, err)

	assert.Equal(t, server.ReadFound, result.Status)
	assert.False(t, result.Object.HasBody())
	assert.Equal(t, uint64(10), result.Object.Info.Size)
	assert.Equal(t, `"0123456789abcdef"`, result.Object.Info.ETag)
	assert.Equal(t, "text/plain", result.Object.Info.ContentType)
	assert.Equal(t, `inline; filename="bar.txt"`, result.Object.Info.ContentDisposition)
	assert.True(t, testModTime.Equal(result.Object.Info.LastModified))

	missing, err := store.Head(ctx, "artifacts/missing")
	require.NoError(t, err)
	assert.Equal(t, server.ReadNotFound, missing.Status)

	_, err = store.Head(ctx, "artifacts/forbidden")
	assert.Error(t, err)

	assert.Equal(t, "primary", store.Name())
	assert.NoError(t, store.Close())
}

func TestMinIOObjectStore_Get(t *testing.T) {
	store := newFakeS3Store(t, testFakeS3())
	ctx := context.Background()

	t.Run("whole object", func(t *testing.T) {
		result, err := store.Get(ctx, testObjectKey, server.GetOptions{Range: server.WholeDocument()})
		require.NoError(t, err)

		assert.Equal(t, server.ReadFound, result.Status)
		assert.Nil(t, result.Object.Range)
		assert.Equal(t, "0123456789", readObjectBody(t, result.Object))
	})

	t.Run("range", func(t *testing.T) {
		rangeRequest, err := server.ParseRangeRequest("bytes=0-4")
		require.NoError(t, err)

		result, err := store.Get(ctx, testObjectKey, server.GetOptions{Range: rangeRequest})
		require.NoError(t, err)

		require.NotNil(t, result.Object.Range)
		assert.Equal(t, "bytes 0-4/10", result.Object.Range.ContentRange())
		assert.Equal(t, "01234", readObjectBody(t, result.Object))
	})

	t.Run("clamped range", func(t *testing.T) {
		rangeRequest, err := server.ParseRangeRequest("bytes=7-100")
		require.NoError(t, err)

		result, err := store.Get(ctx, testObjectKey, server.GetOptions{Range: rangeRequest})
		require.NoError(t, err)
		assert.Equal(t, "789", readObjectBody(t, result.Object))
	})

	t.Run("unsatisfiable range", func(t *testing.T) {
		rangeRequest, err := server.ParseRangeRequest("bytes=50-")
		require.NoError(t, err)

		_, err = store.Get(ctx, testObjectKey, server.GetOptions{Range: rangeRequest})
		assert.ErrorIs(t, err, server.ErrRangeNotSatisfiable)
	})

	t.Run("not modified", func(t *testing.T) {
		result, err := store.Get(ctx, testObjectKey, server.GetOptions{
			Conditions: server.Conditions{IfNoneMatch: []string{`"0123456789abcdef"`}},
		})
		require.NoError(t, err)
		assert.Equal(t, server.ReadNotModified, result.Status)
		assert.False(t, result.Object.HasBody())
	})

	t.Run("missing object", func(t *testing.T) {
		result, err := store.Get(ctx, "artifacts/missing", server.GetOptions{})
		require.NoError(t, err)
		assert.Equal(t, server.ReadNotFound, result.Status)
	})

	t.Run("access denied is an error", func(t *testing.T) {
		_, err := store.Get(ctx, "artifacts/forbidden", server.GetOptions{})
		assert.Error(t, err)
	})
}
