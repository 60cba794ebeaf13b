package client_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	client "github.com/acearchive/files/client"
	types "github.com/acearchive/files/types"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
	zaptest "go.uber.org/zap/zaptest"
)

func newTestClient(t *testing.T, handler http.Handler) client.FilesClient {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	config := client.DefaultConfig(ts.URL)
	config.Logger = zaptest.NewLogger(t)
	config.RetryDelay = time.Millisecond
	return client.NewClientWithConfig(config)
}

func writeErrorBody(w http.ResponseWriter, status int, reason string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, `{"error":"`+reason+`","status":404}`)
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		expected string
	}{
		{
			name:     "creates client with default config",
			baseURL:  "http://localhost:8080",
			expected: "http://localhost:8080",
		},
		{
			name:     "creates client with https url",
			baseURL:  "https://files.acearchive.lgbt",
			expected: "https://files.acearchive.lgbt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := client.NewClient(tt.baseURL)

			assert.NotNil(t, c)
			assert.Equal(t, tt.expected, c.GetBaseURL())
			assert.NotNil(t, c.GetLogger())
		})
	}
}

func TestClient_GetHealth(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		assert.Equal(t, "acearchive-files-client/1.0", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"status":"healthy"}`)
	}))

	health, err := c.GetHealth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, types.HealthStatusHealthy, health.Status)
}

func TestClient_GetFile(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/raw/foo/bar/index.html":
			http.Redirect(w, r, "/raw/canonical-foo/bar/", http.StatusMovedPermanently)
		case "/raw/canonical-foo/bar/":
			assert.Equal(t, "bytes=0-2", r.Header.Get("Range"))
			w.Header().Set("Content-Type", "text/html")
			w.Header().Set("ETag", `"abc"`)
			w.Header().Set("Content-Range", "bytes 0-2/10")
			w.WriteHeader(http.StatusPartialContent)
			_, _ = io.WriteString(w, "<ht")
		default:
			writeErrorBody(w, http.StatusNotFound, "Not Found")
		}
	}))

	resp, err := c.GetFile(context.Background(), client.FileRequest{
		Family:  types.EndpointRaw,
		Locator: types.NewSlugLocator("foo", "bar/index.html"),
		Range:   "bytes=0-2",
	})
	require.NoError(t, err)
	defer func() {
		_ = resp.Close()
	}()

	assert.Equal(t, http.StatusPartialContent, resp.StatusCode)
	assert.Equal(t, "text/html", resp.ContentType())
	assert.Equal(t, `"abc"`, resp.ETag())
	assert.Equal(t, "bytes 0-2/10", resp.ContentRange())

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "<ht", string(body))
}

func TestClient_GetFile_EscapesFilename(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/a/7/my file.txt", r.URL.Path)
		assert.Equal(t, "/a/7/my%20file.txt", r.URL.EscapedPath())
		_, _ = io.WriteString(w, "ok")
	}))

	resp, err := c.GetFile(context.Background(), client.FileRequest{
		Family:  types.EndpointShortPage,
		Locator: types.NewIDLocator("7", "my file.txt"),
	})
	require.NoError(t, err)
	assert.NoError(t, resp.Close())
}

func TestClient_GetFile_NotModified(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, `"abc"`, r.Header.Get("If-None-Match"))
		assert.Equal(t, "Wed, 21 Oct 2015 07:28:00 GMT", r.Header.Get("If-Modified-Since"))
		w.Header().Set("ETag", `"abc"`)
		w.WriteHeader(http.StatusNotModified)
	}))

	resp, err := c.GetFile(context.Background(), client.FileRequest{
		Family:          types.EndpointRaw,
		Locator:         types.NewSlugLocator("foo", "bar.txt"),
		IfNoneMatch:     `"abc"`,
		IfModifiedSince: time.Date(2015, time.October, 21, 7, 28, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.True(t, resp.NotModified())
	assert.Nil(t, resp.Body)
	assert.Equal(t, `"abc"`, resp.ETag())
	assert.NoError(t, resp.Close())
}

func TestClient_GetFile_Error(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeErrorBody(w, http.StatusNotFound, "Not Found")
	}))

	_, err := c.GetFile(context.Background(), client.FileRequest{
		Family:  types.EndpointRaw,
		Locator: types.NewSlugLocator("unknown", "bar.txt"),
	})
	require.Error(t, err)

	var responseErr *client.ResponseError
	require.True(t, errors.As(err, &responseErr))
	assert.Equal(t, http.StatusNotFound, responseErr.StatusCode)
	assert.Equal(t, "Not Found", responseErr.Message)
}

func TestClient_HeadFile(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Length", "10")
		w.WriteHeader(http.StatusOK)
	}))

	resp, err := c.HeadFile(context.Background(), client.FileRequest{
		Family:  types.EndpointRaw,
		Locator: types.NewSlugLocator("foo", "image.png"),
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, resp.Body)
	assert.Equal(t, int64(10), resp.ContentLength)
	assert.Equal(t, "image/png", resp.ContentType())
}

func TestClient_HeadFile_ErrorWithoutBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestedRangeNotSatisfiable)
	}))

	_, err := c.HeadFile(context.Background(), client.FileRequest{
		Family:  types.EndpointRaw,
		Locator: types.NewSlugLocator("foo", "image.png"),
		Range:   "bytes=50-",
	})

	var responseErr *client.ResponseError
	require.True(t, errors.As(err, &responseErr))
	assert.Equal(t, http.StatusRequestedRangeNotSatisfiable, responseErr.StatusCode)
	assert.Equal(t, "Requested Range Not Satisfiable", responseErr.Message)
}

func TestClient_ResolveFile(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		switch r.URL.Path {
		case "/r/7/bar/":
			w.Header().Set("Location", "https://files.acearchive.lgbt/raw/canonical-foo/bar/")
			w.WriteHeader(http.StatusMovedPermanently)
		case "/raw/canonical-foo/bar/":
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	t.Run("redirect", func(t *testing.T) {
		location, err := c.ResolveFile(context.Background(), types.EndpointShortRaw, types.NewIDLocator("7", "bar/"))
		require.NoError(t, err)
		assert.Equal(t, "https://files.acearchive.lgbt/raw/canonical-foo/bar/", location)
	})

	t.Run("canonical", func(t *testing.T) {
		location, err := c.ResolveFile(context.Background(), types.EndpointRaw, types.NewSlugLocator("canonical-foo", "bar/"))
		require.NoError(t, err)
		assert.Equal(t, c.GetBaseURL()+"/raw/canonical-foo/bar/", location)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := c.ResolveFile(context.Background(), types.EndpointRaw, types.NewSlugLocator("unknown", "bar/"))
		var responseErr *client.ResponseError
		require.True(t, errors.As(err, &responseErr))
		assert.Equal(t, http.StatusNotFound, responseErr.StatusCode)
	})
}

func TestClient_RetriesExhausted(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	baseURL := ts.URL
	ts.Close()

	config := client.DefaultConfig(baseURL)
	config.Logger = zaptest.NewLogger(t)
	config.MaxRetries = 2
	config.RetryDelay = time.Millisecond
	c := client.NewClientWithConfig(config)

	_, err := c.GetFile(context.Background(), client.FileRequest{
		Family:  types.EndpointRaw,
		Locator: types.NewSlugLocator("foo", "bar.txt"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
}

func TestClient_RetryStopsOnCancel(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	baseURL := ts.URL
	ts.Close()

	config := client.DefaultConfig(baseURL)
	config.RetryDelay = time.Hour
	c := client.NewClientWithConfig(config)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.GetFile(ctx, client.FileRequest{
		Family:  types.EndpointRaw,
		Locator: types.NewSlugLocator("foo", "bar.txt"),
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
