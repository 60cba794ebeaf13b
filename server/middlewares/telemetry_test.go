package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	config "github.com/acearchive/files/server/config"
	middlewares "github.com/acearchive/files/server/middlewares"
	mocks "github.com/acearchive/files/server/mocks"
	gin "github.com/gin-gonic/gin"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
	zap "go.uber.org/zap"
)

func newTelemetryRouter(t *testing.T, enable bool, fake *mocks.FakeOpenTelemetry) *gin.Engine {
	t.Helper()

	cfg := config.Config{
		TelemetryConfig: config.TelemetryConfig{
			Enable: enable,
		},
	}

	telemetryMw, err := middlewares.NewTelemetryMiddleware(cfg, fake, zap.NewNop())
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(telemetryMw.Middleware())
	ok := func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	}
	router.GET("/raw/:key/*filename", ok)
	router.GET("/artifacts/:key/*filename", ok)
	router.GET("/a/:key/*filename", ok)
	router.GET("/r/:key/*filename", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/raw/foo/bar")
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	return router
}

func TestTelemetryMiddleware_Disabled(t *testing.T) {
	fake := &mocks.FakeOpenTelemetry{}
	router := newTelemetryRouter(t, false, fake)

	req := httptest.NewRequest(http.MethodGet, "/raw/foo/bar.txt", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, fake.RecordRequestCountCallCount())
	assert.Equal(t, 0, fake.RecordResponseStatusCallCount())
	assert.Equal(t, 0, fake.RecordRequestDurationCallCount())
}

func TestTelemetryMiddleware_FileEndpoints(t *testing.T) {
	tests := []struct {
		name             string
		path             string
		expectedEndpoint string
		expectedRoute    string
		expectedStatus   int
	}{
		{
			name:             "raw file",
			path:             "/raw/foo/bar.txt",
			expectedEndpoint: "raw",
			expectedRoute:    "/raw/:key/*filename",
			expectedStatus:   http.StatusOK,
		},
		{
			name:             "artifact page",
			path:             "/artifacts/foo/bar.txt",
			expectedEndpoint: "artifact_page",
			expectedRoute:    "/artifacts/:key/*filename",
			expectedStatus:   http.StatusOK,
		},
		{
			name:             "short page",
			path:             "/a/foo/bar.txt",
			expectedEndpoint: "short_page",
			expectedRoute:    "/a/:key/*filename",
			expectedStatus:   http.StatusOK,
		},
		{
			name:             "short raw redirect",
			path:             "/r/foo/bar.txt",
			expectedEndpoint: "short_raw",
			expectedRoute:    "/r/:key/*filename",
			expectedStatus:   http.StatusMovedPermanently,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &mocks.FakeOpenTelemetry{}
			router := newTelemetryRouter(t, true, fake)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			require.Equal(t, 1, fake.RecordRequestCountCallCount())
			require.Equal(t, 1, fake.RecordResponseStatusCallCount())
			require.Equal(t, 1, fake.RecordRequestDurationCallCount())

			_, attrs, method := fake.RecordRequestCountArgsForCall(0)
			assert.Equal(t, tt.expectedEndpoint, attrs.Endpoint)
			assert.Equal(t, tt.expectedRoute, attrs.Route)
			assert.Equal(t, http.MethodGet, method)

			_, _, _, path, status := fake.RecordResponseStatusArgsForCall(0)
			assert.Equal(t, tt.expectedRoute, path)
			assert.Equal(t, tt.expectedStatus, status)

			_, _, _, _, duration := fake.RecordRequestDurationArgsForCall(0)
			assert.GreaterOrEqual(t, duration, 0.0)
		})
	}
}

func TestTelemetryMiddleware_NonFilePath(t *testing.T) {
	fake := &mocks.FakeOpenTelemetry{}
	router := newTelemetryRouter(t, true, fake)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, fake.RecordRequestCountCallCount())
	assert.Equal(t, 0, fake.RecordResponseStatusCallCount())
	assert.Equal(t, 0, fake.RecordRequestDurationCallCount())
}

func TestTelemetryMiddleware_NilTelemetry(t *testing.T) {
	cfg := config.Config{
		TelemetryConfig: config.TelemetryConfig{
			Enable: true,
		},
	}

	telemetryMw, err := middlewares.NewTelemetryMiddleware(cfg, nil, zap.NewNop())
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(telemetryMw.Middleware())
	router.GET("/raw/:key/*filename", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/raw/foo/bar.txt", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
