package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	middlewares "github.com/acearchive/files/server/middlewares"
	gin "github.com/gin-gonic/gin"
	uuid "github.com/google/uuid"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
	zap "go.uber.org/zap"
	zapcore "go.uber.org/zap/zapcore"
	observer "go.uber.org/zap/zaptest/observer"
)

func TestRequestID(t *testing.T) {
	existing := uuid.NewString()

	tests := []struct {
		name      string
		inbound   string
		expectNew bool
	}{
		{
			name:      "no inbound id",
			inbound:   "",
			expectNew: true,
		},
		{
			name:      "valid inbound id is reused",
			inbound:   existing,
			expectNew: false,
		},
		{
			name:      "invalid inbound id is replaced",
			inbound:   "not-a-uuid",
			expectNew: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.Use(middlewares.RequestID())

			var seen string
			router.GET("/health", func(c *gin.Context) {
				seen = c.GetString(middlewares.RequestIDKey)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			if tt.inbound != "" {
				req.Header.Set(middlewares.RequestIDHeader, tt.inbound)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			returned := w.Header().Get(middlewares.RequestIDHeader)
			assert.Equal(t, seen, returned)
			_, err := uuid.Parse(returned)
			require.NoError(t, err)

			if tt.expectNew {
				assert.NotEqual(t, tt.inbound, returned)
			} else {
				assert.Equal(t, tt.inbound, returned)
			}
		})
	}
}

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name                  string
		path                  string
		status                int
		disableHealthcheckLog bool
		expectedEntries       int
		expectedLevel         zapcore.Level
	}{
		{
			name:            "successful request logs at info",
			path:            "/raw/foo/bar.txt",
			status:          http.StatusOK,
			expectedEntries: 1,
			expectedLevel:   zapcore.InfoLevel,
		},
		{
			name:            "client error logs at warn",
			path:            "/raw/foo/bar.txt",
			status:          http.StatusNotFound,
			expectedEntries: 1,
			expectedLevel:   zapcore.WarnLevel,
		},
		{
			name:            "server error logs at error",
			path:            "/raw/foo/bar.txt",
			status:          http.StatusInternalServerError,
			expectedEntries: 1,
			expectedLevel:   zapcore.ErrorLevel,
		},
		{
			name:                  "health check skipped",
			path:                  "/health",
			status:                http.StatusOK,
			disableHealthcheckLog: true,
			expectedEntries:       0,
		},
		{
			name:            "health check logged when enabled",
			path:            "/health",
			status:          http.StatusOK,
			expectedEntries: 1,
			expectedLevel:   zapcore.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			logger := zap.New(core)

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.Use(middlewares.RequestID())
			router.Use(middlewares.LoggingMiddleware(logger, tt.disableHealthcheckLog))
			router.GET("/health", func(c *gin.Context) {
				c.Status(tt.status)
			})
			router.GET("/raw/:key/*filename", func(c *gin.Context) {
				c.Status(tt.status)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			entries := logs.All()
			require.Len(t, entries, tt.expectedEntries)
			if tt.expectedEntries == 0 {
				return
			}

			entry := entries[0]
			assert.Equal(t, tt.expectedLevel, entry.Level)
			fields := entry.ContextMap()
			assert.Equal(t, http.MethodGet, fields["method"])
			assert.Equal(t, tt.path, fields["path"])
			assert.EqualValues(t, tt.status, fields["status"])
			assert.NotEmpty(t, fields["request_id"])
		})
	}
}
