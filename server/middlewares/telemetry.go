package middlewares

import (
	"strings"
	"time"

	config "github.com/acearchive/files/server/config"
	otel "github.com/acearchive/files/server/otel"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// fileEndpoints maps the first path segment of file routes to the endpoint
// name recorded on metrics. Other routes are not recorded.
var fileEndpoints = map[string]string{
	"artifacts": "artifact_page",
	"raw":       "raw",
	"a":         "short_page",
	"r":         "short_raw",
}

// Telemetry records request metrics for file routes
type Telemetry interface {
	Middleware() gin.HandlerFunc
}

// TelemetryImpl implements Telemetry
type TelemetryImpl struct {
	cfg       config.Config
	telemetry otel.OpenTelemetry
	logger    *zap.Logger
}

// NewTelemetryMiddleware creates the telemetry middleware
func NewTelemetryMiddleware(cfg config.Config, telemetry otel.OpenTelemetry, logger *zap.Logger) (Telemetry, error) {
	return &TelemetryImpl{
		cfg:       cfg,
		telemetry: telemetry,
		logger:    logger,
	}, nil
}

// Middleware returns the gin handler
func (t *TelemetryImpl) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !t.cfg.TelemetryConfig.Enable || t.telemetry == nil {
			c.Next()
			return
		}

		endpoint, ok := endpointFor(c.Request.URL.Path)
		if !ok {
			c.Next()
			return
		}

		start := time.Now()
		ctx := c.Request.Context()
		method := c.Request.Method
		attrs := otel.TelemetryAttributes{
			Route:    c.FullPath(),
			Endpoint: endpoint,
		}

		t.telemetry.RecordRequestCount(ctx, attrs, method)

		c.Next()

		duration := float64(time.Since(start).Microseconds()) / 1000.0
		statusCode := c.Writer.Status()

		t.telemetry.RecordResponseStatus(ctx, attrs, method, attrs.Route, statusCode)
		t.telemetry.RecordRequestDuration(ctx, attrs, method, attrs.Route, duration)

		t.logger.Debug("request metrics recorded",
			zap.String("endpoint", endpoint),
			zap.String("method", method),
			zap.Int("status", statusCode),
			zap.Float64("duration_ms", duration))
	}
}

func endpointFor(path string) (string, bool) {
	segment, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	endpoint, ok := fileEndpoints[segment]
	return endpoint, ok
}
