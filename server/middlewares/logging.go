package middlewares

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoggingMiddleware logs every request through zap. Health checks are
// skipped when disableHealthcheckLog is set.
func LoggingMiddleware(logger *zap.Logger, disableHealthcheckLog bool) gin.HandlerFunc {
	config := gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			fields := []zap.Field{
				zap.String("method", param.Method),
				zap.String("path", param.Path),
				zap.Int("status", param.StatusCode),
				zap.Duration("latency", param.Latency),
				zap.String("client_ip", param.ClientIP),
				zap.Int("body_size", param.BodySize),
			}
			if requestID, ok := param.Keys[RequestIDKey].(string); ok {
				fields = append(fields, zap.String("request_id", requestID))
			}
			if param.ErrorMessage != "" {
				fields = append(fields, zap.String("error", param.ErrorMessage))
			}

			switch {
			case param.StatusCode >= 500:
				logger.Error("request", fields...)
			case param.StatusCode >= 400:
				logger.Warn("request", fields...)
			default:
				logger.Info("request", fields...)
			}
			return ""
		},
	}

	if disableHealthcheckLog {
		config.SkipPaths = []string{"/health"}
	}

	return gin.LoggerWithConfig(config)
}
