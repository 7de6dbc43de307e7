package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moodcast/backend/internal/logger"
)

// Logger emits a structured log line per request with method, path, status
// and latency. Request-scoped fields (request ID, user ID) come from the
// request context.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		log := logger.Ctx(c.Request.Context())
		fields := []logger.Field{
			logger.String("method", method),
			logger.String("path", path),
			logger.Int("status", status),
			logger.Duration("latency", latency),
		}

		switch {
		case status >= 500:
			log.Error("request failed", fields...)
		case status >= 400:
			log.Warn("request error", fields...)
		default:
			log.Info("request completed", fields...)
		}
	}
}
