package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// learnerIDKey is the gin context key the identity middleware sets.
const learnerIDKey = "learnerID"

// learnerHeader carries the learner identity. Authentication lives in
// front of this service; the engine only needs a stable identifier.
const learnerHeader = "X-Learner-ID"

// LearnerIdentity extracts the learner identifier from the request
// header. Handlers reject requests where it is missing.
func LearnerIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(learnerIDKey, c.GetHeader(learnerHeader))
		c.Next()
	}
}

func learnerID(c *gin.Context) string {
	return c.GetString(learnerIDKey)
}

// CORS configures cross-origin access for browser clients.
func CORS(origins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", learnerHeader},
		AllowCredentials: true,
	})
}

// RequestLogger logs one line per request, leveled by status.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		}

		switch {
		case status >= 500:
			log.Error("HTTP request", fields...)
		case status >= 400:
			log.Warn("HTTP request", fields...)
		default:
			log.Info("HTTP request", fields...)
		}
	}
}
