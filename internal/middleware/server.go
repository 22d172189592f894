package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobboard_backend/internal/logger"
	"jobboard_backend/pkg/contextkeys"
)

// RequestIDMiddleware tags every request with a uuid, exposed both in
// the context (for log correlation) and the X-Request-ID header.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		ctx := logger.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// LoggingMiddleware writes one structured line per request.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)

		log := logger.FromContext(c.Request.Context())
		fields := []any{
			slog.String("client_ip", c.ClientIP()),
			slog.Int("status", c.Writer.Status()),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Duration("duration", duration),
			slog.Int("size_bytes", c.Writer.Size()),
		}
		switch {
		case c.Writer.Status() >= 500:
			log.Error("HTTP server error", fields...)
		case c.Writer.Status() >= 400:
			log.Warn("HTTP client error", fields...)
		default:
			log.Info("HTTP request", fields...)
		}
	}
}

// CORSMiddleware allows browser clients from any origin.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

// DBMiddleware exposes the connection pool to handlers through the gin
// context; a transaction placed in the request context wins, which is
// how tests wrap a request in a rollback.
func DBMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbKey := string(contextkeys.DBContextKey)
		if tx, ok := c.Request.Context().Value(contextkeys.DBContextKey).(*gorm.DB); ok && tx != nil {
			c.Set(dbKey, tx)
		} else {
			c.Set(dbKey, db)
		}
		c.Next()
	}
}
