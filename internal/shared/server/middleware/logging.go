package middleware

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		attrs := []any{
			slog.String("request_id", RequestIDFromContext(c)),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Float64("duration_ms", float64(latency.Microseconds())/1000.0),
			slog.String("client_ip", c.ClientIP()),
		}
		if documentID := c.GetString("documentId"); documentID != "" {
			attrs = append(attrs, slog.String("document_id", documentID))
		}
		if scanID := c.GetString("scanId"); scanID != "" {
			attrs = append(attrs, slog.String("scan_id", scanID))
		}
		slog.Info("request.complete", attrs...)
	}
}
