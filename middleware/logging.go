package middleware

import (
	"net/http"
	"time"

	"kiosk/services/logger"

	"github.com/gin-gonic/gin"
)

// LoggingMiddleware log mỗi request sau khi xử lý xong
func LoggingMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start)
		requestID := c.GetString("requestId")
		if status >= http.StatusInternalServerError {
			log.Error("%s %s %d %s request_id=%s", c.Request.Method, c.Request.URL.Path, status, latency, requestID)
			return
		}
		log.Info("%s %s %d %s request_id=%s", c.Request.Method, c.Request.URL.Path, status, latency, requestID)
	}
}

// BodyLimitMiddleware giới hạn kích thước body (ảnh base64 khá lớn)
func BodyLimitMiddleware(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
