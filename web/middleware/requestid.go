package middleware

import (
	"time"

	"postboard/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIdKey = "REQUEST_ID"

// RequestID assigns each request a uuid, echoed in the X-Request-Id header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(requestIdKey, id)
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

// GetRequestID returns the uuid assigned to this request.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIdKey)
}

// RequestLogger logs method, path, status and latency of every request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debugf("%s %s -> %d (%s) id=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			GetRequestID(c),
		)
	}
}
