package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Aditya27268/Ecommerce-Assistant/pkg/logger"
)

const requestIDHeader = "X-Request-ID"

// requestIDMiddleware tags every request with an id and scopes the request
// logger to it so downstream logs correlate.
func requestIDMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)
		reqLog := log.With("request_id", requestID)
		c.Request = c.Request.WithContext(
			logger.ContextWithLogger(c.Request.Context(), reqLog),
		)
		c.Next()
	}
}

// loggingMiddleware records one line per request with latency and status.
func loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.FromContext(c.Request.Context()).Info("request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"took", time.Since(start),
		)
	}
}
