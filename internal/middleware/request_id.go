// Package middleware provides the gin middleware stack of the control API.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/guttosm/kol-client/internal/logger"
	"github.com/rs/zerolog"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLength bounds client supplied IDs before they reach the logs.
const maxRequestIDLength = 64

// ContextKey type for context keys to avoid collisions.
type ContextKey string

// RequestIDKey is the gin context key for the request ID.
const RequestIDKey ContextKey = "request_id"

// RequestID makes sure every request carries an ID and a logger tagged with it.
// A well-formed client X-Request-ID is reused, otherwise a UUID v4 is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if !validRequestID(requestID) {
			requestID = uuid.NewString()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Header(RequestIDHeader, requestID)

		reqLogger := logger.Logger().With().Str("request_id", requestID).Logger()
		c.Request = c.Request.WithContext(reqLogger.WithContext(c.Request.Context()))

		c.Next()
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}

// GetRequestID retrieves the request ID from the gin context.
func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get(string(RequestIDKey)); exists {
		if requestID, ok := id.(string); ok {
			return requestID
		}
	}
	return ""
}

// LoggerFrom returns the request's logger, or the global one outside RequestID.
func LoggerFrom(c *gin.Context) *zerolog.Logger {
	if l := zerolog.Ctx(c.Request.Context()); l.GetLevel() != zerolog.Disabled {
		return l
	}
	global := logger.Logger()
	return &global
}
