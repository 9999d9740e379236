package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/kol-client/internal/logger"
	"github.com/rs/zerolog"
)

// RequestLogger logs one structured line per request. Paths in skip (probes,
// the metrics scrape) are not logged.
func RequestLogger(skip ...string) gin.HandlerFunc {
	skipped := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		skipped[p] = struct{}{}
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.Request.URL.Path
		if _, ok := skipped[path]; ok {
			return
		}

		statusCode := c.Writer.Status()
		log := logger.Logger().With().
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status_code", statusCode).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Str("ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Logger()

		log.WithLevel(levelForStatus(statusCode)).Msg("HTTP request")
	}
}

func levelForStatus(statusCode int) zerolog.Level {
	switch {
	case statusCode >= 500:
		return zerolog.ErrorLevel
	case statusCode >= 400:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
