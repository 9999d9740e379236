package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/kol-client/internal/domain/dto"
	"github.com/guttosm/kol-client/internal/i18n"
)

const (
	// IdempotencyKeyHeader is the HTTP header name for idempotency key.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from the cache.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is the TTL for cached idempotency responses.
	IdempotencyKeyTTL = 5 * time.Minute
)

// cachedResponse stores a cached HTTP response for idempotency.
type cachedResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
	Timestamp   time.Time
}

// IdempotencyConfig holds configuration for idempotency middleware.
type IdempotencyConfig struct {
	Cache   *idempotencyCache
	TTL     time.Duration
	Enabled bool
}

// DefaultIdempotencyConfig returns default idempotency configuration.
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		Cache:   newIdempotencyCache(IdempotencyKeyTTL),
		TTL:     IdempotencyKeyTTL,
		Enabled: true,
	}
}

// Idempotency replays the stored response of a mutating request whose
// Idempotency-Key, method, path and body match one seen within the TTL. A
// duplicate that arrives while the first is still running gets a 409 instead
// of reaching the game server a second time.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Cache == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		default:
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		cacheKey := idempotencyCacheKey(key, c.Request)

		cached, state := cfg.Cache.Reserve(cacheKey)
		switch state {
		case replay:
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(cached.StatusCode, cached.ContentType, cached.Body)
			c.Abort()
			return
		case inFlight:
			c.AbortWithStatusJSON(http.StatusConflict,
				dto.NewError(dto.ErrCodeConflict, i18n.Message(c, i18n.ErrKeyRequestInProgress)).
					WithRequestID(GetRequestID(c)))
			return
		}

		writer := &capturingWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = writer

		completed := false
		defer func() {
			if !completed {
				cfg.Cache.Release(cacheKey)
			}
		}()

		c.Next()

		// Failures are not stored so the client can retry them.
		status := writer.Status()
		if status >= 200 && status < 300 {
			cfg.Cache.Complete(cacheKey, &cachedResponse{
				StatusCode:  status,
				ContentType: writer.Header().Get("Content-Type"),
				Body:        writer.body.Bytes(),
			})
			completed = true
		}
	}
}

// idempotencyCacheKey hashes the client key with the request method, path and body.
// The body is restored so handlers can still bind it.
func idempotencyCacheKey(idempotencyKey string, req *http.Request) string {
	hasher := sha256.New()
	hasher.Write([]byte(idempotencyKey))
	hasher.Write([]byte{0})
	hasher.Write([]byte(req.Method))
	hasher.Write([]byte{0})
	hasher.Write([]byte(req.URL.Path))

	if req.Body != nil {
		bodyBytes, _ := io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		hasher.Write([]byte{0})
		hasher.Write(bodyBytes)
	}

	return hex.EncodeToString(hasher.Sum(nil))
}

// capturingWriter tees the response body for caching.
type capturingWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *capturingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *capturingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
