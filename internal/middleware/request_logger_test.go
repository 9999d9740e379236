//go:build !integration

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func Test_levelForStatus(t *testing.T) {
	tests := []struct {
		status   int
		expected zerolog.Level
	}{
		{status: 200, expected: zerolog.InfoLevel},
		{status: 302, expected: zerolog.InfoLevel},
		{status: 404, expected: zerolog.WarnLevel},
		{status: 429, expected: zerolog.WarnLevel},
		{status: 502, expected: zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, levelForStatus(tt.status))
		})
	}
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		path        string
		statusCode  int
		mustContain []string
		expectEmpty bool
	}{
		{
			name:        "successful request logs info",
			path:        "/api/character",
			statusCode:  http.StatusOK,
			mustContain: []string{`"level":"info"`, `"path":"/api/character"`, `"status_code":200`, `"request_id"`},
		},
		{
			name:        "client error logs warn",
			path:        "/api/autosell",
			statusCode:  http.StatusBadRequest,
			mustContain: []string{`"level":"warn"`, `"status_code":400`},
		},
		{
			name:        "upstream failure logs error",
			path:        "/api/mall",
			statusCode:  http.StatusBadGateway,
			mustContain: []string{`"level":"error"`, `"status_code":502`},
		},
		{
			name:        "skipped path is not logged",
			path:        "/healthz",
			statusCode:  http.StatusOK,
			expectEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			original := log.Logger
			log.Logger = zerolog.New(&buf)
			defer func() { log.Logger = original }()

			router := gin.New()
			router.Use(RequestID(), RequestLogger("/healthz", "/metrics"))
			router.GET(tt.path, func(c *gin.Context) {
				c.Status(tt.statusCode)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.statusCode, w.Code)
			if tt.expectEmpty {
				assert.Empty(t, buf.String())
				return
			}
			for _, s := range tt.mustContain {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}
