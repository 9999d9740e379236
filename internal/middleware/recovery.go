package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/kol-client/internal/domain/dto"
	"github.com/guttosm/kol-client/internal/i18n"
)

// Recovery turns a panicking handler into a 500 with the standard error body.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				requestID := GetRequestID(c)
				LoggerFrom(c).Error().
					Str("path", c.Request.URL.Path).
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Msg("Handler panicked")

				message := i18n.Message(c, i18n.ErrKeyInternalError)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					dto.NewError(dto.ErrCodeInternal, message).WithRequestID(requestID))
			}
		}()
		c.Next()
	}
}
