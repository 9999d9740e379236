package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/kol-client/internal/domain/dto"
	"github.com/guttosm/kol-client/internal/i18n"
)

// ErrorHandler logs errors attached with c.Error and, when the handler wrote
// nothing, answers with a translated 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)

		LoggerFrom(c).Error().
			Err(err.Err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if c.Writer.Written() {
			return
		}
		message := i18n.Message(c, i18n.ErrKeyInternalError)
		c.JSON(http.StatusInternalServerError, dto.NewError(dto.ErrCodeInternal, message).WithRequestID(requestID))
	}
}
