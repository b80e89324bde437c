package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/food-details-service/internal/domain/dto"
	"github.com/guttosm/food-details-service/internal/gateway"
	"github.com/guttosm/food-details-service/internal/i18n"
	"github.com/guttosm/food-details-service/internal/logger"
)

// ErrorHandler logs the errors handlers attach to the gin context and writes a
// localized 500 when the handler produced no response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		requestID := GetRequestID(c)

		status := c.Writer.Status()
		if !c.Writer.Written() {
			status = http.StatusInternalServerError
		}

		log := logger.Logger()
		event := log.Warn()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		}
		event = event.
			Err(err).
			Str("request_id", requestID).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Int("status_code", status)
		if kind := gateway.KindOf(err); kind != gateway.KindUnknown {
			event = event.Str("gateway_error", kind.String())
		}
		event.Msg("Request error")

		if !c.Writer.Written() {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
			c.JSON(http.StatusInternalServerError,
				dto.NewError(dto.ErrCodeInternal, message).WithRequestID(requestID))
		}
	}
}
