package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/food-details-service/internal/domain/dto"
	"github.com/guttosm/food-details-service/internal/i18n"
	"github.com/guttosm/food-details-service/internal/metrics"
	"github.com/rs/zerolog"
)

// Recovery turns a panic in a screen handler into a localized 500 envelope.
// The request-scoped logger already carries the request id; the route and the
// screen session id are added so the panic can be tied to a mounted screen.
// A response that was already started, such as an upgraded stream, is only aborted.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			route := c.FullPath()
			if route == "" {
				route = "unmatched"
			}
			metrics.RecordPanicRecovered(route)

			event := zerolog.Ctx(c.Request.Context()).Error().
				Str("method", c.Request.Method).
				Str("route", route).
				Interface("panic", rec).
				Bytes("stack", debug.Stack())
			if sid := c.Param("sid"); sid != "" {
				event = event.Str("session_id", sid)
			}
			event.Msg("Screen handler panicked")

			if c.Writer.Written() {
				c.Abort()
				return
			}
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.NewError(dto.ErrCodeInternal, message).WithRequestID(GetRequestID(c)))
		}()
		c.Next()
	}
}
