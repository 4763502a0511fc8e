package middleware

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/inkwell-social/inkwell/pkg/logger"
	"github.com/inkwell-social/inkwell/pkg/response"
)

// Recovery converts panics into 500 responses and forwards them to
// sentry when a DSN is configured.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				if hub := sentry.CurrentHub(); hub.Client() != nil {
					hub.Recover(r)
				}
				logger.Error("panic recovered",
					zap.Any("error", r),
					zap.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
					Code:    http.StatusInternalServerError,
					Message: "internal server error",
				})
			}
		}()
		c.Next()
	}
}
