package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"quoteflow/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// Timeout caps every request at the configured deadline. Handlers observe the
// cancellation through the request context; a deadline that fires before a
// response was written surfaces as a gateway timeout.
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			resp := httperr.Response{Status: http.StatusGatewayTimeout}
			resp.Error.Message = "Request timed out, please retry"
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, resp)
		}
	}
}
