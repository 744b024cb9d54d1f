package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pricestats/internal/logger"
)

// RecoveryMiddleware converts a panic in any later handler into a 500 JSON
// ErrorResponse and logs the panic value with the request id, route and
// stack trace.
//
// Example:
//
//	router := gin.New()
//	router.Use(middleware.RequestID(), middleware.RecoveryMiddleware())
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			rid, _ := c.Get(RequestIDKey)
			logger.L().Error().
				Str("request_id", toString(rid)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Str("panic", fmt.Sprint(r)).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			AbortWithError(c, http.StatusInternalServerError, "Internal server error", fmt.Errorf("%v", r))
		}()

		c.Next()
	}
}
