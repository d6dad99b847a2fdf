package middlewares

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// RecoveryLogger ловит панику обработчика, пишет её со стеком и отвечает 500
func RecoveryLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			log.ErrorContext(c.Request.Context(), "PANIC CAUGHT",
				"panic", r,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"full_path", c.FullPath(),
				"client_ip", c.ClientIP(),
				"stack", string(debug.Stack()),
			)

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "internal server error",
			})
		}()
		c.Next()
	}
}
