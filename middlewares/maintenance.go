package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaintenanceMiddleware turns the whole API into a placeholder while the
// kitchen is closed for maintenance.
func MaintenanceMiddleware(enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if enabled {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"ok":    false,
				"error": "We are improving the service, back soon",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
