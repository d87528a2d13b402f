package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type cacheInvalidator interface {
	InvalidateCache(ctx context.Context)
}

// InvalidateDashboard drops cached dashboard aggregates after any successful
// mutation so the next dashboard read recomputes from current data.
func InvalidateDashboard(dashboards cacheInvalidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if dashboards == nil || c.Request.Method == http.MethodGet {
			return
		}
		status := c.Writer.Status()
		if status >= 200 && status < 300 {
			dashboards.InvalidateCache(c.Request.Context())
		}
	}
}
