package middlewares

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"internhub/board-api/internal/infrastructure/metrics"
)

// Metrics records request counts and latency per route. The route template
// (not the raw path) is used as the endpoint label to keep cardinality low.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		metrics.RecordRequest(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
