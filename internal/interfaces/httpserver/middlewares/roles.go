package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"internhub/board-api/internal/domain"
	"internhub/board-api/internal/infrastructure/metrics"
)

// RequireRole rejects callers whose role is not among the allowed ones. It
// must run after Auth; a missing principal is treated as unauthenticated,
// never as forbidden.
func RequireRole(allowed ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			unauthenticated(c)
			return
		}

		for _, role := range allowed {
			if principal.Role == role {
				c.Next()
				return
			}
		}

		metrics.AuthDenials.WithLabelValues("role").Inc()
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":      "requires role " + roleList(allowed) + ", have " + principal.Role.String(),
			"request_id": GetRequestID(c),
		})
	}
}

func roleList(roles []domain.Role) string {
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = role.String()
	}
	return strings.Join(names, " or ")
}
