package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"internhub/board-api/internal/domain"
	"internhub/board-api/internal/domain/user"
	"internhub/board-api/internal/infrastructure/auth"
	"internhub/board-api/internal/infrastructure/metrics"
	"internhub/board-api/internal/interfaces/httpserver/responses"
	"internhub/board-api/internal/utils/platformerrors"
)

// PrincipalKey is the gin context key under which the resolved principal is
// stored for the lifetime of one request.
const PrincipalKey = "principal"

// TokenVerifier validates a bearer token and returns its claims.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (auth.Claims, error)
}

// Auth resolves the caller's bearer token into a Principal and stores it in
// the request context. Credential failures, missing header, bad token,
// unknown subject, unknown role, collapse into a single 401 so the response
// does not reveal which step rejected the credential. A store failure during
// subject lookup is not a credential failure and surfaces as a 500.
func Auth(verifier TokenVerifier, users user.Repository, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			unauthenticated(c)
			return
		}

		claims, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			log.Debug().Err(err).Msg("token verification failed")
			unauthenticated(c)
			return
		}

		account, err := users.FindBySubject(c.Request.Context(), claims.Subject)
		if err != nil {
			if platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
				unauthenticated(c)
				return
			}
			responses.HandleError(c, log, err)
			c.Abort()
			return
		}

		if !account.Role.Valid() {
			log.Warn().Str("role", account.Role.String()).Str("user_id", account.ID).Msg("account has unknown role")
			unauthenticated(c)
			return
		}

		c.Set(PrincipalKey, domain.Principal{
			UserID: account.ID,
			Role:   account.Role,
			Name:   account.Name,
			Email:  account.Email,
		})
		c.Next()
	}
}

// GetPrincipal returns the principal stored by Auth.
func GetPrincipal(c *gin.Context) (domain.Principal, bool) {
	value, ok := c.Get(PrincipalKey)
	if !ok {
		return domain.Principal{}, false
	}
	principal, ok := value.(domain.Principal)
	return principal, ok
}

func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func unauthenticated(c *gin.Context) {
	metrics.AuthDenials.WithLabelValues("unauthenticated").Inc()
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":      "authentication required",
		"request_id": GetRequestID(c),
	})
}
