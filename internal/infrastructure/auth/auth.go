// Package auth verifies bearer credentials against the identity provider's
// JWKS endpoint. It establishes who is calling, never what they may do.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"internhub/board-api/internal/config"
)

// Claims represent the subset of JWT claims the board service cares about.
type Claims struct {
	Subject   string
	Issuer    string
	ExpiresAt time.Time
}

// ErrInvalidToken covers malformed, expired and unverifiable credentials.
var ErrInvalidToken = errors.New("invalid token")

// Validator validates JWTs using JWKS.
type Validator struct {
	cfg  *config.Config
	log  zerolog.Logger
	jwks *keyfunc.JWKS
}

// NewValidator initializes JWKS fetching.
func NewValidator(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Validator, error) {
	options := keyfunc.Options{
		Ctx:               ctx,
		RefreshInterval:   time.Hour,
		RefreshUnknownKID: true,
		RefreshErrorHandler: func(err error) {
			log.Error().Err(err).Msg("jwks refresh error")
		},
	}

	jwks, err := keyfunc.Get(cfg.AuthJWKSURL, options)
	if err != nil {
		return nil, err
	}

	return &Validator{
		cfg:  cfg,
		log:  log,
		jwks: jwks,
	}, nil
}

// Verify parses and validates a bearer token, returning its claims.
func (v *Validator) Verify(ctx context.Context, tokenString string) (Claims, error) {
	parseOptions := []jwt.ParserOption{
		jwt.WithIssuer(v.cfg.AuthIssuer),
		jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"}),
	}
	if v.cfg.AuthAudience != "" {
		parseOptions = append(parseOptions, jwt.WithAudience(v.cfg.AuthAudience))
	}

	token, err := jwt.Parse(tokenString, v.jwks.Keyfunc, parseOptions...)
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	subject, err := mapClaims.GetSubject()
	if err != nil || subject == "" {
		return Claims{}, ErrInvalidToken
	}

	claims := Claims{Subject: subject}
	if issuer, err := mapClaims.GetIssuer(); err == nil {
		claims.Issuer = issuer
	}
	if expires, err := mapClaims.GetExpirationTime(); err == nil && expires != nil {
		claims.ExpiresAt = expires.Time
	}
	return claims, nil
}
