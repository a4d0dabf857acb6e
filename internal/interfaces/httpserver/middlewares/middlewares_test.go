package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"internhub/board-api/internal/domain"
	domainuser "internhub/board-api/internal/domain/user"
	"internhub/board-api/internal/infrastructure/auth"
	userrepo "internhub/board-api/internal/infrastructure/repository/user"
	"internhub/board-api/internal/utils/platformerrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		token  string
		ok     bool
	}{
		{"well formed", "Bearer abc.def.ghi", "abc.def.ghi", true},
		{"lowercase scheme", "bearer abc", "abc", true},
		{"missing header", "", "", false},
		{"wrong scheme", "Basic abc", "", false},
		{"scheme only", "Bearer", "", false},
		{"empty token", "Bearer ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, ok := bearerToken(tt.header)
			if token != tt.token || ok != tt.ok {
				t.Errorf("bearerToken(%q) = (%q, %v), want (%q, %v)", tt.header, token, ok, tt.token, tt.ok)
			}
		})
	}
}

func setPrincipal(principal domain.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(PrincipalKey, principal)
		c.Next()
	}
}

func TestRequireRole_NoPrincipalIsUnauthenticated(t *testing.T) {
	engine := gin.New()
	engine.GET("/protected", RequireRole(domain.RoleEmployer), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireRole_WrongRoleForbidden(t *testing.T) {
	engine := gin.New()
	engine.GET("/protected",
		setPrincipal(domain.Principal{UserID: "u-1", Role: domain.RoleApplicant}),
		RequireRole(domain.RoleEmployer),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
	// The denial names both the required and the actual role.
	if body := rec.Body.String(); !strings.Contains(body, "employer") || !strings.Contains(body, "applicant") {
		t.Errorf("body %q should name required and actual roles", body)
	}
}

func TestRequireRole_MatchingRolePasses(t *testing.T) {
	engine := gin.New()
	engine.GET("/protected",
		setPrincipal(domain.Principal{UserID: "u-1", Role: domain.RoleEmployer}),
		RequireRole(domain.RoleEmployer),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

// stubVerifier accepts any token and returns fixed claims.
type stubVerifier struct {
	claims auth.Claims
	err    error
}

func (s stubVerifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	return s.claims, s.err
}

// failingUserRepository simulates a store outage.
type failingUserRepository struct{}

func (failingUserRepository) FindByID(ctx context.Context, id string) (*domainuser.User, error) {
	return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository,
		platformerrors.ErrorTypeDatabaseError, "failed to find user", nil, "user-find-db-001")
}

func (failingUserRepository) FindBySubject(ctx context.Context, subject string) (*domainuser.User, error) {
	return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository,
		platformerrors.ErrorTypeDatabaseError, "failed to find user", nil, "user-find-db-001")
}

func authEngine(verifier TokenVerifier, users domainuser.Repository) *gin.Engine {
	engine := gin.New()
	engine.GET("/whoami", Auth(verifier, users, zerolog.Nop()), func(c *gin.Context) {
		principal, _ := GetPrincipal(c)
		c.JSON(http.StatusOK, gin.H{"user_id": principal.UserID})
	})
	return engine
}

func bearerRequest() *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer some.jwt.token")
	return req
}

func TestAuth_ResolvesPrincipal(t *testing.T) {
	users := userrepo.NewInMemoryRepository()
	users.Put(domainuser.User{ID: "u-1", Subject: "sub-1", Name: "Ada", Role: domain.RoleEmployer})

	engine := authEngine(stubVerifier{claims: auth.Claims{Subject: "sub-1"}}, users)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, bearerRequest())

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "u-1") {
		t.Errorf("body %q should carry the resolved user id", rec.Body.String())
	}
}

func TestAuth_UnknownSubjectUnauthorized(t *testing.T) {
	engine := authEngine(stubVerifier{claims: auth.Claims{Subject: "ghost"}}, userrepo.NewInMemoryRepository())
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, bearerRequest())

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestAuth_InvalidTokenUnauthorized(t *testing.T) {
	engine := authEngine(stubVerifier{err: auth.ErrInvalidToken}, userrepo.NewInMemoryRepository())
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, bearerRequest())

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestAuth_StoreFailureIsNotUnauthorized(t *testing.T) {
	// A database outage during subject lookup must not masquerade as a
	// credential problem.
	engine := authEngine(stubVerifier{claims: auth.Claims{Subject: "sub-1"}}, failingUserRepository{})
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, bearerRequest())

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestRequestID_MintsAndEchoes(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/", func(c *gin.Context) {
		if GetRequestID(c) == "" {
			t.Error("request id missing from context")
		}
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Header().Get(RequestIDHeader) == "" {
		t.Error("request id header not set")
	}
}

func TestRequestID_HonorsCallerSupplied(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if got := rec.Header().Get(RequestIDHeader); got != "req-42" {
		t.Errorf("request id = %q, want req-42", got)
	}
}
