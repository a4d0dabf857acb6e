// Package v1 registers the versioned HTTP routes and their middleware
// chains. Authentication and role gates live here so a reader can see every
// route's protection level in one place.
package v1

import (
	"github.com/gin-gonic/gin"

	"internhub/board-api/internal/interfaces/httpserver/handlers"
)

// Routes encapsulates versioned route registration.
type Routes struct {
	internships  *handlers.InternshipHandler
	applications *handlers.ApplicationHandler
	authenticate gin.HandlerFunc
}

// NewRoutes builds the v1 route registrar. The authenticate middleware is
// injected so tests can swap in a stub principal resolver.
func NewRoutes(
	internships *handlers.InternshipHandler,
	applications *handlers.ApplicationHandler,
	authenticate gin.HandlerFunc,
) *Routes {
	return &Routes{
		internships:  internships,
		applications: applications,
		authenticate: authenticate,
	}
}

// Register attaches all v1 routes under the /v1 prefix.
func (r *Routes) Register(engine *gin.Engine) {
	group := engine.Group("/v1")
	r.registerInternshipRoutes(group)
	r.registerApplicationRoutes(group)
}
