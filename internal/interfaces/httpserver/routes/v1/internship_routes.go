package v1

import (
	"github.com/gin-gonic/gin"

	"internhub/board-api/internal/domain"
	"internhub/board-api/internal/interfaces/httpserver/middlewares"
)

// Browse and read are public; everything that creates or mutates a listing
// requires an authenticated employer. Ownership is enforced in the domain
// layer, after existence, so a missing id answers 404 even to non-owners.
func (r *Routes) registerInternshipRoutes(group *gin.RouterGroup) {
	listings := group.Group("/internships")

	listings.GET("", r.internships.List)
	listings.GET("/:id", r.internships.Get)

	employer := listings.Group("")
	employer.Use(r.authenticate, middlewares.RequireRole(domain.RoleEmployer))
	employer.POST("", r.internships.Create)
	employer.GET("/employer/me", r.internships.ListMine)
	employer.PUT("/:id", r.internships.Update)
	employer.DELETE("/:id", r.internships.Delete)
}
