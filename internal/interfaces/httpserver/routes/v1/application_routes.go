package v1

import (
	"github.com/gin-gonic/gin"

	"internhub/board-api/internal/domain"
	"internhub/board-api/internal/interfaces/httpserver/middlewares"
)

// Applicants submit and read their own applications; employers review the
// ones attached to their listings.
func (r *Routes) registerApplicationRoutes(group *gin.RouterGroup) {
	applications := group.Group("/applications")
	applications.Use(r.authenticate)

	applicant := applications.Group("")
	applicant.Use(middlewares.RequireRole(domain.RoleApplicant))
	applicant.POST("", r.applications.Apply)
	applicant.GET("/me", r.applications.ListMine)

	employer := applications.Group("")
	employer.Use(middlewares.RequireRole(domain.RoleEmployer))
	employer.GET("/internship/:id", r.applications.ListForInternship)
	employer.PUT("/:id/status", r.applications.SetStatus)
}
