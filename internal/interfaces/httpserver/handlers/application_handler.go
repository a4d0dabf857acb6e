package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"internhub/board-api/internal/domain/application"
	"internhub/board-api/internal/infrastructure/metrics"
	"internhub/board-api/internal/interfaces/httpserver/middlewares"
	"internhub/board-api/internal/interfaces/httpserver/requests"
	"internhub/board-api/internal/interfaces/httpserver/responses"
	"internhub/board-api/internal/utils/platformerrors"
)

// ApplicationHandler handles application endpoints.
type ApplicationHandler struct {
	service application.Service
	log     zerolog.Logger
}

// NewApplicationHandler creates a new application handler.
func NewApplicationHandler(service application.Service, log zerolog.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		service: service,
		log:     log.With().Str("handler", "application").Logger(),
	}
}

// Apply godoc
// @Summary Apply to an internship
// @Description Submits an application; at most one per (internship, applicant)
// @Tags applications
// @Accept json
// @Produce json
// @Param request body requests.ApplyRequest true "Application fields"
// @Success 201 {object} application.Application
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Security BearerAuth
// @Router /v1/applications [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	principal, ok := middlewares.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, responses.ErrorResponse{Error: "authentication required"})
		return
	}

	var req requests.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleValidationError(c, err)
		return
	}

	app, err := h.service.Apply(c.Request.Context(), principal, application.ApplyParams{
		InternshipID: req.InternshipID,
		CoverLetter:  req.CoverLetter,
	})
	if err != nil {
		metrics.ApplicationsSubmitted.WithLabelValues(submissionOutcome(err)).Inc()
		responses.HandleError(c, h.log, err)
		return
	}

	metrics.ApplicationsSubmitted.WithLabelValues("created").Inc()
	c.JSON(http.StatusCreated, app)
}

// submissionOutcome labels a failed submission by its cause so duplicates,
// missing listings and denied roles stay distinguishable on dashboards.
func submissionOutcome(err error) string {
	switch {
	case platformerrors.IsErrorType(err, platformerrors.ErrorTypeConflict):
		return "duplicate"
	case platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound):
		return "not_found"
	case platformerrors.IsErrorType(err, platformerrors.ErrorTypeForbidden):
		return "forbidden"
	default:
		return "error"
	}
}

// ListMine godoc
// @Summary List my applications
// @Description Applications submitted by the acting applicant, newest first,
// @Description each carrying a summary of its listing
// @Tags applications
// @Produce json
// @Success 200 {object} responses.ApplicationListResponse
// @Failure 401 {object} responses.ErrorResponse
// @Security BearerAuth
// @Router /v1/applications/me [get]
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	principal, ok := middlewares.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, responses.ErrorResponse{Error: "authentication required"})
		return
	}

	apps, err := h.service.ListMine(c.Request.Context(), principal)
	if err != nil {
		responses.HandleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, responses.NewApplicationListResponse(apps))
}

// ListForInternship godoc
// @Summary List applications for a listing
// @Description Applications for one of the acting employer's listings, newest
// @Description first, each carrying the applicant's public profile
// @Tags applications
// @Produce json
// @Param id path string true "Internship ID"
// @Success 200 {object} responses.ApplicationListResponse
// @Failure 401 {object} responses.ErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security BearerAuth
// @Router /v1/applications/internship/{id} [get]
func (h *ApplicationHandler) ListForInternship(c *gin.Context) {
	principal, ok := middlewares.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, responses.ErrorResponse{Error: "authentication required"})
		return
	}

	apps, err := h.service.ListForInternship(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		responses.HandleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, responses.NewApplicationListResponse(apps))
}

// SetStatus godoc
// @Summary Update an application's status
// @Description Moves an application between pending, reviewed, accepted and
// @Description rejected; ownership is resolved through the listing
// @Tags applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param request body requests.UpdateStatusRequest true "Target status"
// @Success 200 {object} application.Application
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security BearerAuth
// @Router /v1/applications/{id}/status [put]
func (h *ApplicationHandler) SetStatus(c *gin.Context) {
	principal, ok := middlewares.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, responses.ErrorResponse{Error: "authentication required"})
		return
	}

	var req requests.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleValidationError(c, err)
		return
	}

	app, err := h.service.SetStatus(c.Request.Context(), principal, c.Param("id"), req.Status)
	if err != nil {
		responses.HandleError(c, h.log, err)
		return
	}

	metrics.ApplicationStatusChanges.WithLabelValues(app.Status.String()).Inc()
	c.JSON(http.StatusOK, app)
}
