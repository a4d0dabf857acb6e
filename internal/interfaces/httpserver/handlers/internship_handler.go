package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"internhub/board-api/internal/domain/internship"
	"internhub/board-api/internal/interfaces/httpserver/middlewares"
	"internhub/board-api/internal/interfaces/httpserver/requests"
	"internhub/board-api/internal/interfaces/httpserver/responses"
)

// InternshipHandler handles listing endpoints.
type InternshipHandler struct {
	service internship.Service
	log     zerolog.Logger
}

// NewInternshipHandler creates a new listing handler.
func NewInternshipHandler(service internship.Service, log zerolog.Logger) *InternshipHandler {
	return &InternshipHandler{
		service: service,
		log:     log.With().Str("handler", "internship").Logger(),
	}
}

// List godoc
// @Summary Browse internships
// @Description Public browse over listings with optional filters
// @Tags internships
// @Produce json
// @Param location query string false "Location substring filter"
// @Param search query string false "Free-text search over title, company, location, description"
// @Param sort query string false "Sort order" Enums(newest, oldest)
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} responses.InternshipListResponse
// @Router /v1/internships [get]
func (h *InternshipHandler) List(c *gin.Context) {
	filter := internship.NewFilter().
		WithLocation(c.Query("location")).
		WithSearch(c.Query("search")).
		WithSort(c.Query("sort"))

	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(c.Query("offset")); err == nil && offset > 0 {
		filter.Offset = offset
	}

	listings, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		responses.HandleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, responses.NewInternshipListResponse(listings))
}

// Get godoc
// @Summary Get an internship
// @Tags internships
// @Produce json
// @Param id path string true "Internship ID"
// @Success 200 {object} internship.Internship
// @Failure 404 {object} responses.ErrorResponse
// @Router /v1/internships/{id} [get]
func (h *InternshipHandler) Get(c *gin.Context) {
	listing, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		responses.HandleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

// Create godoc
// @Summary Post an internship
// @Description Creates a listing owned by the acting employer; the company
// @Description name is stamped from the employer profile
// @Tags internships
// @Accept json
// @Produce json
// @Param request body requests.CreateInternshipRequest true "Listing fields"
// @Success 201 {object} internship.Internship
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Security BearerAuth
// @Router /v1/internships [post]
func (h *InternshipHandler) Create(c *gin.Context) {
	principal, ok := middlewares.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, responses.ErrorResponse{Error: "authentication required"})
		return
	}

	var req requests.CreateInternshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleValidationError(c, err)
		return
	}

	listing, err := h.service.Create(c.Request.Context(), principal, req.Params())
	if err != nil {
		responses.HandleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, listing)
}

// ListMine godoc
// @Summary List my internships
// @Description Listings posted by the acting employer, newest first
// @Tags internships
// @Produce json
// @Success 200 {object} responses.InternshipListResponse
// @Failure 401 {object} responses.ErrorResponse
// @Security BearerAuth
// @Router /v1/internships/employer/me [get]
func (h *InternshipHandler) ListMine(c *gin.Context) {
	principal, ok := middlewares.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, responses.ErrorResponse{Error: "authentication required"})
		return
	}

	listings, err := h.service.ListMine(c.Request.Context(), principal)
	if err != nil {
		responses.HandleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, responses.NewInternshipListResponse(listings))
}

// Update godoc
// @Summary Update an internship
// @Description Partial update of an owned listing; absent fields keep their
// @Description stored values
// @Tags internships
// @Accept json
// @Produce json
// @Param id path string true "Internship ID"
// @Param request body requests.UpdateInternshipRequest true "Fields to change"
// @Success 200 {object} internship.Internship
// @Failure 401 {object} responses.ErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security BearerAuth
// @Router /v1/internships/{id} [put]
func (h *InternshipHandler) Update(c *gin.Context) {
	principal, ok := middlewares.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, responses.ErrorResponse{Error: "authentication required"})
		return
	}

	var req requests.UpdateInternshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleValidationError(c, err)
		return
	}

	listing, err := h.service.Update(c.Request.Context(), principal, c.Param("id"), req.Params())
	if err != nil {
		responses.HandleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

// Delete godoc
// @Summary Delete an internship
// @Tags internships
// @Produce json
// @Param id path string true "Internship ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} responses.ErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security BearerAuth
// @Router /v1/internships/{id} [delete]
func (h *InternshipHandler) Delete(c *gin.Context) {
	principal, ok := middlewares.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, responses.ErrorResponse{Error: "authentication required"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), principal, c.Param("id")); err != nil {
		responses.HandleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "internship deleted"})
}
