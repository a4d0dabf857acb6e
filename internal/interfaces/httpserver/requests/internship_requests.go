package requests

import domain "internhub/board-api/internal/domain/internship"

// CreateInternshipRequest is the payload for posting a new listing. The
// company name is not accepted here; it is stamped from the employer profile.
type CreateInternshipRequest struct {
	Title        string `json:"title" binding:"required"`
	Location     string `json:"location" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Requirements string `json:"requirements"`
	Stipend      string `json:"stipend"`
	Duration     string `json:"duration" binding:"required"`
}

// Params converts the request into domain create parameters.
func (r *CreateInternshipRequest) Params() domain.CreateParams {
	return domain.CreateParams{
		Title:        r.Title,
		Location:     r.Location,
		Description:  r.Description,
		Requirements: r.Requirements,
		Stipend:      r.Stipend,
		Duration:     r.Duration,
	}
}

// UpdateInternshipRequest is the payload for a partial listing update.
// Pointer fields distinguish "absent" from an explicit empty value.
type UpdateInternshipRequest struct {
	Title        *string `json:"title"`
	Location     *string `json:"location"`
	Description  *string `json:"description"`
	Requirements *string `json:"requirements"`
	Stipend      *string `json:"stipend"`
	Duration     *string `json:"duration"`
}

// Params converts the request into domain update parameters.
func (r *UpdateInternshipRequest) Params() domain.UpdateParams {
	return domain.UpdateParams{
		Title:        r.Title,
		Location:     r.Location,
		Description:  r.Description,
		Requirements: r.Requirements,
		Stipend:      r.Stipend,
		Duration:     r.Duration,
	}
}
