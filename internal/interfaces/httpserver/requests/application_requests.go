package requests

// ApplyRequest is the payload for submitting an application.
type ApplyRequest struct {
	InternshipID string `json:"internship_id" binding:"required"`
	CoverLetter  string `json:"cover_letter"`
}

// UpdateStatusRequest is the payload for moving an application to a new
// review state. The value is validated in the domain layer so unknown values
// answer with a validation error, not a silent no-op.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
