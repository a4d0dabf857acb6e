package responses

import domain "internhub/board-api/internal/domain/internship"

// InternshipListResponse wraps a page of listings.
type InternshipListResponse struct {
	Internships []*domain.Internship `json:"internships"`
	Count       int                  `json:"count"`
}

// NewInternshipListResponse builds the list envelope, normalizing nil slices.
func NewInternshipListResponse(listings []*domain.Internship) InternshipListResponse {
	if listings == nil {
		listings = []*domain.Internship{}
	}
	return InternshipListResponse{
		Internships: listings,
		Count:       len(listings),
	}
}
