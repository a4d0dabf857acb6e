package responses

import domain "internhub/board-api/internal/domain/application"

// ApplicationListResponse wraps a page of applications.
type ApplicationListResponse struct {
	Applications []*domain.Application `json:"applications"`
	Count        int                   `json:"count"`
}

// NewApplicationListResponse builds the list envelope, normalizing nil slices.
func NewApplicationListResponse(apps []*domain.Application) ApplicationListResponse {
	if apps == nil {
		apps = []*domain.Application{}
	}
	return ApplicationListResponse{
		Applications: apps,
		Count:        len(apps),
	}
}
