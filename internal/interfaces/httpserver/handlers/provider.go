package handlers

import (
	"github.com/rs/zerolog"

	"internhub/board-api/internal/domain/application"
	"internhub/board-api/internal/domain/internship"
)

// Provider aggregates the HTTP handlers.
type Provider struct {
	Internship  *InternshipHandler
	Application *ApplicationHandler
}

// NewProvider constructs all handlers.
func NewProvider(internships internship.Service, applications application.Service, log zerolog.Logger) *Provider {
	return &Provider{
		Internship:  NewInternshipHandler(internships, log),
		Application: NewApplicationHandler(applications, log),
	}
}
