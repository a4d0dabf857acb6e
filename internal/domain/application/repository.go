package application

import "context"

// Repository defines the interface for application persistence.
//
// Create must refuse a second application for the same (internship,
// applicant) pair with a CONFLICT error even under concurrent identical
// requests; the postgres implementation backs this with a composite unique
// index.
type Repository interface {
	Create(ctx context.Context, app *Application) error
	FindByID(ctx context.Context, id string) (*Application, error)
	// FindByPair returns (nil, nil) when no application exists for the pair.
	FindByPair(ctx context.Context, internshipID, applicantID string) (*Application, error)
	// ListByApplicant returns applications newest first, enriched with the
	// listing summary and its poster.
	ListByApplicant(ctx context.Context, applicantID string) ([]*Application, error)
	// ListByInternship returns applications newest first, enriched with the
	// applicant's public profile.
	ListByInternship(ctx context.Context, internshipID string) ([]*Application, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Application, error)
}
