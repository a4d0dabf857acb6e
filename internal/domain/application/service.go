package application

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"internhub/board-api/internal/domain"
	"internhub/board-api/internal/domain/internship"
	"internhub/board-api/internal/utils/platformerrors"
)

// Service defines the interface for application business logic.
type Service interface {
	Apply(ctx context.Context, principal domain.Principal, params ApplyParams) (*Application, error)
	ListMine(ctx context.Context, principal domain.Principal) ([]*Application, error)
	ListForInternship(ctx context.Context, principal domain.Principal, internshipID string) ([]*Application, error)
	SetStatus(ctx context.Context, principal domain.Principal, applicationID, rawStatus string) (*Application, error)
}

// DefaultService implements the Service interface.
type DefaultService struct {
	repo        Repository
	internships internship.Repository
	log         zerolog.Logger
}

// NewService creates a new application service.
func NewService(repo Repository, internships internship.Repository, log zerolog.Logger) Service {
	return &DefaultService{
		repo:        repo,
		internships: internships,
		log:         log.With().Str("component", "application-service").Logger(),
	}
}

// Apply submits an application for a listing. The listing must exist and the
// pair (listing, applicant) must not already hold an application. The check
// here gives a friendly answer on the common path; the repository's unique
// constraint closes the race between concurrent identical requests.
func (s *DefaultService) Apply(ctx context.Context, principal domain.Principal, params ApplyParams) (*Application, error) {
	if !principal.Can(domain.CapabilityApplyToListings) {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeForbidden,
			"only applicants can apply to listings",
			nil,
			"application-apply-role-001",
		)
	}

	if _, err := s.internships.FindByID(ctx, params.InternshipID); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByPair(ctx, params.InternshipID, principal.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeConflict,
			"you have already applied for this internship",
			nil,
			"application-apply-duplicate-001",
		)
	}

	app := &Application{
		InternshipID: params.InternshipID,
		ApplicantID:  principal.UserID,
		CoverLetter:  params.CoverLetter,
		Status:       StatusPending,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, app); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("application_id", app.ID).
		Str("internship_id", app.InternshipID).
		Str("applicant_id", app.ApplicantID).
		Msg("application submitted")
	return app, nil
}

// ListMine returns the acting applicant's applications, newest first.
func (s *DefaultService) ListMine(ctx context.Context, principal domain.Principal) ([]*Application, error) {
	return s.repo.ListByApplicant(ctx, principal.UserID)
}

// ListForInternship returns the applications for one of the acting employer's
// listings, newest first. A missing listing reads as NotFound before any
// ownership decision.
func (s *DefaultService) ListForInternship(ctx context.Context, principal domain.Principal, internshipID string) ([]*Application, error) {
	if !principal.Can(domain.CapabilityReviewApplicants) {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeForbidden,
			"only employers can review applicants",
			nil,
			"application-list-role-001",
		)
	}

	listing, err := s.internships.FindByID(ctx, internshipID)
	if err != nil {
		return nil, err
	}

	if listing.PostedBy != principal.UserID {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeForbidden,
			"you can only view applications for your own internships",
			nil,
			"application-list-owner-001",
		)
	}

	return s.repo.ListByInternship(ctx, internshipID)
}

// SetStatus moves an application to a new review state. Ownership resolves
// transitively through the application's listing; a listing deleted in the
// meantime surfaces as NotFound, not Forbidden. Unknown status values are
// rejected rather than ignored.
func (s *DefaultService) SetStatus(ctx context.Context, principal domain.Principal, applicationID, rawStatus string) (*Application, error) {
	if !principal.Can(domain.CapabilityReviewApplicants) {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeForbidden,
			"only employers can review applicants",
			nil,
			"application-status-role-001",
		)
	}

	status, ok := ParseStatus(rawStatus)
	if !ok {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"invalid application status: "+rawStatus,
			nil,
			"application-status-value-001",
		)
	}

	app, err := s.repo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	listing, err := s.internships.FindByID(ctx, app.InternshipID)
	if err != nil {
		return nil, err
	}

	if listing.PostedBy != principal.UserID {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeForbidden,
			"you can only update applications for your own internships",
			nil,
			"application-status-owner-001",
		)
	}

	if !app.Status.CanTransitionTo(status) {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"cannot move application from "+app.Status.String()+" to "+status.String(),
			nil,
			"application-status-transition-001",
		)
	}

	updated, err := s.repo.UpdateStatus(ctx, applicationID, status)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("application_id", applicationID).
		Str("status", status.String()).
		Msg("application status updated")
	return updated, nil
}
