package internship

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"internhub/board-api/internal/domain"
	"internhub/board-api/internal/domain/user"
	"internhub/board-api/internal/utils/platformerrors"
)

// Service defines the interface for listing business logic.
type Service interface {
	Create(ctx context.Context, principal domain.Principal, params CreateParams) (*Internship, error)
	Get(ctx context.Context, id string) (*Internship, error)
	List(ctx context.Context, filter *Filter) ([]*Internship, error)
	ListMine(ctx context.Context, principal domain.Principal) ([]*Internship, error)
	Update(ctx context.Context, principal domain.Principal, id string, params UpdateParams) (*Internship, error)
	Delete(ctx context.Context, principal domain.Principal, id string) error
}

// DefaultService implements the Service interface.
type DefaultService struct {
	repo  Repository
	users user.Repository
	log   zerolog.Logger
}

// NewService creates a new listing service.
func NewService(repo Repository, users user.Repository, log zerolog.Logger) Service {
	return &DefaultService{
		repo:  repo,
		users: users,
		log:   log.With().Str("component", "internship-service").Logger(),
	}
}

// Create posts a new listing on behalf of an employer. The company name is
// stamped from the employer profile.
func (s *DefaultService) Create(ctx context.Context, principal domain.Principal, params CreateParams) (*Internship, error) {
	if !principal.Can(domain.CapabilityPostListings) {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeForbidden,
			"only employers can post listings",
			nil,
			"internship-create-role-001",
		)
	}

	poster, err := s.users.FindByID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}

	listing := &Internship{
		Title:        params.Title,
		Company:      poster.CompanyName,
		Location:     params.Location,
		Description:  params.Description,
		Requirements: params.Requirements,
		Stipend:      params.Stipend,
		Duration:     params.Duration,
		PostedBy:     principal.UserID,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, listing); err != nil {
		return nil, err
	}

	s.log.Info().Str("internship_id", listing.ID).Str("posted_by", listing.PostedBy).Msg("listing created")
	return listing, nil
}

// Get retrieves a listing by id.
func (s *DefaultService) Get(ctx context.Context, id string) (*Internship, error) {
	return s.repo.FindByID(ctx, id)
}

// List browses listings with optional location/search filters.
func (s *DefaultService) List(ctx context.Context, filter *Filter) ([]*Internship, error) {
	if filter == nil {
		filter = NewFilter()
	}
	return s.repo.List(ctx, filter)
}

// ListMine returns the listings posted by the acting employer, newest first.
func (s *DefaultService) ListMine(ctx context.Context, principal domain.Principal) ([]*Internship, error) {
	return s.repo.ListByPoster(ctx, principal.UserID)
}

// Update applies a partial update to an owned listing. Nil params keep the
// stored values; a present empty string clears optional fields but is a
// validation error for required ones. Existence is checked before ownership
// so a missing id reads as NotFound regardless of the caller.
func (s *DefaultService) Update(ctx context.Context, principal domain.Principal, id string, params UpdateParams) (*Internship, error) {
	listing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.requireOwnership(ctx, principal, listing, "update"); err != nil {
		return nil, err
	}

	if err := validateUpdateParams(ctx, params); err != nil {
		return nil, err
	}

	if params.Title != nil {
		listing.Title = *params.Title
	}
	if params.Location != nil {
		listing.Location = *params.Location
	}
	if params.Description != nil {
		listing.Description = *params.Description
	}
	if params.Requirements != nil {
		listing.Requirements = *params.Requirements
	}
	if params.Stipend != nil {
		listing.Stipend = *params.Stipend
	}
	if params.Duration != nil {
		listing.Duration = *params.Duration
	}
	listing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// Delete removes an owned listing. Applications referencing it are retained;
// their listing lookups surface as not found afterwards.
func (s *DefaultService) Delete(ctx context.Context, principal domain.Principal, id string) error {
	listing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.requireOwnership(ctx, principal, listing, "delete"); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("internship_id", id).Str("posted_by", principal.UserID).Msg("listing deleted")
	return nil
}

// validateUpdateParams refuses attempts to blank a required field. Stipend
// and Requirements are optional and may be cleared with an explicit empty
// string.
func validateUpdateParams(ctx context.Context, params UpdateParams) error {
	required := map[string]*string{
		"title":       params.Title,
		"location":    params.Location,
		"description": params.Description,
		"duration":    params.Duration,
	}
	for field, value := range required {
		if value != nil && strings.TrimSpace(*value) == "" {
			return platformerrors.NewError(
				ctx,
				platformerrors.LayerDomain,
				platformerrors.ErrorTypeValidation,
				field+" cannot be empty",
				nil,
				"internship-update-validate-001",
			)
		}
	}
	return nil
}

func (s *DefaultService) requireOwnership(ctx context.Context, principal domain.Principal, listing *Internship, action string) error {
	if listing.PostedBy == principal.UserID {
		return nil
	}
	return platformerrors.NewError(
		ctx,
		platformerrors.LayerDomain,
		platformerrors.ErrorTypeForbidden,
		"you can only "+action+" your own internships",
		nil,
		"internship-"+action+"-owner-001",
	)
}
