package application

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	domain "internhub/board-api/internal/domain/application"
	"internhub/board-api/internal/domain/internship"
	"internhub/board-api/internal/domain/user"
	"internhub/board-api/internal/utils/platformerrors"
)

// InMemoryRepository is a thread-safe application store useful for
// demos/tests. It enforces the same (internship, applicant) uniqueness as
// the postgres unique index and mirrors its listing/applicant enrichment,
// resolving relations through the injected repositories.
type InMemoryRepository struct {
	mu       sync.Mutex
	apps     map[string]domain.Application
	listings internship.Repository
	users    user.Repository
}

// NewInMemoryRepository creates an empty in-memory application store that
// enriches reads through the given listing and user repositories.
func NewInMemoryRepository(listings internship.Repository, users user.Repository) *InMemoryRepository {
	return &InMemoryRepository{
		apps:     map[string]domain.Application{},
		listings: listings,
		users:    users,
	}
}

// Create inserts a new application, refusing duplicates for the pair.
func (r *InMemoryRepository) Create(ctx context.Context, app *domain.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.apps {
		if existing.InternshipID == app.InternshipID && existing.ApplicantID == app.ApplicantID {
			return platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeConflict,
				"you have already applied for this internship",
				nil,
				"application-create-duplicate-001",
			)
		}
	}

	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	r.apps[app.ID] = *app
	return nil
}

// FindByID returns an application by id.
func (r *InMemoryRepository) FindByID(ctx context.Context, id string) (*domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if app, ok := r.apps[id]; ok {
		copied := app
		return &copied, nil
	}
	return nil, platformerrors.NewError(
		ctx,
		platformerrors.LayerRepository,
		platformerrors.ErrorTypeNotFound,
		"application not found",
		nil,
		"application-find-404",
	)
}

// FindByPair returns the application for a pair, or (nil, nil) when absent.
func (r *InMemoryRepository) FindByPair(ctx context.Context, internshipID, applicantID string) (*domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, app := range r.apps {
		if app.InternshipID == internshipID && app.ApplicantID == applicantID {
			copied := app
			return &copied, nil
		}
	}
	return nil, nil
}

// ListByApplicant returns an applicant's applications, newest first, each
// enriched with its listing summary. Listings deleted since the application
// was submitted yield no summary.
func (r *InMemoryRepository) ListByApplicant(ctx context.Context, applicantID string) ([]*domain.Application, error) {
	r.mu.Lock()
	var out []*domain.Application
	for _, app := range r.apps {
		if app.ApplicantID == applicantID {
			copied := app
			out = append(out, &copied)
		}
	}
	r.mu.Unlock()

	sortNewestFirst(out)
	for _, app := range out {
		app.Internship = r.listingSummary(ctx, app.InternshipID)
	}
	return out, nil
}

// ListByInternship returns a listing's applications, newest first, each
// enriched with the applicant's public profile.
func (r *InMemoryRepository) ListByInternship(ctx context.Context, internshipID string) ([]*domain.Application, error) {
	r.mu.Lock()
	var out []*domain.Application
	for _, app := range r.apps {
		if app.InternshipID == internshipID {
			copied := app
			out = append(out, &copied)
		}
	}
	r.mu.Unlock()

	sortNewestFirst(out)
	for _, app := range out {
		if applicant, err := r.users.FindByID(ctx, app.ApplicantID); err == nil {
			profile := applicant.Public()
			app.Applicant = &profile
		}
	}
	return out, nil
}

// UpdateStatus moves an application to a new review state.
func (r *InMemoryRepository) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	app, ok := r.apps[id]
	if !ok {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			"application not found",
			nil,
			"application-status-404",
		)
	}

	app.Status = status
	r.apps[id] = app
	copied := app
	return &copied, nil
}

func (r *InMemoryRepository) listingSummary(ctx context.Context, internshipID string) *internship.Summary {
	listing, err := r.listings.FindByID(ctx, internshipID)
	if err != nil {
		return nil
	}
	summary := listing.Summarize()
	if summary.Poster == nil {
		if poster, err := r.users.FindByID(ctx, listing.PostedBy); err == nil {
			profile := poster.Public()
			summary.Poster = &profile
		}
	}
	return &summary
}

func sortNewestFirst(apps []*domain.Application) {
	sort.SliceStable(apps, func(i, j int) bool {
		return apps[i].CreatedAt.After(apps[j].CreatedAt)
	})
}
