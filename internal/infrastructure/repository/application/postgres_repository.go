package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "internhub/board-api/internal/domain/application"
	"internhub/board-api/internal/domain/internship"
	"internhub/board-api/internal/domain/user"
	"internhub/board-api/internal/infrastructure/database/entities"
	"internhub/board-api/internal/utils/platformerrors"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint hits.
const pgUniqueViolation = "23505"

// PostgresRepository persists applications via PostgreSQL using GORM.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository creates a repository backed by the provided DB.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new application. The composite unique index on
// (internship_id, applicant_id) is the authority on duplicates; a violation
// is surfaced as CONFLICT so concurrent identical submissions cannot both
// succeed.
func (r *PostgresRepository) Create(ctx context.Context, app *domain.Application) error {
	entity := entities.Application{
		ID:           app.ID,
		InternshipID: app.InternshipID,
		ApplicantID:  app.ApplicantID,
		CoverLetter:  app.CoverLetter,
		Status:       app.Status.String(),
		CreatedAt:    app.CreatedAt,
		UpdatedAt:    app.UpdatedAt,
	}
	if entity.ID == "" {
		entity.ID = uuid.NewString()
	}

	if err := r.db.WithContext(ctx).Create(&entity).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeConflict,
				"you have already applied for this internship",
				err,
				"application-create-duplicate-001",
			)
		}
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create application",
			err,
			"application-create-db-001",
		)
	}

	app.ID = entity.ID
	return nil
}

// FindByID returns an application by id.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*domain.Application, error) {
	var entity entities.Application
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				"application not found",
				err,
				"application-find-404",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find application",
			err,
			"application-find-db-001",
		)
	}

	app := mapApplicationEntity(entity)
	return &app, nil
}

// FindByPair returns the application for a (listing, applicant) pair, or
// (nil, nil) when none exists.
func (r *PostgresRepository) FindByPair(ctx context.Context, internshipID, applicantID string) (*domain.Application, error) {
	var entity entities.Application
	err := r.db.WithContext(ctx).
		Where("internship_id = ? AND applicant_id = ?", internshipID, applicantID).
		First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find application by pair",
			err,
			"application-pair-db-001",
		)
	}

	app := mapApplicationEntity(entity)
	return &app, nil
}

// ListByApplicant returns an applicant's applications, newest first, each
// enriched with its listing summary and the posting employer. Listings
// deleted since the application was submitted yield no summary.
func (r *PostgresRepository) ListByApplicant(ctx context.Context, applicantID string) ([]*domain.Application, error) {
	var records []entities.Application
	err := r.db.WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list applications by applicant",
			err,
			"application-list-applicant-db-001",
		)
	}

	summaries, err := r.loadListingSummaries(ctx, records)
	if err != nil {
		return nil, err
	}

	apps := make([]*domain.Application, 0, len(records))
	for _, record := range records {
		app := mapApplicationEntity(record)
		if summary, ok := summaries[record.InternshipID]; ok {
			app.Internship = summary
		}
		apps = append(apps, &app)
	}
	return apps, nil
}

// ListByInternship returns a listing's applications, newest first, each
// enriched with the applicant's public profile.
func (r *PostgresRepository) ListByInternship(ctx context.Context, internshipID string) ([]*domain.Application, error) {
	var records []entities.Application
	err := r.db.WithContext(ctx).
		Preload("Applicant").
		Where("internship_id = ?", internshipID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list applications by internship",
			err,
			"application-list-internship-db-001",
		)
	}

	apps := make([]*domain.Application, 0, len(records))
	for _, record := range records {
		app := mapApplicationEntity(record)
		if record.Applicant != nil {
			app.Applicant = &user.PublicProfile{
				ID:    record.Applicant.ID,
				Name:  record.Applicant.Name,
				Email: record.Applicant.Email,
				Bio:   record.Applicant.Bio,
			}
		}
		apps = append(apps, &app)
	}
	return apps, nil
}

// UpdateStatus moves an application to a new review state and returns the
// updated record.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Application, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.Application{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status.String()})
	if result.Error != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to update application status",
			result.Error,
			"application-status-db-001",
		)
	}
	if result.RowsAffected == 0 {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			"application not found",
			nil,
			"application-status-404",
		)
	}

	return r.FindByID(ctx, id)
}

func (r *PostgresRepository) loadListingSummaries(ctx context.Context, records []entities.Application) (map[string]*internship.Summary, error) {
	if len(records) == 0 {
		return map[string]*internship.Summary{}, nil
	}

	ids := make([]string, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.InternshipID)
	}

	var listings []entities.Internship
	err := r.db.WithContext(ctx).
		Preload("PostedBy").
		Where("id IN ?", ids).
		Find(&listings).Error
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to load listing summaries",
			err,
			"application-summary-db-001",
		)
	}

	summaries := make(map[string]*internship.Summary, len(listings))
	for _, record := range listings {
		listing := internship.Internship{
			ID:        record.ID,
			Title:     record.Title,
			Company:   record.Company,
			Location:  record.Location,
			CreatedAt: record.CreatedAt,
		}
		if record.PostedBy != nil {
			listing.Poster = &user.PublicProfile{
				ID:          record.PostedBy.ID,
				Name:        record.PostedBy.Name,
				CompanyName: record.PostedBy.CompanyName,
			}
		}
		summary := listing.Summarize()
		summaries[listing.ID] = &summary
	}
	return summaries, nil
}

func mapApplicationEntity(entity entities.Application) domain.Application {
	return domain.Application{
		ID:           entity.ID,
		InternshipID: entity.InternshipID,
		ApplicantID:  entity.ApplicantID,
		CoverLetter:  entity.CoverLetter,
		Status:       domain.Status(entity.Status),
		CreatedAt:    entity.CreatedAt,
		UpdatedAt:    entity.UpdatedAt,
	}
}
