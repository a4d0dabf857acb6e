package internship

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "internhub/board-api/internal/domain/internship"
	"internhub/board-api/internal/domain/user"
	"internhub/board-api/internal/infrastructure/database/entities"
	"internhub/board-api/internal/utils/platformerrors"
)

// PostgresRepository persists listings via PostgreSQL using GORM.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository creates a repository backed by the provided DB.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new listing record.
func (r *PostgresRepository) Create(ctx context.Context, listing *domain.Internship) error {
	entity := mapListingToEntity(listing)
	if entity.ID == "" {
		entity.ID = uuid.NewString()
	}

	if err := r.db.WithContext(ctx).Create(&entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create internship",
			err,
			"internship-create-db-001",
		)
	}

	listing.ID = entity.ID
	return nil
}

// Update persists changes to a listing.
func (r *PostgresRepository) Update(ctx context.Context, listing *domain.Internship) error {
	updates := map[string]any{
		"title":        listing.Title,
		"company":      listing.Company,
		"location":     listing.Location,
		"description":  listing.Description,
		"requirements": listing.Requirements,
		"stipend":      listing.Stipend,
		"duration":     listing.Duration,
		"updated_at":   listing.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).
		Model(&entities.Internship{}).
		Where("id = ?", listing.ID).
		Updates(updates).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to update internship",
			err,
			"internship-update-db-001",
		)
	}
	return nil
}

// FindByID returns a listing with its poster loaded.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*domain.Internship, error) {
	var entity entities.Internship
	err := r.db.WithContext(ctx).Preload("PostedBy").Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				"internship not found",
				err,
				"internship-find-404",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find internship",
			err,
			"internship-find-db-001",
		)
	}

	listing := mapListingEntity(entity)
	return &listing, nil
}

// List browses listings with optional filters, poster preloaded.
func (r *PostgresRepository) List(ctx context.Context, filter *domain.Filter) ([]*domain.Internship, error) {
	query := r.db.WithContext(ctx).Model(&entities.Internship{}).Preload("PostedBy")

	if filter.Location != "" {
		query = query.Where("location ILIKE ?", "%"+filter.Location+"%")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"title ILIKE ? OR company ILIKE ? OR location ILIKE ? OR description ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	order := "created_at DESC"
	if filter.Sort == domain.SortOldest {
		order = "created_at ASC"
	}
	query = query.Order(order)

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var records []entities.Internship
	if err := query.Find(&records).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list internships",
			err,
			"internship-list-db-001",
		)
	}

	return mapListingEntities(records), nil
}

// ListByPoster returns an employer's listings, newest first.
func (r *PostgresRepository) ListByPoster(ctx context.Context, posterID string) ([]*domain.Internship, error) {
	var records []entities.Internship
	err := r.db.WithContext(ctx).
		Where("posted_by_id = ?", posterID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list internships by poster",
			err,
			"internship-list-poster-db-001",
		)
	}

	return mapListingEntities(records), nil
}

// Delete removes a listing. Applications referencing it are retained.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Internship{})
	if result.Error != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to delete internship",
			result.Error,
			"internship-delete-db-001",
		)
	}
	if result.RowsAffected == 0 {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			"internship not found",
			nil,
			"internship-delete-404",
		)
	}
	return nil
}

func mapListingToEntity(listing *domain.Internship) entities.Internship {
	return entities.Internship{
		ID:           listing.ID,
		Title:        listing.Title,
		Company:      listing.Company,
		Location:     listing.Location,
		Description:  listing.Description,
		Requirements: listing.Requirements,
		Stipend:      listing.Stipend,
		Duration:     listing.Duration,
		PostedByID:   listing.PostedBy,
		CreatedAt:    listing.CreatedAt,
		UpdatedAt:    listing.UpdatedAt,
	}
}

func mapListingEntity(entity entities.Internship) domain.Internship {
	listing := domain.Internship{
		ID:           entity.ID,
		Title:        entity.Title,
		Company:      entity.Company,
		Location:     entity.Location,
		Description:  entity.Description,
		Requirements: entity.Requirements,
		Stipend:      entity.Stipend,
		Duration:     entity.Duration,
		PostedBy:     entity.PostedByID,
		CreatedAt:    entity.CreatedAt,
		UpdatedAt:    entity.UpdatedAt,
	}
	if entity.PostedBy != nil {
		listing.Poster = &user.PublicProfile{
			ID:          entity.PostedBy.ID,
			Name:        entity.PostedBy.Name,
			Email:       entity.PostedBy.Email,
			CompanyName: entity.PostedBy.CompanyName,
		}
	}
	return listing
}

func mapListingEntities(records []entities.Internship) []*domain.Internship {
	listings := make([]*domain.Internship, 0, len(records))
	for _, record := range records {
		listing := mapListingEntity(record)
		listings = append(listings, &listing)
	}
	return listings
}
