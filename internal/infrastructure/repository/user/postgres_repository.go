package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"internhub/board-api/internal/domain"
	domainuser "internhub/board-api/internal/domain/user"
	"internhub/board-api/internal/infrastructure/database/entities"
	"internhub/board-api/internal/utils/platformerrors"
)

// PostgresRepository reads marketplace accounts via PostgreSQL using GORM.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository creates a repository backed by the provided DB.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// FindByID returns the user with the given id.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*domainuser.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindBySubject returns the user bound to the given token subject.
func (r *PostgresRepository) FindBySubject(ctx context.Context, subject string) (*domainuser.User, error) {
	return r.findOne(ctx, "subject = ?", subject)
}

func (r *PostgresRepository) findOne(ctx context.Context, query string, arg string) (*domainuser.User, error) {
	var entity entities.User
	err := r.db.WithContext(ctx).Where(query, arg).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				"user not found",
				err,
				"user-find-404",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find user",
			err,
			"user-find-db-001",
		)
	}

	user := mapUserEntity(entity)
	return &user, nil
}

func mapUserEntity(entity entities.User) domainuser.User {
	return domainuser.User{
		ID:          entity.ID,
		Subject:     entity.Subject,
		Name:        entity.Name,
		Email:       entity.Email,
		Role:        domain.Role(entity.Role),
		CompanyName: entity.CompanyName,
		Bio:         entity.Bio,
	}
}
