package database

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"internhub/board-api/internal/infrastructure/database/entities"
)

// AutoMigrate applies database schema changes for the board service.
func AutoMigrate(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	models := []any{
		&entities.User{},
		&entities.Internship{},
		&entities.Application{},
	}

	if err := db.WithContext(ctx).AutoMigrate(models...); err != nil {
		return err
	}

	log.Info().Int("models", len(models)).Msg("database schema migrated")
	return nil
}
