//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"internhub/board-api/internal/config"
	applicationdomain "internhub/board-api/internal/domain/application"
	internshipdomain "internhub/board-api/internal/domain/internship"
	"internhub/board-api/internal/domain/user"
	"internhub/board-api/internal/infrastructure/auth"
	"internhub/board-api/internal/infrastructure/database"
	"internhub/board-api/internal/infrastructure/logger"
	applicationrepo "internhub/board-api/internal/infrastructure/repository/application"
	internshiprepo "internhub/board-api/internal/infrastructure/repository/internship"
	userrepo "internhub/board-api/internal/infrastructure/repository/user"
	"internhub/board-api/internal/interfaces/httpserver"
)

var repositorySet = wire.NewSet(
	userrepo.NewPostgresRepository,
	wire.Bind(new(user.Repository), new(*userrepo.PostgresRepository)),
	internshiprepo.NewPostgresRepository,
	wire.Bind(new(internshipdomain.Repository), new(*internshiprepo.PostgresRepository)),
	applicationrepo.NewPostgresRepository,
	wire.Bind(new(applicationdomain.Repository), new(*applicationrepo.PostgresRepository)),
)

var domainSet = wire.NewSet(
	internshipdomain.NewService,
	applicationdomain.NewService,
)

// BuildApplication assembles the board service with Wire.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		newDatabaseConfig,
		newGormDB,
		newAuthValidator,
		repositorySet,
		domainSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newDatabaseConfig(cfg *config.Config) database.Config {
	return database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
	}
}

func newGormDB(ctx context.Context, cfg database.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(ctx, db, log); err != nil {
		return nil, err
	}
	return db, nil
}

func newAuthValidator(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*auth.Validator, error) {
	return auth.NewValidator(ctx, cfg, log)
}
