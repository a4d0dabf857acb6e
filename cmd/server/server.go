package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"internhub/board-api/internal/config"
	applicationdomain "internhub/board-api/internal/domain/application"
	internshipdomain "internhub/board-api/internal/domain/internship"
	"internhub/board-api/internal/infrastructure/auth"
	"internhub/board-api/internal/infrastructure/database"
	"internhub/board-api/internal/infrastructure/logger"
	"internhub/board-api/internal/infrastructure/observability"
	applicationrepo "internhub/board-api/internal/infrastructure/repository/application"
	internshiprepo "internhub/board-api/internal/infrastructure/repository/internship"
	userrepo "internhub/board-api/internal/infrastructure/repository/user"
	"internhub/board-api/internal/interfaces/httpserver"
)

// @title InternHub Board API
// @version 1.0
// @description Internship listings and application lifecycle service
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	db, err := database.Connect(database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := database.AutoMigrate(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	authValidator, err := auth.NewValidator(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize auth validator")
	}

	users := userrepo.NewPostgresRepository(db)
	internships := internshiprepo.NewPostgresRepository(db)
	applications := applicationrepo.NewPostgresRepository(db)

	internshipService := internshipdomain.NewService(internships, users, log)
	applicationService := applicationdomain.NewService(applications, internships, log)

	httpServer := httpserver.New(cfg, log, db, internshipService, applicationService, users, authValidator)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
