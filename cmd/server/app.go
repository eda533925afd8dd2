package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/voyago/voyago-api/internal/config"
	"github.com/voyago/voyago-api/internal/generation"
	"github.com/voyago/voyago-api/internal/platform/gemini"
	"github.com/voyago/voyago-api/internal/platform/postgres"
	"github.com/voyago/voyago-api/internal/service"
	"github.com/voyago/voyago-api/internal/service/auth"
	"github.com/voyago/voyago-api/internal/store"
)

// application holds the shared dependencies so wiring and cleanup stay in
// one place.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores
	userStore   store.UserStore
	singleStore store.SingleCityItineraryStore
	multiStore  store.MultiCityItineraryStore

	// Services
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	generator        generation.LocationGenerator
	itineraryService *service.ItineraryService
}

// newApplication creates an application with all dependencies initialized.
// Core inputs (config, logger, database) must already be established.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	app.passwordHasher = hasher
	app.passwordVerifier = hasher

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.singleStore = postgres.NewPostgresSingleCityItineraryStore(db, logger)
	app.multiStore = postgres.NewPostgresMultiCityItineraryStore(db, logger)

	app.generator, err = gemini.NewGenerator(ctx, logger.With("component", "location_generator"), cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize location generator: %w", err)
	}
	logger.Info("location generator initialized",
		"model", cfg.LLM.ModelName)

	app.itineraryService, err = service.NewItineraryService(
		app.singleStore, app.multiStore, app.generator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create itinerary service: %w", err)
	}

	logger.Info("application initialized")
	return app, nil
}

// Run starts the HTTP server and blocks until shutdown completes.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases application resources during shutdown.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}
