// Package app wires configuration, storage, services and transport into a
// running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/genialcrm/genial-backend/internal/adapter/postgres"
	collectionrepo "github.com/genialcrm/genial-backend/internal/adapter/postgres/collection"
	"github.com/genialcrm/genial-backend/internal/adapter/postgres/docstore"
	fieldtyperepo "github.com/genialcrm/genial-backend/internal/adapter/postgres/fieldtype"
	sessionrepo "github.com/genialcrm/genial-backend/internal/adapter/postgres/session"
	stagerepo "github.com/genialcrm/genial-backend/internal/adapter/postgres/stage"
	userrepo "github.com/genialcrm/genial-backend/internal/adapter/postgres/user"
	"github.com/genialcrm/genial-backend/internal/auth"
	"github.com/genialcrm/genial-backend/internal/config"
	authsvc "github.com/genialcrm/genial-backend/internal/service/auth"
	fieldtypesvc "github.com/genialcrm/genial-backend/internal/service/fieldtype"
	migrationsvc "github.com/genialcrm/genial-backend/internal/service/migration"
	recordsvc "github.com/genialcrm/genial-backend/internal/service/record"
	schemasvc "github.com/genialcrm/genial-backend/internal/service/schema"
	stagesvc "github.com/genialcrm/genial-backend/internal/service/stage"
	"github.com/genialcrm/genial-backend/internal/transport/middleware"
	"github.com/genialcrm/genial-backend/internal/transport/rest"
)

// Run is the application entry point: config, logger, database, catalog
// seeding, services, router, HTTP server with graceful shutdown.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(cfg.Database); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
		logger.Info("database migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// Repositories.
	users := userrepo.New(pool)
	sessions := sessionrepo.New(pool)
	stages := stagerepo.New(pool)
	fieldTypes := fieldtyperepo.New(pool)
	collections := collectionrepo.New(pool)
	store := docstore.New(pool)

	// Services.
	stageService := stagesvc.NewService(logger, stages)
	fieldTypeService := fieldtypesvc.NewService(logger, fieldTypes)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTL)
	authService := authsvc.NewService(logger, users, sessions, stageService, jwtManager, cfg.Auth)
	schemaService := schemasvc.NewService(logger, collections, store)
	recordService := recordsvc.NewService(logger, collections, store, postgres.NewTxManager(pool))
	migrationService := migrationsvc.NewService(logger, collections, stageService)

	// Idempotent catalog seeding.
	if err := stageService.Seed(ctx); err != nil {
		return fmt.Errorf("seed stages: %w", err)
	}
	if err := fieldTypeService.Seed(ctx); err != nil {
		return fmt.Errorf("seed field types: %w", err)
	}

	// Transport.
	handlers := rest.Handlers{
		Auth:       rest.NewAuthHandler(authService, logger),
		Session:    rest.NewSessionHandler(authService, logger),
		Stage:      rest.NewStageHandler(stageService, logger),
		FieldType:  rest.NewFieldTypeHandler(fieldTypeService, logger),
		Collection: rest.NewCollectionHandler(schemaService, logger),
		Record:     rest.NewRecordHandler(recordService, logger),
		Migration:  rest.NewMigrationHandler(migrationService, logger),
		Health:     rest.NewHealthHandler(pool, BuildVersion()),
	}

	base := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)
	router := rest.NewRouter(handlers, base, middleware.Auth(authService))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
