// Command seeder populates the stage and field-type catalogs with their
// default entries. Seeding is idempotent: a catalog that already has rows
// is left untouched.
//
// Requires the same configuration as the server (CONFIG_PATH / env vars).
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/genialcrm/genial-backend/internal/adapter/postgres"
	fieldtyperepo "github.com/genialcrm/genial-backend/internal/adapter/postgres/fieldtype"
	stagerepo "github.com/genialcrm/genial-backend/internal/adapter/postgres/stage"
	"github.com/genialcrm/genial-backend/internal/app"
	"github.com/genialcrm/genial-backend/internal/config"
	fieldtypesvc "github.com/genialcrm/genial-backend/internal/service/fieldtype"
	stagesvc "github.com/genialcrm/genial-backend/internal/service/stage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(cfg.Database); err != nil {
			logger.Error("migrate database", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	stageService := stagesvc.NewService(logger, stagerepo.New(pool))
	fieldTypeService := fieldtypesvc.NewService(logger, fieldtyperepo.New(pool))

	if err := stageService.Seed(ctx); err != nil {
		logger.Error("seed stages", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := fieldTypeService.Seed(ctx); err != nil {
		logger.Error("seed field types", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("catalogs seeded")
}
