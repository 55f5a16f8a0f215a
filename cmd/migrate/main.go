// Command migrate creates or updates the database schema from the persistence models.
package main

import (
	"context"
	"log/slog"
	"os"

	"tnp/config"
	logs "tnp/internal/infra/log"
	"tnp/internal/infra/persistence/model"
	"tnp/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In
	fx.Lifecycle

	DB     *gorm.DB
	Logger *slog.Logger
}

func main() {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(registerMigration),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
	if err := app.Stop(ctx); err != nil {
		slog.Error("Failed to close database", slog.Any("error", err))
		os.Exit(1)
	}
}

// registerMigration runs after the connection hook has pinged the database.
func registerMigration(params migrateParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return migrate(ctx, params.DB, params.Logger)
		},
	})
}

func migrate(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	db = db.WithContext(ctx)

	// gen_random_uuid() lives in pgcrypto before PostgreSQL 13.
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS pgcrypto").Error; err != nil {
		return errors.Wrap(err, "enable pgcrypto")
	}

	models := model.All()
	if err := db.AutoMigrate(models...); err != nil {
		return errors.Wrap(err, "auto migrate")
	}

	logger.Info("Schema is up to date", slog.Int("tables", len(models)))

	return nil
}
