package postgres

import (
	"context"
	"database/sql"
	"embed"
	"log/slog"

	"herbal/internal/errors"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsDir = "migrations"

// Seams for testing without a live database.
var (
	gooseUpContext     = goose.UpContext
	gooseDownContext   = goose.DownContext
	gooseStatusContext = goose.StatusContext
)

func prepareGoose(logger *slog.Logger) error {
	goose.SetLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))
	goose.SetBaseFS(migrations)

	return goose.SetDialect("postgres")
}

// MigrateUp applies every pending migration.
func MigrateUp(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if err := prepareGoose(logger); err != nil {
		return errors.Wrap(err, "failed to set migration dialect")
	}
	if err := gooseUpContext(ctx, db, migrationsDir); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}

// MigrateDown rolls back the most recent migration.
func MigrateDown(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if err := prepareGoose(logger); err != nil {
		return errors.Wrap(err, "failed to set migration dialect")
	}
	if err := gooseDownContext(ctx, db, migrationsDir); err != nil {
		return errors.Wrap(err, "failed to roll back migration")
	}

	return nil
}

// MigrationStatus logs the applied state of every migration.
func MigrationStatus(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if err := prepareGoose(logger); err != nil {
		return errors.Wrap(err, "failed to set migration dialect")
	}
	if err := gooseStatusContext(ctx, db, migrationsDir); err != nil {
		return errors.Wrap(err, "failed to read migration status")
	}

	return nil
}
