package command

import (
	"context"
	"database/sql"
	"log/slog"

	"herbal/internal/errors"
	"herbal/internal/infra/persistence/postgres"

	"github.com/spf13/cobra"
)

type migrateFunc func(ctx context.Context, db *sql.DB, logger *slog.Logger) error

func migrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "PostgreSQL schema migrations",
	}
	cmd.AddCommand(
		migrateSubcommand("up", "apply all pending migrations", postgres.MigrateUp),
		migrateSubcommand("down", "roll back the latest migration", postgres.MigrateDown),
		migrateSubcommand("status", "show the state of every migration", postgres.MigrationStatus),
	)

	return cmd
}

func migrateSubcommand(use, short string, run migrateFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (runErr error) {
			cfg, err := configFromContext(cmd.Context())
			if err != nil {
				return err
			}
			logger := slog.Default()

			db, err := postgres.Open(cfg, logger)
			if err != nil {
				return err
			}
			sqlDB, err := db.DB()
			if err != nil {
				return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
			}
			defer func() {
				if err := sqlDB.Close(); err != nil {
					runErr = errors.Join(runErr, err)
				}
			}()

			return run(cmd.Context(), sqlDB, logger)
		},
	}
}
