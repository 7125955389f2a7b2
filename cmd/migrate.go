package main

import (
	"context"

	"backoffice"
	"backoffice/internal/config"
	"backoffice/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand constructs the 'migrate' subcommand that brings the schema
// and the river job tables to the latest version. Its 'down' and 'status'
// subcommands only touch the service schema.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			applied, err := strg.Migrate(ctx, backoffice.Migrations())
			if err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}
			logger.Info(ctx, "schema migrated", zap.Int64s("applied", applied))

			riverApplied, err := strg.MigrateRiver(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not migrate river queue tables", zap.Error(err))
			}
			logger.Info(ctx, "river queue tables migrated", zap.Ints("applied", riverApplied))
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "down",
			Short: "Rolls back the most recent schema migration",
			Run: func(cmd *cobra.Command, args []string) {
				ctx := context.Background()

				strg, closeStrg := getPostgres(ctx, cfg)
				defer closeStrg()

				version, err := strg.MigrateDown(ctx, backoffice.Migrations())
				if err != nil {
					logger.Fatal(ctx, "could not roll back migration", zap.Error(err))
				}
				logger.Info(ctx, "migration rolled back", zap.Int64("version", version))
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Lists schema migrations and whether they are applied",
			Run: func(cmd *cobra.Command, args []string) {
				ctx := context.Background()

				strg, closeStrg := getPostgres(ctx, cfg)
				defer closeStrg()

				statuses, err := strg.MigrationStatuses(ctx, backoffice.Migrations())
				if err != nil {
					logger.Fatal(ctx, "could not get migration status", zap.Error(err))
				}
				for _, s := range statuses {
					logger.Info(ctx, "migration",
						zap.Int64("version", s.Version),
						zap.String("source", s.Source),
						zap.Bool("applied", s.Applied))
				}
			},
		},
	)

	return cmd
}
