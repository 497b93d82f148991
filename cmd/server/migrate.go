package main

import (
	"fmt"
	"taskara-review-service/internal/infrastructure/config"
	"taskara-review-service/internal/infrastructure/logger"
	"taskara-review-service/internal/infrastructure/migrator"
	"taskara-review-service/internal/infrastructure/persistence/sqlite"

	"github.com/spf13/cobra"
)

func newMigrateCmd(load func() (*config.Config, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back schema migrations",
	}
	cmd.AddCommand(
		newMigrateStepCmd(load, "up", "Apply all pending migrations", (*migrator.Migrator).Up),
		newMigrateStepCmd(load, "down", "Roll back every applied migration", (*migrator.Migrator).Down),
	)
	return cmd
}

func newMigrateStepCmd(load func() (*config.Config, error), use, short string, step func(*migrator.Migrator) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			log := logger.New(cfg.Env)

			switch cfg.Database.Driver {
			case config.DriverSQLite:
				db, err := sqlite.Open(cfg.Database.SQLitePath)
				if err != nil {
					return err
				}
				defer db.Close()
				return migrateSQLite(db, log, step)
			case config.DriverPostgres:
				return migratePostgres(cfg.Database.DSN(), log, step)
			default:
				return fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
			}
		},
	}
}
