package main

import (
	"context"
	"database/sql"
	"fmt"
	ports "taskara-review-service/internal/domain/ports/output"
	"taskara-review-service/internal/domain/ports/output/uow"
	"taskara-review-service/internal/infrastructure/config"
	"taskara-review-service/internal/infrastructure/migrator"
	"taskara-review-service/internal/infrastructure/persistence/postgres"
	pg_uow "taskara-review-service/internal/infrastructure/persistence/postgres/uow"
	"taskara-review-service/internal/infrastructure/persistence/sqlite"
	sqlite_uow "taskara-review-service/internal/infrastructure/persistence/sqlite/uow"
)

// openStorage connects to the configured backend, brings its schema up to date
// and returns the unit of work together with the function that releases it.
func openStorage(ctx context.Context, cfg *config.Config, log ports.Logger) (uow.UnitOfWork, func(), error) {
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.Database.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := migrateSQLite(db, log, (*migrator.Migrator).Up); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		log.Info("sqlite storage ready", "path", cfg.Database.SQLitePath)
		return sqlite_uow.NewSQLiteUOW(db, log), func() { _ = db.Close() }, nil

	case config.DriverPostgres:
		pool, err := postgres.Connect(ctx, cfg.Database.DSN(), postgres.PoolOptions{
			MaxConns: cfg.Database.MaxConns,
			Attempts: cfg.Database.ConnectAttempts,
		}, log)
		if err != nil {
			return nil, nil, err
		}
		if err := migratePostgres(cfg.Database.DSN(), log, (*migrator.Migrator).Up); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Info("postgres storage ready", "host", cfg.Database.Host, "db", cfg.Database.DbName)
		return pg_uow.NewPostgresUOW(pool, log), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

func migrateSQLite(db *sql.DB, log ports.Logger, step func(*migrator.Migrator) error) error {
	mg, err := migrator.NewSQLiteMigrator(db, log)
	if err != nil {
		return err
	}
	defer func() { _ = mg.Close() }()
	return step(mg)
}

func migratePostgres(dsn string, log ports.Logger, step func(*migrator.Migrator) error) error {
	mg, err := migrator.NewPostgresMigrator(dsn, log)
	if err != nil {
		return err
	}
	defer func() { _ = mg.Close() }()
	return step(mg)
}
