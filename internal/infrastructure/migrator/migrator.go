package migrator

import (
	"database/sql"
	"errors"
	"fmt"
	ports "taskara-review-service/internal/domain/ports/output"
	"taskara-review-service/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

type Migrator struct {
	m     *migrate.Migrate
	log   ports.Logger
	close func() error
}

// NewPostgresMigrator opens its own connection to dsn; Close releases it.
func NewPostgresMigrator(dsn string, log ports.Logger) (*Migrator, error) {
	src, err := iofs.New(migrations.FS, "postgres")
	if err != nil {
		return nil, fmt.Errorf("open postgres migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		_ = src.Close()
		return nil, fmt.Errorf("init postgres migrator: %w", err)
	}
	return &Migrator{
		m:   m,
		log: log.With("component", "migrator", "driver", "postgres"),
		close: func() error {
			srcErr, dbErr := m.Close()
			return errors.Join(srcErr, dbErr)
		},
	}, nil
}

// NewSQLiteMigrator migrates an already opened database. Close leaves db open.
func NewSQLiteMigrator(db *sql.DB, log ports.Logger) (*Migrator, error) {
	src, err := iofs.New(migrations.FS, "sqlite")
	if err != nil {
		return nil, fmt.Errorf("open sqlite migrations: %w", err)
	}
	drv, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		_ = src.Close()
		return nil, fmt.Errorf("init sqlite migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", drv)
	if err != nil {
		_ = src.Close()
		return nil, fmt.Errorf("init sqlite migrator: %w", err)
	}
	return &Migrator{
		m:     m,
		log:   log.With("component", "migrator", "driver", "sqlite"),
		close: src.Close,
	}, nil
}

func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			mg.log.Debug("schema up to date")
			return nil
		}
		mg.log.Error("migrate up failed", "err", err)
		return err
	}
	mg.log.Info("migrations applied")
	return nil
}

func (mg *Migrator) Down() error {
	if err := mg.m.Down(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		mg.log.Error("migrate down failed", "err", err)
		return err
	}
	mg.log.Info("migrations rolled back")
	return nil
}

func (mg *Migrator) Version() (uint, bool, error) {
	v, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}

func (mg *Migrator) Close() error {
	return mg.close()
}
