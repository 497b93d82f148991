package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"taskara-review-service/internal/infrastructure/config"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	defaultPostgresImage = "postgres:16-alpine"
	postgresPort         = nat.Port("5432/tcp")
)

type PostgresContainer struct {
	Container *postgres.PostgresContainer
	DSN       string
	Pool      *pgxpool.Pool
}

// ContainerSettings returns the database section the service would use (config/config.yaml
// plus DATABASE_* overrides) and the image to run, TEST_POSTGRES_IMAGE when set.
func ContainerSettings() (config.Database, string, error) {
	cfg, err := config.Load(filepath.Join("..", "..", "..", "config"))
	if err != nil {
		return config.Database{}, "", fmt.Errorf("load config: %w", err)
	}
	image := os.Getenv("TEST_POSTGRES_IMAGE")
	if image == "" {
		image = defaultPostgresImage
	}
	return cfg.Database, image, nil
}

// StartPostgres runs image with the database name and credentials of db and
// returns once the database answers queries.
func StartPostgres(ctx context.Context, db config.Database, image string) (*PostgresContainer, error) {
	waitForSQL := wait.ForSQL(postgresPort, "pgx", func(host string, port nat.Port) string {
		target := db
		target.Host = host
		target.Port = port.Port()
		return target.DSN()
	}).WithQuery("SELECT 1").WithStartupTimeout(time.Minute)

	pg, err := postgres.Run(ctx, image,
		postgres.WithDatabase(db.DbName),
		postgres.WithUsername(db.Username),
		postgres.WithPassword(db.Password),
		testcontainers.WithWaitStrategy(waitForSQL),
	)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", image, err)
	}

	pc := &PostgresContainer{Container: pg}
	if pc.DSN, err = pg.ConnectionString(ctx, "sslmode=disable"); err != nil {
		_ = pc.Close(ctx)
		return nil, err
	}

	poolCfg, err := pgxpool.ParseConfig(pc.DSN)
	if err != nil {
		_ = pc.Close(ctx)
		return nil, err
	}
	poolCfg.MaxConns = 5
	if pc.Pool, err = pgxpool.NewWithConfig(ctx, poolCfg); err != nil {
		_ = pc.Close(ctx)
		return nil, err
	}
	return pc, nil
}

func (pc *PostgresContainer) Close(ctx context.Context) error {
	if pc.Pool != nil {
		pc.Pool.Close()
	}
	if pc.Container != nil {
		return pc.Container.Terminate(ctx)
	}
	return nil
}
