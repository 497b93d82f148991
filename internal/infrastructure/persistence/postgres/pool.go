package postgres

import (
	"context"
	"fmt"
	ports "taskara-review-service/internal/domain/ports/output"
	"time"

	"github.com/avast/retry-go/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PoolOptions struct {
	MaxConns int32
	Attempts uint
}

// Connect opens a pool and waits until the database answers a ping, retrying with backoff.
func Connect(ctx context.Context, dsn string, opts PoolOptions, log ports.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres pool config: %w", err)
	}
	if opts.MaxConns > 0 {
		poolConfig.MaxConns = opts.MaxConns
	}
	if opts.Attempts == 0 {
		opts.Attempts = 1
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create postgres pool: %w", err)
	}

	r := retry.New(
		retry.Context(ctx),
		retry.Attempts(opts.Attempts),
		retry.Delay(500*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
	)
	attempt := 0
	err = r.Do(func() error {
		attempt++
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			log.Warn("postgres ping failed", "attempt", attempt, "err", err)
			return err
		}
		return nil
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres unreachable after %d attempts: %w", attempt, err)
	}
	return pool, nil
}
