package uow

import (
	"context"
	ports "taskara-review-service/internal/domain/ports/output"
	pendingreviewer_port "taskara-review-service/internal/domain/ports/output/pendingreviewer"
	requirement_port "taskara-review-service/internal/domain/ports/output/requirement"
	"taskara-review-service/internal/domain/ports/output/uow"
	pendingreviewer_repo "taskara-review-service/internal/infrastructure/persistence/postgres/pendingreviewer"
	requirement_repo "taskara-review-service/internal/infrastructure/persistence/postgres/requirement"
	"taskara-review-service/internal/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUnitOfWork struct {
	pool *pgxpool.Pool
	log  ports.Logger
}

func NewPostgresUOW(pool *pgxpool.Pool, log ports.Logger) uow.UnitOfWork {
	return &PostgresUnitOfWork{pool: pool, log: log}
}

func (u *PostgresUnitOfWork) Begin(ctx context.Context) (uow.Transaction, error) {
	tx, err := u.pool.Begin(ctx)
	if err != nil {
		return nil, utils.StorageUnavailable(err)
	}
	return &PostgresTransaction{tx: tx, log: u.log}, nil
}

type PostgresTransaction struct {
	tx  pgx.Tx
	log ports.Logger
}

func (t *PostgresTransaction) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback after a successful Commit returns pgx.ErrTxClosed, which callers ignore.
func (t *PostgresTransaction) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *PostgresTransaction) PendingReviewerRepository() pendingreviewer_port.PendingReviewerRepository {
	return pendingreviewer_repo.NewPendingReviewerRepository(t.tx, t.log)
}

func (t *PostgresTransaction) ReviewRequirementRepository() requirement_port.ReviewRequirementRepository {
	return requirement_repo.NewReviewRequirementRepository(t.tx, t.log)
}
