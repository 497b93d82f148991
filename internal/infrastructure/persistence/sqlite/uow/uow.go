package uow

import (
	"context"
	"database/sql"
	ports "taskara-review-service/internal/domain/ports/output"
	pendingreviewer_port "taskara-review-service/internal/domain/ports/output/pendingreviewer"
	requirement_port "taskara-review-service/internal/domain/ports/output/requirement"
	"taskara-review-service/internal/domain/ports/output/uow"
	pendingreviewer_repo "taskara-review-service/internal/infrastructure/persistence/sqlite/pendingreviewer"
	requirement_repo "taskara-review-service/internal/infrastructure/persistence/sqlite/requirement"
	"taskara-review-service/internal/utils"
)

type SQLiteUnitOfWork struct {
	db  *sql.DB
	log ports.Logger
}

func NewSQLiteUOW(db *sql.DB, log ports.Logger) uow.UnitOfWork {
	return &SQLiteUnitOfWork{db: db, log: log}
}

func (u *SQLiteUnitOfWork) Begin(ctx context.Context) (uow.Transaction, error) {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, utils.StorageUnavailable(err)
	}
	return &SQLiteTransaction{tx: tx, log: u.log}, nil
}

type SQLiteTransaction struct {
	tx  *sql.Tx
	log ports.Logger
}

func (t *SQLiteTransaction) Commit(_ context.Context) error {
	return t.tx.Commit()
}

func (t *SQLiteTransaction) Rollback(_ context.Context) error {
	return t.tx.Rollback()
}

func (t *SQLiteTransaction) PendingReviewerRepository() pendingreviewer_port.PendingReviewerRepository {
	return pendingreviewer_repo.NewPendingReviewerRepository(t.tx, t.log)
}

func (t *SQLiteTransaction) ReviewRequirementRepository() requirement_port.ReviewRequirementRepository {
	return requirement_repo.NewReviewRequirementRepository(t.tx, t.log)
}
