package pendingreviewer_repository

import (
	"context"
	"errors"
	"taskara-review-service/internal/domain/models"
	ports "taskara-review-service/internal/domain/ports/output"
	pendingreviewer_port "taskara-review-service/internal/domain/ports/output/pendingreviewer"
	"taskara-review-service/internal/infrastructure/persistence/postgres"
	"taskara-review-service/internal/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type PendingReviewerRepository struct {
	querier postgres.Querier
	log     ports.Logger
}

func NewPendingReviewerRepository(querier postgres.Querier, log ports.Logger) pendingreviewer_port.PendingReviewerRepository {
	return &PendingReviewerRepository{querier: querier, log: log}
}

func (r *PendingReviewerRepository) AddPendingReviewer(ctx context.Context, entry *models.PendingReviewerEntry) error {
	if entry == nil || entry.ID == "" {
		return utils.ErrInvalidArgument
	}
	if entry.UserID == nil && entry.AgentID == nil {
		return utils.ErrReviewerRequired
	}
	const q = `
		INSERT INTO pending_reviewers (id, task_id, user_id, agent_id)
		VALUES (@id, @task_id, @user_id, @agent_id);
	`
	_, err := r.querier.Exec(ctx, q, pgx.NamedArgs{
		"id":       entry.ID,
		"task_id":  entry.TaskID,
		"user_id":  entry.UserID,
		"agent_id": entry.AgentID,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23514" {
			return utils.ErrReviewerRequired
		}
		r.log.Error("AddPendingReviewer failed", "task_id", entry.TaskID, "err", err)
		return err
	}
	return nil
}

func (r *PendingReviewerRepository) ListByTaskID(ctx context.Context, taskID string) ([]*models.PendingReviewerEntry, error) {
	const q = `
		SELECT id, task_id, user_id, agent_id
		FROM pending_reviewers
		WHERE task_id = @task_id
		ORDER BY id;
	`
	rows, err := r.querier.Query(ctx, q, pgx.NamedArgs{"task_id": taskID})
	if err != nil {
		r.log.Error("ListByTaskID query failed", "task_id", taskID, "err", err)
		return nil, err
	}
	defer rows.Close()

	res := make([]*models.PendingReviewerEntry, 0)
	for rows.Next() {
		var e models.PendingReviewerEntry
		if err := rows.Scan(&e.ID, &e.TaskID, &e.UserID, &e.AgentID); err != nil {
			r.log.Error("ListByTaskID scan failed", "task_id", taskID, "err", err)
			return nil, err
		}
		res = append(res, &e)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return res, nil
}

func (r *PendingReviewerRepository) ListTaskIDs(ctx context.Context, filter models.PendingReviewFilter) ([]string, error) {
	const q = `
		SELECT task_id
		FROM pending_reviewers
		WHERE (@user_id::text IS NULL OR user_id = @user_id::text)
		  AND (@agent_id::text IS NULL OR agent_id = @agent_id::text)
		GROUP BY task_id
		ORDER BY MIN(id);
	`
	rows, err := r.querier.Query(ctx, q, pgx.NamedArgs{
		"user_id":  optional(filter.UserID),
		"agent_id": optional(filter.AgentID),
	})
	if err != nil {
		r.log.Error("ListTaskIDs query failed", "user_id", filter.UserID, "agent_id", filter.AgentID, "err", err)
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			r.log.Error("ListTaskIDs scan failed", "err", err)
			return nil, err
		}
		ids = append(ids, id)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return ids, nil
}

func (r *PendingReviewerRepository) DeleteFirstMatch(ctx context.Context, taskID string, reviewer models.Reviewer) (bool, error) {
	if !reviewer.Valid() {
		return false, utils.ErrReviewerRequired
	}
	const q = `
		DELETE FROM pending_reviewers
		WHERE id = (
			SELECT id
			FROM pending_reviewers
			WHERE task_id = @task_id
			  AND (@user_id::text IS NULL OR user_id = @user_id::text)
			  AND (@agent_id::text IS NULL OR agent_id = @agent_id::text)
			ORDER BY id
			LIMIT 1
		)
		RETURNING id;
	`
	row := r.querier.QueryRow(ctx, q, reviewerArgs(taskID, reviewer))
	var removedID string
	if err := row.Scan(&removedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		r.log.Error("DeleteFirstMatch failed", "task_id", taskID, "reviewer_id", reviewer.ID, "err", err)
		return false, err
	}
	return true, nil
}

func (r *PendingReviewerRepository) DeleteAllMatches(ctx context.Context, taskID string, reviewer models.Reviewer) (int64, error) {
	if !reviewer.Valid() {
		return 0, utils.ErrReviewerRequired
	}
	const q = `
		DELETE FROM pending_reviewers
		WHERE task_id = @task_id
		  AND (@user_id::text IS NULL OR user_id = @user_id::text)
		  AND (@agent_id::text IS NULL OR agent_id = @agent_id::text);
	`
	tag, err := r.querier.Exec(ctx, q, reviewerArgs(taskID, reviewer))
	if err != nil {
		r.log.Error("DeleteAllMatches failed", "task_id", taskID, "reviewer_id", reviewer.ID, "err", err)
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func reviewerArgs(taskID string, reviewer models.Reviewer) pgx.NamedArgs {
	return pgx.NamedArgs{
		"task_id":  taskID,
		"user_id":  reviewer.UserID(),
		"agent_id": reviewer.AgentID(),
	}
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
