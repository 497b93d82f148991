package pendingreviewer_repository

import (
	"context"
	"strings"
	"taskara-review-service/internal/domain/models"
	ports "taskara-review-service/internal/domain/ports/output"
	pendingreviewer_port "taskara-review-service/internal/domain/ports/output/pendingreviewer"
	"taskara-review-service/internal/infrastructure/persistence/sqlite"
	"taskara-review-service/internal/utils"
)

type PendingReviewerRepository struct {
	querier sqlite.Querier
	log     ports.Logger
}

func NewPendingReviewerRepository(querier sqlite.Querier, log ports.Logger) pendingreviewer_port.PendingReviewerRepository {
	return &PendingReviewerRepository{querier: querier, log: log}
}

func (r *PendingReviewerRepository) AddPendingReviewer(ctx context.Context, entry *models.PendingReviewerEntry) error {
	if entry == nil || entry.ID == "" {
		return utils.ErrInvalidArgument
	}
	if entry.UserID == nil && entry.AgentID == nil {
		return utils.ErrReviewerRequired
	}
	_, err := r.querier.ExecContext(ctx,
		"INSERT INTO pending_reviewers (id, task_id, user_id, agent_id) VALUES (?, ?, ?, ?)",
		entry.ID, entry.TaskID, entry.UserID, entry.AgentID,
	)
	if err != nil {
		r.log.Error("AddPendingReviewer failed", "task_id", entry.TaskID, "err", err)
		return err
	}
	return nil
}

func (r *PendingReviewerRepository) ListByTaskID(ctx context.Context, taskID string) ([]*models.PendingReviewerEntry, error) {
	rows, err := r.querier.QueryContext(ctx,
		"SELECT id, task_id, user_id, agent_id FROM pending_reviewers WHERE task_id = ? ORDER BY id",
		taskID,
	)
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
	return res, rows.Err()
}

func (r *PendingReviewerRepository) ListTaskIDs(ctx context.Context, filter models.PendingReviewFilter) ([]string, error) {
	var (
		where []string
		args  []any
	)
	if filter.UserID != "" {
		where = append(where, "user_id = ?")
		args = append(args, filter.UserID)
	}
	if filter.AgentID != "" {
		where = append(where, "agent_id = ?")
		args = append(args, filter.AgentID)
	}
	q := "SELECT task_id FROM pending_reviewers"
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " GROUP BY task_id ORDER BY MIN(id)"

	rows, err := r.querier.QueryContext(ctx, q, args...)
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
	return ids, rows.Err()
}

func (r *PendingReviewerRepository) DeleteFirstMatch(ctx context.Context, taskID string, reviewer models.Reviewer) (bool, error) {
	cond, args, err := matchClause(taskID, reviewer)
	if err != nil {
		return false, err
	}
	q := "DELETE FROM pending_reviewers WHERE id = (SELECT id FROM pending_reviewers WHERE " + cond + " ORDER BY id LIMIT 1)"
	res, err := r.querier.ExecContext(ctx, q, args...)
	if err != nil {
		r.log.Error("DeleteFirstMatch failed", "task_id", taskID, "reviewer_id", reviewer.ID, "err", err)
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *PendingReviewerRepository) DeleteAllMatches(ctx context.Context, taskID string, reviewer models.Reviewer) (int64, error) {
	cond, args, err := matchClause(taskID, reviewer)
	if err != nil {
		return 0, err
	}
	res, err := r.querier.ExecContext(ctx, "DELETE FROM pending_reviewers WHERE "+cond, args...)
	if err != nil {
		r.log.Error("DeleteAllMatches failed", "task_id", taskID, "reviewer_id", reviewer.ID, "err", err)
		return 0, err
	}
	return res.RowsAffected()
}

func matchClause(taskID string, reviewer models.Reviewer) (string, []any, error) {
	if !reviewer.Valid() {
		return "", nil, utils.ErrReviewerRequired
	}
	if id := reviewer.UserID(); id != nil {
		return "task_id = ? AND user_id = ?", []any{taskID, *id}, nil
	}
	return "task_id = ? AND agent_id = ?", []any{taskID, *reviewer.AgentID()}, nil
}
