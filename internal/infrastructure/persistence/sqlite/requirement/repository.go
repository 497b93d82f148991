package requirement_repository

import (
	"context"
	"strings"
	"taskara-review-service/internal/domain/models"
	ports "taskara-review-service/internal/domain/ports/output"
	requirement_port "taskara-review-service/internal/domain/ports/output/requirement"
	"taskara-review-service/internal/infrastructure/persistence"
	"taskara-review-service/internal/infrastructure/persistence/sqlite"
	"taskara-review-service/internal/utils"
	"time"
)

type ReviewRequirementRepository struct {
	querier sqlite.Querier
	log     ports.Logger
}

func NewReviewRequirementRepository(querier sqlite.Querier, log ports.Logger) requirement_port.ReviewRequirementRepository {
	return &ReviewRequirementRepository{querier: querier, log: log}
}

// UpsertRequirement inserts the requirement or overwrites the row with the same id.
// Overwriting keeps the stored created, stamps updated with the current time
// and copies both back into req.
func (r *ReviewRequirementRepository) UpsertRequirement(ctx context.Context, req *models.ReviewRequirement) error {
	if req == nil || req.ID == "" {
		return utils.ErrInvalidArgument
	}
	cols, err := persistence.EncodeRequirementLists(req.Users, req.Agents, req.Groups, req.Types)
	if err != nil {
		return err
	}
	const q = `
		INSERT INTO review_requirements (id, task_id, number_required, users, agents, "groups", types, created, updated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE
		SET task_id = excluded.task_id,
			number_required = excluded.number_required,
			users = excluded.users,
			agents = excluded.agents,
			"groups" = excluded."groups",
			types = excluded.types,
			updated = ?
		RETURNING created, updated
	`
	var (
		created float64
		updated *float64
	)
	err = r.querier.QueryRowContext(ctx, q,
		req.ID, req.TaskID, req.NumberRequired,
		cols.Users, cols.Agents, cols.Groups, cols.Types,
		persistence.ToEpoch(req.Created), persistence.ToEpochPtr(req.Updated),
		persistence.ToEpoch(time.Now()),
	).Scan(&created, &updated)
	if err != nil {
		r.log.Error("UpsertRequirement failed", "requirement_id", req.ID, "err", err)
		return err
	}
	req.Created = persistence.FromEpoch(created)
	req.Updated = persistence.FromEpochPtr(updated)
	return nil
}

func (r *ReviewRequirementRepository) FindRequirements(ctx context.Context, filter models.RequirementFilter) ([]*models.ReviewRequirement, error) {
	var (
		where []string
		args  []any
	)
	if filter.ID != nil {
		where = append(where, "id = ?")
		args = append(args, *filter.ID)
	}
	if filter.TaskID != nil {
		where = append(where, "task_id = ?")
		args = append(args, *filter.TaskID)
	}
	if filter.NumberRequired != nil {
		where = append(where, "number_required = ?")
		args = append(args, *filter.NumberRequired)
	}
	q := `SELECT id, task_id, number_required, users, agents, "groups", types, created, updated FROM review_requirements`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY created, id"

	rows, err := r.querier.QueryContext(ctx, q, args...)
	if err != nil {
		r.log.Error("FindRequirements query failed", "err", err)
		return nil, err
	}
	defer rows.Close()

	res := make([]*models.ReviewRequirement, 0)
	for rows.Next() {
		var (
			req     models.ReviewRequirement
			cols    persistence.RequirementColumns
			created float64
			updated *float64
		)
		if err := rows.Scan(&req.ID, &req.TaskID, &req.NumberRequired, &cols.Users, &cols.Agents, &cols.Groups, &cols.Types, &created, &updated); err != nil {
			r.log.Error("FindRequirements scan failed", "err", err)
			return nil, err
		}
		req.Users, req.Agents, req.Groups, req.Types, err = persistence.DecodeRequirementLists(cols)
		if err != nil {
			r.log.Error("FindRequirements corrupt row", "requirement_id", req.ID, "err", err)
			return nil, err
		}
		req.Created = persistence.FromEpoch(created)
		req.Updated = persistence.FromEpochPtr(updated)
		res = append(res, &req)
	}
	return res, rows.Err()
}

func (r *ReviewRequirementRepository) DeleteRequirement(ctx context.Context, id string) error {
	res, err := r.querier.ExecContext(ctx, "DELETE FROM review_requirements WHERE id = ?", id)
	if err != nil {
		r.log.Error("DeleteRequirement failed", "requirement_id", id, "err", err)
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return utils.ErrRequirementNotFound
	}
	return nil
}
