package requirement_repository

import (
	"context"
	"fmt"
	"strings"
	"taskara-review-service/internal/domain/models"
	ports "taskara-review-service/internal/domain/ports/output"
	requirement_port "taskara-review-service/internal/domain/ports/output/requirement"
	"taskara-review-service/internal/infrastructure/persistence"
	"taskara-review-service/internal/infrastructure/persistence/postgres"
	"taskara-review-service/internal/utils"
	"time"

	"github.com/jackc/pgx/v5"
)

const requirementColumns = `id, task_id, number_required, users, agents, "groups", types, created, updated`

type ReviewRequirementRepository struct {
	querier postgres.Querier
	log     ports.Logger
}

func NewReviewRequirementRepository(querier postgres.Querier, log ports.Logger) requirement_port.ReviewRequirementRepository {
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
		VALUES (@id, @task_id, @number_required, @users, @agents, @groups, @types, @created, @updated)
		ON CONFLICT (id) DO UPDATE
		SET task_id = EXCLUDED.task_id,
			number_required = EXCLUDED.number_required,
			users = EXCLUDED.users,
			agents = EXCLUDED.agents,
			"groups" = EXCLUDED."groups",
			types = EXCLUDED.types,
			updated = @now
		RETURNING created, updated;
	`
	row := r.querier.QueryRow(ctx, q, pgx.NamedArgs{
		"id":              req.ID,
		"task_id":         req.TaskID,
		"number_required": req.NumberRequired,
		"users":           cols.Users,
		"agents":          cols.Agents,
		"groups":          cols.Groups,
		"types":           cols.Types,
		"created":         persistence.ToEpoch(req.Created),
		"updated":         persistence.ToEpochPtr(req.Updated),
		"now":             persistence.ToEpoch(time.Now()),
	})
	var (
		created float64
		updated *float64
	)
	if err := row.Scan(&created, &updated); err != nil {
		r.log.Error("UpsertRequirement failed", "requirement_id", req.ID, "err", err)
		return err
	}
	req.Created = persistence.FromEpoch(created)
	req.Updated = persistence.FromEpochPtr(updated)
	return nil
}

func (r *ReviewRequirementRepository) FindRequirements(ctx context.Context, filter models.RequirementFilter) ([]*models.ReviewRequirement, error) {
	q, args := buildFindQuery(filter)
	rows, err := r.querier.Query(ctx, q, args)
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
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return res, nil
}

func (r *ReviewRequirementRepository) DeleteRequirement(ctx context.Context, id string) error {
	const q = `
		DELETE FROM review_requirements
		WHERE id = @id;
	`
	tag, err := r.querier.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		r.log.Error("DeleteRequirement failed", "requirement_id", id, "err", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrRequirementNotFound
	}
	return nil
}

func buildFindQuery(filter models.RequirementFilter) (string, pgx.NamedArgs) {
	var where []string
	args := pgx.NamedArgs{}
	if filter.ID != nil {
		where = append(where, "id = @id")
		args["id"] = *filter.ID
	}
	if filter.TaskID != nil {
		where = append(where, "task_id = @task_id")
		args["task_id"] = *filter.TaskID
	}
	if filter.NumberRequired != nil {
		where = append(where, "number_required = @number_required")
		args["number_required"] = *filter.NumberRequired
	}
	q := fmt.Sprintf("SELECT %s FROM review_requirements", requirementColumns)
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY created, id"
	return q, args
}
