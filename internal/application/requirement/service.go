package requirement

import (
	"context"
	"taskara-review-service/internal/domain/models"
	"taskara-review-service/internal/domain/ports/input"
	ports "taskara-review-service/internal/domain/ports/output"
	uow "taskara-review-service/internal/domain/ports/output/uow"
	"taskara-review-service/internal/utils"
)

type Service struct {
	uow uow.UnitOfWork
	log ports.Logger
}

func NewService(uow uow.UnitOfWork, log ports.Logger) input.ReviewRequirementInputPort {
	return &Service{uow: uow, log: log}
}

func (s *Service) begin(ctx context.Context, op string) (uow.Transaction, error) {
	if s.uow == nil {
		return nil, utils.ErrStorageUnavailable
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error(op+" begin tx failed", "err", err)
		return nil, utils.StorageUnavailable(err)
	}
	return tx, nil
}

func validate(r *models.ReviewRequirement) error {
	if r == nil || r.ID == "" || r.TaskID == "" || r.NumberRequired < 0 {
		return utils.ErrInvalidArgument
	}
	return nil
}

func (s *Service) CreateRequirement(ctx context.Context, taskID string, params models.RequirementParams) (*models.ReviewRequirement, error) {
	r := models.NewReviewRequirement(taskID, params)
	if err := s.SaveRequirement(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// SaveRequirement creates the requirement or overwrites the stored one with the same id.
func (s *Service) SaveRequirement(ctx context.Context, r *models.ReviewRequirement) error {
	if err := validate(r); err != nil {
		return err
	}
	tx, err := s.begin(ctx, "SaveRequirement")
	if err != nil {
		return err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()
	if err := tx.ReviewRequirementRepository().UpsertRequirement(ctx, r); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		s.log.Error("SaveRequirement commit failed", "err", err, "requirement_id", r.ID)
		return err
	}
	commit = true
	return nil
}

func (s *Service) DeleteRequirement(ctx context.Context, id string) error {
	if id == "" {
		return utils.ErrInvalidArgument
	}
	tx, err := s.begin(ctx, "DeleteRequirement")
	if err != nil {
		return err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()
	if err := tx.ReviewRequirementRepository().DeleteRequirement(ctx, id); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		s.log.Error("DeleteRequirement commit failed", "err", err, "requirement_id", id)
		return err
	}
	commit = true
	return nil
}

// FindRequirements returns every stored requirement matching filter. An empty filter scans the whole table.
func (s *Service) FindRequirements(ctx context.Context, filter models.RequirementFilter) ([]*models.ReviewRequirement, error) {
	tx, err := s.begin(ctx, "FindRequirements")
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	res, err := tx.ReviewRequirementRepository().FindRequirements(ctx, filter)
	if err != nil {
		return nil, err
	}
	if res == nil {
		res = []*models.ReviewRequirement{}
	}
	return res, nil
}

func (s *Service) GetRequirement(ctx context.Context, id string) (*models.ReviewRequirement, error) {
	if id == "" {
		return nil, utils.ErrInvalidArgument
	}
	res, err := s.FindRequirements(ctx, models.RequirementFilter{ID: &id})
	if err != nil {
		return nil, err
	}
	if len(res) == 0 {
		return nil, utils.ErrRequirementNotFound
	}
	return res[0], nil
}
