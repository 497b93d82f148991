package pendingreviewer

import (
	"context"
	"taskara-review-service/internal/domain/models"
	"taskara-review-service/internal/domain/ports/input"
	ports "taskara-review-service/internal/domain/ports/output"
	uow "taskara-review-service/internal/domain/ports/output/uow"
	"taskara-review-service/internal/domain/services"
	"taskara-review-service/internal/utils"

	"github.com/google/uuid"
)

type Service struct {
	uow      uow.UnitOfWork
	selector services.ReviewerSelector
	log      ports.Logger
}

func NewService(uow uow.UnitOfWork, selector services.ReviewerSelector, log ports.Logger) input.PendingReviewerInputPort {
	return &Service{uow: uow, selector: selector, log: log}
}

// ReviewerFromArgs turns the optional user/agent pair used by callers into a Reviewer.
// Exactly one of the two must be set.
func ReviewerFromArgs(user, agent string) (models.Reviewer, error) {
	switch {
	case user == "" && agent == "":
		return models.Reviewer{}, utils.ErrReviewerRequired
	case user != "" && agent != "":
		return models.Reviewer{}, utils.ErrAmbiguousReviewer
	case user != "":
		return models.UserReviewer(user), nil
	default:
		return models.AgentReviewer(agent), nil
	}
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

func (s *Service) PendingReviewers(ctx context.Context, taskID string) (*models.PendingReviewers, error) {
	tx, err := s.begin(ctx, "PendingReviewers")
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	entries, err := tx.PendingReviewerRepository().ListByTaskID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	users, agents := partition(entries)
	return &models.PendingReviewers{TaskID: taskID, Users: users, Agents: agents}, nil
}

func (s *Service) PendingReviews(ctx context.Context, filter models.PendingReviewFilter) (*models.PendingReviews, error) {
	tx, err := s.begin(ctx, "PendingReviews")
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	taskIDs, err := tx.PendingReviewerRepository().ListTaskIDs(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &models.PendingReviews{Tasks: utils.UniqueStrings(taskIDs)}, nil
}

func (s *Service) AddPendingReviewer(ctx context.Context, taskID string, reviewer models.Reviewer) error {
	if !reviewer.Valid() {
		return utils.ErrReviewerRequired
	}
	tx, err := s.begin(ctx, "AddPendingReviewer")
	if err != nil {
		return err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()
	if err := tx.PendingReviewerRepository().AddPendingReviewer(ctx, newEntry(taskID, reviewer)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		s.log.Error("AddPendingReviewer commit failed", "err", err, "task_id", taskID)
		return err
	}
	commit = true
	return nil
}

func (s *Service) RemovePendingReviewer(ctx context.Context, taskID string, reviewer models.Reviewer) error {
	if !reviewer.Valid() {
		return utils.ErrReviewerRequired
	}
	tx, err := s.begin(ctx, "RemovePendingReviewer")
	if err != nil {
		return err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()
	removed, err := tx.PendingReviewerRepository().DeleteFirstMatch(ctx, taskID, reviewer)
	if err != nil {
		return err
	}
	if !removed {
		return nil
	}
	if err := tx.Commit(ctx); err != nil {
		s.log.Error("RemovePendingReviewer commit failed", "err", err, "task_id", taskID)
		return err
	}
	commit = true
	return nil
}

func (s *Service) ClearPendingReviewer(ctx context.Context, taskID string, reviewer models.Reviewer) (int, error) {
	if !reviewer.Valid() {
		return 0, utils.ErrReviewerRequired
	}
	tx, err := s.begin(ctx, "ClearPendingReviewer")
	if err != nil {
		return 0, err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()
	n, err := tx.PendingReviewerRepository().DeleteAllMatches(ctx, taskID, reviewer)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		s.log.Error("ClearPendingReviewer commit failed", "err", err, "task_id", taskID)
		return 0, err
	}
	commit = true
	return int(n), nil
}

// AssignFromRequirement picks up to NumberRequired reviewers among the requirement's
// users and agents that are not already pending on its task and records them as pending.
func (s *Service) AssignFromRequirement(ctx context.Context, requirementID string) ([]models.Reviewer, error) {
	if requirementID == "" {
		return nil, utils.ErrInvalidArgument
	}
	tx, err := s.begin(ctx, "AssignFromRequirement")
	if err != nil {
		return nil, err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()

	found, err := tx.ReviewRequirementRepository().FindRequirements(ctx, models.RequirementFilter{ID: &requirementID})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, utils.ErrRequirementNotFound
	}
	req := found[0]

	repo := tx.PendingReviewerRepository()
	entries, err := repo.ListByTaskID(ctx, req.TaskID)
	if err != nil {
		return nil, err
	}
	pending := make(map[models.Reviewer]struct{}, len(entries))
	for _, e := range entries {
		if r, ok := e.Reviewer(); ok {
			pending[r] = struct{}{}
		}
	}

	candidates := make([]models.Reviewer, 0)
	seen := make(map[models.Reviewer]struct{})
	for _, c := range req.Candidates() {
		if _, ok := pending[c]; ok {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		candidates = append(candidates, c)
	}

	need := req.NumberRequired - len(pending)
	if need <= 0 || len(candidates) == 0 {
		return []models.Reviewer{}, nil
	}
	picked := s.selector.Select(candidates, need)
	for _, r := range picked {
		if err := repo.AddPendingReviewer(ctx, newEntry(req.TaskID, r)); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		s.log.Error("AssignFromRequirement commit failed", "err", err, "requirement_id", requirementID)
		return nil, err
	}
	commit = true
	s.log.Debug("assigned reviewers from requirement", "requirement_id", requirementID, "task_id", req.TaskID, "count", len(picked))
	return picked, nil
}

func (s *Service) ReviewStatus(ctx context.Context, taskID string) (*models.ReviewStatus, error) {
	tx, err := s.begin(ctx, "ReviewStatus")
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	entries, err := tx.PendingReviewerRepository().ListByTaskID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	reqs, err := tx.ReviewRequirementRepository().FindRequirements(ctx, models.RequirementFilter{TaskID: &taskID})
	if err != nil {
		return nil, err
	}
	required := 0
	for _, r := range reqs {
		if r.NumberRequired > required {
			required = r.NumberRequired
		}
	}
	users, agents := partition(entries)
	pending := len(users) + len(agents)
	return &models.ReviewStatus{
		TaskID:         taskID,
		Users:          users,
		Agents:         agents,
		Pending:        pending,
		NumberRequired: required,
		Complete:       pending == 0,
	}, nil
}

func newEntry(taskID string, reviewer models.Reviewer) *models.PendingReviewerEntry {
	return &models.PendingReviewerEntry{
		ID:      uuid.Must(uuid.NewV7()).String(),
		TaskID:  taskID,
		UserID:  reviewer.UserID(),
		AgentID: reviewer.AgentID(),
	}
}

func partition(entries []*models.PendingReviewerEntry) ([]string, []string) {
	users := make([]string, 0, len(entries))
	agents := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.UserID != nil && *e.UserID != "" {
			users = append(users, *e.UserID)
		}
		if e.AgentID != nil && *e.AgentID != "" {
			agents = append(agents, *e.AgentID)
		}
	}
	return utils.UniqueStrings(users), utils.UniqueStrings(agents)
}
