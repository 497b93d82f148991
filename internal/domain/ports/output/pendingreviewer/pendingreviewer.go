package pendingreviewer

import (
	"context"
	"taskara-review-service/internal/domain/models"
)

//go:generate mockery --name PendingReviewerRepository --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename PendingReviewerRepository.go

type PendingReviewerRepository interface {
	AddPendingReviewer(ctx context.Context, entry *models.PendingReviewerEntry) error
	ListByTaskID(ctx context.Context, taskID string) ([]*models.PendingReviewerEntry, error)
	ListTaskIDs(ctx context.Context, filter models.PendingReviewFilter) ([]string, error)
	DeleteFirstMatch(ctx context.Context, taskID string, reviewer models.Reviewer) (bool, error)
	DeleteAllMatches(ctx context.Context, taskID string, reviewer models.Reviewer) (int64, error)
}
