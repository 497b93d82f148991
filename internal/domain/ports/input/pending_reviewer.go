package input

import (
	"context"
	"taskara-review-service/internal/domain/models"
)

//go:generate mockery --name PendingReviewerInputPort --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename PendingReviewerInputPort.go

type PendingReviewerInputPort interface {
	PendingReviewers(ctx context.Context, taskID string) (*models.PendingReviewers, error)
	PendingReviews(ctx context.Context, filter models.PendingReviewFilter) (*models.PendingReviews, error)
	AddPendingReviewer(ctx context.Context, taskID string, reviewer models.Reviewer) error
	RemovePendingReviewer(ctx context.Context, taskID string, reviewer models.Reviewer) error
	ClearPendingReviewer(ctx context.Context, taskID string, reviewer models.Reviewer) (int, error)
	AssignFromRequirement(ctx context.Context, requirementID string) ([]models.Reviewer, error)
	ReviewStatus(ctx context.Context, taskID string) (*models.ReviewStatus, error)
}
