package input

import (
	"context"
	"taskara-review-service/internal/domain/models"
)

//go:generate mockery --name ReviewRequirementInputPort --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename ReviewRequirementInputPort.go

type ReviewRequirementInputPort interface {
	CreateRequirement(ctx context.Context, taskID string, params models.RequirementParams) (*models.ReviewRequirement, error)
	SaveRequirement(ctx context.Context, r *models.ReviewRequirement) error
	DeleteRequirement(ctx context.Context, id string) error
	FindRequirements(ctx context.Context, filter models.RequirementFilter) ([]*models.ReviewRequirement, error)
	GetRequirement(ctx context.Context, id string) (*models.ReviewRequirement, error)
}
