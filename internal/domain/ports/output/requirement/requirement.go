package requirement

import (
	"context"
	"taskara-review-service/internal/domain/models"
)

//go:generate mockery --name ReviewRequirementRepository --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename ReviewRequirementRepository.go

type ReviewRequirementRepository interface {
	UpsertRequirement(ctx context.Context, r *models.ReviewRequirement) error
	FindRequirements(ctx context.Context, filter models.RequirementFilter) ([]*models.ReviewRequirement, error)
	DeleteRequirement(ctx context.Context, id string) error
}
