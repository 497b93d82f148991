package uow

import (
	"context"
	pendingreviewer "taskara-review-service/internal/domain/ports/output/pendingreviewer"
	requirement "taskara-review-service/internal/domain/ports/output/requirement"
)

//go:generate mockery --name UnitOfWork --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename UnitOfWork.go
//go:generate mockery --name Transaction --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename Transaction.go

// UnitOfWork hands out one storage session per operation.
type UnitOfWork interface {
	Begin(ctx context.Context) (Transaction, error)
}

type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	PendingReviewerRepository() pendingreviewer.PendingReviewerRepository
	ReviewRequirementRepository() requirement.ReviewRequirementRepository
}
