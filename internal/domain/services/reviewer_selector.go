package services

import "taskara-review-service/internal/domain/models"

//go:generate mockery --name ReviewerSelector --dir . --output ../../../mocks --outpkg mocks --with-expecter --filename ReviewerSelector.go

type ReviewerSelector interface {
	Select(candidates []models.Reviewer, count int) []models.Reviewer
}
