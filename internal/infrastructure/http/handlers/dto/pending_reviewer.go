package dto

import "taskara-review-service/internal/domain/models"

type PendingReviewersDTO struct {
	TaskID string   `json:"task_id"`
	Users  []string `json:"users"`
	Agents []string `json:"agents"`
}

type PendingReviewsDTO struct {
	Tasks []string `json:"tasks"`
}

// ReviewerDTO carries exactly one of User or Agent.
type ReviewerDTO struct {
	User  string `json:"user,omitempty"`
	Agent string `json:"agent,omitempty"`
}

type ReviewStatusDTO struct {
	TaskID         string   `json:"task_id"`
	Users          []string `json:"users"`
	Agents         []string `json:"agents"`
	Pending        int      `json:"pending"`
	NumberRequired int      `json:"number_required"`
	Complete       bool     `json:"complete"`
}

func ToPendingReviewersDTO(p *models.PendingReviewers) PendingReviewersDTO {
	return PendingReviewersDTO{TaskID: p.TaskID, Users: copyList(p.Users), Agents: copyList(p.Agents)}
}

func ToPendingReviewsDTO(p *models.PendingReviews) PendingReviewsDTO {
	return PendingReviewsDTO{Tasks: copyList(p.Tasks)}
}

func ToReviewerDTO(r models.Reviewer) ReviewerDTO {
	if r.Kind == models.ReviewerKindAgent {
		return ReviewerDTO{Agent: r.ID}
	}
	return ReviewerDTO{User: r.ID}
}

func ToReviewerDTOs(rs []models.Reviewer) []ReviewerDTO {
	out := make([]ReviewerDTO, 0, len(rs))
	for _, r := range rs {
		out = append(out, ToReviewerDTO(r))
	}
	return out
}

func ToReviewStatusDTO(s *models.ReviewStatus) ReviewStatusDTO {
	return ReviewStatusDTO{
		TaskID:         s.TaskID,
		Users:          copyList(s.Users),
		Agents:         copyList(s.Agents),
		Pending:        s.Pending,
		NumberRequired: s.NumberRequired,
		Complete:       s.Complete,
	}
}
