package dto

import (
	"taskara-review-service/internal/domain/models"
	"time"
)

// ReviewRequirementDTO is the wire form of a review requirement.
type ReviewRequirementDTO struct {
	ID             string     `json:"id"`
	TaskID         string     `json:"task_id" validate:"required"`
	Users          []string   `json:"users"`
	Agents         []string   `json:"agents"`
	Groups         []string   `json:"groups"`
	Types          []string   `json:"types"`
	NumberRequired *int       `json:"number_required" validate:"omitempty,min=0"`
	Created        *time.Time `json:"created,omitempty"`
	Updated        *time.Time `json:"updated,omitempty"`
}

func ToReviewRequirementDTO(r *models.ReviewRequirement) ReviewRequirementDTO {
	numberRequired := r.NumberRequired
	d := ReviewRequirementDTO{
		ID:             r.ID,
		TaskID:         r.TaskID,
		Users:          copyList(r.Users),
		Agents:         copyList(r.Agents),
		Groups:         copyList(r.Groups),
		Types:          copyList(r.Types),
		NumberRequired: &numberRequired,
		Updated:        r.Updated,
	}
	if !r.Created.IsZero() {
		created := r.Created
		d.Created = &created
	}
	return d
}

// FromReviewRequirementDTO rehydrates the requirement identified by d.ID; it never mints an id.
// An absent number_required means the default.
func FromReviewRequirementDTO(d ReviewRequirementDTO) (*models.ReviewRequirement, error) {
	numberRequired := models.DefaultNumberRequired
	if d.NumberRequired != nil {
		numberRequired = *d.NumberRequired
	}
	r := models.ReviewRequirement{
		ID:             d.ID,
		TaskID:         d.TaskID,
		NumberRequired: numberRequired,
		Users:          d.Users,
		Agents:         d.Agents,
		Groups:         d.Groups,
		Types:          d.Types,
		Updated:        d.Updated,
	}
	if d.Created != nil {
		r.Created = *d.Created
	}
	return models.RehydrateReviewRequirement(r)
}

func ToReviewRequirementDTOs(rs []*models.ReviewRequirement) []ReviewRequirementDTO {
	out := make([]ReviewRequirementDTO, 0, len(rs))
	for _, r := range rs {
		out = append(out, ToReviewRequirementDTO(r))
	}
	return out
}

func copyList(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
