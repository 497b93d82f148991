package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const DefaultNumberRequired = 2

var ErrRequirementWithoutID = errors.New("review requirement id is required")

// ReviewRequirement is the review policy of a task.
type ReviewRequirement struct {
	ID             string
	TaskID         string
	NumberRequired int
	Users          []string
	Agents         []string
	Groups         []string
	Types          []string
	Created        time.Time
	Updated        *time.Time
}

type RequirementParams struct {
	NumberRequired *int
	Users          []string
	Agents         []string
	Groups         []string
	Types          []string
	Created        *time.Time
}

// RequirementFilter is an equality filter over review_requirements. Nil fields are not applied.
type RequirementFilter struct {
	ID             *string
	TaskID         *string
	NumberRequired *int
}

// NewReviewRequirement builds a requirement that has never been stored and assigns it a fresh id.
func NewReviewRequirement(taskID string, p RequirementParams) *ReviewRequirement {
	numberRequired := DefaultNumberRequired
	if p.NumberRequired != nil {
		numberRequired = *p.NumberRequired
	}
	created := time.Now()
	if p.Created != nil && !p.Created.IsZero() {
		created = *p.Created
	}
	return &ReviewRequirement{
		ID:             uuid.NewString(),
		TaskID:         taskID,
		NumberRequired: numberRequired,
		Users:          nonNil(p.Users),
		Agents:         nonNil(p.Agents),
		Groups:         nonNil(p.Groups),
		Types:          nonNil(p.Types),
		Created:        created,
	}
}

// RehydrateReviewRequirement rebuilds a requirement whose id is already known,
// from a stored record or an external representation. It never assigns an id.
func RehydrateReviewRequirement(r ReviewRequirement) (*ReviewRequirement, error) {
	if r.ID == "" {
		return nil, ErrRequirementWithoutID
	}
	if r.Created.IsZero() {
		r.Created = time.Now()
	}
	r.Users = nonNil(r.Users)
	r.Agents = nonNil(r.Agents)
	r.Groups = nonNil(r.Groups)
	r.Types = nonNil(r.Types)
	return &r, nil
}

// Candidates lists the requirement's users and agents as reviewers, users first.
func (r *ReviewRequirement) Candidates() []Reviewer {
	out := make([]Reviewer, 0, len(r.Users)+len(r.Agents))
	for _, u := range r.Users {
		if u != "" {
			out = append(out, UserReviewer(u))
		}
	}
	for _, a := range r.Agents {
		if a != "" {
			out = append(out, AgentReviewer(a))
		}
	}
	return out
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
