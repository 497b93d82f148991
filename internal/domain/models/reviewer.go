package models

type ReviewerKind string

const (
	ReviewerKindUser  ReviewerKind = "user"
	ReviewerKindAgent ReviewerKind = "agent"
)

// Reviewer is a single identity expected to review a task: either a user or an agent.
type Reviewer struct {
	Kind ReviewerKind
	ID   string
}

func UserReviewer(id string) Reviewer {
	return Reviewer{Kind: ReviewerKindUser, ID: id}
}

func AgentReviewer(id string) Reviewer {
	return Reviewer{Kind: ReviewerKindAgent, ID: id}
}

func (r Reviewer) Valid() bool {
	if r.ID == "" {
		return false
	}
	return r.Kind == ReviewerKindUser || r.Kind == ReviewerKindAgent
}

// UserID and AgentID flatten the reviewer into the two nullable storage columns.
func (r Reviewer) UserID() *string {
	if r.Kind != ReviewerKindUser || r.ID == "" {
		return nil
	}
	id := r.ID
	return &id
}

func (r Reviewer) AgentID() *string {
	if r.Kind != ReviewerKindAgent || r.ID == "" {
		return nil
	}
	id := r.ID
	return &id
}

type PendingReviewerEntry struct {
	ID      string
	TaskID  string
	UserID  *string
	AgentID *string
}

// Reviewer returns the identity stored in the entry; ok is false when the row has neither column set.
func (e *PendingReviewerEntry) Reviewer() (Reviewer, bool) {
	switch {
	case e.UserID != nil && *e.UserID != "":
		return UserReviewer(*e.UserID), true
	case e.AgentID != nil && *e.AgentID != "":
		return AgentReviewer(*e.AgentID), true
	default:
		return Reviewer{}, false
	}
}

type PendingReviewers struct {
	TaskID string
	Users  []string
	Agents []string
}

type PendingReviews struct {
	Tasks []string
}

// PendingReviewFilter selects pending entries by identity. Empty fields are not applied.
type PendingReviewFilter struct {
	UserID  string
	AgentID string
}

type ReviewStatus struct {
	TaskID         string
	Users          []string
	Agents         []string
	Pending        int
	NumberRequired int
	Complete       bool
}
