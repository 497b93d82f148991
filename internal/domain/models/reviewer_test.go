package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReviewer_Flatten(t *testing.T) {
	u := UserReviewer("alice")
	assert.True(t, u.Valid())
	assert.Equal(t, "alice", *u.UserID())
	assert.Nil(t, u.AgentID())

	a := AgentReviewer("bot1")
	assert.Equal(t, "bot1", *a.AgentID())
	assert.Nil(t, a.UserID())

	assert.False(t, Reviewer{}.Valid())
	assert.False(t, Reviewer{Kind: "robot", ID: "x"}.Valid())
	assert.False(t, UserReviewer("").Valid())
}

func TestPendingReviewerEntry_Reviewer(t *testing.T) {
	alice, bot, empty := "alice", "bot1", ""

	tests := []struct {
		name   string
		entry  PendingReviewerEntry
		want   Reviewer
		wantOK bool
	}{
		{"user", PendingReviewerEntry{UserID: &alice}, UserReviewer("alice"), true},
		{"agent", PendingReviewerEntry{AgentID: &bot}, AgentReviewer("bot1"), true},
		{"empty user falls through to agent", PendingReviewerEntry{UserID: &empty, AgentID: &bot}, AgentReviewer("bot1"), true},
		{"neither", PendingReviewerEntry{}, Reviewer{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.entry.Reviewer()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
