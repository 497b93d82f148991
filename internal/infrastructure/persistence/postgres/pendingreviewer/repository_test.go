package pendingreviewer_repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taskara-review-service/internal/domain/models"
	pendingreviewer_port "taskara-review-service/internal/domain/ports/output/pendingreviewer"
	"taskara-review-service/internal/infrastructure/logger"
	pendingreviewer_repository "taskara-review-service/internal/infrastructure/persistence/postgres/pendingreviewer"
	"taskara-review-service/internal/utils"
	"taskara-review-service/mocks"
)

func newRepo(t *testing.T) (pendingreviewer_port.PendingReviewerRepository, *mocks.Querier) {
	q := mocks.NewQuerier(t)
	log := logger.New("test")
	return pendingreviewer_repository.NewPendingReviewerRepository(q, log), q
}

func strPtr(s string) *string { return &s }

func TestPendingReviewerRepository_AddPendingReviewer(t *testing.T) {
	tests := []struct {
		name      string
		entry     *models.PendingReviewerEntry
		mockSetup func(*mocks.Querier)
		wantIsErr error
		wantErr   bool
	}{
		{
			name:  "success",
			entry: &models.PendingReviewerEntry{ID: "e1", TaskID: "t1", UserID: strPtr("alice")},
			mockSetup: func(q *mocks.Querier) {
				q.EXPECT().Exec(mock.Anything, mock.Anything, mock.MatchedBy(func(a pgx.NamedArgs) bool {
					return a["task_id"] == "t1" && *(a["user_id"].(*string)) == "alice" && a["agent_id"].(*string) == nil
				})).Return(pgconn.NewCommandTag("INSERT 0 1"), nil)
			},
		},
		{
			name:      "no identity",
			entry:     &models.PendingReviewerEntry{ID: "e1", TaskID: "t1"},
			mockSetup: func(q *mocks.Querier) {},
			wantErr:   true,
			wantIsErr: utils.ErrInvalidArgument,
		},
		{
			name:  "check constraint violation",
			entry: &models.PendingReviewerEntry{ID: "e1", TaskID: "t1", AgentID: strPtr("")},
			mockSetup: func(q *mocks.Querier) {
				q.EXPECT().Exec(mock.Anything, mock.Anything, mock.Anything).Return(pgconn.NewCommandTag(""), &pgconn.PgError{Code: "23514"})
			},
			wantErr:   true,
			wantIsErr: utils.ErrReviewerRequired,
		},
		{
			name:  "db error",
			entry: &models.PendingReviewerEntry{ID: "e1", TaskID: "t1", AgentID: strPtr("bot1")},
			mockSetup: func(q *mocks.Querier) {
				q.EXPECT().Exec(mock.Anything, mock.Anything, mock.Anything).Return(pgconn.NewCommandTag(""), errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, q := newRepo(t)
			tt.mockSetup(q)
			err := repo.AddPendingReviewer(context.Background(), tt.entry)
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantIsErr != nil {
					assert.ErrorIs(t, err, tt.wantIsErr)
				}
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestPendingReviewerRepository_ListByTaskID(t *testing.T) {
	repo, q := newRepo(t)
	rows := mocks.NewStaticRows(
		[]any{"e1", "t1", strPtr("alice"), nil},
		[]any{"e2", "t1", nil, strPtr("bot1")},
	)
	q.EXPECT().Query(mock.Anything, mock.Anything, pgx.NamedArgs{"task_id": "t1"}).Return(rows, nil)

	got, err := repo.ListByTaskID(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "alice", *got[0].UserID)
	assert.Nil(t, got[0].AgentID)
	assert.Equal(t, "bot1", *got[1].AgentID)
}

func TestPendingReviewerRepository_ListByTaskID_Empty(t *testing.T) {
	repo, q := newRepo(t)
	q.EXPECT().Query(mock.Anything, mock.Anything, mock.Anything).Return(mocks.NewStaticRows(), nil)

	got, err := repo.ListByTaskID(context.Background(), "unknown")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPendingReviewerRepository_ListTaskIDs(t *testing.T) {
	repo, q := newRepo(t)
	q.EXPECT().Query(mock.Anything, mock.Anything, mock.MatchedBy(func(a pgx.NamedArgs) bool {
		return *(a["user_id"].(*string)) == "alice" && a["agent_id"].(*string) == nil
	})).Return(mocks.NewStaticRows([]any{"t1"}, []any{"t2"}), nil)

	got, err := repo.ListTaskIDs(context.Background(), models.PendingReviewFilter{UserID: "alice"})
	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t2"}, got)
}

func TestPendingReviewerRepository_DeleteFirstMatch(t *testing.T) {
	tests := []struct {
		name      string
		reviewer  models.Reviewer
		mockSetup func(*mocks.Querier)
		want      bool
		wantIsErr error
	}{
		{
			name:     "removed",
			reviewer: models.UserReviewer("alice"),
			mockSetup: func(q *mocks.Querier) {
				q.EXPECT().QueryRow(mock.Anything, mock.Anything, mock.Anything).Return(mocks.StaticRow{Values: []any{"e1"}})
			},
			want: true,
		},
		{
			name:     "nothing matched",
			reviewer: models.AgentReviewer("ghost"),
			mockSetup: func(q *mocks.Querier) {
				q.EXPECT().QueryRow(mock.Anything, mock.Anything, mock.Anything).Return(mocks.StaticRow{Failed: pgx.ErrNoRows})
			},
			want: false,
		},
		{
			name:      "invalid reviewer never reaches the database",
			reviewer:  models.Reviewer{},
			mockSetup: func(q *mocks.Querier) {},
			wantIsErr: utils.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, q := newRepo(t)
			tt.mockSetup(q)
			got, err := repo.DeleteFirstMatch(context.Background(), "t1", tt.reviewer)
			if tt.wantIsErr != nil {
				require.ErrorIs(t, err, tt.wantIsErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPendingReviewerRepository_DeleteAllMatches(t *testing.T) {
	repo, q := newRepo(t)
	q.EXPECT().Exec(mock.Anything, mock.Anything, mock.MatchedBy(func(a pgx.NamedArgs) bool {
		return a["task_id"] == "t1" && *(a["agent_id"].(*string)) == "bot1"
	})).Return(pgconn.NewCommandTag("DELETE 3"), nil)

	n, err := repo.DeleteAllMatches(context.Background(), "t1", models.AgentReviewer("bot1"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
