package uow_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pendingapp "taskara-review-service/internal/application/pendingreviewer"
	requirementapp "taskara-review-service/internal/application/requirement"
	"taskara-review-service/internal/domain/models"
	"taskara-review-service/internal/domain/ports/input"
	"taskara-review-service/internal/infrastructure/logger"
	"taskara-review-service/internal/infrastructure/migrator"
	"taskara-review-service/internal/infrastructure/persistence/sqlite"
	sqliteuow "taskara-review-service/internal/infrastructure/persistence/sqlite/uow"
	"taskara-review-service/internal/infrastructure/reviewerselector"
	"taskara-review-service/internal/utils"
)

func newDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "review.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	m, err := migrator.NewSQLiteMigrator(db, logger.New("test"))
	require.NoError(t, err)
	require.NoError(t, m.Up())
	require.NoError(t, m.Close())
	return db
}

func newServices(t *testing.T) (input.PendingReviewerInputPort, input.ReviewRequirementInputPort) {
	log := logger.New("test")
	u := sqliteuow.NewSQLiteUOW(newDB(t), log)
	return pendingapp.NewService(u, reviewerselector.NewRandomReviewerSelector(), log), requirementapp.NewService(u, log)
}

func TestSQLiteUOW_RollbackDiscardsWrites(t *testing.T) {
	ctx := context.Background()
	db := newDB(t)
	u := sqliteuow.NewSQLiteUOW(db, logger.New("test"))

	tx, err := u.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.ReviewRequirementRepository().FindRequirements(ctx, models.RequirementFilter{})
	require.NoError(t, err)
	require.NoError(t, tx.ReviewRequirementRepository().UpsertRequirement(ctx, models.NewReviewRequirement("t1", models.RequirementParams{})))
	require.NoError(t, tx.Rollback(ctx))

	tx, err = u.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback(ctx) }()
	got, err := tx.ReviewRequirementRepository().FindRequirements(ctx, models.RequirementFilter{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSQLiteUOW_BeginOnClosedDB(t *testing.T) {
	db := newDB(t)
	require.NoError(t, db.Close())

	_, err := sqliteuow.NewSQLiteUOW(db, logger.New("test")).Begin(context.Background())
	require.ErrorIs(t, err, utils.ErrStorageUnavailable)
}

func TestPendingReviewers_OverSQLite(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown task has empty lists", func(t *testing.T) {
		svc, _ := newServices(t)
		got, err := svc.PendingReviewers(ctx, "nope")
		require.NoError(t, err)
		assert.Equal(t, "nope", got.TaskID)
		assert.NotNil(t, got.Users)
		assert.NotNil(t, got.Agents)
		assert.Empty(t, got.Users)
		assert.Empty(t, got.Agents)
	})

	t.Run("alice and bot1 on t1, remove alice", func(t *testing.T) {
		svc, _ := newServices(t)
		require.NoError(t, svc.AddPendingReviewer(ctx, "t1", models.UserReviewer("alice")))
		require.NoError(t, svc.AddPendingReviewer(ctx, "t1", models.AgentReviewer("bot1")))

		got, err := svc.PendingReviewers(ctx, "t1")
		require.NoError(t, err)
		assert.Equal(t, []string{"alice"}, got.Users)
		assert.Equal(t, []string{"bot1"}, got.Agents)

		require.NoError(t, svc.RemovePendingReviewer(ctx, "t1", models.UserReviewer("alice")))
		got, err = svc.PendingReviewers(ctx, "t1")
		require.NoError(t, err)
		assert.Equal(t, &models.PendingReviewers{TaskID: "t1", Users: []string{}, Agents: []string{"bot1"}}, got)
	})

	t.Run("remove of a missing entry is a no-op", func(t *testing.T) {
		svc, _ := newServices(t)
		require.NoError(t, svc.RemovePendingReviewer(ctx, "t1", models.UserReviewer("ghost")))
	})

	t.Run("add without identity", func(t *testing.T) {
		svc, _ := newServices(t)
		require.ErrorIs(t, svc.AddPendingReviewer(ctx, "t1", models.Reviewer{}), utils.ErrInvalidArgument)
	})

	t.Run("pending reviews de-duplicate tasks", func(t *testing.T) {
		svc, _ := newServices(t)
		require.NoError(t, svc.AddPendingReviewer(ctx, "t1", models.UserReviewer("alice")))
		require.NoError(t, svc.AddPendingReviewer(ctx, "t1", models.UserReviewer("alice")))
		require.NoError(t, svc.AddPendingReviewer(ctx, "t2", models.UserReviewer("alice")))

		got, err := svc.PendingReviews(ctx, models.PendingReviewFilter{UserID: "alice"})
		require.NoError(t, err)
		assert.Equal(t, []string{"t1", "t2"}, got.Tasks)
	})

	t.Run("duplicates are removed one at a time", func(t *testing.T) {
		svc, _ := newServices(t)
		require.NoError(t, svc.AddPendingReviewer(ctx, "t1", models.UserReviewer("alice")))
		require.NoError(t, svc.AddPendingReviewer(ctx, "t1", models.UserReviewer("alice")))

		require.NoError(t, svc.RemovePendingReviewer(ctx, "t1", models.UserReviewer("alice")))
		got, err := svc.PendingReviewers(ctx, "t1")
		require.NoError(t, err)
		assert.Equal(t, []string{"alice"}, got.Users)

		n, err := svc.ClearPendingReviewer(ctx, "t1", models.UserReviewer("alice"))
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})
}

func TestAssignFromRequirement_OverSQLite(t *testing.T) {
	ctx := context.Background()
	pending, requirements := newServices(t)

	req, err := requirements.CreateRequirement(ctx, "t1", models.RequirementParams{
		Users:          []string{"alice", "bob", "carol"},
		Agents:         []string{"bot1"},
		NumberRequired: func() *int { n := 2; return &n }(),
	})
	require.NoError(t, err)
	require.NoError(t, pending.AddPendingReviewer(ctx, "t1", models.UserReviewer("alice")))

	assigned, err := pending.AssignFromRequirement(ctx, req.ID)
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	assert.NotEqual(t, models.UserReviewer("alice"), assigned[0])

	status, err := pending.ReviewStatus(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, 2, status.Pending)
	assert.Equal(t, 2, status.NumberRequired)
	assert.False(t, status.Complete)

	again, err := pending.AssignFromRequirement(ctx, req.ID)
	require.NoError(t, err)
	assert.Empty(t, again)

	_, err = pending.AssignFromRequirement(ctx, "missing")
	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestRequirements_OverSQLite(t *testing.T) {
	ctx := context.Background()
	_, requirements := newServices(t)

	require.ErrorIs(t, requirements.DeleteRequirement(ctx, "never-saved"), utils.ErrRequirementNotFound)

	req, err := requirements.CreateRequirement(ctx, "t1", models.RequirementParams{
		Users:  []string{"b", "a"},
		Groups: []string{"g"},
	})
	require.NoError(t, err)

	got, err := requirements.GetRequirement(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, got.Users)
	assert.Equal(t, []string{}, got.Agents)
	assert.Equal(t, []string{"g"}, got.Groups)
	assert.Equal(t, models.DefaultNumberRequired, got.NumberRequired)

	got.Types = []string{"security"}
	require.NoError(t, requirements.SaveRequirement(ctx, got))
	assert.NotNil(t, got.Updated)

	require.NoError(t, requirements.DeleteRequirement(ctx, req.ID))
	_, err = requirements.GetRequirement(ctx, req.ID)
	require.ErrorIs(t, err, utils.ErrRequirementNotFound)
}
