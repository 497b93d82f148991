package integration

import (
	"errors"
	"reflect"
	"taskara-review-service/internal/domain/models"
	"taskara-review-service/internal/infrastructure/logger"
	requirementrepo "taskara-review-service/internal/infrastructure/persistence/postgres/requirement"
	"taskara-review-service/internal/utils"
	"testing"
	"time"
)

func TestReviewRequirementRepository_Integration(t *testing.T) {
	requirePostgres(t)
	ctx := testCtx
	log := logger.New("test")
	repo := requirementrepo.NewReviewRequirementRepository(pgC.Pool, log)

	three := 3

	t.Run("Upsert and Find round trip", func(t *testing.T) {
		if err := TruncateAll(ctx, pgC.Pool); err != nil {
			t.Fatalf("truncate: %v", err)
		}
		r := models.NewReviewRequirement("t1", models.RequirementParams{
			NumberRequired: &three,
			Users:          []string{"bob", "alice"},
			Agents:         []string{"bot1"},
			Groups:         []string{"core"},
			Types:          []string{"code", "docs"},
		})
		if err := repo.UpsertRequirement(ctx, r); err != nil {
			t.Fatalf("upsert: %v", err)
		}
		if r.Updated != nil {
			t.Fatalf("fresh insert must not set updated, got %v", r.Updated)
		}
		got, err := repo.FindRequirements(ctx, models.RequirementFilter{ID: &r.ID})
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("want 1 requirement got %d", len(got))
		}
		g := got[0]
		if g.TaskID != "t1" || g.NumberRequired != 3 ||
			!reflect.DeepEqual(g.Users, []string{"bob", "alice"}) ||
			!reflect.DeepEqual(g.Agents, []string{"bot1"}) ||
			!reflect.DeepEqual(g.Groups, []string{"core"}) ||
			!reflect.DeepEqual(g.Types, []string{"code", "docs"}) {
			t.Fatalf("unexpected requirement: %+v", g)
		}
		if g.Created.Sub(r.Created).Abs() > time.Millisecond {
			t.Fatalf("created drifted: %v vs %v", g.Created, r.Created)
		}
	})

	t.Run("Upsert existing sets updated", func(t *testing.T) {
		if err := TruncateAll(ctx, pgC.Pool); err != nil {
			t.Fatalf("truncate: %v", err)
		}
		r := models.NewReviewRequirement("t1", models.RequirementParams{})
		if err := repo.UpsertRequirement(ctx, r); err != nil {
			t.Fatalf("upsert: %v", err)
		}
		r.NumberRequired = 1
		if err := repo.UpsertRequirement(ctx, r); err != nil {
			t.Fatalf("overwrite: %v", err)
		}
		if r.Updated == nil {
			t.Fatalf("overwrite must set updated")
		}
		got, err := repo.FindRequirements(ctx, models.RequirementFilter{TaskID: ptr("t1")})
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if len(got) != 1 || got[0].NumberRequired != 1 || got[0].Updated == nil {
			t.Fatalf("unexpected requirement: %+v", got)
		}
	})

	t.Run("Upsert existing keeps first created", func(t *testing.T) {
		if err := TruncateAll(ctx, pgC.Pool); err != nil {
			t.Fatalf("truncate: %v", err)
		}
		firstSaved := time.Now().Add(-48 * time.Hour)
		r := models.NewReviewRequirement("t1", models.RequirementParams{Created: &firstSaved})
		if err := repo.UpsertRequirement(ctx, r); err != nil {
			t.Fatalf("upsert: %v", err)
		}
		replacement, err := models.RehydrateReviewRequirement(models.ReviewRequirement{ID: r.ID, TaskID: "t1", NumberRequired: 3})
		if err != nil {
			t.Fatalf("rehydrate: %v", err)
		}
		if err := repo.UpsertRequirement(ctx, replacement); err != nil {
			t.Fatalf("overwrite: %v", err)
		}
		got, err := repo.FindRequirements(ctx, models.RequirementFilter{ID: &r.ID})
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if len(got) != 1 || got[0].Created.Sub(firstSaved).Abs() > time.Millisecond {
			t.Fatalf("created must survive overwrite: %+v", got)
		}
	})

	t.Run("Find filters combine", func(t *testing.T) {
		if err := TruncateAll(ctx, pgC.Pool); err != nil {
			t.Fatalf("truncate: %v", err)
		}
		one := 1
		for _, p := range []struct {
			task string
			n    *int
		}{{"t1", nil}, {"t1", &one}, {"t2", nil}} {
			if err := repo.UpsertRequirement(ctx, models.NewReviewRequirement(p.task, models.RequirementParams{NumberRequired: p.n})); err != nil {
				t.Fatalf("upsert: %v", err)
			}
		}
		all, err := repo.FindRequirements(ctx, models.RequirementFilter{})
		if err != nil || len(all) != 3 {
			t.Fatalf("find all: n=%d err=%v", len(all), err)
		}
		two := 2
		got, err := repo.FindRequirements(ctx, models.RequirementFilter{TaskID: ptr("t1"), NumberRequired: &two})
		if err != nil || len(got) != 1 {
			t.Fatalf("find t1/2: n=%d err=%v", len(got), err)
		}
	})

	t.Run("Find corrupt list column -> ErrCorruptRecord", func(t *testing.T) {
		if err := TruncateAll(ctx, pgC.Pool); err != nil {
			t.Fatalf("truncate: %v", err)
		}
		_, err := pgC.Pool.Exec(ctx, `INSERT INTO review_requirements (id, task_id, users, created) VALUES ('bad', 't1', 'not json', 0)`)
		if err != nil {
			t.Fatalf("insert: %v", err)
		}
		_, err = repo.FindRequirements(ctx, models.RequirementFilter{})
		if !errors.Is(err, utils.ErrCorruptRecord) {
			t.Fatalf("want ErrCorruptRecord got %v", err)
		}
	})

	t.Run("Delete never saved -> ErrNotFound", func(t *testing.T) {
		if err := TruncateAll(ctx, pgC.Pool); err != nil {
			t.Fatalf("truncate: %v", err)
		}
		err := repo.DeleteRequirement(ctx, "missing")
		if !errors.Is(err, utils.ErrNotFound) {
			t.Fatalf("want ErrNotFound got %v", err)
		}
	})
}

func ptr[T any](v T) *T { return &v }
