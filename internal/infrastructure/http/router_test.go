package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taskara-review-service/internal/domain/models"
	"taskara-review-service/internal/infrastructure/config"
	apphttp "taskara-review-service/internal/infrastructure/http"
	"taskara-review-service/internal/infrastructure/logger"
	"taskara-review-service/internal/utils"
	"taskara-review-service/mocks"
)

type fixture struct {
	pending      *mocks.PendingReviewerInputPort
	requirements *mocks.ReviewRequirementInputPort
	handler      http.Handler
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		pending:      mocks.NewPendingReviewerInputPort(t),
		requirements: mocks.NewReviewRequirementInputPort(t),
	}
	r := apphttp.NewRouter(logger.New("test"), f.pending, f.requirements)
	r.Setup(&config.Config{
		HTTPServer: config.HTTPServer{RequestTimeout: time.Second},
		Metrics:    config.Metrics{Enabled: true, Path: "/metrics"},
	})
	f.handler = r.GetRouter()
	return f
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error.Code
}

func TestGetPendingReviewers(t *testing.T) {
	f := newFixture(t)
	f.pending.EXPECT().PendingReviewers(mock.Anything, "t1").
		Return(&models.PendingReviewers{TaskID: "t1", Users: []string{}, Agents: []string{"bot1"}}, nil)

	rec := f.do(http.MethodGet, "/tasks/t1/pending_reviewers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"task_id":"t1","users":[],"agents":["bot1"]}`, rec.Body.String())
}

func TestGetPendingReviewers_StorageUnavailable(t *testing.T) {
	f := newFixture(t)
	f.pending.EXPECT().PendingReviewers(mock.Anything, "t1").
		Return(nil, utils.StorageUnavailable(errors.New("connection refused")))

	rec := f.do(http.MethodGet, "/tasks/t1/pending_reviewers", "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "UNAVAILABLE", errorCode(t, rec))
}

func TestAddPendingReviewer(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(f *fixture)
		wantStatus int
		wantBody   string
	}{
		{
			name: "user",
			body: `{"user":"alice"}`,
			setup: func(f *fixture) {
				f.pending.EXPECT().AddPendingReviewer(mock.Anything, "t1", models.UserReviewer("alice")).Return(nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"task_id":"t1","reviewer":{"user":"alice"}}`,
		},
		{
			name: "agent",
			body: `{"agent":"bot1"}`,
			setup: func(f *fixture) {
				f.pending.EXPECT().AddPendingReviewer(mock.Anything, "t1", models.AgentReviewer("bot1")).Return(nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"task_id":"t1","reviewer":{"agent":"bot1"}}`,
		},
		{name: "no identity", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "both identities", body: `{"user":"alice","agent":"bot1"}`, wantStatus: http.StatusBadRequest},
		{name: "bad json", body: `{`, wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}
			rec := f.do(http.MethodPost, "/tasks/t1/pending_reviewers", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			} else {
				assert.Equal(t, "BAD_REQUEST", errorCode(t, rec))
			}
		})
	}
}

func TestRemovePendingReviewer(t *testing.T) {
	t.Run("first match", func(t *testing.T) {
		f := newFixture(t)
		f.pending.EXPECT().RemovePendingReviewer(mock.Anything, "t1", models.UserReviewer("alice")).Return(nil)

		rec := f.do(http.MethodDelete, "/tasks/t1/pending_reviewers?user=alice", "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("all matches", func(t *testing.T) {
		f := newFixture(t)
		f.pending.EXPECT().ClearPendingReviewer(mock.Anything, "t1", models.AgentReviewer("bot1")).Return(3, nil)

		rec := f.do(http.MethodDelete, "/tasks/t1/pending_reviewers?agent=bot1&all=true", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"task_id":"t1","removed":3}`, rec.Body.String())
	})

	t.Run("bad all flag", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(http.MethodDelete, "/tasks/t1/pending_reviewers?user=alice&all=maybe", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no identity", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(http.MethodDelete, "/tasks/t1/pending_reviewers", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("user and agent together", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(http.MethodDelete, "/tasks/t1/pending_reviewers?user=alice&agent=bot1", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "BAD_REQUEST", errorCode(t, rec))
	})
}

func TestAssign(t *testing.T) {
	t.Run("assigns from the task's requirement", func(t *testing.T) {
		f := newFixture(t)
		f.requirements.EXPECT().GetRequirement(mock.Anything, "r1").
			Return(&models.ReviewRequirement{ID: "r1", TaskID: "t1"}, nil)
		f.pending.EXPECT().AssignFromRequirement(mock.Anything, "r1").
			Return([]models.Reviewer{models.UserReviewer("bob"), models.AgentReviewer("bot1")}, nil)

		rec := f.do(http.MethodPost, "/tasks/t1/pending_reviewers/assign", `{"requirement_id":"r1"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"task_id":"t1","assigned":[{"user":"bob"},{"agent":"bot1"}]}`, rec.Body.String())
	})

	t.Run("requirement of another task", func(t *testing.T) {
		f := newFixture(t)
		f.requirements.EXPECT().GetRequirement(mock.Anything, "r1").
			Return(&models.ReviewRequirement{ID: "r1", TaskID: "t2"}, nil)

		rec := f.do(http.MethodPost, "/tasks/t1/pending_reviewers/assign", `{"requirement_id":"r1"}`)
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "REQUIREMENT_NOT_FOUND", errorCode(t, rec))
	})

	t.Run("unknown requirement", func(t *testing.T) {
		f := newFixture(t)
		f.requirements.EXPECT().GetRequirement(mock.Anything, "r9").Return(nil, utils.ErrRequirementNotFound)

		rec := f.do(http.MethodPost, "/tasks/t1/pending_reviewers/assign", `{"requirement_id":"r9"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing requirement id", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(http.MethodPost, "/tasks/t1/pending_reviewers/assign", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReviewStatus(t *testing.T) {
	f := newFixture(t)
	f.pending.EXPECT().ReviewStatus(mock.Anything, "t1").Return(&models.ReviewStatus{
		TaskID:         "t1",
		Users:          []string{"alice"},
		Agents:         []string{},
		Pending:        1,
		NumberRequired: 2,
	}, nil)

	rec := f.do(http.MethodGet, "/tasks/t1/review_status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"task_id":"t1","users":["alice"],"agents":[],"pending":1,"number_required":2,"complete":false}`, rec.Body.String())
}

func TestPendingReviews(t *testing.T) {
	f := newFixture(t)
	f.pending.EXPECT().PendingReviews(mock.Anything, models.PendingReviewFilter{UserID: "alice", AgentID: "bot1"}).
		Return(&models.PendingReviews{Tasks: []string{"t1"}}, nil)

	rec := f.do(http.MethodGet, "/pending_reviews?user=alice&agent=bot1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"tasks":["t1"]}`, rec.Body.String())
}

func TestCreateRequirement(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("created", func(t *testing.T) {
		f := newFixture(t)
		f.requirements.EXPECT().
			CreateRequirement(mock.Anything, "t1", mock.MatchedBy(func(p models.RequirementParams) bool {
				return p.NumberRequired != nil && *p.NumberRequired == 1 && len(p.Users) == 1 && p.Users[0] == "alice"
			})).
			Return(&models.ReviewRequirement{
				ID:             "r1",
				TaskID:         "t1",
				NumberRequired: 1,
				Users:          []string{"alice"},
				Agents:         []string{},
				Groups:         []string{},
				Types:          []string{},
				Created:        created,
			}, nil)

		rec := f.do(http.MethodPost, "/review_requirements", `{"task_id":"t1","number_required":1,"users":["alice"]}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"id":"r1","task_id":"t1","users":["alice"],"agents":[],"groups":[],"types":[],"number_required":1,"created":"2024-05-01T12:00:00Z"}`, rec.Body.String())
	})

	t.Run("negative number required", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(http.MethodPost, "/review_requirements", `{"task_id":"t1","number_required":-1}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing task", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(http.MethodPost, "/review_requirements", `{"users":["alice"]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestFindRequirements(t *testing.T) {
	t.Run("filters are passed through", func(t *testing.T) {
		f := newFixture(t)
		f.requirements.EXPECT().
			FindRequirements(mock.Anything, mock.MatchedBy(func(fl models.RequirementFilter) bool {
				return fl.ID == nil && fl.TaskID != nil && *fl.TaskID == "t1" && fl.NumberRequired != nil && *fl.NumberRequired == 2
			})).
			Return([]*models.ReviewRequirement{}, nil)

		rec := f.do(http.MethodGet, "/review_requirements?task_id=t1&number_required=2", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"requirements":[]}`, rec.Body.String())
	})

	t.Run("number required not an integer", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(http.MethodGet, "/review_requirements?number_required=two", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("corrupt record is internal", func(t *testing.T) {
		f := newFixture(t)
		f.requirements.EXPECT().FindRequirements(mock.Anything, models.RequirementFilter{}).
			Return(nil, utils.ErrCorruptRecord)

		rec := f.do(http.MethodGet, "/review_requirements", "")
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "INTERNAL", errorCode(t, rec))
	})
}

func TestSaveRequirement(t *testing.T) {
	t.Run("saved under the path id", func(t *testing.T) {
		f := newFixture(t)
		f.requirements.EXPECT().
			SaveRequirement(mock.Anything, mock.MatchedBy(func(r *models.ReviewRequirement) bool {
				return r.ID == "r1" && r.TaskID == "t1" && r.NumberRequired == 3
			})).
			Return(nil)

		rec := f.do(http.MethodPut, "/review_requirements/r1", `{"task_id":"t1","number_required":3}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "r1", body["id"])
		assert.Equal(t, []any{}, body["users"])
	})

	t.Run("absent number required falls back to the default", func(t *testing.T) {
		f := newFixture(t)
		f.requirements.EXPECT().
			SaveRequirement(mock.Anything, mock.MatchedBy(func(r *models.ReviewRequirement) bool {
				return r.ID == "r1" && r.NumberRequired == models.DefaultNumberRequired
			})).
			Return(nil)

		rec := f.do(http.MethodPut, "/review_requirements/r1", `{"task_id":"t1","users":["alice"]}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, float64(models.DefaultNumberRequired), body["number_required"])
	})

	t.Run("negative number required", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(http.MethodPut, "/review_requirements/r1", `{"task_id":"t1","number_required":-1}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("body id differs from path", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(http.MethodPut, "/review_requirements/r1", `{"id":"r2","task_id":"t1"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetAndDeleteRequirement(t *testing.T) {
	f := newFixture(t)
	f.requirements.EXPECT().GetRequirement(mock.Anything, "missing").Return(nil, utils.ErrRequirementNotFound)
	f.requirements.EXPECT().DeleteRequirement(mock.Anything, "missing").Return(utils.ErrRequirementNotFound)
	f.requirements.EXPECT().DeleteRequirement(mock.Anything, "r1").Return(nil)

	rec := f.do(http.MethodGet, "/review_requirements/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(http.MethodDelete, "/review_requirements/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(http.MethodDelete, "/review_requirements/r1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t)
	f.pending.EXPECT().PendingReviewers(mock.Anything, "t1").
		Return(&models.PendingReviewers{TaskID: "t1", Users: []string{}, Agents: []string{}}, nil)

	f.do(http.MethodGet, "/tasks/t1/pending_reviewers", "")

	rec := f.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "review_http_requests_total")
}
