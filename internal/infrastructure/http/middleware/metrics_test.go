package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Middleware_CountsByRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/tasks/{task_id}/review_status", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, task := range []string{"t1", "t2"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tasks/"+task+"/review_status", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	got := testutil.ToFloat64(m.TotalRequests.WithLabelValues("/tasks/{task_id}/review_status", http.MethodGet, "200"))
	assert.Equal(t, float64(2), got)
}

func TestNewMetrics_NilRegistry(t *testing.T) {
	m := NewMetrics(nil)
	require.NotNil(t, m.TotalRequests)
	require.NotNil(t, m.RequestDuration)
}
