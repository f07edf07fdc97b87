package metrics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexanderramin/hive/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMetrics_ObserveHTTP(t *testing.T) {
	m := New()
	m.ObserveHTTP("/api/tasks", "GET", 200, 15*time.Millisecond)
	m.ObserveHTTP("/api/tasks", "GET", 200, 5*time.Millisecond)
	m.ObserveHTTP("/api/plan", "POST", 401, time.Millisecond)

	body := scrape(t, m)
	assert.Contains(t, body, `hive_http_requests_total{method="GET",route="/api/tasks",status="200"} 2`)
	assert.Contains(t, body, `hive_http_requests_total{method="POST",route="/api/plan",status="401"} 1`)
	assert.Contains(t, body, `hive_http_request_duration_seconds_count{route="/api/tasks"} 2`)
}

func TestMetrics_CompletedSessions(t *testing.T) {
	m := New()
	ctx := context.Background()
	m.ObserveUseCase(ctx, service.UseCaseEvent{Name: "complete-session", Success: true, Fields: map[string]any{"nectar": 17}})
	m.ObserveUseCase(ctx, service.UseCaseEvent{Name: "complete-session", Success: true, Fields: map[string]any{"nectar": 10}})
	m.ObserveUseCase(ctx, service.UseCaseEvent{Name: "complete-session", Err: errors.New("boom")})

	body := scrape(t, m)
	assert.Contains(t, body, "hive_cells_completed_total 2")
	assert.Contains(t, body, "hive_nectar_awarded_total 27")
	assert.Contains(t, body, `hive_use_case_errors_total{use_case="complete-session"} 1`)
}

func TestMetrics_Plans(t *testing.T) {
	m := New()
	ctx := context.Background()
	m.ObserveUseCase(ctx, service.UseCaseEvent{Name: "plan-today", Success: true, Fields: map[string]any{"outcome": "planned", "entries": 6}})
	m.ObserveUseCase(ctx, service.UseCaseEvent{Name: "plan-today", Success: true, Fields: map[string]any{"outcome": "no_tasks", "entries": 0}})

	body := scrape(t, m)
	assert.Contains(t, body, `hive_plans_generated_total{outcome="planned"} 1`)
	assert.Contains(t, body, `hive_plans_generated_total{outcome="no_tasks"} 1`)
	assert.Contains(t, body, "hive_plan_entries_count 2")
	assert.Contains(t, body, "hive_plan_entries_sum 6")
}

func TestMetrics_IgnoresOtherUseCases(t *testing.T) {
	m := New()
	m.ObserveUseCase(context.Background(), service.UseCaseEvent{Name: "create-task", Success: true})

	body := scrape(t, m)
	assert.Contains(t, body, "hive_cells_completed_total 0")
}
