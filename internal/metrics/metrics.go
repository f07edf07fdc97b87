// Package metrics exposes Prometheus collectors for the HTTP layer and the
// focus loop.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alexanderramin/hive/internal/service"
)

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	HTTPRequests   *prometheus.CounterVec
	HTTPDuration   *prometheus.HistogramVec
	CellsCompleted prometheus.Counter
	NectarAwarded  prometheus.Counter
	PlansGenerated *prometheus.CounterVec
	PlanEntries    prometheus.Histogram
	UseCaseErrors  *prometheus.CounterVec

	registry *prometheus.Registry
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hive_http_requests_total",
				Help: "HTTP requests by route, method and status.",
			},
			[]string{"route", "method", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hive_http_request_duration_seconds",
				Help:    "HTTP request latency by route.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		CellsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hive_cells_completed_total",
			Help: "Focus cells completed.",
		}),
		NectarAwarded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hive_nectar_awarded_total",
			Help: "Nectar paid out for completed cells.",
		}),
		PlansGenerated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hive_plans_generated_total",
				Help: "Day plans generated by outcome.",
			},
			[]string{"outcome"},
		),
		PlanEntries: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "hive_plan_entries",
			Help:    "Entries per generated day plan.",
			Buckets: prometheus.LinearBuckets(0, 4, 8),
		}),
		UseCaseErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hive_use_case_errors_total",
				Help: "Failed service use cases by name.",
			},
			[]string{"use_case"},
		),
		registry: reg,
	}

	reg.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.CellsCompleted,
		m.NectarAwarded,
		m.PlansGenerated,
		m.PlanEntries,
		m.UseCaseErrors,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// ObserveUseCase turns service events into domain counters. It satisfies
// service.UseCaseObserver.
func (m *Metrics) ObserveUseCase(_ context.Context, ev service.UseCaseEvent) {
	if !ev.Success {
		m.UseCaseErrors.WithLabelValues(ev.Name).Inc()
		return
	}
	switch ev.Name {
	case "complete-session":
		m.CellsCompleted.Inc()
		if n, ok := ev.Fields["nectar"].(int); ok {
			m.NectarAwarded.Add(float64(n))
		}
	case "plan-today":
		outcome, _ := ev.Fields["outcome"].(string)
		if outcome == "" {
			outcome = "planned"
		}
		m.PlansGenerated.WithLabelValues(outcome).Inc()
		if n, ok := ev.Fields["entries"].(int); ok {
			m.PlanEntries.Observe(float64(n))
		}
	}
}

var _ service.UseCaseObserver = (*Metrics)(nil)
