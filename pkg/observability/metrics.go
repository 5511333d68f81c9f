package observability

import (
	"context"
	"net/http"
	"strconv"

	"github.com/aretw0/taskboard/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics records dispatch activity on its own registry.
type Metrics struct {
	registry   *prometheus.Registry
	dispatches *prometheus.CounterVec
	rejections *prometheus.CounterVec
	lists      prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		dispatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "taskboard_dispatch_total",
				Help: "Total number of dispatched actions",
			},
			[]string{"action", "changed"},
		),
		rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "taskboard_dispatch_rejected_total",
				Help: "Total number of actions rejected by the reducer",
			},
			[]string{"action"},
		),
		lists: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "taskboard_lists",
			Help: "Number of lists on the current board",
		}),
	}
	m.registry.MustRegister(m.dispatches, m.rejections, m.lists)
	return m
}

// Registry exposes the underlying registry, e.g. to add process collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Observe seeds the gauges from a board, typically the initial one.
func (m *Metrics) Observe(b *domain.Board) {
	if b != nil {
		m.lists.Set(float64(len(b.Lists)))
	}
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnDispatch: func(_ context.Context, e *domain.DispatchEvent) {
			m.dispatches.WithLabelValues(string(e.Action), strconv.FormatBool(e.Changed)).Inc()
			m.lists.Set(float64(e.Lists))
		},
		OnReject: func(_ context.Context, e *domain.DispatchEvent) {
			m.rejections.WithLabelValues(string(e.Action)).Inc()
		},
	}
}
