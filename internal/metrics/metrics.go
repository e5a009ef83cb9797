// Package metrics exposes Prometheus instruments for list queries.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yourorg/inventory/internal/query"
)

const namespace = "inventory"

type Metrics struct {
	listDuration *prometheus.HistogramVec
	listResults  *prometheus.CounterVec
	ignored      *prometheus.CounterVec
	gatherer     prometheus.Gatherer
}

// New registers the instruments on reg.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		listDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "query",
			Name:      "list_duration_seconds",
			Help:      "Time spent serving list queries.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"entity", "op"}),
		listResults: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "query",
			Name:      "results_total",
			Help:      "Records returned by list queries.",
		}, []string{"entity"}),
		ignored: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "query",
			Name:      "ignored_params_total",
			Help:      "Query parameters dropped because the entity does not allow them.",
		}, []string{"entity", "kind"}),
		gatherer: reg,
	}
}

var _ query.Observer = (*Metrics)(nil)

func (m *Metrics) ObserveList(entity, op string, elapsed time.Duration, results int) {
	m.listDuration.WithLabelValues(entity, op).Observe(elapsed.Seconds())
	m.listResults.WithLabelValues(entity).Add(float64(results))
}

func (m *Metrics) ObserveIgnored(entity string, ignored []query.Ignored) {
	for _, ig := range ignored {
		m.ignored.WithLabelValues(entity, string(ig.Kind)).Inc()
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
