package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Query kinds and outcomes used as metric labels.
const (
	KindRoute   = "route"
	KindNearest = "nearest"

	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
	OutcomeEmpty       = "empty"
	OutcomeError       = "error"
)

// Metrics groups the Prometheus collectors a Planner reports to.
type Metrics struct {
	// Queries counts finished queries by kind and outcome.
	Queries *prometheus.CounterVec

	// Duration observes query wall time in seconds by kind, snapshot
	// fetch included.
	Duration *prometheus.HistogramVec

	// Stations is the size of the most recent snapshot by kind.
	Stations *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Queries: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "floorpath_queries_total",
				Help: "Total number of queries processed",
			},
			[]string{"kind", "outcome"},
		),
		Duration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "floorpath_query_duration_seconds",
				Help:    "Duration of queries in seconds",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"kind"},
		),
		Stations: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "floorpath_snapshot_stations",
				Help: "Number of stations in the last snapshot",
			},
			[]string{"kind"},
		),
	}
}

func (m *Metrics) observe(kind, outcome string, seconds float64, stations int) {
	if m == nil {
		return
	}
	m.Queries.WithLabelValues(kind, outcome).Inc()
	m.Duration.WithLabelValues(kind).Observe(seconds)
	if stations >= 0 {
		m.Stations.WithLabelValues(kind).Set(float64(stations))
	}
}
