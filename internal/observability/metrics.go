package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// flood-risk service.
type Metrics struct {
	// Lookup metrics, labeled by outcome: found, not_found, invalid_format.
	LookupsTotal *prometheus.CounterVec

	// Assessment pipeline metrics.
	AssessmentsTotal   prometheus.Counter
	AssessmentDuration prometheus.Histogram

	// Record store metrics.
	StoreRecords prometheus.Gauge
	StoreLoads   prometheus.Counter
	StoreReady   prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		LookupsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "floodrisk",
			Name:      "lookups_total",
			Help:      "Postal code lookups by outcome.",
		}, []string{"outcome"}),
		AssessmentsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "floodrisk",
			Name:      "assessments_total",
			Help:      "Total completed risk assessments.",
		}),
		AssessmentDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "floodrisk",
			Name:      "assessment_duration_seconds",
			Help:      "Duration of a complete lookup-generate-classify run.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
		StoreRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "floodrisk",
			Name:      "store_records",
			Help:      "Number of address records in the loaded store.",
		}),
		StoreLoads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "floodrisk",
			Name:      "store_loads_total",
			Help:      "Total store loads, including reloads after invalidation.",
		}),
		StoreReady: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "floodrisk",
			Name:      "store_ready",
			Help:      "1 when the record store is loaded, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.LookupsTotal,
		m.AssessmentsTotal,
		m.AssessmentDuration,
		m.StoreRecords,
		m.StoreLoads,
		m.StoreReady,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		LookupsTotal:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "floodrisk", Name: "lookups_total"}, []string{"outcome"}),
		AssessmentsTotal:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "floodrisk", Name: "assessments_total"}),
		AssessmentDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "floodrisk", Name: "assessment_duration_seconds"}),
		StoreRecords:       prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "floodrisk", Name: "store_records"}),
		StoreLoads:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "floodrisk", Name: "store_loads_total"}),
		StoreReady:         prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "floodrisk", Name: "store_ready"}),
	}
}
