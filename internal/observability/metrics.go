package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the load pipeline.
type Metrics struct {
	LoadsTotal    prometheus.Counter
	LoadFailures  prometheus.Counter
	LoadDuration  prometheus.Histogram
	PipelineReady prometheus.Gauge

	// Result cache metrics.
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter

	// Data quality metrics, labelled per dataset (and column where it matters).
	RowsLoaded       *prometheus.GaugeVec   // labels: dataset
	CoercionFailures *prometheus.CounterVec // labels: dataset, column
	UnmappedNames    *prometheus.CounterVec // labels: dataset
	MissingNames     *prometheus.CounterVec // labels: dataset
}

// NewMetrics creates and registers all pipeline metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		LoadsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "forest_etl",
			Name:      "loads_total",
			Help:      "Total full dataset loads executed (cache misses included, hits excluded).",
		}),
		LoadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "forest_etl",
			Name:      "load_failures_total",
			Help:      "Total loads aborted because a source was unavailable.",
		}),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "forest_etl",
			Name:      "load_duration_seconds",
			Help:      "Duration of a complete load-clean-merge cycle.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5},
		}),
		PipelineReady: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "forest_etl",
			Name:      "pipeline_ready",
			Help:      "1 once at least one load has completed successfully.",
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "forest_etl",
			Name:      "result_cache_hits_total",
			Help:      "Loads served from the fingerprint-keyed result cache.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "forest_etl",
			Name:      "result_cache_misses_total",
			Help:      "Loads that had to recompute because the cache was cold or stale.",
		}),
		RowsLoaded: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "forest_etl",
			Name:      "rows_loaded",
			Help:      "Rows in each cleaned table after the most recent load.",
		}, []string{"dataset"}),
		CoercionFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "forest_etl",
			Name:      "coercion_failures_total",
			Help:      "Cells that failed numeric coercion and fell back to zero.",
		}, []string{"dataset", "column"}),
		UnmappedNames: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "forest_etl",
			Name:      "unmapped_names_total",
			Help:      "Region names that fell through the alias table to plain title-casing.",
		}, []string{"dataset"}),
		MissingNames: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "forest_etl",
			Name:      "missing_names_total",
			Help:      "Rows whose name cell was empty and mapped to the Unknown sentinel.",
		}, []string{"dataset"}),
	}

	prometheus.MustRegister(
		m.LoadsTotal,
		m.LoadFailures,
		m.LoadDuration,
		m.PipelineReady,
		m.CacheHits,
		m.CacheMisses,
		m.RowsLoaded,
		m.CoercionFailures,
		m.UnmappedNames,
		m.MissingNames,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		LoadsTotal:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "forest_etl", Name: "loads_total"}),
		LoadFailures:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "forest_etl", Name: "load_failures_total"}),
		LoadDuration:     prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "forest_etl", Name: "load_duration_seconds"}),
		PipelineReady:    prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "forest_etl", Name: "pipeline_ready"}),
		CacheHits:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "forest_etl", Name: "result_cache_hits_total"}),
		CacheMisses:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "forest_etl", Name: "result_cache_misses_total"}),
		RowsLoaded:       prometheus.NewGaugeVec(prometheus.GaugeOpts{Namespace: "forest_etl", Name: "rows_loaded"}, []string{"dataset"}),
		CoercionFailures: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "forest_etl", Name: "coercion_failures_total"}, []string{"dataset", "column"}),
		UnmappedNames:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "forest_etl", Name: "unmapped_names_total"}, []string{"dataset"}),
		MissingNames:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "forest_etl", Name: "missing_names_total"}, []string{"dataset"}),
	}
}
