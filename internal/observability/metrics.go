package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for a run.
type Metrics struct {
	TrialsComputed prometheus.Counter

	// Chart metrics.
	ChartRenders        *prometheus.CounterVec // labels: outcome={success,error}
	ChartRenderDuration prometheus.Histogram
	ChartRequests       prometheus.Counter
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.TrialsComputed,
		m.ChartRenders,
		m.ChartRenderDuration,
		m.ChartRequests,
	)

	return m
}

// NewMetricsForTesting creates Metrics that are not registered anywhere, to
// avoid "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		TrialsComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rain_paradox",
			Name:      "trials_computed_total",
			Help:      "Total wetness trials evaluated.",
		}),
		ChartRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rain_paradox",
			Name:      "chart_renders_total",
			Help:      "Chart renders by outcome.",
		}, []string{"outcome"}),
		ChartRenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "rain_paradox",
			Name:      "chart_render_duration_seconds",
			Help:      "Time spent drawing and encoding a chart.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		ChartRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rain_paradox",
			Name:      "chart_requests_total",
			Help:      "Total chart downloads served over HTTP.",
		}),
	}
}
