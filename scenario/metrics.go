package scenario

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of a Runner.
type Metrics struct {
	searches *prometheus.CounterVec
	steps    *prometheus.HistogramVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the runner collectors on reg:
//
//	pathfinder_searches_total{algorithm,result}   result: found | not_found | error
//	pathfinder_search_steps{algorithm}             expansions per search
//	pathfinder_search_duration_seconds{algorithm}  wall time per search
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pathfinder_searches_total",
			Help: "Searches by algorithm and outcome",
		}, []string{"algorithm", "result"}),
		steps: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pathfinder_search_steps",
			Help:    "Expanded nodes per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"algorithm"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pathfinder_search_duration_seconds",
			Help:    "Search wall time",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"algorithm"}),
	}
}

func (m *Metrics) observe(r Report) {
	if m == nil {
		return
	}
	alg := r.Algorithm.String()
	result := "not_found"
	switch {
	case r.Err != nil:
		result = "error"
	case r.Found:
		result = "found"
	}
	m.searches.WithLabelValues(alg, result).Inc()
	m.steps.WithLabelValues(alg).Observe(float64(r.Steps))
	m.duration.WithLabelValues(alg).Observe(r.Duration.Seconds())
}
