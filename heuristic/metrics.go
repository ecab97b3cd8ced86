package heuristic

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "mkp"

// Metrics collects per heuristic statistics. A nil *Metrics records nothing.
type Metrics struct {
	Evaluations  *prometheus.CounterVec
	Improvements *prometheus.CounterVec
	Duration     *prometheus.HistogramVec
	BestProfit   *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "candidates_evaluated_total",
			Help:      "Item orders packed by the admission kernel.",
		}, []string{"heuristic"}),
		Improvements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "improvements_total",
			Help:      "Improver passes that found a strictly better solution.",
		}, []string{"heuristic"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "heuristic_duration_seconds",
			Help:      "Wall-clock time of one heuristic run.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 9),
		}, []string{"heuristic"}),
		BestProfit: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "best_profit",
			Help:      "Total profit of the last solution returned by a heuristic.",
		}, []string{"heuristic"}),
	}
	if reg != nil {
		reg.MustRegister(m.Evaluations, m.Improvements, m.Duration, m.BestProfit)
	}
	return m
}

func (m *Metrics) observe(heuristic string, evaluated int, d time.Duration, profit int) {
	if m == nil {
		return
	}
	m.Evaluations.WithLabelValues(heuristic).Add(float64(evaluated))
	m.Duration.WithLabelValues(heuristic).Observe(d.Seconds())
	m.BestProfit.WithLabelValues(heuristic).Set(float64(profit))
}

func (m *Metrics) improved(heuristic string) {
	if m == nil {
		return
	}
	m.Improvements.WithLabelValues(heuristic).Inc()
}
