package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder exposes upstream and computation metrics through Prometheus.
// It satisfies quote.Recorder.
type Recorder struct {
	attempts     *prometheus.CounterVec
	calls        *prometheus.CounterVec
	callLatency  *prometheus.HistogramVec
	computations *prometheus.CounterVec
}

// New registers the collectors on reg. Collectors already registered under
// the same names are reused, so calling New twice on one registry is safe.
func New(reg prometheus.Registerer) *Recorder {
	return &Recorder{
		attempts: register(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricestats_upstream_attempts_total",
				Help: "Upstream HTTP attempts by outcome",
			},
			[]string{"outcome"},
		)),
		calls: register(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricestats_upstream_calls_total",
				Help: "Logical upstream calls by final result",
			},
			[]string{"result"},
		)),
		callLatency: register(reg, prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pricestats_upstream_call_duration_seconds",
				Help:    "Duration of logical upstream calls including retries",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
			},
			[]string{"result"},
		)),
		computations: register(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricestats_computations_total",
				Help: "Statistics requests by kind and status",
			},
			[]string{"kind", "status"},
		)),
	}
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

// RecordAttempt counts one upstream attempt.
func (r *Recorder) RecordAttempt(outcome string) {
	r.attempts.WithLabelValues(outcome).Inc()
}

// RecordCall records the final result and duration of a logical call.
func (r *Recorder) RecordCall(result string, seconds float64) {
	r.calls.WithLabelValues(result).Inc()
	r.callLatency.WithLabelValues(result).Observe(seconds)
}

// RecordComputation counts a covariance or volatility request.
func (r *Recorder) RecordComputation(kind string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.computations.WithLabelValues(kind, status).Inc()
}
