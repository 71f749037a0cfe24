package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder owns the workshop metrics, all labelled by exercise.
type Recorder struct {
	namespace string
	buckets   []float64
	registry  *prometheus.Registry

	runs     *prometheus.CounterVec
	failures *prometheus.CounterVec
	expanded *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewRecorder creates a Recorder on a private registry unless WithRegistry
// supplies one.
func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{
		namespace: "workshop",
		buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.registry == nil {
		r.registry = prometheus.NewRegistry()
	}

	auto := promauto.With(r.registry)
	r.runs = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Name:      "runs_total",
		Help:      "Total number of exercise runs",
	}, []string{"exercise"})
	r.failures = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Name:      "run_failures_total",
		Help:      "Total number of exercise runs that ended in an error",
	}, []string{"exercise"})
	r.expanded = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Name:      "expanded_nodes_total",
		Help:      "Search states expanded, candidates tested or iterations run",
	}, []string{"exercise"})
	r.duration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: r.namespace,
		Name:      "run_duration_seconds",
		Help:      "Wall time of the algorithm part of an exercise run",
		Buckets:   r.buckets,
	}, []string{"exercise"})

	return r
}

// ObserveRun records one finished run. expanded may be zero for exercises
// without a natural work unit.
func (r *Recorder) ObserveRun(exercise string, expanded int, elapsed time.Duration, err error) {
	r.runs.WithLabelValues(exercise).Inc()
	if err != nil {
		r.failures.WithLabelValues(exercise).Inc()
	}
	if expanded > 0 {
		r.expanded.WithLabelValues(exercise).Add(float64(expanded))
	}
	r.duration.WithLabelValues(exercise).Observe(elapsed.Seconds())
}

// Time runs fn and records it under exercise. fn returns its work count.
func (r *Recorder) Time(exercise string, fn func() (int, error)) error {
	start := time.Now()
	n, err := fn()
	r.ObserveRun(exercise, n, time.Since(start), err)
	return err
}

// Gatherer exposes the registry, mainly for tests and textfile export.
func (r *Recorder) Gatherer() prometheus.Gatherer { return r.registry }

// WriteTextfile dumps the registry in the node-exporter textfile format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailed, path, err)
	}
	return nil
}
