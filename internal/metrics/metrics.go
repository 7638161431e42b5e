// Package metrics instruments dependency translation with Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder holds the translation collectors. A nil *Recorder records nothing.
type Recorder struct {
	dependencies *prometheus.CounterVec
	specs        *prometheus.CounterVec
	failures     *prometheus.CounterVec
	duration     prometheus.Histogram
}

// NewRecorder creates the collectors and registers them on reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		dependencies: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rosdep_translate_dependencies_total",
				Help: "Number of manifest dependencies translated, by bucket and whether the package map had an entry.",
			},
			[]string{"bucket", "mapping"},
		),
		specs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rosdep_translate_specs_total",
				Help: "Number of conda package specs produced, by bucket.",
			},
			[]string{"bucket"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rosdep_translate_failures_total",
				Help: "Number of failed translations, by reason.",
			},
			[]string{"reason"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "rosdep_translate_duration_seconds",
				Help:    "Time taken to translate a manifest.",
				Buckets: prometheus.DefBuckets,
			},
		),
	}

	for _, c := range []prometheus.Collector{r.dependencies, r.specs, r.failures, r.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Recorder) ObserveDependency(bucket string, mapped bool, specs int) {
	if r == nil {
		return
	}
	mapping := "unmapped"
	if mapped {
		mapping = "mapped"
	}
	r.dependencies.WithLabelValues(bucket, mapping).Inc()
	r.specs.WithLabelValues(bucket).Add(float64(specs))
}

func (r *Recorder) ObserveFailure(reason string) {
	if r == nil {
		return
	}
	r.failures.WithLabelValues(reason).Inc()
}

func (r *Recorder) ObserveDuration(d time.Duration) {
	if r == nil {
		return
	}
	r.duration.Observe(d.Seconds())
}
