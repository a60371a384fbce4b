package metrics

import (
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"
)

const namespace = "fixcalc"

// Recorder collects bench results in a private Prometheus registry.
type Recorder struct {
	registry *prometheus.Registry
	trials   *prometheus.CounterVec
	duration *prometheus.HistogramVec
	heap     prometheus.Gauge
}

// NewRecorder creates a Recorder labelled with the scalar width.
func NewRecorder(width string) *Recorder {
	labels := prometheus.Labels{"width": width}
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		trials: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "check_trials_total",
			Help:        "Trials run per check, by outcome.",
			ConstLabels: labels,
		}, []string{"check", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "check_duration_seconds",
			Help:        "Wall time of one check across all its trials.",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"check"}),
		heap: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "heap_alloc_bytes",
			Help:        "Heap bytes in use after the last bench run.",
			ConstLabels: labels,
		}),
	}
	r.registry.MustRegister(r.trials, r.duration, r.heap)
	return r
}

// ObserveCheck records the outcome of one check.
func (r *Recorder) ObserveCheck(name string, trials, failures int, d time.Duration) {
	r.trials.WithLabelValues(name, "ok").Add(float64(trials - failures))
	r.trials.WithLabelValues(name, "mismatch").Add(float64(failures))
	r.duration.WithLabelValues(name).Observe(d.Seconds())
}

// ObserveMemory records a memory snapshot.
func (r *Recorder) ObserveMemory(s MemorySnapshot) {
	r.heap.Set(float64(s.HeapAlloc))
}

// WriteText writes every collected metric in the Prometheus text format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

// Handler serves the registry over HTTP.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
