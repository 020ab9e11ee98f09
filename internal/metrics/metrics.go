// Package metrics exposes generation counters on a dedicated Prometheus
// registry. A nil *Recorder is valid and records nothing.
package metrics

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "orgsim"

// Recorder owns the simulator's collectors
type Recorder struct {
	registry  *prometheus.Registry
	entities  *prometheus.CounterVec
	fallbacks *prometheus.CounterVec
	runs      *prometheus.HistogramVec
}

// New creates a recorder with Go and process collectors registered
func New() *Recorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := &Recorder{
		registry: registry,
		entities: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entities_generated_total",
			Help:      "Entities written by the generators, by entity kind.",
		}, []string{"entity"}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "collaborator_fallbacks_total",
			Help:      "Times an external collaborator failed and the local fallback was used.",
		}, []string{"collaborator"}),
		runs: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of a full generation run.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 14),
		}, []string{"outcome"}),
	}
	registry.MustRegister(r.entities, r.fallbacks, r.runs)
	return r
}

// EntitiesGenerated adds n to the counter for entity
func (r *Recorder) EntitiesGenerated(entity string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.entities.WithLabelValues(entity).Add(float64(n))
}

// CollaboratorFallback counts one fallback for the named collaborator
func (r *Recorder) CollaboratorFallback(collaborator string) {
	if r == nil {
		return
	}
	r.fallbacks.WithLabelValues(collaborator).Inc()
}

// ObserveRun records a run's duration with outcome "success" or "failure"
func (r *Recorder) ObserveRun(seconds float64, err error) {
	if r == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	r.runs.WithLabelValues(outcome).Observe(seconds)
}

// Registry returns the underlying registry
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// Snapshot returns the current value of every simulator counter, keyed as
// "<name>.<label value>", e.g. "entities_generated.task"
func (r *Recorder) Snapshot() (map[string]float64, error) {
	values := map[string]float64{}
	if r == nil {
		return values, nil
	}
	families, err := r.registry.Gather()
	if err != nil {
		return nil, err
	}
	for _, family := range families {
		name, ok := strings.CutPrefix(family.GetName(), namespace+"_")
		if !ok || family.GetType() != dto.MetricType_COUNTER {
			continue
		}
		name = strings.TrimSuffix(name, "_total")
		for _, m := range family.GetMetric() {
			key := name
			for _, label := range m.GetLabel() {
				key += "." + label.GetValue()
			}
			values[key] = m.GetCounter().GetValue()
		}
	}
	return values, nil
}

// WriteToTextfile writes the registry to path in the text exposition format
func (r *Recorder) WriteToTextfile(path string) error {
	if r == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.registry)
}
