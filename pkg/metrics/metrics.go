package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics
type Metrics struct {
	// Note generation metrics
	NotesGenerated     *prometheus.CounterVec
	GenerationLatency  *prometheus.HistogramVec
	GenerationInFlight prometheus.Gauge

	// Form metrics
	FormUpdates *prometheus.CounterVec

	// Session store metrics
	SessionOperations *prometheus.CounterVec
	SessionLatency    *prometheus.HistogramVec
	SessionsCreated   prometheus.Counter
}

// NewMetrics creates and registers all application metrics with reg.
func NewMetrics(reg prometheus.Registerer, namespace, subsystem string) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		NotesGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "notes_generated_total",
			Help:      "Total number of note generation attempts",
		}, []string{"domain", "outcome"}),
		GenerationLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "note_generation_duration_seconds",
			Help:      "Time spent waiting for the note generator",
			Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 20, 40},
		}, []string{"domain"}),
		GenerationInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "note_generations_in_flight",
			Help:      "Current number of note generation calls",
		}),

		FormUpdates: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "form_updates_total",
			Help:      "Total number of form updates",
		}, []string{"domain", "operation", "status"}),

		SessionOperations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "session_store_operations_total",
			Help:      "Total number of session store operations",
		}, []string{"operation", "status"}),
		SessionLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "session_store_operation_duration_seconds",
			Help:      "Duration of session store operations",
			Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5},
		}, []string{"operation"}),
		SessionsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "sessions_created_total",
			Help:      "Number of sessions created since start",
		}),
	}
}

// New registers the metrics with the default Prometheus registry.
func New(namespace string) *Metrics {
	return NewMetrics(prometheus.DefaultRegisterer, namespace, "")
}

// Status labels an operation result.
func Status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
