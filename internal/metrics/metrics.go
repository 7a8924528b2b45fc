package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds every collector the app exports. Each instance owns its
// registry, so tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests  *prometheus.CounterVec
	HTTPDuration  *prometheus.HistogramVec
	Registrations prometheus.Counter
	Logins        *prometheus.CounterVec
	NotesCreated  prometheus.Counter
	NotesUpdated  prometheus.Counter
	NotesDeleted  prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notebook_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "notebook_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		Registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "notebook_registrations_total",
			Help: "Total number of accounts created",
		}),
		Logins: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notebook_logins_total",
				Help: "Login attempts by result",
			},
			[]string{"result"},
		),
		NotesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "notebook_notes_created_total",
			Help: "Total number of notes created",
		}),
		NotesUpdated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "notebook_notes_updated_total",
			Help: "Total number of notes edited",
		}),
		NotesDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "notebook_notes_deleted_total",
			Help: "Total number of notes deleted",
		}),
	}

	m.registry.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		m.HTTPRequests,
		m.HTTPDuration,
		m.Registrations,
		m.Logins,
		m.NotesCreated,
		m.NotesUpdated,
		m.NotesDeleted,
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
