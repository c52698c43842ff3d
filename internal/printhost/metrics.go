package printhost

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the print host's collectors, registered on their own
// registry so tests can build as many servers as they like.
type Metrics struct {
	PrintJobs       *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

func NewMetrics(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		PrintJobs: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wallplanner_print_jobs_total",
				Help: "Print pages served, by mode and settings source",
			},
			[]string{"mode", "source"},
		),
		RequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wallplanner_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
			},
			[]string{"method", "route", "status"},
		),
		gatherer: reg,
	}
}

func (m *Metrics) RecordPrintJob(mode string, source Source) {
	m.PrintJobs.WithLabelValues(mode, string(source)).Inc()
}

func (m *Metrics) RecordRequest(method, route, status string, d time.Duration) {
	m.RequestDuration.WithLabelValues(method, route, status).Observe(d.Seconds())
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
