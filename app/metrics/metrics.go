// Package metrics exposes Prometheus instrumentation for feed fetches.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	Namespace = "sources"
	Subsystem = "feed"
)

type Metrics struct {
	FetchesTotal         *prometheus.CounterVec
	FetchDurationSeconds *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// NewRegistry returns a registry preloaded with the Go runtime and process
// collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		FetchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: Subsystem,
				Name:      "fetches_total",
				Help:      "Total number of feed fetches by outcome",
			},
			[]string{"feed", "status"},
		),
		FetchDurationSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Subsystem: Subsystem,
				Name:      "fetch_duration_seconds",
				Help:      "Duration of feed fetch and parse in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
			},
			[]string{"feed"},
		),
		gatherer: reg,
	}
}

// ObserveFetch implements feed.Observer.
func (m *Metrics) ObserveFetch(feedURL string, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "failure"
	}

	m.FetchesTotal.WithLabelValues(feedURL, status).Inc()
	m.FetchDurationSeconds.WithLabelValues(feedURL).Observe(duration.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
