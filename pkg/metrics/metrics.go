// Package metrics exposes Prometheus collectors for chart rendering, the
// HTTP surface and provider traffic.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "f1charts_render_duration_seconds",
			Help:    "Time spent fetching data and rendering a chart",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"chart"},
	)

	RenderFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "f1charts_render_failures_total",
			Help: "Charts that could not be rendered",
		},
		[]string{"chart"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "f1charts_http_requests_total",
			Help: "HTTP requests by route, method and status code",
		},
		[]string{"route", "method", "code"},
	)

	ProviderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "f1charts_provider_requests_total",
			Help: "Provider responses by endpoint and whether they came from the network or the cache",
		},
		[]string{"endpoint", "source"},
	)
)

// ObserveRender records the outcome of one chart render.
func ObserveRender(chart string, started time.Time, err error) {
	RenderDuration.WithLabelValues(chart).Observe(time.Since(started).Seconds())
	if err != nil {
		RenderFailures.WithLabelValues(chart).Inc()
	}
}
