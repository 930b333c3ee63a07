package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the gateway.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)

	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// UpstreamRequests counts PMS calls by endpoint and outcome.
	UpstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "pms_upstream_requests_total", Help: "Upstream PMS requests by endpoint and outcome."},
		[]string{"endpoint", "outcome"},
	)

	// UpstreamDuration tracks PMS call latencies in seconds.
	UpstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "pms_upstream_duration_seconds", Help: "Upstream PMS call duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"endpoint"},
	)
)

var regOnce sync.Once

// RegisterDefault registers all collectors on the gateway registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(UpstreamRequests)
		Registry.MustRegister(UpstreamDuration)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// ObserveUpstream records one upstream PMS call.
func ObserveUpstream(endpoint, outcome string, seconds float64) {
	UpstreamRequests.WithLabelValues(endpoint, outcome).Inc()
	UpstreamDuration.WithLabelValues(endpoint).Observe(seconds)
}
