package api

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mailtm_client",
			Name:      "requests_total",
			Help:      "Requests sent to the mail.tm API by endpoint, method and status code.",
		},
		[]string{"endpoint", "method", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mailtm_client",
			Name:      "request_duration_seconds",
			Help:      "Round-trip latency of mail.tm API requests.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint", "method"},
	)
)

// observeRequest records one exchange. code is the status code, or "error"
// when no response was received.
func observeRequest(endpoint, method, code string, elapsed time.Duration) {
	requestsTotal.WithLabelValues(endpoint, method, code).Inc()
	requestDuration.WithLabelValues(endpoint, method).Observe(elapsed.Seconds())
}
