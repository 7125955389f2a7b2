package controller

import (
	"net/http"
	"strconv"
	"time"

	"backoffice/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

// WithMetrics returns a middleware that observes the latency of every request
// in a histogram labelled by method and status code. The histogram is
// registered on reg.
func WithMetrics(reg prometheus.Registerer) func(http.Handler) http.Handler {
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metrics.Namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Latency of HTTP requests by method and status code.",
		Buckets:   metrics.DefaultBuckets,
	}, []string{"method", "code"})
	reg.MustRegister(duration)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			duration.WithLabelValues(r.Method, strconv.Itoa(rec.status)).Observe(time.Since(start).Seconds())
		})
	}
}
