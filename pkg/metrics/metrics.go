// Package metrics holds shared settings of the Prometheus metrics exposed by
// the service.
package metrics

// Namespace prefixes every metric registered by the service.
const Namespace = "backoffice"

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals
