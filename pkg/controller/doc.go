// Package controller contains the net/http middlewares and helper handlers
// that wrap every route of the API server.
//
// Middlewares:
//   - WithCORS: echoes the request Origin (credentials allowed) or answers "*",
//     exposes X-Request-Id and short-circuits OPTIONS preflights.
//   - WithLogger: attaches a request-scoped logger carrying the request ID and
//     writes one access log line per request, leveled by status.
//   - WithMetrics: observes request latency in a Prometheus histogram.
//
// Helpers:
//   - RequestID: returns the request ID stored by WithLogger.
//   - PprofMux: serves net/http/pprof under a mount prefix.
package controller
