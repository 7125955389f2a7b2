// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware of the backoffice service.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"backoffice/internal/api/handler/v1handler"
	"backoffice/internal/config"
	"backoffice/pkg/controller"
	"backoffice/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

const serviceName = "backoffice"

// timeoutBody is written by http.TimeoutHandler when a request exceeds RequestTimeout.
const timeoutBody = `{"code":"TIMEOUT","message":"request timed out"}`

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server.
// It is typically created from a config.Config via NewOptions.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	// Event streams clear their own write deadline.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout bounds every v1 request except event streams.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
	}
}

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the services served by the API.
type Deps struct {
	v1handler.Deps

	// Storage backs the /healthz readiness check. Nil reports ready.
	Storage Pinger
}

// healthz answers 200 when the store is reachable and 503 otherwise.
func healthz(storage Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if storage != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := storage.Ping(ctx); err != nil {
				logger.Warn(ctx, "health check failed", zap.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"status":"unavailable"}`))

				return
			}
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}

// NewHandler builds the root http.Handler of the service:
// - Prometheus metrics endpoint (MetricsPath) on a dedicated registry
// - OpenTelemetry meter provider exporting into the same registry
// - v1 API routes on gin, with a request timeout everywhere but /v1/events/
// - embedded OpenAPI v1 document and Swagger UI
// - pprof endpoints for profiling
// - /healthz readiness check pinging the store
// The result is wrapped with CORS, logging and request metrics middlewares.
func NewHandler(deps Deps, opts Options) (http.Handler, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	mux := http.NewServeMux()

	// prometheus metrics server
	mux.Handle(opts.MetricsPath, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	// otel
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)))

	// readiness
	mux.Handle("/healthz", healthz(deps.Storage))

	// v1 specs file
	mux.HandleFunc("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"Backoffice",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// v1 api
	engine := gin.New()
	engine.Use(gin.Recovery(), otelgin.Middleware(serviceName))
	engine.NoRoute(v1handler.NoRoute)
	v1handler.New(deps.Deps).Register(engine.Group("/v1"))

	if opts.RequestTimeout > 0 {
		mux.Handle("/v1/", http.TimeoutHandler(engine, opts.RequestTimeout, timeoutBody))
	} else {
		mux.Handle("/v1/", engine)
	}
	// streams stay open, http.TimeoutHandler can neither flush nor outlive its deadline
	mux.Handle("/v1/events/", engine)

	// pprof
	mux.Handle("/debug/pprof/", controller.PprofMux("/debug/pprof/"))

	// cors
	handler := controller.WithCORS(mux)

	// logger
	handler = controller.WithLogger(handler)

	// request metrics
	handler = controller.WithMetrics(reg)(handler)

	return handler, nil
}

// NewServer wires up and returns a configured *http.Server serving NewHandler.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(deps, opts)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
