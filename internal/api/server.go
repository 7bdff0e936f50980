// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the CLA service.
package api

import (
	_ "embed"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"

	"cla/internal/api/handler"
	"cla/internal/cla"
	"cla/internal/config"
	"cla/internal/webhook"
	"cla/pkg/controller"
)

// v1Spec contains the embedded OpenAPI specification of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server. All durations are used to
// configure server timeouts, and zero values should be considered as using
// the defaults provided by net/http where applicable.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string

	// WebhookSecret is the shared secret GitHub signs webhook deliveries with.
	WebhookSecret string
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

		WebhookSecret: cfg.GithubApp.WebhookSecret,
	}
}

type Deps struct {
	Webhook webhook.Service
	CLA     cla.Service
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - Embedded OpenAPI spec and Swagger UI
// - The webhook and CLA check routes
// - pprof endpoints for profiling
// It also wraps the mux with CORS, metrics and logging middlewares and applies a request timeout.
func NewServer(deps Deps, opts Options) *http.Server {
	mux := http.NewServeMux()

	// prometheus metrics server
	mux.Handle(opts.MetricsPath, promhttp.Handler())

	// specs file
	mux.HandleFunc("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// swagger playground
	mux.Handle("/docs/", v5emb.New(
		"Canonical CLA Service",
		"/specs/v1.yaml",
		"/docs/",
	))

	h := handler.New(handler.Deps{
		Webhook: deps.Webhook,
		CLA:     deps.CLA,
	})
	mux.Handle("POST /github/webhook", h.Webhook(opts.WebhookSecret))
	mux.HandleFunc("GET /cla/check", h.Check)

	// pprof
	mux.Handle("/debug/pprof/", controller.PprofMux())

	// cors
	wrapped := controller.WithCORS(mux)

	// metrics
	wrapped = controller.WithMetrics(wrapped)

	// logger
	wrapped = controller.WithLogger(wrapped)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           http.TimeoutHandler(wrapped, opts.RequestTimeout, `{"error":"request timed out"}`),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}
}
