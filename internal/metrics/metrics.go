// Package metrics exposes prometheus instrumentation for the HTTP surface.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the collectors the server records into.
type Metrics struct {
	registry *prometheus.Registry

	RendersTotal   *prometheus.CounterVec
	VerifyRuns     prometheus.Counter
	VerifyFindings prometheus.Gauge
	RequestSeconds *prometheus.HistogramVec
}

// New creates a self-contained registry with process/go collectors plus the
// primer-specific ones.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		RendersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "primer",
			Name:      "renders_total",
			Help:      "Chapter renders served, by output format and cache outcome.",
		}, []string{"format", "cache"}),
		VerifyRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "primer",
			Name:      "verify_runs_total",
			Help:      "Verification runs executed.",
		}),
		VerifyFindings: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "primer",
			Name:      "verify_findings",
			Help:      "Findings reported by the most recent verification run.",
		}),
		RequestSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "primer",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path", "status"}),
	}

	reg.MustRegister(m.RendersTotal, m.VerifyRuns, m.VerifyFindings, m.RequestSeconds)
	return m
}

// Handler serves the /metrics endpoint for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request latency labeled by route pattern and status.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		m.RequestSeconds.WithLabelValues(routeLabel(r), strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	})
}

// routeLabel uses the matched route pattern, not the raw URL path, so path
// parameters and client-supplied garbage cannot mint unbounded label series.
// Read after the handler runs, when the route context is fully populated.
func routeLabel(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Flush forwards to the wrapped writer so streaming handlers (SSE) keep
// working behind the middleware.
func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
