package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	// Access engine metrics
	personaResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "persona_resolutions_total",
			Help: "Total number of persona classifications served",
		},
		[]string{"persona"},
	)

	guardDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "route_guard_decisions_total",
			Help: "Total number of route guard decisions",
		},
		[]string{"path", "outcome"},
	)

	menuProjections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "menu_projections_total",
			Help: "Total number of menu projections served",
		},
	)
)

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware creates HTTP metrics middleware
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()
		path := normalizePath(r.URL.Path)

		httpRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.statusCode)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// normalizePath caps path cardinality for metrics labels
func normalizePath(path string) string {
	if len(path) > 100 {
		return "/api/..."
	}
	return path
}

// RecordPersonaResolution records a persona classification served to a caller
func RecordPersonaResolution(persona string) {
	personaResolutions.WithLabelValues(persona).Inc()
}

// RecordGuardDecision records a route guard decision
func RecordGuardDecision(path, outcome string) {
	guardDecisions.WithLabelValues(normalizePath(path), outcome).Inc()
}

// RecordMenuProjection records a served menu projection
func RecordMenuProjection() {
	menuProjections.Inc()
}
