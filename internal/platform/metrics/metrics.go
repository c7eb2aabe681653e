// Package metrics expone contadores Prometheus en un registry propio.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pawfam",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route pattern, method and status.",
	}, []string{"route", "method", "status"})

	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pawfam",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	transitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pawfam",
		Name:      "lifecycle_transitions_total",
		Help:      "Status changes applied to applications, bookings and orders.",
	}, []string{"entity", "to"})

	rejections = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pawfam",
		Name:      "lifecycle_rejections_total",
		Help:      "Operations refused by the lifecycle guard.",
	}, []string{"entity", "operation"})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		httpRequests,
		httpDuration,
		transitions,
		rejections,
	)
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware registra cada request usando el patrón de ruta de chi
// (no el path crudo, para no explotar cardinalidad con ids).
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		httpRequests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}

func ObserveTransition(entity, to string) {
	transitions.WithLabelValues(entity, to).Inc()
}

func ObserveRejection(entity, operation string) {
	rejections.WithLabelValues(entity, operation).Inc()
}
