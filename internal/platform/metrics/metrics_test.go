package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/daycare/bookings/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues("/api/daycare/bookings/{id}", "GET", "404"))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/daycare/bookings/abc", nil))
	after := testutil.ToFloat64(httpRequests.WithLabelValues("/api/daycare/bookings/{id}", "GET", "404"))

	assert.Equal(t, before+1, after)
}

func TestTransitionCounters(t *testing.T) {
	before := testutil.ToFloat64(transitions.WithLabelValues("order", "cancelled"))
	ObserveTransition("order", "cancelled")
	assert.Equal(t, before+1, testutil.ToFloat64(transitions.WithLabelValues("order", "cancelled")))

	ObserveRejection("booking", "edit")
	assert.GreaterOrEqual(t, testutil.ToFloat64(rejections.WithLabelValues("booking", "edit")), 1.0)
}

func TestHandlerServesRegistry(t *testing.T) {
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
