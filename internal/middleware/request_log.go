package middleware

import (
	"net/http"
	"time"

	"pawfam-api/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLogger deja un logger con request_id en el contexto y registra una
// línea por request al terminar. Debe ir después de chimw.RequestID.
func RequestLogger(base logger.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqLog := base.With(map[string]any{"request_id": chimw.GetReqID(r.Context())})

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(logger.WithContext(r.Context(), reqLog)))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
				"remote":      r.RemoteAddr,
			}
			if status >= http.StatusInternalServerError {
				reqLog.Error("request", fields)
				return
			}
			reqLog.Info("request", fields)
		})
	}
}
