package middleware

import (
	"net/http"
	"runtime/debug"

	"pawfam-api/internal/platform/httpx"
	"pawfam-api/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Recover reemplaza a chi/middleware.Recoverer: loguea el panic con stack y
// responde el mismo JSON genérico que cualquier error inesperado.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger.FromContext(r.Context()).Error("panic recovered", map[string]any{
				"request_id": chimw.GetReqID(r.Context()),
				"panic":      rec,
				"stack":      string(debug.Stack()),
			})
			httpx.WriteMessage(w, http.StatusInternalServerError, "internal error")
		}()
		next.ServeHTTP(w, r)
	})
}
