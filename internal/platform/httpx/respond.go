// Package httpx agrupa los helpers de respuesta que antes se duplicaban por módulo.
package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"pawfam-api/internal/platform/apperr"
	"pawfam-api/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// MaxBodyBytes cubre imágenes inline de catálogo (hasta 7M caracteres) con margen.
const MaxBodyBytes = 32 << 20

type messageBody struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteMessage(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, messageBody{Message: msg})
}

// StatusFor traduce la taxonomía de apperr a códigos HTTP.
func StatusFor(err error) int {
	switch apperr.Kind(err) {
	case apperr.ErrInvalidArgument, apperr.ErrPreconditionFailed, apperr.ErrConflict:
		return http.StatusBadRequest
	case apperr.ErrUnauthorized:
		return http.StatusUnauthorized
	case apperr.ErrForbidden:
		return http.StatusForbidden
	case apperr.ErrNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WriteError escribe {"message": ...}. Los errores inesperados se loguean
// con el request id y el cliente solo recibe "internal error".
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		logger.FromContext(r.Context()).Error("unexpected error", map[string]any{
			"request_id": chimw.GetReqID(r.Context()),
			"method":     r.Method,
			"path":       r.URL.Path,
			"error":      err.Error(),
		})
		WriteMessage(w, status, "internal error")
		return
	}
	WriteMessage(w, status, apperr.Message(err, http.StatusText(status)))
}

// DecodeJSON lee el body limitado a MaxBodyBytes.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apperr.Invalid("Request body too large")
		}
		if errors.Is(err, io.EOF) {
			return apperr.Invalid("Request body is required")
		}
		return apperr.Invalid("Invalid JSON")
	}
	return nil
}
