// Package enrich calcula los campos derivados que nunca se toman del cliente:
// total de una estadía, vendor de cada línea de pedido y datos de pago enmascarados.
package enrich

import (
	"math"
	"time"

	"pawfam-api/internal/platform/apperr"
)

const day = 24 * time.Hour

// StayDays cuenta días iniciados: cualquier fracción de día se cobra completa.
func StayDays(start, end time.Time) int {
	return int(math.Ceil(float64(end.Sub(start)) / float64(day)))
}

// StayTotal usa siempre el pricePerDay del snapshot guardado.
// Rangos vacíos o invertidos se rechazan.
func StayTotal(start, end time.Time, pricePerDay float64) (float64, error) {
	if start.IsZero() || end.IsZero() {
		return 0, apperr.Invalid("Start date and end date are required")
	}
	if !end.After(start) {
		return 0, apperr.Invalid("End date must be after start date")
	}
	return float64(StayDays(start, end)) * pricePerDay, nil
}
