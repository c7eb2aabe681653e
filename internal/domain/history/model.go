package history

import (
	"time"

	"pawfam-api/internal/domain/lifecycle"
	"pawfam-api/internal/ports/auth"
)

type Actor struct {
	Type ActorType `json:"type"`
	ID   string    `json:"id"`
}

// ActorFromClaims clasifica al principal según su rol.
func ActorFromClaims(c auth.Claims) Actor {
	if c.IsVendor() {
		return Actor{Type: ActorVendor, ID: c.UserID}
	}
	return Actor{Type: ActorCustomer, ID: c.UserID}
}

// Entry es un registro inmutable de un cambio sobre una entidad con ciclo de vida.
type Entry struct {
	ID         string         `json:"id"`
	EntityKind lifecycle.Kind `json:"entityKind"`
	EntityID   string         `json:"entityId"`

	Type       EventType `json:"type"`
	FromStatus string    `json:"fromStatus,omitempty"`
	ToStatus   string    `json:"toStatus"`

	Actor      Actor     `json:"actor"`
	OccurredAt time.Time `json:"occurredAt"`
}
