package daycare

import (
	"context"

	"pawfam-api/internal/domain/daycarecenters"
)

// Todas las listas devuelven más reciente primero.
type Repository interface {
	Create(ctx context.Context, b Booking) error
	Update(ctx context.Context, b Booking) error
	GetByID(ctx context.Context, id string) (Booking, error)
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]Booking, error)

	ListByVendor(ctx context.Context, vendorID string) ([]Booking, error)
	ListByCenterIDs(ctx context.Context, centerIDs []string) ([]Booking, error)
	// ListUnlinked devuelve las reservas sin vendor ni daycareCenterId.
	ListUnlinked(ctx context.Context) ([]Booking, error)
}

// CenterCatalog es lo que la reserva necesita del catálogo de centros.
type CenterCatalog interface {
	Snapshot(ctx context.Context, centerID string) (daycarecenters.Snapshot, error)
	ListByVendor(ctx context.Context, vendorID string) ([]daycarecenters.Center, error)
}
