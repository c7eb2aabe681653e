package adoption

import (
	"context"

	"pawfam-api/internal/domain/adoptionpets"
)

// Todas las listas devuelven más reciente primero.
type Repository interface {
	Create(ctx context.Context, a Application) error
	Update(ctx context.Context, a Application) error
	GetByID(ctx context.Context, id string) (Application, error)
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]Application, error)

	ListByVendor(ctx context.Context, vendorID string) ([]Application, error)
	ListByPetIDs(ctx context.Context, petIDs []string) ([]Application, error)
	// ListUnlinked devuelve las solicitudes sin vendor.
	ListUnlinked(ctx context.Context) ([]Application, error)
}

type PetCatalog interface {
	Snapshot(ctx context.Context, petID string) (adoptionpets.Snapshot, error)
	ListByVendor(ctx context.Context, vendorID string) ([]adoptionpets.Listing, error)
}
