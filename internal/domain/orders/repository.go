package orders

import (
	"context"

	"pawfam-api/internal/domain/accessories"
	"pawfam-api/internal/domain/enrich"
)

// Todas las listas devuelven más reciente primero.
type Repository interface {
	Create(ctx context.Context, o Order) error
	Update(ctx context.Context, o Order) error
	GetByID(ctx context.Context, id string) (Order, error)
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]Order, error)

	// ListByVendor: pedidos con al menos una línea de ese vendor.
	ListByVendor(ctx context.Context, vendorID string) ([]Order, error)
	ListByProductIDs(ctx context.Context, productIDs []string) ([]Order, error)
	// ListUnlinked: pedidos con al menos una línea sin productId ni vendor.
	ListUnlinked(ctx context.Context) ([]Order, error)
}

type ProductCatalog interface {
	enrich.ProductVendorLookup
	ListByVendor(ctx context.Context, vendorID string) ([]accessories.Product, error)
}
