package daycarecenters

import "context"

type Repository interface {
	Create(ctx context.Context, c Center) error
	Update(ctx context.Context, c Center) error
	GetByID(ctx context.Context, id string) (Center, error)
	Delete(ctx context.Context, id string) error
	// ListActive y ListByVendor devuelven más reciente primero.
	ListActive(ctx context.Context) ([]Center, error)
	ListByVendor(ctx context.Context, vendorID string) ([]Center, error)
}
