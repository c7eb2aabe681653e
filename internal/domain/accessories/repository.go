package accessories

import "context"

type Repository interface {
	Create(ctx context.Context, p Product) error
	Update(ctx context.Context, p Product) error
	GetByID(ctx context.Context, id string) (Product, error)
	Delete(ctx context.Context, id string) error
	ListActive(ctx context.Context) ([]Product, error)
	ListByVendor(ctx context.Context, vendorID string) ([]Product, error)
}
