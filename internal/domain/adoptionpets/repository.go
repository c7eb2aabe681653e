package adoptionpets

import "context"

type Repository interface {
	Create(ctx context.Context, l Listing) error
	Update(ctx context.Context, l Listing) error
	GetByID(ctx context.Context, id string) (Listing, error)
	Delete(ctx context.Context, id string) error
	ListActive(ctx context.Context) ([]Listing, error)
	ListByVendor(ctx context.Context, vendorID string) ([]Listing, error)
}
