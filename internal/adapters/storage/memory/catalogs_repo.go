package memory

import (
	"context"
	"time"

	"pawfam-api/internal/domain/accessories"
	"pawfam-api/internal/domain/adoptionpets"
	"pawfam-api/internal/domain/daycarecenters"
)

type centerRepo struct {
	c *collection[daycarecenters.Center]
}

func NewDaycareCenterRepo() daycarecenters.Repository {
	return &centerRepo{c: newCollection(
		func(c daycarecenters.Center) string { return c.ID },
		func(c daycarecenters.Center) time.Time { return c.CreatedAt },
	)}
}

func (r *centerRepo) Create(ctx context.Context, c daycarecenters.Center) error {
	return r.c.insert(c)
}

func (r *centerRepo) Update(ctx context.Context, c daycarecenters.Center) error {
	return r.c.replace(c)
}

func (r *centerRepo) GetByID(ctx context.Context, id string) (daycarecenters.Center, error) {
	return r.c.get(id)
}

func (r *centerRepo) Delete(ctx context.Context, id string) error {
	return r.c.remove(id)
}

func (r *centerRepo) ListActive(ctx context.Context) ([]daycarecenters.Center, error) {
	return r.c.filter(func(c daycarecenters.Center) bool { return c.IsActive }), nil
}

func (r *centerRepo) ListByVendor(ctx context.Context, vendorID string) ([]daycarecenters.Center, error) {
	return r.c.filter(func(c daycarecenters.Center) bool { return c.VendorID == vendorID }), nil
}

type adoptionPetRepo struct {
	c *collection[adoptionpets.Listing]
}

func NewAdoptionPetRepo() adoptionpets.Repository {
	return &adoptionPetRepo{c: newCollection(
		func(l adoptionpets.Listing) string { return l.ID },
		func(l adoptionpets.Listing) time.Time { return l.CreatedAt },
	)}
}

func (r *adoptionPetRepo) Create(ctx context.Context, l adoptionpets.Listing) error {
	return r.c.insert(l)
}

func (r *adoptionPetRepo) Update(ctx context.Context, l adoptionpets.Listing) error {
	return r.c.replace(l)
}

func (r *adoptionPetRepo) GetByID(ctx context.Context, id string) (adoptionpets.Listing, error) {
	return r.c.get(id)
}

func (r *adoptionPetRepo) Delete(ctx context.Context, id string) error {
	return r.c.remove(id)
}

func (r *adoptionPetRepo) ListActive(ctx context.Context) ([]adoptionpets.Listing, error) {
	return r.c.filter(func(l adoptionpets.Listing) bool { return l.IsActive }), nil
}

func (r *adoptionPetRepo) ListByVendor(ctx context.Context, vendorID string) ([]adoptionpets.Listing, error) {
	return r.c.filter(func(l adoptionpets.Listing) bool { return l.VendorID == vendorID }), nil
}

type productRepo struct {
	c *collection[accessories.Product]
}

func NewAccessoryRepo() accessories.Repository {
	return &productRepo{c: newCollection(
		func(p accessories.Product) string { return p.ID },
		func(p accessories.Product) time.Time { return p.CreatedAt },
	)}
}

func (r *productRepo) Create(ctx context.Context, p accessories.Product) error {
	return r.c.insert(p)
}

func (r *productRepo) Update(ctx context.Context, p accessories.Product) error {
	return r.c.replace(p)
}

func (r *productRepo) GetByID(ctx context.Context, id string) (accessories.Product, error) {
	return r.c.get(id)
}

func (r *productRepo) Delete(ctx context.Context, id string) error {
	return r.c.remove(id)
}

func (r *productRepo) ListActive(ctx context.Context) ([]accessories.Product, error) {
	return r.c.filter(func(p accessories.Product) bool { return p.IsActive }), nil
}

func (r *productRepo) ListByVendor(ctx context.Context, vendorID string) ([]accessories.Product, error) {
	return r.c.filter(func(p accessories.Product) bool { return p.VendorID == vendorID }), nil
}
