package postgres

import (
	"context"
	"database/sql"

	"pawfam-api/internal/domain/accessories"
	"pawfam-api/internal/domain/adoptionpets"
	"pawfam-api/internal/domain/daycarecenters"
)

const (
	tableDaycareCenters = "daycare_centers"
	tableAdoptionPets   = "adoption_pets"
	tableAccessories    = "accessory_products"

	whereActive = `(doc->>'isActive')::boolean`
	whereVendor = `vendor_id = $1`
)

type CentersRepo struct {
	t docTable[daycarecenters.Center]
}

func NewCentersRepo(db *sql.DB) *CentersRepo {
	return &CentersRepo{t: docTable[daycarecenters.Center]{
		db:    db,
		table: tableDaycareCenters,
		keys: func(c daycarecenters.Center) docKeys {
			return docKeys{ID: c.ID, VendorID: c.VendorID, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
		},
	}}
}

func (r *CentersRepo) Create(ctx context.Context, c daycarecenters.Center) error {
	return r.t.insert(ctx, c)
}

func (r *CentersRepo) Update(ctx context.Context, c daycarecenters.Center) error {
	return r.t.update(ctx, c)
}

func (r *CentersRepo) GetByID(ctx context.Context, id string) (daycarecenters.Center, error) {
	return r.t.get(ctx, id)
}

func (r *CentersRepo) Delete(ctx context.Context, id string) error {
	return r.t.delete(ctx, id)
}

func (r *CentersRepo) ListActive(ctx context.Context) ([]daycarecenters.Center, error) {
	return r.t.list(ctx, whereActive)
}

func (r *CentersRepo) ListByVendor(ctx context.Context, vendorID string) ([]daycarecenters.Center, error) {
	return r.t.list(ctx, whereVendor, vendorID)
}

type AdoptionPetsRepo struct {
	t docTable[adoptionpets.Listing]
}

func NewAdoptionPetsRepo(db *sql.DB) *AdoptionPetsRepo {
	return &AdoptionPetsRepo{t: docTable[adoptionpets.Listing]{
		db:    db,
		table: tableAdoptionPets,
		keys: func(l adoptionpets.Listing) docKeys {
			return docKeys{ID: l.ID, VendorID: l.VendorID, CreatedAt: l.CreatedAt, UpdatedAt: l.UpdatedAt}
		},
	}}
}

func (r *AdoptionPetsRepo) Create(ctx context.Context, l adoptionpets.Listing) error {
	return r.t.insert(ctx, l)
}

func (r *AdoptionPetsRepo) Update(ctx context.Context, l adoptionpets.Listing) error {
	return r.t.update(ctx, l)
}

func (r *AdoptionPetsRepo) GetByID(ctx context.Context, id string) (adoptionpets.Listing, error) {
	return r.t.get(ctx, id)
}

func (r *AdoptionPetsRepo) Delete(ctx context.Context, id string) error {
	return r.t.delete(ctx, id)
}

func (r *AdoptionPetsRepo) ListActive(ctx context.Context) ([]adoptionpets.Listing, error) {
	return r.t.list(ctx, whereActive)
}

func (r *AdoptionPetsRepo) ListByVendor(ctx context.Context, vendorID string) ([]adoptionpets.Listing, error) {
	return r.t.list(ctx, whereVendor, vendorID)
}

type AccessoriesRepo struct {
	t docTable[accessories.Product]
}

func NewAccessoriesRepo(db *sql.DB) *AccessoriesRepo {
	return &AccessoriesRepo{t: docTable[accessories.Product]{
		db:    db,
		table: tableAccessories,
		keys: func(p accessories.Product) docKeys {
			return docKeys{ID: p.ID, VendorID: p.VendorID, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt}
		},
	}}
}

func (r *AccessoriesRepo) Create(ctx context.Context, p accessories.Product) error {
	return r.t.insert(ctx, p)
}

func (r *AccessoriesRepo) Update(ctx context.Context, p accessories.Product) error {
	return r.t.update(ctx, p)
}

func (r *AccessoriesRepo) GetByID(ctx context.Context, id string) (accessories.Product, error) {
	return r.t.get(ctx, id)
}

func (r *AccessoriesRepo) Delete(ctx context.Context, id string) error {
	return r.t.delete(ctx, id)
}

func (r *AccessoriesRepo) ListActive(ctx context.Context) ([]accessories.Product, error) {
	return r.t.list(ctx, whereActive)
}

func (r *AccessoriesRepo) ListByVendor(ctx context.Context, vendorID string) ([]accessories.Product, error) {
	return r.t.list(ctx, whereVendor, vendorID)
}
