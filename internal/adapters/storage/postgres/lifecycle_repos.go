package postgres

import (
	"context"
	"database/sql"

	"pawfam-api/internal/domain/adoption"
	"pawfam-api/internal/domain/daycare"
	"pawfam-api/internal/domain/orders"
)

const (
	tableBookings     = "daycare_bookings"
	tableApplications = "adoption_applications"
	tableOrders       = "product_orders"

	whereOwner = `owner_id = $1`
)

type BookingsRepo struct {
	t docTable[daycare.Booking]
}

func NewBookingsRepo(db *sql.DB) *BookingsRepo {
	return &BookingsRepo{t: docTable[daycare.Booking]{
		db:    db,
		table: tableBookings,
		keys: func(b daycare.Booking) docKeys {
			return docKeys{ID: b.ID, OwnerID: b.UserID, VendorID: b.VendorID, CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt}
		},
	}}
}

func (r *BookingsRepo) Create(ctx context.Context, b daycare.Booking) error {
	return r.t.insert(ctx, b)
}

func (r *BookingsRepo) Update(ctx context.Context, b daycare.Booking) error {
	return r.t.update(ctx, b)
}

func (r *BookingsRepo) GetByID(ctx context.Context, id string) (daycare.Booking, error) {
	return r.t.get(ctx, id)
}

func (r *BookingsRepo) Delete(ctx context.Context, id string) error {
	return r.t.delete(ctx, id)
}

func (r *BookingsRepo) ListByUser(ctx context.Context, userID string) ([]daycare.Booking, error) {
	return r.t.list(ctx, whereOwner, userID)
}

func (r *BookingsRepo) ListByVendor(ctx context.Context, vendorID string) ([]daycare.Booking, error) {
	return r.t.list(ctx, whereVendor, vendorID)
}

func (r *BookingsRepo) ListByCenterIDs(ctx context.Context, centerIDs []string) ([]daycare.Booking, error) {
	if len(centerIDs) == 0 {
		return []daycare.Booking{}, nil
	}
	return r.t.list(ctx, `doc->>'daycareCenterId' = ANY($1::text[])`, centerIDs)
}

func (r *BookingsRepo) ListUnlinked(ctx context.Context) ([]daycare.Booking, error) {
	return r.t.list(ctx, `vendor_id IS NULL AND COALESCE(doc->>'daycareCenterId', '') = ''`)
}

type ApplicationsRepo struct {
	t docTable[adoption.Application]
}

func NewApplicationsRepo(db *sql.DB) *ApplicationsRepo {
	return &ApplicationsRepo{t: docTable[adoption.Application]{
		db:    db,
		table: tableApplications,
		keys: func(a adoption.Application) docKeys {
			return docKeys{ID: a.ID, OwnerID: a.UserID, VendorID: a.VendorID, CreatedAt: a.CreatedAt, UpdatedAt: a.UpdatedAt}
		},
	}}
}

func (r *ApplicationsRepo) Create(ctx context.Context, a adoption.Application) error {
	return r.t.insert(ctx, a)
}

func (r *ApplicationsRepo) Update(ctx context.Context, a adoption.Application) error {
	return r.t.update(ctx, a)
}

func (r *ApplicationsRepo) GetByID(ctx context.Context, id string) (adoption.Application, error) {
	return r.t.get(ctx, id)
}

func (r *ApplicationsRepo) Delete(ctx context.Context, id string) error {
	return r.t.delete(ctx, id)
}

func (r *ApplicationsRepo) ListByUser(ctx context.Context, userID string) ([]adoption.Application, error) {
	return r.t.list(ctx, whereOwner, userID)
}

func (r *ApplicationsRepo) ListByVendor(ctx context.Context, vendorID string) ([]adoption.Application, error) {
	return r.t.list(ctx, whereVendor, vendorID)
}

func (r *ApplicationsRepo) ListByPetIDs(ctx context.Context, petIDs []string) ([]adoption.Application, error) {
	if len(petIDs) == 0 {
		return []adoption.Application{}, nil
	}
	return r.t.list(ctx, `doc->'pet'->>'id' = ANY($1::text[])`, petIDs)
}

func (r *ApplicationsRepo) ListUnlinked(ctx context.Context) ([]adoption.Application, error) {
	return r.t.list(ctx, `vendor_id IS NULL`)
}

// Un pedido puede mezclar vendors: vendor_id queda NULL y se filtra sobre items.
type OrdersRepo struct {
	t docTable[orders.Order]
}

func NewOrdersRepo(db *sql.DB) *OrdersRepo {
	return &OrdersRepo{t: docTable[orders.Order]{
		db:    db,
		table: tableOrders,
		keys: func(o orders.Order) docKeys {
			return docKeys{ID: o.ID, OwnerID: o.UserID, CreatedAt: o.CreatedAt, UpdatedAt: o.UpdatedAt}
		},
	}}
}

func (r *OrdersRepo) Create(ctx context.Context, o orders.Order) error {
	return r.t.insert(ctx, o)
}

func (r *OrdersRepo) Update(ctx context.Context, o orders.Order) error {
	return r.t.update(ctx, o)
}

func (r *OrdersRepo) GetByID(ctx context.Context, id string) (orders.Order, error) {
	return r.t.get(ctx, id)
}

func (r *OrdersRepo) Delete(ctx context.Context, id string) error {
	return r.t.delete(ctx, id)
}

func (r *OrdersRepo) ListByUser(ctx context.Context, userID string) ([]orders.Order, error) {
	return r.t.list(ctx, whereOwner, userID)
}

func (r *OrdersRepo) ListByVendor(ctx context.Context, vendorID string) ([]orders.Order, error) {
	return r.t.list(ctx, `EXISTS (
		SELECT 1 FROM jsonb_array_elements(doc->'items') it
		WHERE it->>'vendor' = $1
	)`, vendorID)
}

func (r *OrdersRepo) ListByProductIDs(ctx context.Context, productIDs []string) ([]orders.Order, error) {
	if len(productIDs) == 0 {
		return []orders.Order{}, nil
	}
	return r.t.list(ctx, `EXISTS (
		SELECT 1 FROM jsonb_array_elements(doc->'items') it
		WHERE it->>'productId' = ANY($1::text[])
	)`, productIDs)
}

func (r *OrdersRepo) ListUnlinked(ctx context.Context) ([]orders.Order, error) {
	return r.t.list(ctx, `EXISTS (
		SELECT 1 FROM jsonb_array_elements(doc->'items') it
		WHERE COALESCE(it->>'productId', '') = '' AND COALESCE(it->>'vendor', '') = ''
	)`)
}
