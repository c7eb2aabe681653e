package memory

import (
	"context"
	"time"

	"pawfam-api/internal/domain/daycare"
)

type bookingRepo struct {
	c *collection[daycare.Booking]
}

func NewBookingRepo() daycare.Repository {
	return &bookingRepo{c: newCollection(
		func(b daycare.Booking) string { return b.ID },
		func(b daycare.Booking) time.Time { return b.CreatedAt },
	)}
}

func (r *bookingRepo) Create(ctx context.Context, b daycare.Booking) error {
	return r.c.insert(b)
}

func (r *bookingRepo) Update(ctx context.Context, b daycare.Booking) error {
	return r.c.replace(b)
}

func (r *bookingRepo) GetByID(ctx context.Context, id string) (daycare.Booking, error) {
	return r.c.get(id)
}

func (r *bookingRepo) Delete(ctx context.Context, id string) error {
	return r.c.remove(id)
}

func (r *bookingRepo) ListByUser(ctx context.Context, userID string) ([]daycare.Booking, error) {
	return r.c.filter(func(b daycare.Booking) bool { return b.UserID == userID }), nil
}

func (r *bookingRepo) ListByVendor(ctx context.Context, vendorID string) ([]daycare.Booking, error) {
	return r.c.filter(func(b daycare.Booking) bool { return vendorID != "" && b.VendorID == vendorID }), nil
}

func (r *bookingRepo) ListByCenterIDs(ctx context.Context, centerIDs []string) ([]daycare.Booking, error) {
	set := idSet(centerIDs)
	return r.c.filter(func(b daycare.Booking) bool {
		_, ok := set[b.DaycareCenterID]
		return ok
	}), nil
}

func (r *bookingRepo) ListUnlinked(ctx context.Context) ([]daycare.Booking, error) {
	return r.c.filter(func(b daycare.Booking) bool { return b.VendorID == "" && b.DaycareCenterID == "" }), nil
}
