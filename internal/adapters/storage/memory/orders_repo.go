package memory

import (
	"context"
	"time"

	"pawfam-api/internal/domain/orders"
)

type orderRepo struct {
	c *collection[orders.Order]
}

func NewOrderRepo() orders.Repository {
	return &orderRepo{c: newCollection(
		func(o orders.Order) string { return o.ID },
		func(o orders.Order) time.Time { return o.CreatedAt },
	)}
}

func (r *orderRepo) Create(ctx context.Context, o orders.Order) error {
	o.Items = append([]orders.Item(nil), o.Items...)
	return r.c.insert(o)
}

func (r *orderRepo) Update(ctx context.Context, o orders.Order) error {
	o.Items = append([]orders.Item(nil), o.Items...)
	return r.c.replace(o)
}

func (r *orderRepo) GetByID(ctx context.Context, id string) (orders.Order, error) {
	return r.c.get(id)
}

func (r *orderRepo) Delete(ctx context.Context, id string) error {
	return r.c.remove(id)
}

func (r *orderRepo) ListByUser(ctx context.Context, userID string) ([]orders.Order, error) {
	return r.c.filter(func(o orders.Order) bool { return o.UserID == userID }), nil
}

func (r *orderRepo) ListByVendor(ctx context.Context, vendorID string) ([]orders.Order, error) {
	return r.c.filter(func(o orders.Order) bool {
		return anyItem(o, func(it orders.Item) bool { return vendorID != "" && it.VendorID == vendorID })
	}), nil
}

func (r *orderRepo) ListByProductIDs(ctx context.Context, productIDs []string) ([]orders.Order, error) {
	set := idSet(productIDs)
	return r.c.filter(func(o orders.Order) bool {
		return anyItem(o, func(it orders.Item) bool {
			_, ok := set[it.ProductID]
			return ok
		})
	}), nil
}

func (r *orderRepo) ListUnlinked(ctx context.Context) ([]orders.Order, error) {
	return r.c.filter(func(o orders.Order) bool {
		return anyItem(o, func(it orders.Item) bool { return it.ProductID == "" && it.VendorID == "" })
	}), nil
}

func anyItem(o orders.Order, match func(orders.Item) bool) bool {
	for _, it := range o.Items {
		if match(it) {
			return true
		}
	}
	return false
}
