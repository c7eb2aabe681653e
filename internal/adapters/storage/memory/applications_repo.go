package memory

import (
	"context"
	"time"

	"pawfam-api/internal/domain/adoption"
)

type applicationRepo struct {
	c *collection[adoption.Application]
}

func NewApplicationRepo() adoption.Repository {
	return &applicationRepo{c: newCollection(
		func(a adoption.Application) string { return a.ID },
		func(a adoption.Application) time.Time { return a.CreatedAt },
	)}
}

func (r *applicationRepo) Create(ctx context.Context, a adoption.Application) error {
	return r.c.insert(a)
}

func (r *applicationRepo) Update(ctx context.Context, a adoption.Application) error {
	return r.c.replace(a)
}

func (r *applicationRepo) GetByID(ctx context.Context, id string) (adoption.Application, error) {
	return r.c.get(id)
}

func (r *applicationRepo) Delete(ctx context.Context, id string) error {
	return r.c.remove(id)
}

func (r *applicationRepo) ListByUser(ctx context.Context, userID string) ([]adoption.Application, error) {
	return r.c.filter(func(a adoption.Application) bool { return a.UserID == userID }), nil
}

func (r *applicationRepo) ListByVendor(ctx context.Context, vendorID string) ([]adoption.Application, error) {
	return r.c.filter(func(a adoption.Application) bool { return vendorID != "" && a.VendorID == vendorID }), nil
}

func (r *applicationRepo) ListByPetIDs(ctx context.Context, petIDs []string) ([]adoption.Application, error) {
	set := idSet(petIDs)
	return r.c.filter(func(a adoption.Application) bool {
		_, ok := set[a.Pet.ID]
		return ok
	}), nil
}

func (r *applicationRepo) ListUnlinked(ctx context.Context) ([]adoption.Application, error) {
	return r.c.filter(func(a adoption.Application) bool { return a.VendorID == "" }), nil
}
