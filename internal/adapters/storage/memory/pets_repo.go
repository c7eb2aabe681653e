package memory

import (
	"context"
	"sort"
	"time"

	"pawfam-api/internal/domain/pets"
)

type petRepo struct {
	c *collection[pets.Pet]
}

func NewPetRepo() pets.Repository {
	return &petRepo{c: newCollection(
		func(p pets.Pet) string { return p.ID },
		func(p pets.Pet) time.Time { return p.CreatedAt },
	)}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	return r.c.insert(p)
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	return r.c.replace(p)
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	return r.c.get(id)
}

func (r *petRepo) Delete(ctx context.Context, id string) error {
	return r.c.remove(id)
}

func (r *petRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]pets.Pet, error) {
	out := r.c.filter(func(p pets.Pet) bool { return p.OwnerUserID == ownerUserID })

	// mascotas propias: orden de alta (más vieja primero)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
