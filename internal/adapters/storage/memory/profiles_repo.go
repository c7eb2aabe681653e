package memory

import (
	"context"
	"time"

	"pawfam-api/internal/domain/profiles"
)

type userProfileRepo struct {
	c *collection[profiles.UserProfile]
}

func NewUserProfileRepo() profiles.UserProfileRepository {
	return &userProfileRepo{c: newCollection(
		func(p profiles.UserProfile) string { return p.ID },
		func(p profiles.UserProfile) time.Time { return p.CreatedAt },
		uniqueKey[profiles.UserProfile]{name: "userId", value: func(p profiles.UserProfile) string { return p.UserID }},
	)}
}

func (r *userProfileRepo) Create(ctx context.Context, p profiles.UserProfile) error {
	return r.c.insert(p)
}

func (r *userProfileRepo) GetByUser(ctx context.Context, userID string) (profiles.UserProfile, error) {
	return r.c.first(func(p profiles.UserProfile) bool { return p.UserID == userID })
}

func (r *userProfileRepo) Update(ctx context.Context, p profiles.UserProfile) error {
	return r.c.replace(p)
}

func (r *userProfileRepo) DeleteByUser(ctx context.Context, userID string) error {
	p, err := r.GetByUser(ctx, userID)
	if err != nil {
		return err
	}
	return r.c.remove(p.ID)
}

type vendorProfileRepo struct {
	c *collection[profiles.VendorProfile]
}

func NewVendorProfileRepo() profiles.VendorProfileRepository {
	return &vendorProfileRepo{c: newCollection(
		func(p profiles.VendorProfile) string { return p.ID },
		func(p profiles.VendorProfile) time.Time { return p.CreatedAt },
		uniqueKey[profiles.VendorProfile]{name: "userId", value: func(p profiles.VendorProfile) string { return p.UserID }},
		uniqueKey[profiles.VendorProfile]{name: "vendorId", value: func(p profiles.VendorProfile) string { return p.VendorID }},
	)}
}

func (r *vendorProfileRepo) Create(ctx context.Context, p profiles.VendorProfile) error {
	return r.c.insert(p)
}

func (r *vendorProfileRepo) GetByUser(ctx context.Context, userID string) (profiles.VendorProfile, error) {
	return r.c.first(func(p profiles.VendorProfile) bool { return p.UserID == userID })
}

func (r *vendorProfileRepo) Update(ctx context.Context, p profiles.VendorProfile) error {
	return r.c.replace(p)
}

func (r *vendorProfileRepo) DeleteByUser(ctx context.Context, userID string) error {
	p, err := r.GetByUser(ctx, userID)
	if err != nil {
		return err
	}
	return r.c.remove(p.ID)
}

func (r *vendorProfileRepo) Count(ctx context.Context) (int, error) {
	return r.c.count(), nil
}
