package profiles

import "context"

// Create devuelve apperr.ErrConflict si el usuario ya tiene perfil
// (o, para vendors, si el VendorID ya existe).
type UserProfileRepository interface {
	Create(ctx context.Context, p UserProfile) error
	GetByUser(ctx context.Context, userID string) (UserProfile, error)
	Update(ctx context.Context, p UserProfile) error
	DeleteByUser(ctx context.Context, userID string) error
}

type VendorProfileRepository interface {
	Create(ctx context.Context, p VendorProfile) error
	GetByUser(ctx context.Context, userID string) (VendorProfile, error)
	Update(ctx context.Context, p VendorProfile) error
	DeleteByUser(ctx context.Context, userID string) error
	Count(ctx context.Context) (int, error)
}
