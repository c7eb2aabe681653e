package users

import (
	"context"
	"time"
)

type Repository interface {
	// Create devuelve apperr.ErrConflict si email o username ya existen.
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	UpdatePassword(ctx context.Context, id, hash string, at time.Time) error
}

// ResetCodeStore guarda el OTP de recuperación por email con expiración.
// Get devuelve apperr.ErrNotFound si no hay código vigente.
type ResetCodeStore interface {
	Save(ctx context.Context, email, code string, ttl time.Duration) error
	Get(ctx context.Context, email string) (string, error)
	Delete(ctx context.Context, email string) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
