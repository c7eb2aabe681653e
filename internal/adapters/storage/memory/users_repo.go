package memory

import (
	"context"
	"strings"
	"time"

	"pawfam-api/internal/domain/users"
	"pawfam-api/internal/platform/apperr"
)

type userRepo struct {
	c *collection[users.User]
}

func NewUserRepo() users.Repository {
	return &userRepo{c: newCollection(
		func(u users.User) string { return u.ID },
		func(u users.User) time.Time { return u.CreatedAt },
		uniqueKey[users.User]{name: "email", value: func(u users.User) string { return u.Email }},
		uniqueKey[users.User]{name: "username", value: func(u users.User) string { return u.Username }},
	)}
}

func (r *userRepo) Create(ctx context.Context, u users.User) error {
	return r.c.insert(u)
}

func (r *userRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	return r.c.get(id)
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.c.first(func(u users.User) bool { return u.Email == email })
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (users.User, error) {
	username = strings.TrimSpace(username)
	return r.c.first(func(u users.User) bool { return strings.EqualFold(u.Username, username) })
}

func (r *userRepo) UpdatePassword(ctx context.Context, id, hash string, at time.Time) error {
	u, err := r.c.get(id)
	if err != nil {
		return err
	}
	if strings.TrimSpace(hash) == "" {
		return apperr.Invalid("password hash required")
	}
	u.PasswordHash = hash
	u.UpdatedAt = at
	return r.c.replace(u)
}
