package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"pawfam-api/internal/domain/users"
	"pawfam-api/internal/ports/auth"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

const userColumns = `id, username, email, password_hash, role, created_at, updated_at`

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		u.ID,
		u.Username,
		strings.ToLower(u.Email),
		u.PasswordHash,
		string(u.Role),
		u.CreatedAt,
		u.UpdatedAt,
	)
	return mapErr(err)
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	return r.getBy(ctx, "id", strings.TrimSpace(id))
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	return r.getBy(ctx, "email", strings.ToLower(strings.TrimSpace(email)))
}

func (r *UsersRepo) GetByUsername(ctx context.Context, username string) (users.User, error) {
	return r.getBy(ctx, "lower(username)", strings.ToLower(strings.TrimSpace(username)))
}

func (r *UsersRepo) UpdatePassword(ctx context.Context, id, hash string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET password_hash = $2, updated_at = $3 WHERE id = $1
	`, id, hash, at)
	if err != nil {
		return mapErr(err)
	}
	return affected(res)
}

// column viene de los getters de arriba, nunca del request.
func (r *UsersRepo) getBy(ctx context.Context, column, value string) (users.User, error) {
	if value == "" {
		return users.User{}, ErrNotFound
	}

	var u users.User
	var role string
	err := r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+` FROM users WHERE `+column+` = $1
	`, value).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&role,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return users.User{}, mapErr(err)
	}
	u.Role = auth.Role(role)
	return u, nil
}
