package users

import (
	"time"

	"pawfam-api/internal/ports/auth"
)

type User struct {
	ID           string
	Username     string
	Email        string // siempre en minúsculas
	PasswordHash string
	Role         auth.Role

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Session es lo que devuelven register/login.
type Session struct {
	Token string
	User  User
}
