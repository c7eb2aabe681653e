// Package jwt firma y verifica tokens HS256 con claims {userId, role}.
package jwt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pawfam-api/internal/ports/auth"

	gojwt "github.com/golang-jwt/jwt/v5"
)

const DefaultTTL = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

type claims struct {
	gojwt.RegisteredClaims
	UserID string    `json:"userId"`
	Email  string    `json:"email,omitempty"`
	Role   auth.Role `json:"role"`
}

// Manager implementa auth.TokenIssuer y auth.AuthVerifier.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func New(secret string, ttl time.Duration) (*Manager, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("jwt: secret required")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (m *Manager) Issue(_ context.Context, c auth.Claims) (string, error) {
	now := m.now()
	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   c.UserID,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID: c.UserID,
		Email:  c.Email,
		Role:   c.Role,
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("jwt: sign: %w", err)
	}
	return signed, nil
}

func (m *Manager) Verify(_ context.Context, token string) (auth.Claims, error) {
	var c claims
	parsed, err := gojwt.ParseWithClaims(token, &c, func(t *gojwt.Token) (any, error) {
		return m.secret, nil
	},
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || strings.TrimSpace(c.UserID) == "" {
		return auth.Claims{}, ErrInvalidToken
	}
	return auth.Claims{UserID: c.UserID, Email: c.Email, Role: c.Role}, nil
}
