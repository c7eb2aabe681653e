package auth

import "context"

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer firma tokens para un principal recién autenticado.
type TokenIssuer interface {
	Issue(ctx context.Context, c Claims) (string, error)
}
