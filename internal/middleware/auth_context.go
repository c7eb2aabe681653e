package middleware

import (
	"context"
	"net/http"
	"strings"

	"pawfam-api/internal/platform/httpx"
	"pawfam-api/internal/ports/auth"
)

type ctxKey string

const (
	claimsKey       ctxKey = "claims"
	invalidTokenKey ctxKey = "invalid_token"
)

const (
	HeaderDebugUserID = "X-Debug-User-ID"
	HeaderDebugRole   = "X-Debug-Role"
)

// AuthContext:
// - Si verifier != nil y viene Bearer token => Verify() y setea claims.
// - Si verifier == nil => modo dev: X-Debug-User-ID (+ X-Debug-Role, default customer).
// - Sin claims el request sigue; RequireUser/RequireRole deciden 401/403.
func AuthContext(verifier auth.AuthVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if verifier == nil {
				uid := strings.TrimSpace(r.Header.Get(HeaderDebugUserID))
				if uid == "" {
					next.ServeHTTP(w, r)
					return
				}
				role := auth.Role(strings.ToLower(strings.TrimSpace(r.Header.Get(HeaderDebugRole))))
				if !role.Valid() {
					role = auth.RoleCustomer
				}
				next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), auth.Claims{UserID: uid, Role: role})))
				return
			}

			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				ctx := context.WithValue(r.Context(), invalidTokenKey, true)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func WithClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(auth.Claims)
	if !ok || strings.TrimSpace(c.UserID) == "" {
		return auth.Claims{}, false
	}
	return c, true
}

// RequireUser corta con 401 si no hay principal.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetClaims(r.Context()); !ok {
			if bad, _ := r.Context().Value(invalidTokenKey).(bool); bad {
				httpx.WriteMessage(w, http.StatusUnauthorized, "Token is not valid")
				return
			}
			httpx.WriteMessage(w, http.StatusUnauthorized, "No token, authorization denied")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole incluye RequireUser y además exige el rol (403 si no coincide).
func RequireRole(role auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, _ := GetClaims(r.Context())
			if claims.Role != role {
				msg := "Access denied."
				if role == auth.RoleVendor {
					msg = "Access denied. Vendor role required."
				}
				httpx.WriteMessage(w, http.StatusForbidden, msg)
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}

func bearerToken(authHeader string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
