package jwt

import (
	"context"
	"testing"
	"time"

	"pawfam-api/internal/ports/auth"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	m, err := New("test-secret", time.Hour)
	require.NoError(t, err)

	tok, err := m.Issue(context.Background(), auth.Claims{UserID: "u-1", Email: "a@b.co", Role: auth.RoleVendor})
	require.NoError(t, err)

	c, err := m.Verify(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, auth.Claims{UserID: "u-1", Email: "a@b.co", Role: auth.RoleVendor}, c)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m, err := New("test-secret", time.Minute)
	require.NoError(t, err)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tok, err := m.Issue(context.Background(), auth.Claims{UserID: "u-1", Role: auth.RoleCustomer})
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Verify(context.Background(), tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsOtherSecretAndAlg(t *testing.T) {
	a, _ := New("secret-a", time.Hour)
	b, _ := New("secret-b", time.Hour)

	tok, err := a.Issue(context.Background(), auth.Claims{UserID: "u-1"})
	require.NoError(t, err)
	_, err = b.Verify(context.Background(), tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	none := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.MapClaims{"userId": "u-1"})
	unsigned, err := none.SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = a.Verify(context.Background(), unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewRequiresSecret(t *testing.T) {
	_, err := New("  ", time.Hour)
	assert.Error(t, err)
}
