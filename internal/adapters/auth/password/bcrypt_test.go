package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	hash, err := h.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, h.Compare(hash, "s3cret-pass"))
	assert.Error(t, h.Compare(hash, "wrong"))
}

func TestNewBcryptClampsCost(t *testing.T) {
	assert.Equal(t, DefaultCost, NewBcrypt(0).Cost)
	assert.Equal(t, DefaultCost, NewBcrypt(99).Cost)
}
