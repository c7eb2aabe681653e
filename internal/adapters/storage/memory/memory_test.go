package memory

import (
	"context"
	"testing"
	"time"

	"pawfam-api/internal/domain/daycare"
	"pawfam-api/internal/domain/orders"
	"pawfam-api/internal/domain/users"
	"pawfam-api/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestUserRepo_UniqueKeysIgnoreCase(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, users.User{ID: "u1", Username: "Nina", Email: "nina@example.com", CreatedAt: t0}))
	assert.ErrorIs(t, repo.Create(ctx, users.User{ID: "u2", Username: "nina", Email: "other@example.com"}), apperr.ErrConflict)
	assert.ErrorIs(t, repo.Create(ctx, users.User{ID: "u3", Username: "x", Email: "NINA@example.com"}), apperr.ErrConflict)
	assert.ErrorIs(t, repo.Create(ctx, users.User{ID: "u1", Username: "y", Email: "y@example.com"}), apperr.ErrConflict)

	u, err := repo.GetByUsername(ctx, "NINA")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	require.NoError(t, repo.UpdatePassword(ctx, "u1", "hash-2", t0.Add(time.Hour)))
	u, err = repo.GetByEmail(ctx, " Nina@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "hash-2", u.PasswordHash)

	assert.ErrorIs(t, repo.UpdatePassword(ctx, "ghost", "h", t0), apperr.ErrNotFound)
}

func TestBookingRepo_ListsNewestFirst(t *testing.T) {
	repo := NewBookingRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, daycare.Booking{ID: "old", UserID: "u1", CreatedAt: t0}))
	require.NoError(t, repo.Create(ctx, daycare.Booking{ID: "new", UserID: "u1", DaycareCenterID: "c1", VendorID: "v1", CreatedAt: t0.Add(time.Hour)}))
	require.NoError(t, repo.Create(ctx, daycare.Booking{ID: "other", UserID: "u2", DaycareCenterID: "c2", CreatedAt: t0}))

	mine, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "new", mine[0].ID)

	byCenter, err := repo.ListByCenterIDs(ctx, []string{"c1", "c2"})
	require.NoError(t, err)
	assert.Len(t, byCenter, 2)

	unlinked, err := repo.ListUnlinked(ctx)
	require.NoError(t, err)
	require.Len(t, unlinked, 1)
	assert.Equal(t, "old", unlinked[0].ID)

	none, err := repo.ListByVendor(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestOrderRepo_CopiesItems(t *testing.T) {
	repo := NewOrderRepo()
	ctx := context.Background()

	items := []orders.Item{{Name: "Rope", Quantity: 1}, {ProductID: "p1", VendorID: "v1", Name: "Bone", Quantity: 1}}
	require.NoError(t, repo.Create(ctx, orders.Order{ID: "o1", UserID: "u1", Items: items, CreatedAt: t0}))
	items[0].Name = "mutated"

	got, err := repo.GetByID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, "Rope", got.Items[0].Name)

	byVendor, err := repo.ListByVendor(ctx, "v1")
	require.NoError(t, err)
	assert.Len(t, byVendor, 1)
	unlinked, err := repo.ListUnlinked(ctx)
	require.NoError(t, err)
	assert.Len(t, unlinked, 1)

	require.NoError(t, repo.Delete(ctx, "o1"))
	assert.ErrorIs(t, repo.Delete(ctx, "o1"), apperr.ErrNotFound)
}
