package daycare_test

import (
	"context"
	"testing"

	"pawfam-api/internal/adapters/storage/memory"
	"pawfam-api/internal/domain/daycare"
	"pawfam-api/internal/domain/daycarecenters"
	"pawfam-api/internal/domain/history"
	"pawfam-api/internal/domain/lifecycle"
	"pawfam-api/internal/platform/apperr"
	"pawfam-api/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc     *daycare.Service
	centers *daycarecenters.Service
	history *history.Service
}

func newFixture() fixture {
	hist := history.NewService(memory.NewHistoryRepo(), nil)
	centers := daycarecenters.NewService(memory.NewDaycareCenterRepo(), nil)
	return fixture{
		svc:     daycare.NewService(memory.NewBookingRepo(), centers, hist),
		centers: centers,
		history: hist,
	}
}

func (f fixture) center(t *testing.T, vendorID, name, location string, price float64) daycarecenters.Center {
	t.Helper()
	capacity := 10
	c, err := f.centers.Create(context.Background(), vendorID, daycarecenters.Input{
		Name:           name,
		Location:       location,
		Address:        "100 Feet Road",
		City:           "Bengaluru",
		State:          "Karnataka",
		ZipCode:        "560038",
		Phone:          "9876543210",
		Email:          "desk@example.com",
		PricePerDay:    &price,
		Capacity:       &capacity,
		Description:    "Spacious daycare with trained staff.",
		OperatingHours: &daycarecenters.OperatingHours{OpenTime: "08:00", CloseTime: "19:00"},
	})
	require.NoError(t, err)
	return c
}

func bookingInput(mod func(*daycare.CreateInput)) daycare.CreateInput {
	in := daycare.CreateInput{
		PetName:      "Bruno",
		PetType:      "dog",
		PetAge:       "2",
		Email:        "Owner@Example.com",
		MobileNumber: "9876543210",
		StartDate:    "2025-01-10",
		EndDate:      "2025-01-13",
	}
	if mod != nil {
		mod(&in)
	}
	return in
}

func TestCreate_UsesCatalogSnapshotAndComputesTotal(t *testing.T) {
	f := newFixture()
	c := f.center(t, "vendor-1", "Happy Paws", "Indiranagar", 500)

	b, err := f.svc.Create(context.Background(), "user-1", bookingInput(func(in *daycare.CreateInput) {
		in.DaycareCenterID = c.ID
		in.Center = &daycare.CenterSnapshot{Name: "Spoofed", PricePerDay: 1}
	}))
	require.NoError(t, err)

	assert.Equal(t, 1500.0, b.TotalAmount)
	assert.Equal(t, "Happy Paws", b.Center.Name)
	assert.Equal(t, "vendor-1", b.VendorID)
	assert.Equal(t, c.ID, b.DaycareCenterID)
	assert.Equal(t, "Dog", b.PetType)
	assert.Equal(t, "owner@example.com", b.Email)
	assert.Equal(t, lifecycle.BookingPending, b.Status)

	entries, err := f.history.ListByEntity(context.Background(), lifecycle.KindBooking, b.ID, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, history.EventCreated, entries[0].Type)
}

func TestCreate_UnknownCenterFallsBackToClientSnapshot(t *testing.T) {
	f := newFixture()

	b, err := f.svc.Create(context.Background(), "user-1", bookingInput(func(in *daycare.CreateInput) {
		in.DaycareCenterID = "gone"
		in.Center = &daycare.CenterSnapshot{Name: "Old Place", Location: "Jayanagar", PricePerDay: 300}
	}))
	require.NoError(t, err)
	assert.Empty(t, b.VendorID)
	assert.Empty(t, b.DaycareCenterID)
	assert.Equal(t, 900.0, b.TotalAmount)
}

func TestCreate_Validation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	snap := &daycare.CenterSnapshot{Name: "X", PricePerDay: 100}

	cases := map[string]daycare.CreateInput{
		"missing email":  bookingInput(func(in *daycare.CreateInput) { in.Email = ""; in.Center = snap }),
		"short mobile":   bookingInput(func(in *daycare.CreateInput) { in.MobileNumber = "12345"; in.Center = snap }),
		"bad pet type":   bookingInput(func(in *daycare.CreateInput) { in.PetType = "Hamster"; in.Center = snap }),
		"bad date":       bookingInput(func(in *daycare.CreateInput) { in.StartDate = "10/01/2025"; in.Center = snap }),
		"no center":      bookingInput(nil),
		"end not after":  bookingInput(func(in *daycare.CreateInput) { in.EndDate = in.StartDate; in.Center = snap }),
		"negative price": bookingInput(func(in *daycare.CreateInput) { in.Center = &daycare.CenterSnapshot{Name: "X", PricePerDay: -1} }),
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.svc.Create(ctx, "user-1", in)
			assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
		})
	}
}

func TestUpdate_TerminalBookingIsLocked(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	b, err := f.svc.Create(ctx, "user-1", bookingInput(func(in *daycare.CreateInput) {
		in.Center = &daycare.CenterSnapshot{Name: "X", PricePerDay: 100}
	}))
	require.NoError(t, err)

	_, err = f.svc.Cancel(ctx, "user-1", b.ID)
	require.NoError(t, err)

	_, err = f.svc.Update(ctx, "user-1", b.ID, daycare.UpdateInput{PetName: "Rex"})
	assert.ErrorIs(t, err, apperr.ErrPreconditionFailed)
	assert.EqualError(t, err, "Cannot edit a booking that is completed or cancelled")

	_, err = f.svc.Cancel(ctx, "user-1", b.ID)
	assert.ErrorIs(t, err, apperr.ErrPreconditionFailed)

	// el delete no pasa por el guard
	_, err = f.svc.Delete(ctx, "user-1", b.ID)
	assert.NoError(t, err)
}

func TestSetStatus_IdempotentAndOwnershipFree(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	b, err := f.svc.Create(ctx, "user-1", bookingInput(func(in *daycare.CreateInput) {
		in.Center = &daycare.CenterSnapshot{Name: "X", PricePerDay: 100}
	}))
	require.NoError(t, err)

	actor := auth.Claims{UserID: "vendor-9", Role: auth.RoleVendor}
	for i := 0; i < 2; i++ {
		got, err := f.svc.SetStatus(ctx, actor, b.ID, "confirmed")
		require.NoError(t, err)
		assert.Equal(t, lifecycle.BookingConfirmed, got.Status)
	}

	_, err = f.svc.SetStatus(ctx, actor, b.ID, "lost")
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
	_, err = f.svc.SetStatus(ctx, actor, "missing", "confirmed")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestGetOwned_HidesOtherUsersBookings(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	b, err := f.svc.Create(ctx, "user-1", bookingInput(func(in *daycare.CreateInput) {
		in.Center = &daycare.CenterSnapshot{Name: "X", PricePerDay: 100}
	}))
	require.NoError(t, err)

	_, err = f.svc.GetOwned(ctx, "user-2", b.ID)
	assert.EqualError(t, err, "Booking not found")
	_, err = f.svc.Update(ctx, "user-2", b.ID, daycare.UpdateInput{PetName: "Rex"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListMine_Search(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	for _, pet := range []string{"Bruno", "Kiwi"} {
		_, err := f.svc.Create(ctx, "user-1", bookingInput(func(in *daycare.CreateInput) {
			in.PetName = pet
			in.Center = &daycare.CenterSnapshot{Name: "Happy Paws", PricePerDay: 100}
		}))
		require.NoError(t, err)
	}

	all, err := f.svc.ListMine(ctx, "user-1", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	got, err := f.svc.ListMine(ctx, "user-1", "KIW")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Kiwi", got[0].PetName)

	got, err = f.svc.ListMine(ctx, "user-1", "happy")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestListForVendor_UnionWithoutDuplicates(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	mine := f.center(t, "vendor-1", "Happy Paws", "Indiranagar", 500)
	f.center(t, "vendor-2", "Other Place", "Koramangala", 400)

	linked, err := f.svc.Create(ctx, "user-1", bookingInput(func(in *daycare.CreateInput) { in.DaycareCenterID = mine.ID }))
	require.NoError(t, err)
	legacy, err := f.svc.Create(ctx, "user-2", bookingInput(func(in *daycare.CreateInput) {
		in.Center = &daycare.CenterSnapshot{Name: " HAPPY paws", Location: "indiranagar ", PricePerDay: 450}
	}))
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, "user-3", bookingInput(func(in *daycare.CreateInput) {
		in.Center = &daycare.CenterSnapshot{Name: "Happy Paws", Location: "Whitefield", PricePerDay: 450}
	}))
	require.NoError(t, err)

	got, err := f.svc.ListForVendor(ctx, "vendor-1")
	require.NoError(t, err)
	ids := []string{}
	for _, b := range got {
		ids = append(ids, b.ID)
	}
	assert.ElementsMatch(t, []string{linked.ID, legacy.ID}, ids)

	none, err := f.svc.ListForVendor(ctx, "vendor-3")
	require.NoError(t, err)
	assert.Empty(t, none)
}
