package profiles_test

import (
	"context"
	"testing"

	"pawfam-api/internal/adapters/storage/memory"
	"pawfam-api/internal/domain/profiles"
	"pawfam-api/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *profiles.Service {
	return profiles.NewService(memory.NewUserProfileRepo(), memory.NewVendorProfileRepo())
}

var validInput = profiles.ProfileInput{
	Name:         " Asha Rao ",
	Gender:       "Female",
	MobileNumber: "9876543210",
	Address:      "12 MG Road, Bengaluru",
}

func TestUserProfile_CRUD(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.GetProfile(ctx, "user-1")
	assert.EqualError(t, err, "Profile not found")

	p, err := svc.CreateProfile(ctx, "user-1", validInput)
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", p.Name)
	assert.Equal(t, "12 MG Road, Bengaluru", p.ResidentialAddress)

	_, err = svc.CreateProfile(ctx, "user-1", validInput)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	upd := validInput
	upd.MobileNumber = "9123456780"
	got, err := svc.UpdateProfile(ctx, "user-1", upd)
	require.NoError(t, err)
	assert.Equal(t, "9123456780", got.MobileNumber)
	assert.Equal(t, p.ID, got.ID)

	require.NoError(t, svc.DeleteProfile(ctx, "user-1"))
	assert.ErrorIs(t, svc.DeleteProfile(ctx, "user-1"), apperr.ErrNotFound)
}

func TestUserProfile_Validation(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	cases := map[string]func(*profiles.ProfileInput){
		"missing name":  func(in *profiles.ProfileInput) { in.Name = "" },
		"bad gender":    func(in *profiles.ProfileInput) { in.Gender = "Unknown" },
		"short mobile":  func(in *profiles.ProfileInput) { in.MobileNumber = "98765" },
		"short address": func(in *profiles.ProfileInput) { in.Address = "MG Road" },
	}
	for name, mod := range cases {
		t.Run(name, func(t *testing.T) {
			in := validInput
			mod(&in)
			_, err := svc.CreateProfile(ctx, "user-1", in)
			assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
		})
	}
}

func TestVendorProfile_SequentialCodesSkipTakenOnes(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	v1, err := svc.CreateVendorProfile(ctx, "vendor-1", validInput)
	require.NoError(t, err)
	assert.Equal(t, "VEN000001", v1.VendorID)

	v2, err := svc.CreateVendorProfile(ctx, "vendor-2", validInput)
	require.NoError(t, err)
	assert.Equal(t, "VEN000002", v2.VendorID)

	_, err = svc.CreateVendorProfile(ctx, "vendor-2", validInput)
	assert.EqualError(t, err, "Vendor profile already exists")

	// con un hueco, count+1 ya está tomado
	require.NoError(t, svc.DeleteVendorProfile(ctx, "vendor-1"))
	v3, err := svc.CreateVendorProfile(ctx, "vendor-3", validInput)
	require.NoError(t, err)
	assert.Equal(t, "VEN000003", v3.VendorID)
}

func TestVendorProfile_UpdateKeepsCode(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	v, err := svc.CreateVendorProfile(ctx, "vendor-1", validInput)
	require.NoError(t, err)

	upd := validInput
	upd.Address = "88 Residency Road, Bengaluru"
	got, err := svc.UpdateVendorProfile(ctx, "vendor-1", upd)
	require.NoError(t, err)
	assert.Equal(t, v.VendorID, got.VendorID)
	assert.Equal(t, "88 Residency Road, Bengaluru", got.CommunicationAddress)

	_, err = svc.UpdateVendorProfile(ctx, "vendor-9", upd)
	assert.EqualError(t, err, "No vendor profile found")
}

func TestFormatVendorID(t *testing.T) {
	assert.Equal(t, "VEN000042", profiles.FormatVendorID(42))
}
