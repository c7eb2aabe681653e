package adoptionpets_test

import (
	"context"
	"testing"

	"pawfam-api/internal/adapters/storage/memory"
	"pawfam-api/internal/domain/adoptionpets"
	"pawfam-api/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func input() adoptionpets.Input {
	fee := 0.0
	return adoptionpets.Input{
		Name:        "Luna",
		Type:        "Dog",
		Breed:       "Indie",
		Age:         "1 year",
		Gender:      "Female",
		Size:        "Small",
		Color:       "Black",
		Description: "Playful pup rescued from the highway.",
		Shelter: &adoptionpets.Shelter{
			Name:     "Hope Shelter",
			Location: "Bengaluru",
			Address:  "4 Church Street",
			Phone:    "9876543210",
			Email:    " Care@Shelter.org ",
		},
		AdoptionFee: &fee,
	}
}

func TestCreate_Defaults(t *testing.T) {
	svc := adoptionpets.NewService(memory.NewAdoptionPetRepo(), nil)

	l, err := svc.Create(context.Background(), "vendor-1", input())
	require.NoError(t, err)
	assert.Equal(t, adoptionpets.StatusAvailable, l.Status)
	assert.Equal(t, "Healthy", l.Health.HealthConditions)
	assert.Equal(t, "None", l.SpecialNeeds)
	assert.True(t, l.GoodWith.Kids)
	assert.True(t, l.IsActive)
	assert.Equal(t, "care@shelter.org", l.Shelter.Email)

	snap, err := svc.Snapshot(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, "vendor-1", snap.VendorID)
	assert.Equal(t, "Hope Shelter", snap.Shelter)
	assert.Equal(t, "Bengaluru", snap.Location)
}

func TestCreate_Validation(t *testing.T) {
	svc := adoptionpets.NewService(memory.NewAdoptionPetRepo(), nil)
	ctx := context.Background()

	cases := map[string]func(*adoptionpets.Input){
		"no fee":         func(in *adoptionpets.Input) { in.AdoptionFee = nil },
		"bad type":       func(in *adoptionpets.Input) { in.Type = "Fish" },
		"bad size":       func(in *adoptionpets.Input) { in.Size = "Huge" },
		"short desc":     func(in *adoptionpets.Input) { in.Description = "Cute" },
		"shelter phone":  func(in *adoptionpets.Input) { in.Shelter.Phone = "1234567890" },
		"shelter absent": func(in *adoptionpets.Input) { in.Shelter.Address = " " },
	}
	for name, mod := range cases {
		t.Run(name, func(t *testing.T) {
			in := input()
			sh := *in.Shelter
			in.Shelter = &sh
			mod(&in)
			_, err := svc.Create(ctx, "vendor-1", in)
			assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
		})
	}
}

func TestUpdate_MergesAndHidesInactive(t *testing.T) {
	svc := adoptionpets.NewService(memory.NewAdoptionPetRepo(), nil)
	ctx := context.Background()
	l, err := svc.Create(ctx, "vendor-1", input())
	require.NoError(t, err)

	_, err = svc.Update(ctx, "vendor-2", l.ID, adoptionpets.Input{Color: "White"})
	assert.EqualError(t, err, "Pet not found or unauthorized")

	inactive := false
	got, err := svc.Update(ctx, "vendor-1", l.ID, adoptionpets.Input{
		Shelter:  &adoptionpets.Shelter{Phone: "9123456780"},
		Status:   "Pending",
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "9123456780", got.Shelter.Phone)
	assert.Equal(t, "Hope Shelter", got.Shelter.Name)
	assert.Equal(t, adoptionpets.StatusPending, got.Status)

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	mine, err := svc.ListByVendor(ctx, "vendor-1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	_, err = svc.Update(ctx, "vendor-1", l.ID, adoptionpets.Input{Status: "Sold"})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}
