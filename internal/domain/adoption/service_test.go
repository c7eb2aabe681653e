package adoption_test

import (
	"context"
	"testing"

	"pawfam-api/internal/adapters/storage/memory"
	"pawfam-api/internal/domain/adoption"
	"pawfam-api/internal/domain/adoptionpets"
	"pawfam-api/internal/domain/history"
	"pawfam-api/internal/domain/lifecycle"
	"pawfam-api/internal/platform/apperr"
	"pawfam-api/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServices() (*adoption.Service, *adoptionpets.Service, *history.Service) {
	pets := adoptionpets.NewService(memory.NewAdoptionPetRepo(), nil)
	hist := history.NewService(memory.NewHistoryRepo(), nil)
	return adoption.NewService(memory.NewApplicationRepo(), pets, hist), pets, hist
}

func listing(t *testing.T, svc *adoptionpets.Service, vendorID, name, shelter string) adoptionpets.Listing {
	t.Helper()
	fee := 1500.0
	l, err := svc.Create(context.Background(), vendorID, adoptionpets.Input{
		Name:        name,
		Type:        "Dog",
		Breed:       "Indie",
		Age:         "2 years",
		Gender:      "Female",
		Size:        "Medium",
		Color:       "Brown",
		Description: "Gentle and house trained, loves walks.",
		Shelter: &adoptionpets.Shelter{
			Name:     shelter,
			Location: "Bengaluru",
			Address:  "4 Church Street",
			Phone:    "9876543210",
			Email:    "care@shelter.org",
		},
		AdoptionFee: &fee,
	})
	require.NoError(t, err)
	return l
}

func applyInput(pet adoption.PetSnapshot) adoption.CreateInput {
	return adoption.CreateInput{
		Pet:            &pet,
		PersonalInfo:   &adoption.PersonalInfo{FullName: "Asha Rao", Email: "Asha@Example.com", Phone: "9876543210", Address: "12 MG Road"},
		Experience:     &adoption.Experience{Level: "beginner"},
		VisitSchedule:  &adoption.VisitInput{Date: "2025-02-01", Time: "10:00"},
		AdoptionReason: "Looking for a companion",
	}
}

func TestCreate_SnapshotsCatalogPet(t *testing.T) {
	svc, pets, hist := newServices()
	l := listing(t, pets, "vendor-1", "Luna", "Hope Shelter")

	a, err := svc.Create(context.Background(), "user-1", applyInput(adoption.PetSnapshot{ID: l.ID, Name: "x", Type: "x", Breed: "x"}))
	require.NoError(t, err)

	assert.Equal(t, "vendor-1", a.VendorID)
	assert.Equal(t, "Luna", a.Pet.Name)
	assert.Equal(t, "Hope Shelter", a.Pet.Shelter)
	assert.Equal(t, "2 years", a.Pet.Age)
	assert.Equal(t, "asha@example.com", a.PersonalInfo.Email)
	assert.Equal(t, "no", a.Experience.OtherPets)
	assert.Equal(t, lifecycle.ApplicationPending, a.Status)

	entries, err := hist.ListByEntity(context.Background(), lifecycle.KindApplication, a.ID, 10)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCreate_Validation(t *testing.T) {
	svc, _, _ := newServices()
	ctx := context.Background()
	pet := adoption.PetSnapshot{ID: "p1", Name: "Kiwi", Type: "Cat", Breed: "Persian"}

	noReason := applyInput(pet)
	noReason.AdoptionReason = " "
	_, err := svc.Create(ctx, "user-1", noReason)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	noBreed := applyInput(adoption.PetSnapshot{ID: "p1", Name: "Kiwi", Type: "Cat"})
	_, err = svc.Create(ctx, "user-1", noBreed)
	assert.EqualError(t, err, "Invalid pet information. Required: id, name, type, breed")

	badDate := applyInput(pet)
	badDate.VisitSchedule = &adoption.VisitInput{Date: "soon", Time: "10:00"}
	_, err = svc.Create(ctx, "user-1", badDate)
	assert.EqualError(t, err, "Invalid date format")

	noLevel := applyInput(pet)
	noLevel.Experience = &adoption.Experience{}
	_, err = svc.Create(ctx, "user-1", noLevel)
	assert.EqualError(t, err, "Experience level is required")
}

func TestRevoke_LocksApplication(t *testing.T) {
	svc, _, _ := newServices()
	ctx := context.Background()
	a, err := svc.Create(ctx, "user-1", applyInput(adoption.PetSnapshot{ID: "p1", Name: "Kiwi", Type: "Cat", Breed: "Persian"}))
	require.NoError(t, err)

	_, err = svc.Revoke(ctx, "user-2", a.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	got, err := svc.Revoke(ctx, "user-1", a.ID)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.ApplicationRejected, got.Status)

	reason := "new reason"
	_, err = svc.Update(ctx, "user-1", a.ID, adoption.UpdateInput{AdoptionReason: &reason})
	assert.ErrorIs(t, err, apperr.ErrPreconditionFailed)

	_, err = svc.Revoke(ctx, "user-1", a.ID)
	assert.EqualError(t, err, "Cannot revoke an application that has been approved or rejected")
}

func TestUpdate_PartialMerge(t *testing.T) {
	svc, _, _ := newServices()
	ctx := context.Background()
	a, err := svc.Create(ctx, "user-1", applyInput(adoption.PetSnapshot{ID: "p1", Name: "Kiwi", Type: "Cat", Breed: "Persian"}))
	require.NoError(t, err)

	details := "Had cats for ten years"
	got, err := svc.Update(ctx, "user-1", a.ID, adoption.UpdateInput{
		PersonalInfo:  &adoption.PersonalInfo{Phone: "9123456780"},
		Experience:    &adoption.ExperienceUpdate{Details: &details},
		VisitSchedule: &adoption.VisitInput{Time: "16:30"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", got.PersonalInfo.FullName)
	assert.Equal(t, "9123456780", got.PersonalInfo.Phone)
	assert.Equal(t, "beginner", got.Experience.Level)
	assert.Equal(t, details, got.Experience.Details)
	assert.Equal(t, "16:30", got.VisitSchedule.Time)
	assert.Equal(t, a.VisitSchedule.Date, got.VisitSchedule.Date)
	assert.Equal(t, "Kiwi", got.Pet.Name)

	_, err = svc.Update(ctx, "user-1", a.ID, adoption.UpdateInput{PersonalInfo: &adoption.PersonalInfo{Email: "broken"}})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestUpdate_RejectsBlankReason(t *testing.T) {
	svc, _, _ := newServices()
	ctx := context.Background()
	a, err := svc.Create(ctx, "user-1", applyInput(adoption.PetSnapshot{ID: "p1", Name: "Kiwi", Type: "Cat", Breed: "Persian"}))
	require.NoError(t, err)

	blank := "   "
	_, err = svc.Update(ctx, "user-1", a.ID, adoption.UpdateInput{AdoptionReason: &blank})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
	assert.EqualError(t, err, "Adoption reason is required")

	got, err := svc.GetOwned(ctx, "user-1", a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Looking for a companion", got.AdoptionReason)
}

func TestSetStatus_AnyEnumValue(t *testing.T) {
	svc, _, _ := newServices()
	ctx := context.Background()
	a, err := svc.Create(ctx, "user-1", applyInput(adoption.PetSnapshot{ID: "p1", Name: "Kiwi", Type: "Cat", Breed: "Persian"}))
	require.NoError(t, err)
	actor := auth.Claims{UserID: "vendor-1", Role: auth.RoleVendor}

	for _, st := range []string{"approved", "pending", "scheduled", "scheduled"} {
		got, err := svc.SetStatus(ctx, actor, a.ID, st)
		require.NoError(t, err)
		assert.Equal(t, lifecycle.ApplicationStatus(st), got.Status)
	}
	_, err = svc.SetStatus(ctx, actor, a.ID, "adopted")
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestListForVendor_Union(t *testing.T) {
	svc, pets, _ := newServices()
	ctx := context.Background()
	luna := listing(t, pets, "vendor-1", "Luna", "Hope Shelter")
	listing(t, pets, "vendor-2", "Max", "Paws Trust")

	linked, err := svc.Create(ctx, "user-1", applyInput(adoption.PetSnapshot{ID: luna.ID, Name: "Luna", Type: "Dog", Breed: "Indie"}))
	require.NoError(t, err)
	legacy, err := svc.Create(ctx, "user-2", applyInput(adoption.PetSnapshot{ID: "old-id", Name: "luna", Type: "Dog", Breed: "Indie", Shelter: "HOPE shelter"}))
	require.NoError(t, err)
	_, err = svc.Create(ctx, "user-3", applyInput(adoption.PetSnapshot{ID: "old-2", Name: "Max", Type: "Dog", Breed: "Indie", Shelter: "Paws Trust"}))
	require.NoError(t, err)

	got, err := svc.ListForVendor(ctx, "vendor-1")
	require.NoError(t, err)
	ids := []string{}
	for _, a := range got {
		ids = append(ids, a.ID)
	}
	assert.ElementsMatch(t, []string{linked.ID, legacy.ID}, ids)
}
