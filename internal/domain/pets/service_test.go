package pets_test

import (
	"context"
	"testing"

	"pawfam-api/internal/adapters/storage/memory"
	"pawfam-api/internal/domain/pets"
	"pawfam-api/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func age(n int) *int { return &n }

func TestCreate_ValidatesCategoryAndBreed(t *testing.T) {
	svc := pets.NewService(memory.NewPetRepo())
	ctx := context.Background()

	p, err := svc.Create(ctx, "owner-1", pets.Input{Category: "Dog", Breed: "Beagle", Name: " Milo ", Age: age(3)})
	require.NoError(t, err)
	assert.Equal(t, "Milo", p.Name)
	assert.Equal(t, pets.CategoryDog, p.Category)

	cases := map[string]pets.Input{
		"missing age":    {Category: "Dog", Breed: "Beagle", Name: "Milo"},
		"bad category":   {Category: "Bird", Breed: "Beagle", Name: "Milo", Age: age(1)},
		"breed mismatch": {Category: "Cat", Breed: "Beagle", Name: "Milo", Age: age(1)},
		"age too high":   {Category: "Dog", Breed: "Beagle", Name: "Milo", Age: age(31)},
		"short name":     {Category: "Dog", Breed: "Beagle", Name: "M", Age: age(1)},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(ctx, "owner-1", in)
			assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
		})
	}

	_, err = svc.Create(ctx, "", pets.Input{Category: "Dog", Breed: "Beagle", Name: "Milo", Age: age(3)})
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestOwnership(t *testing.T) {
	svc := pets.NewService(memory.NewPetRepo())
	ctx := context.Background()

	p, err := svc.Create(ctx, "owner-1", pets.Input{Category: "Cat", Breed: "Persian", Name: "Kiwi", Age: age(2)})
	require.NoError(t, err)

	_, err = svc.GetOwned(ctx, p.ID, "owner-2")
	assert.EqualError(t, err, "Pet not found")
	_, err = svc.Update(ctx, p.ID, "owner-2", pets.Input{Category: "Cat", Breed: "Bengal", Name: "Kiwi", Age: age(2)})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = svc.Delete(ctx, p.ID, "owner-2")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	got, err := svc.Update(ctx, p.ID, "owner-1", pets.Input{Category: "Cat", Breed: "Bengal", Name: "Kiwi", Age: age(4)})
	require.NoError(t, err)
	assert.Equal(t, "Bengal", got.Breed)
	assert.Equal(t, 4, got.Age)

	list, err := svc.ListByOwner(ctx, "owner-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.Delete(ctx, p.ID, "owner-1")
	require.NoError(t, err)
	list, err = svc.ListByOwner(ctx, "owner-1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestBreeds(t *testing.T) {
	assert.Contains(t, pets.Breeds(pets.CategoryCat), "Maine Coon")
	assert.Empty(t, pets.Breeds(pets.Category("Fish")))
}
