package accessories_test

import (
	"context"
	"testing"

	"pawfam-api/internal/adapters/storage/memory"
	"pawfam-api/internal/domain/accessories"
	"pawfam-api/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func input() accessories.Input {
	price, stock := 349.0, 10
	return accessories.Input{
		Name:        "Cozy Bed",
		Category:    "Bedding",
		PetType:     "All Pets",
		Description: "Washable bed with memory foam base.",
		Brand:       "SnoozePaw",
		Price:       &price,
		Stock:       &stock,
	}
}

func TestCreate_AndVendorOf(t *testing.T) {
	svc := accessories.NewService(memory.NewAccessoryRepo(), nil)
	ctx := context.Background()

	p, err := svc.Create(ctx, "vendor-1", input())
	require.NoError(t, err)
	assert.True(t, p.IsActive)
	assert.Equal(t, []string{}, p.Tags)

	v, err := svc.VendorOf(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "vendor-1", v)

	_, err = svc.VendorOf(ctx, "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCreate_Validation(t *testing.T) {
	svc := accessories.NewService(memory.NewAccessoryRepo(), nil)
	ctx := context.Background()

	cases := map[string]func(*accessories.Input){
		"missing brand":  func(in *accessories.Input) { in.Brand = "" },
		"bad category":   func(in *accessories.Input) { in.Category = "Furniture" },
		"bad pet type":   func(in *accessories.Input) { in.PetType = "Fish" },
		"negative stock": func(in *accessories.Input) { n := -1; in.Stock = &n },
		"negative price": func(in *accessories.Input) { n := -5.0; in.Price = &n },
	}
	for name, mod := range cases {
		t.Run(name, func(t *testing.T) {
			in := input()
			mod(&in)
			_, err := svc.Create(ctx, "vendor-1", in)
			assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
		})
	}
}

func TestUpdate_OnlyOwner(t *testing.T) {
	svc := accessories.NewService(memory.NewAccessoryRepo(), nil)
	ctx := context.Background()
	p, err := svc.Create(ctx, "vendor-1", input())
	require.NoError(t, err)

	price := 299.0
	_, err = svc.Update(ctx, "vendor-2", p.ID, accessories.Input{Price: &price})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	got, err := svc.Update(ctx, "vendor-1", p.ID, accessories.Input{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 299.0, got.Price)
	assert.Equal(t, "Cozy Bed", got.Name)
}
