package daycarecenters_test

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"pawfam-api/internal/adapters/storage/memory"
	"pawfam-api/internal/domain/daycarecenters"
	"pawfam-api/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	keys []string
	err  error
}

func (s *fakeStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.keys = append(s.keys, key)
	return "https://cdn.example.com/" + key, nil
}

func input() daycarecenters.Input {
	price, capacity := 650.0, 12
	return daycarecenters.Input{
		Name:           "Happy Paws",
		Location:       "Indiranagar",
		Address:        "100 Feet Road",
		City:           "Bengaluru",
		State:          "Karnataka",
		ZipCode:        "560038",
		Phone:          "9876543210",
		Email:          "Desk@HappyPaws.in",
		PricePerDay:    &price,
		Capacity:       &capacity,
		Description:    "Spacious daycare with trained staff.",
		Services:       []string{"Day Care", "Pet Taxi"},
		PetTypes:       []string{"Dog"},
		OperatingHours: &daycarecenters.OperatingHours{OpenTime: "08:00", CloseTime: "19:00"},
	}
}

func TestCreate_DefaultsAndUploads(t *testing.T) {
	store := &fakeStore{}
	svc := daycarecenters.NewService(memory.NewDaycareCenterRepo(), store)

	in := input()
	in.Images = []string{
		"data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png-bytes")),
		"https://example.com/already-hosted.jpg",
	}
	c, err := svc.Create(context.Background(), "vendor-1", in)
	require.NoError(t, err)

	assert.True(t, c.IsActive)
	assert.Equal(t, "desk@happypaws.in", c.Email)
	assert.Equal(t, []string{}, c.Facilities)
	require.Len(t, store.keys, 1)
	assert.True(t, strings.HasPrefix(store.keys[0], "daycare-centers/"))
	assert.True(t, strings.HasSuffix(store.keys[0], ".png"))
	assert.Equal(t, "https://cdn.example.com/"+store.keys[0], c.Images[0])
	assert.Equal(t, "https://example.com/already-hosted.jpg", c.Images[1])

	snap, err := svc.Snapshot(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, daycarecenters.Snapshot{CenterID: c.ID, VendorID: "vendor-1", Name: "Happy Paws", Location: "Indiranagar", PricePerDay: 650}, snap)
}

func TestCreate_Validation(t *testing.T) {
	svc := daycarecenters.NewService(memory.NewDaycareCenterRepo(), nil)
	ctx := context.Background()

	cases := map[string]func(*daycarecenters.Input){
		"missing price":   func(in *daycarecenters.Input) { in.PricePerDay = nil },
		"short zip":       func(in *daycarecenters.Input) { in.ZipCode = "5600" },
		"phone prefix":    func(in *daycarecenters.Input) { in.Phone = "1234567890" },
		"zero capacity":   func(in *daycarecenters.Input) { zero := 0; in.Capacity = &zero },
		"unknown service": func(in *daycarecenters.Input) { in.Services = []string{"Spa"} },
		"short desc":      func(in *daycarecenters.Input) { in.Description = "Too short" },
		"no close time":   func(in *daycarecenters.Input) { in.OperatingHours = &daycarecenters.OperatingHours{OpenTime: "08:00"} },
		"bad image":       func(in *daycarecenters.Input) { in.Images = []string{"data:image/png,raw"} },
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

func TestCreate_UploadFailure(t *testing.T) {
	svc := daycarecenters.NewService(memory.NewDaycareCenterRepo(), &fakeStore{err: errors.New("s3 down")})
	in := input()
	in.Images = []string{"data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("jpg"))}

	_, err := svc.Create(context.Background(), "vendor-1", in)
	assert.ErrorContains(t, err, "s3 down")
}

func TestUpdateDelete_OnlyOwner(t *testing.T) {
	svc := daycarecenters.NewService(memory.NewDaycareCenterRepo(), nil)
	ctx := context.Background()
	c, err := svc.Create(ctx, "vendor-1", input())
	require.NoError(t, err)

	_, err = svc.Update(ctx, "vendor-2", c.ID, daycarecenters.Input{Name: "Stolen"})
	assert.EqualError(t, err, "Center not found or unauthorized")

	inactive := false
	got, err := svc.Update(ctx, "vendor-1", c.ID, daycarecenters.Input{Name: "Happy Paws Plus", IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "Happy Paws Plus", got.Name)
	assert.Equal(t, "Indiranagar", got.Location)

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
	mine, err := svc.ListByVendor(ctx, "vendor-1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	_, err = svc.Delete(ctx, "vendor-2", c.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = svc.Delete(ctx, "vendor-1", c.ID)
	require.NoError(t, err)
	_, err = svc.Get(ctx, c.ID)
	assert.EqualError(t, err, "Center not found")
}
