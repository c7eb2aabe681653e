package validate

import (
	"testing"
	"time"

	"pawfam-api/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
)

func TestCheckerCollectsInOrder(t *testing.T) {
	c := New().
		Required("name", " ").
		OneOf("gender", "male", "Male", "Female", "Other").
		Match("12345", ZipCode6, "ZIP Code must be exactly 6 digits")

	assert.Len(t, c.Problems(), 3)
	err := c.Err()
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
	assert.Equal(t, "name is required", err.Error())
}

func TestCheckerPasses(t *testing.T) {
	err := New().
		Length("description", "A calm and friendly dog", 20, 1000).
		Match("9876543210", IndianPhone, "bad phone").
		MatchOptional("", ZipCode6, "bad zip").
		Range("age", 3, 0, 30).
		NonNegative("price", 0).
		Err()
	assert.NoError(t, err)
}

func TestLengthCountsRunes(t *testing.T) {
	assert.NoError(t, New().Length("name", "Ñu", 2, 50).Err())
	assert.Error(t, New().Length("name", "A", 2, 0).Err())
	assert.Equal(t, "name must be at least 2 characters", New().Length("name", "A", 2, 0).Err().Error())
}

func TestPatterns(t *testing.T) {
	ok := func(v, tag string) bool { return New().Match(v, tag, "bad").Err() == nil }
	assert.True(t, ok("6123456789", IndianPhone))
	assert.False(t, ok("5123456789", IndianPhone))
	assert.True(t, ok("0123456789", Mobile10))
	assert.True(t, ok("a@b.co", EmailPattern))
	assert.False(t, ok("a@b", EmailPattern))
	assert.True(t, ok(" 560001 ", ZipCode6))
}

func TestOneOfQuotesOptionsWithSpaces(t *testing.T) {
	assert.NoError(t, New().OneOf("petType", "All Pets", "Dog", "All Pets").Err())
	assert.EqualError(t, New().OneOf("petType", "All", "Dog", "All Pets").Err(), "petType must be one of: Dog, All Pets")
}

type hours struct {
	Open string `json:"openTime" validate:"required" msg:"operatingHours requires openTime and closeTime"`
}

type listing struct {
	Name     string   `json:"name" validate:"min=3,max=100"`
	Zip      string   `json:"zipCode" validate:"zip6" msg:"ZIP Code must be exactly 6 digits"`
	Price    float64  `json:"pricePerDay" validate:"min=0"`
	Capacity int      `json:"capacity" validate:"min=1"`
	Rating   float64  `json:"rating" validate:"gte=0,lte=5"`
	Services []string `json:"services" validate:"dive,oneof='Day Care' Grooming"`
	Hours    hours    `json:"operatingHours"`
	Email    string   `validate:"omitempty,emailaddr"`
}

func validListing() listing {
	return listing{Name: "Happy Paws", Zip: "560001", Capacity: 1, Rating: 4.5,
		Services: []string{"Day Care"}, Hours: hours{Open: "08:00"}}
}

func TestStruct_Messages(t *testing.T) {
	assert.NoError(t, Struct(validListing()))

	cases := map[string]struct {
		mod  func(*listing)
		want string
	}{
		"length":      {func(l *listing) { l.Name = "Ab" }, "name must be between 3 and 100 characters"},
		"custom msg":  {func(l *listing) { l.Zip = "5600" }, "ZIP Code must be exactly 6 digits"},
		"negative":    {func(l *listing) { l.Price = -1 }, "pricePerDay cannot be negative"},
		"at least":    {func(l *listing) { l.Capacity = 0 }, "capacity must be at least 1"},
		"range":       {func(l *listing) { l.Rating = 6 }, "rating must be between 0 and 5"},
		"dive oneof":  {func(l *listing) { l.Services = []string{"Spa"} }, "services must be one of: Day Care, Grooming"},
		"nested msg":  {func(l *listing) { l.Hours.Open = "" }, "operatingHours requires openTime and closeTime"},
		"field name":  {func(l *listing) { l.Email = "nope" }, "email is invalid"},
		"ptr to root": {nil, ""},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			l := validListing()
			if tc.mod == nil {
				assert.NoError(t, Struct(&l))
				return
			}
			tc.mod(&l)
			err := Struct(&l)
			assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
			assert.EqualError(t, err, tc.want)
		})
	}
}

func TestParseDate(t *testing.T) {
	d, ok := ParseDate("2025-01-04")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC), d)

	d, ok = ParseDate("2025-01-04T10:30:00+05:30")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 1, 4, 5, 0, 0, 0, time.UTC), d)

	_, ok = ParseDate("04/01/2025")
	assert.False(t, ok)
	_, ok = ParseDate(" ")
	assert.False(t, ok)
}
