package daycarecenters

import (
	"context"
	"errors"
	"strings"
	"time"

	"pawfam-api/internal/platform/apperr"
	"pawfam-api/internal/platform/images"
	"pawfam-api/internal/platform/validate"
	"pawfam-api/internal/ports/media"

	"github.com/google/uuid"
)

const (
	errNotFound      = "Center not found"
	errNotOwned      = "Center not found or unauthorized"
	errRequiredInput = "Please provide all required fields"
	imagePrefix      = "daycare-centers"
)

type Service struct {
	repo   Repository
	images media.Store // nil: imágenes inline
	now    func() time.Time
}

func NewService(repo Repository, store media.Store) *Service {
	return &Service{
		repo:   repo,
		images: store,
		now:    time.Now,
	}
}

// Input sirve para create y update. En update, los campos vacíos o nil no se tocan.
type Input struct {
	Name           string
	Location       string
	Address        string
	City           string
	State          string
	ZipCode        string
	Phone          string
	Email          string
	PricePerDay    *float64
	Services       []string
	PetTypes       []string
	Facilities     []string
	Capacity       *int
	Description    string
	OperatingHours *OperatingHours
	Images         []string
	IsActive       *bool
}

func (in Input) missingRequired() bool {
	for _, v := range []string{in.Name, in.Location, in.Address, in.City, in.State, in.ZipCode, in.Phone, in.Email, in.Description} {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return in.PricePerDay == nil || in.Capacity == nil || in.OperatingHours == nil
}

func validateCenter(c Center) error {
	return validate.Struct(c)
}

func (s *Service) ListActive(ctx context.Context) ([]Center, error) {
	return s.repo.ListActive(ctx)
}

func (s *Service) ListByVendor(ctx context.Context, vendorID string) ([]Center, error) {
	return s.repo.ListByVendor(ctx, vendorID)
}

func (s *Service) Get(ctx context.Context, id string) (Center, error) {
	c, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, apperr.ErrNotFound) {
		return Center{}, apperr.NotFound(errNotFound)
	}
	return c, err
}

// Snapshot es el lookup que usan las reservas al crearse.
func (s *Service) Snapshot(ctx context.Context, id string) (Snapshot, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return Snapshot{}, err
	}
	return c.Snapshot(), nil
}

func (s *Service) getOwned(ctx context.Context, vendorID, id string) (Center, error) {
	c, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, apperr.ErrNotFound) || (err == nil && c.VendorID != vendorID) {
		return Center{}, apperr.NotFound(errNotOwned)
	}
	return c, err
}

func (s *Service) Create(ctx context.Context, vendorID string, in Input) (Center, error) {
	if in.missingRequired() {
		return Center{}, apperr.Invalid(errRequiredInput)
	}
	imgs, err := images.Normalize(ctx, s.images, imagePrefix, in.Images)
	if err != nil {
		return Center{}, err
	}

	now := s.now()
	c := Center{
		ID:             uuid.NewString(),
		VendorID:       vendorID,
		Name:           strings.TrimSpace(in.Name),
		Location:       strings.TrimSpace(in.Location),
		Address:        strings.TrimSpace(in.Address),
		City:           strings.TrimSpace(in.City),
		State:          strings.TrimSpace(in.State),
		ZipCode:        strings.TrimSpace(in.ZipCode),
		Phone:          strings.TrimSpace(in.Phone),
		Email:          strings.ToLower(strings.TrimSpace(in.Email)),
		PricePerDay:    *in.PricePerDay,
		Services:       nonNil(in.Services),
		PetTypes:       nonNil(in.PetTypes),
		Facilities:     nonNil(in.Facilities),
		Capacity:       *in.Capacity,
		Description:    strings.TrimSpace(in.Description),
		OperatingHours: trimHours(*in.OperatingHours),
		Images:         imgs,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	if err := validateCenter(c); err != nil {
		return Center{}, err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return Center{}, err
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, vendorID, id string, in Input) (Center, error) {
	c, err := s.getOwned(ctx, vendorID, id)
	if err != nil {
		return Center{}, err
	}

	setString(&c.Name, in.Name)
	setString(&c.Location, in.Location)
	setString(&c.Address, in.Address)
	setString(&c.City, in.City)
	setString(&c.State, in.State)
	setString(&c.ZipCode, in.ZipCode)
	setString(&c.Phone, in.Phone)
	if e := strings.TrimSpace(in.Email); e != "" {
		c.Email = strings.ToLower(e)
	}
	setString(&c.Description, in.Description)
	if in.PricePerDay != nil {
		c.PricePerDay = *in.PricePerDay
	}
	if in.Capacity != nil {
		c.Capacity = *in.Capacity
	}
	if in.Services != nil {
		c.Services = in.Services
	}
	if in.PetTypes != nil {
		c.PetTypes = in.PetTypes
	}
	if in.Facilities != nil {
		c.Facilities = in.Facilities
	}
	if in.OperatingHours != nil {
		c.OperatingHours = trimHours(*in.OperatingHours)
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	if in.Images != nil {
		imgs, err := images.Normalize(ctx, s.images, imagePrefix, in.Images)
		if err != nil {
			return Center{}, err
		}
		c.Images = imgs
	}

	if err := validateCenter(c); err != nil {
		return Center{}, err
	}
	c.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, c); err != nil {
		return Center{}, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, vendorID, id string) (Center, error) {
	c, err := s.getOwned(ctx, vendorID, id)
	if err != nil {
		return Center{}, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return Center{}, err
	}
	return c, nil
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func trimHours(h OperatingHours) OperatingHours {
	return OperatingHours{OpenTime: strings.TrimSpace(h.OpenTime), CloseTime: strings.TrimSpace(h.CloseTime)}
}
