package adoptionpets

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
	errNotFound        = "Pet not found"
	errNotOwned        = "Pet not found or unauthorized"
	errRequiredInput   = "Please provide all required fields"
	errShelterRequired = "Please provide complete shelter information"
	imagePrefix        = "adoption-pets"
)

type Service struct {
	repo   Repository
	images media.Store
	now    func() time.Time
}

func NewService(repo Repository, store media.Store) *Service {
	return &Service{
		repo:   repo,
		images: store,
		now:    time.Now,
	}
}

type HealthInput struct {
	Vaccinated       *bool
	Neutered         *bool
	HealthConditions string
}

type GoodWithInput struct {
	Kids *bool
	Dogs *bool
	Cats *bool
}

// Input sirve para create y update; en update solo se aplican los campos presentes
// y los objetos anidados se mezclan con los valores actuales.
type Input struct {
	Name         string
	Type         string
	Breed        string
	Age          string
	Gender       string
	Size         string
	Color        string
	Description  string
	Temperament  []string
	Health       *HealthInput
	Shelter      *Shelter
	AdoptionFee  *float64
	SpecialNeeds *string
	GoodWith     *GoodWithInput
	Images       []string
	Status       string
	IsActive     *bool
}

func (in Input) missingRequired() bool {
	for _, v := range []string{in.Name, in.Type, in.Breed, in.Age, in.Gender, in.Size, in.Color, in.Description} {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return in.Shelter == nil || in.AdoptionFee == nil
}

func (sh Shelter) complete() bool {
	for _, v := range []string{sh.Name, sh.Location, sh.Address, sh.Phone, sh.Email} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

func validateListing(l Listing) error {
	return validate.Struct(l)
}

func (s *Service) ListActive(ctx context.Context) ([]Listing, error) {
	return s.repo.ListActive(ctx)
}

func (s *Service) ListByVendor(ctx context.Context, vendorID string) ([]Listing, error) {
	return s.repo.ListByVendor(ctx, vendorID)
}

func (s *Service) Get(ctx context.Context, id string) (Listing, error) {
	l, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, apperr.ErrNotFound) {
		return Listing{}, apperr.NotFound(errNotFound)
	}
	return l, err
}

// Snapshot es el lookup que usan las solicitudes de adopción.
func (s *Service) Snapshot(ctx context.Context, id string) (Snapshot, error) {
	l, err := s.Get(ctx, id)
	if err != nil {
		return Snapshot{}, err
	}
	return l.Snapshot(), nil
}

func (s *Service) getOwned(ctx context.Context, vendorID, id string) (Listing, error) {
	l, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, apperr.ErrNotFound) || (err == nil && l.VendorID != vendorID) {
		return Listing{}, apperr.NotFound(errNotOwned)
	}
	return l, err
}

func (s *Service) Create(ctx context.Context, vendorID string, in Input) (Listing, error) {
	if in.missingRequired() {
		return Listing{}, apperr.Invalid(errRequiredInput)
	}
	if !in.Shelter.complete() {
		return Listing{}, apperr.Invalid(errShelterRequired)
	}
	imgs, err := images.Normalize(ctx, s.images, imagePrefix, in.Images)
	if err != nil {
		return Listing{}, err
	}

	now := s.now()
	l := Listing{
		ID:           uuid.NewString(),
		VendorID:     vendorID,
		Name:         strings.TrimSpace(in.Name),
		Type:         strings.TrimSpace(in.Type),
		Breed:        strings.TrimSpace(in.Breed),
		Age:          strings.TrimSpace(in.Age),
		Gender:       strings.TrimSpace(in.Gender),
		Size:         strings.TrimSpace(in.Size),
		Color:        strings.TrimSpace(in.Color),
		Description:  strings.TrimSpace(in.Description),
		Temperament:  in.Temperament,
		Health:       HealthStatus{HealthConditions: "Healthy"},
		Shelter:      trimShelter(*in.Shelter),
		AdoptionFee:  *in.AdoptionFee,
		Images:       imgs,
		Status:       StatusAvailable,
		SpecialNeeds: "None",
		GoodWith:     GoodWith{Kids: true, Dogs: true, Cats: true},
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if l.Temperament == nil {
		l.Temperament = []string{}
	}
	applyOptional(&l, in)

	if err := validateListing(l); err != nil {
		return Listing{}, err
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return Listing{}, err
	}
	return l, nil
}

func (s *Service) Update(ctx context.Context, vendorID, id string, in Input) (Listing, error) {
	l, err := s.getOwned(ctx, vendorID, id)
	if err != nil {
		return Listing{}, err
	}

	setString(&l.Name, in.Name)
	setString(&l.Type, in.Type)
	setString(&l.Breed, in.Breed)
	setString(&l.Age, in.Age)
	setString(&l.Gender, in.Gender)
	setString(&l.Size, in.Size)
	setString(&l.Color, in.Color)
	setString(&l.Description, in.Description)
	if in.Temperament != nil {
		l.Temperament = in.Temperament
	}
	if in.Shelter != nil {
		sh := trimShelter(*in.Shelter)
		setString(&l.Shelter.Name, sh.Name)
		setString(&l.Shelter.Location, sh.Location)
		setString(&l.Shelter.Address, sh.Address)
		setString(&l.Shelter.Phone, sh.Phone)
		setString(&l.Shelter.Email, sh.Email)
	}
	if in.AdoptionFee != nil {
		l.AdoptionFee = *in.AdoptionFee
	}
	if in.Images != nil {
		imgs, err := images.Normalize(ctx, s.images, imagePrefix, in.Images)
		if err != nil {
			return Listing{}, err
		}
		l.Images = imgs
	}
	applyOptional(&l, in)

	if err := validateListing(l); err != nil {
		return Listing{}, err
	}
	l.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, l); err != nil {
		return Listing{}, err
	}
	return l, nil
}

func (s *Service) Delete(ctx context.Context, vendorID, id string) (Listing, error) {
	l, err := s.getOwned(ctx, vendorID, id)
	if err != nil {
		return Listing{}, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return Listing{}, err
	}
	return l, nil
}

// applyOptional mezcla los campos opcionales comunes a create y update.
func applyOptional(l *Listing, in Input) {
	if h := in.Health; h != nil {
		if h.Vaccinated != nil {
			l.Health.Vaccinated = *h.Vaccinated
		}
		if h.Neutered != nil {
			l.Health.Neutered = *h.Neutered
		}
		setString(&l.Health.HealthConditions, h.HealthConditions)
	}
	if g := in.GoodWith; g != nil {
		if g.Kids != nil {
			l.GoodWith.Kids = *g.Kids
		}
		if g.Dogs != nil {
			l.GoodWith.Dogs = *g.Dogs
		}
		if g.Cats != nil {
			l.GoodWith.Cats = *g.Cats
		}
	}
	if in.SpecialNeeds != nil {
		l.SpecialNeeds = strings.TrimSpace(*in.SpecialNeeds)
	}
	if st := strings.TrimSpace(in.Status); st != "" {
		l.Status = ListingStatus(st)
	}
	if in.IsActive != nil {
		l.IsActive = *in.IsActive
	}
}

func trimShelter(sh Shelter) Shelter {
	return Shelter{
		Name:     strings.TrimSpace(sh.Name),
		Location: strings.TrimSpace(sh.Location),
		Address:  strings.TrimSpace(sh.Address),
		Phone:    strings.TrimSpace(sh.Phone),
		Email:    strings.ToLower(strings.TrimSpace(sh.Email)),
	}
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}
