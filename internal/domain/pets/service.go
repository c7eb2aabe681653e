package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pawfam-api/internal/platform/apperr"

	"github.com/google/uuid"
)

const (
	minAge = 0
	maxAge = 30
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type Input struct {
	Category string
	Breed    string
	Name     string
	Age      *int
}

func (in Input) validate() (Category, error) {
	cat := Category(strings.TrimSpace(in.Category))
	name := strings.TrimSpace(in.Name)
	breed := strings.TrimSpace(in.Breed)

	if cat == "" || breed == "" || name == "" || in.Age == nil {
		return "", apperr.Invalid("Please provide all required fields: category, breed, name, and age")
	}
	if !cat.Valid() {
		return "", apperr.Invalid("Category must be either Dog or Cat")
	}
	if !validBreed(cat, breed) {
		return "", apperr.Invalid(fmt.Sprintf("Invalid breed for %s. Please select from the available options.", cat))
	}
	if *in.Age < minAge || *in.Age > maxAge {
		return "", apperr.Invalid("Age must be a number between 0 and 30")
	}
	if n := len([]rune(name)); n < 2 || n > 50 {
		return "", apperr.Invalid("Pet name must be between 2 and 50 characters")
	}
	return cat, nil
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in Input) (Pet, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Pet{}, apperr.Unauthorized("No token, authorization denied")
	}
	cat, err := in.validate()
	if err != nil {
		return Pet{}, err
	}

	now := s.now()
	p := Pet{
		ID:          uuid.NewString(),
		OwnerUserID: ownerUserID,
		Category:    cat,
		Breed:       strings.TrimSpace(in.Breed),
		Name:        strings.TrimSpace(in.Name),
		Age:         *in.Age,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// GetOwned no distingue "no existe" de "no es tuya": ambos son 404.
func (s *Service) GetOwned(ctx context.Context, id, ownerUserID string) (Pet, error) {
	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, apperr.ErrNotFound) || (err == nil && p.OwnerUserID != ownerUserID) {
		return Pet{}, apperr.NotFound("Pet not found")
	}
	return p, err
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

// Update reemplaza todos los campos (PUT), con las mismas reglas que Create.
func (s *Service) Update(ctx context.Context, id, ownerUserID string, in Input) (Pet, error) {
	cat, err := in.validate()
	if err != nil {
		return Pet{}, err
	}
	p, err := s.GetOwned(ctx, id, ownerUserID)
	if err != nil {
		return Pet{}, err
	}

	p.Category = cat
	p.Breed = strings.TrimSpace(in.Breed)
	p.Name = strings.TrimSpace(in.Name)
	p.Age = *in.Age
	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id, ownerUserID string) (Pet, error) {
	p, err := s.GetOwned(ctx, id, ownerUserID)
	if err != nil {
		return Pet{}, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return Pet{}, err
	}
	return p, nil
}
