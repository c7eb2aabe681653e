package accessories

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
	errNotFound      = "Product not found"
	errNotOwned      = "Product not found or unauthorized"
	errRequiredInput = "Please provide all required fields"
	imagePrefix      = "accessories"
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

type ShippingInput struct {
	FreeShipping *bool
	DeliveryTime string
}

type Input struct {
	Name           string
	Category       string
	PetType        string
	Description    string
	Price          *float64
	DiscountPrice  *float64
	Stock          *int
	Brand          string
	Specifications []Specification
	Images         []string
	Weight         string
	Dimensions     *Dimensions
	Tags           []string
	Shipping       *ShippingInput
	IsFeatured     *bool
	IsActive       *bool
}

func (in Input) missingRequired() bool {
	for _, v := range []string{in.Name, in.Category, in.PetType, in.Description, in.Brand} {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return in.Price == nil || in.Stock == nil
}

func validateProduct(p Product) error {
	return validate.Struct(p)
}

func (s *Service) ListActive(ctx context.Context) ([]Product, error) {
	return s.repo.ListActive(ctx)
}

func (s *Service) ListByVendor(ctx context.Context, vendorID string) ([]Product, error) {
	return s.repo.ListByVendor(ctx, vendorID)
}

func (s *Service) Get(ctx context.Context, id string) (Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, apperr.ErrNotFound) {
		return Product{}, apperr.NotFound(errNotFound)
	}
	return p, err
}

// VendorOf resuelve el vendor de un producto para enriquecer las líneas de un pedido.
func (s *Service) VendorOf(ctx context.Context, productID string) (string, error) {
	p, err := s.Get(ctx, productID)
	if err != nil {
		return "", err
	}
	return p.VendorID, nil
}

func (s *Service) getOwned(ctx context.Context, vendorID, id string) (Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, apperr.ErrNotFound) || (err == nil && p.VendorID != vendorID) {
		return Product{}, apperr.NotFound(errNotOwned)
	}
	return p, err
}

func (s *Service) Create(ctx context.Context, vendorID string, in Input) (Product, error) {
	if in.missingRequired() {
		return Product{}, apperr.Invalid(errRequiredInput)
	}
	imgs, err := images.Normalize(ctx, s.images, imagePrefix, in.Images)
	if err != nil {
		return Product{}, err
	}

	now := s.now()
	p := Product{
		ID:             uuid.NewString(),
		VendorID:       vendorID,
		Name:           strings.TrimSpace(in.Name),
		Category:       strings.TrimSpace(in.Category),
		PetType:        strings.TrimSpace(in.PetType),
		Description:    strings.TrimSpace(in.Description),
		Price:          *in.Price,
		DiscountPrice:  in.DiscountPrice,
		Stock:          *in.Stock,
		Brand:          strings.TrimSpace(in.Brand),
		Specifications: in.Specifications,
		Images:         imgs,
		Weight:         strings.TrimSpace(in.Weight),
		Dimensions:     Dimensions{Unit: "cm"},
		Tags:           in.Tags,
		Shipping:       ShippingInfo{DeliveryTime: defaultDeliveryTime},
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if p.Specifications == nil {
		p.Specifications = []Specification{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	applyOptional(&p, in)

	if err := validateProduct(p); err != nil {
		return Product{}, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, vendorID, id string, in Input) (Product, error) {
	p, err := s.getOwned(ctx, vendorID, id)
	if err != nil {
		return Product{}, err
	}

	setString(&p.Name, in.Name)
	setString(&p.Category, in.Category)
	setString(&p.PetType, in.PetType)
	setString(&p.Description, in.Description)
	setString(&p.Brand, in.Brand)
	setString(&p.Weight, in.Weight)
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.DiscountPrice != nil {
		p.DiscountPrice = in.DiscountPrice
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.Specifications != nil {
		p.Specifications = in.Specifications
	}
	if in.Tags != nil {
		p.Tags = in.Tags
	}
	if in.Images != nil {
		imgs, err := images.Normalize(ctx, s.images, imagePrefix, in.Images)
		if err != nil {
			return Product{}, err
		}
		p.Images = imgs
	}
	applyOptional(&p, in)

	if err := validateProduct(p); err != nil {
		return Product{}, err
	}
	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, vendorID, id string) (Product, error) {
	p, err := s.getOwned(ctx, vendorID, id)
	if err != nil {
		return Product{}, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return Product{}, err
	}
	return p, nil
}

func applyOptional(p *Product, in Input) {
	if d := in.Dimensions; d != nil {
		unit := p.Dimensions.Unit
		p.Dimensions = *d
		if strings.TrimSpace(p.Dimensions.Unit) == "" {
			p.Dimensions.Unit = unit
		}
	}
	if sh := in.Shipping; sh != nil {
		if sh.FreeShipping != nil {
			p.Shipping.FreeShipping = *sh.FreeShipping
		}
		setString(&p.Shipping.DeliveryTime, sh.DeliveryTime)
	}
	if in.IsFeatured != nil {
		p.IsFeatured = *in.IsFeatured
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}
