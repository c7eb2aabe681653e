package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pawfam-api/internal/platform/apperr"
	"pawfam-api/internal/platform/validate"

	"github.com/google/uuid"
)

// vendorIDAttempts cubre huecos por perfiles borrados: count+1 puede existir.
const vendorIDAttempts = 5

type Service struct {
	users   UserProfileRepository
	vendors VendorProfileRepository
	now     func() time.Time
}

func NewService(users UserProfileRepository, vendors VendorProfileRepository) *Service {
	return &Service{
		users:   users,
		vendors: vendors,
		now:     time.Now,
	}
}

type ProfileInput struct {
	Name         string `validate:"min=2,max=100"`
	Gender       string `validate:"oneof=Male Female Other"`
	MobileNumber string `validate:"mobile10" msg:"Mobile number must be exactly 10 digits"`
	// el nombre del campo cambia entre perfil de usuario y de vendor
	Address string `validate:"-"`
}

func (in ProfileInput) trimmed() ProfileInput {
	return ProfileInput{
		Name:         strings.TrimSpace(in.Name),
		Gender:       strings.TrimSpace(in.Gender),
		MobileNumber: strings.TrimSpace(in.MobileNumber),
		Address:      strings.TrimSpace(in.Address),
	}
}

func validateProfile(in ProfileInput, addressField, requiredMsg string) error {
	if in.Name == "" || in.Gender == "" || in.MobileNumber == "" || in.Address == "" {
		return apperr.Invalid(requiredMsg)
	}
	return validate.New().
		Struct(in).
		Length(addressField, in.Address, 10, 500).
		Err()
}

const (
	userProfileRequired   = "Please provide all required fields: name, gender, mobile number, and residential address"
	vendorProfileRequired = "Please provide all required fields: name, gender, mobileNumber, and communicationAddress"
)

func (s *Service) GetProfile(ctx context.Context, userID string) (UserProfile, error) {
	p, err := s.users.GetByUser(ctx, userID)
	if errors.Is(err, apperr.ErrNotFound) {
		return UserProfile{}, apperr.NotFound("Profile not found")
	}
	return p, err
}

func (s *Service) CreateProfile(ctx context.Context, userID string, in ProfileInput) (UserProfile, error) {
	in = in.trimmed()
	if err := validateProfile(in, "residentialAddress", userProfileRequired); err != nil {
		return UserProfile{}, err
	}
	if _, err := s.users.GetByUser(ctx, userID); err == nil {
		return UserProfile{}, apperr.Conflict("Profile already exists. Use update endpoint instead.")
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return UserProfile{}, err
	}

	now := s.now()
	p := UserProfile{
		ID:                 uuid.NewString(),
		UserID:             userID,
		Name:               in.Name,
		Gender:             in.Gender,
		MobileNumber:       in.MobileNumber,
		ResidentialAddress: in.Address,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.users.Create(ctx, p); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return UserProfile{}, apperr.Conflict("Profile already exists. Use update endpoint instead.")
		}
		return UserProfile{}, err
	}
	return p, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (UserProfile, error) {
	in = in.trimmed()
	if err := validateProfile(in, "residentialAddress", userProfileRequired); err != nil {
		return UserProfile{}, err
	}
	p, err := s.GetProfile(ctx, userID)
	if err != nil {
		return UserProfile{}, err
	}

	p.Name = in.Name
	p.Gender = in.Gender
	p.MobileNumber = in.MobileNumber
	p.ResidentialAddress = in.Address
	p.UpdatedAt = s.now()
	if err := s.users.Update(ctx, p); err != nil {
		return UserProfile{}, err
	}
	return p, nil
}

func (s *Service) DeleteProfile(ctx context.Context, userID string) error {
	err := s.users.DeleteByUser(ctx, userID)
	if errors.Is(err, apperr.ErrNotFound) {
		return apperr.NotFound("Profile not found")
	}
	return err
}

func (s *Service) GetVendorProfile(ctx context.Context, userID string) (VendorProfile, error) {
	p, err := s.vendors.GetByUser(ctx, userID)
	if errors.Is(err, apperr.ErrNotFound) {
		return VendorProfile{}, apperr.NotFound("No vendor profile found")
	}
	return p, err
}

func (s *Service) CreateVendorProfile(ctx context.Context, userID string, in ProfileInput) (VendorProfile, error) {
	in = in.trimmed()
	if _, err := s.vendors.GetByUser(ctx, userID); err == nil {
		return VendorProfile{}, apperr.Conflict("Vendor profile already exists")
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return VendorProfile{}, err
	}
	if err := validateProfile(in, "communicationAddress", vendorProfileRequired); err != nil {
		return VendorProfile{}, err
	}

	count, err := s.vendors.Count(ctx)
	if err != nil {
		return VendorProfile{}, err
	}

	now := s.now()
	p := VendorProfile{
		ID:                   uuid.NewString(),
		UserID:               userID,
		Name:                 in.Name,
		Gender:               in.Gender,
		MobileNumber:         in.MobileNumber,
		CommunicationAddress: in.Address,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	for i := 1; i <= vendorIDAttempts; i++ {
		p.VendorID = FormatVendorID(count + i)
		err = s.vendors.Create(ctx, p)
		if !errors.Is(err, apperr.ErrConflict) {
			break
		}
		// el conflicto puede venir del userId (carrera con otro create)
		if _, getErr := s.vendors.GetByUser(ctx, userID); getErr == nil {
			return VendorProfile{}, apperr.Conflict("Vendor profile already exists")
		}
	}
	if err != nil {
		return VendorProfile{}, err
	}
	return p, nil
}

func (s *Service) UpdateVendorProfile(ctx context.Context, userID string, in ProfileInput) (VendorProfile, error) {
	in = in.trimmed()
	if err := validateProfile(in, "communicationAddress", vendorProfileRequired); err != nil {
		return VendorProfile{}, err
	}
	p, err := s.GetVendorProfile(ctx, userID)
	if err != nil {
		return VendorProfile{}, err
	}

	p.Name = in.Name
	p.Gender = in.Gender
	p.MobileNumber = in.MobileNumber
	p.CommunicationAddress = in.Address
	p.UpdatedAt = s.now()
	if err := s.vendors.Update(ctx, p); err != nil {
		return VendorProfile{}, err
	}
	return p, nil
}

func (s *Service) DeleteVendorProfile(ctx context.Context, userID string) error {
	err := s.vendors.DeleteByUser(ctx, userID)
	if errors.Is(err, apperr.ErrNotFound) {
		return apperr.NotFound("No vendor profile found")
	}
	return err
}

// FormatVendorID arma el código público: VEN + 6 dígitos.
func FormatVendorID(seq int) string {
	return fmt.Sprintf("VEN%06d", seq)
}
