package adoption

import (
	"context"
	"errors"
	"strings"
	"time"

	"pawfam-api/internal/domain/adoptionpets"
	"pawfam-api/internal/domain/enrich"
	"pawfam-api/internal/domain/history"
	"pawfam-api/internal/domain/lifecycle"
	"pawfam-api/internal/domain/vendorscope"
	"pawfam-api/internal/platform/apperr"
	"pawfam-api/internal/platform/metrics"
	"pawfam-api/internal/platform/validate"
	"pawfam-api/internal/ports/auth"

	"github.com/google/uuid"
)

const (
	errNotFound       = "Application not found"
	errReasonRequired = "Adoption reason is required"
)

type Service struct {
	repo    Repository
	pets    PetCatalog
	history *history.Service
	now     func() time.Time
}

func NewService(repo Repository, pets PetCatalog, hist *history.Service) *Service {
	return &Service{
		repo:    repo,
		pets:    pets,
		history: hist,
		now:     time.Now,
	}
}

type VisitInput struct {
	Date string
	Time string
}

type CreateInput struct {
	Pet            *PetSnapshot
	PersonalInfo   *PersonalInfo
	Experience     *Experience
	VisitSchedule  *VisitInput
	AdoptionReason string
}

type ExperienceUpdate struct {
	Level            string
	Details          *string
	OtherPets        string
	OtherPetsDetails *string
}

// UpdateInput: nil o vacío no modifica. La mascota no se puede cambiar.
type UpdateInput struct {
	PersonalInfo   *PersonalInfo
	Experience     *ExperienceUpdate
	VisitSchedule  *VisitInput
	AdoptionReason *string
}

func blank(vs ...string) bool {
	for _, v := range vs {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Application, error) {
	if in.Pet == nil || in.PersonalInfo == nil || in.Experience == nil || in.VisitSchedule == nil || blank(in.AdoptionReason) {
		return Application{}, apperr.Invalid("Please provide all required fields (pet, personalInfo, experience, visitSchedule, adoptionReason)")
	}
	if blank(in.Pet.ID, in.Pet.Name, in.Pet.Type, in.Pet.Breed) {
		return Application{}, apperr.Invalid("Invalid pet information. Required: id, name, type, breed")
	}
	pi := in.PersonalInfo
	if blank(pi.FullName, pi.Email, pi.Phone, pi.Address) {
		return Application{}, apperr.Invalid("Invalid personal information. Required: fullName, email, phone, address")
	}
	if blank(in.VisitSchedule.Date, in.VisitSchedule.Time) {
		return Application{}, apperr.Invalid("Invalid visit schedule. Required: date, time")
	}
	if blank(in.Experience.Level) {
		return Application{}, apperr.Invalid("Experience level is required")
	}
	visitDate, ok := validate.ParseDate(in.VisitSchedule.Date)
	if !ok {
		return Application{}, apperr.Invalid("Invalid date format")
	}

	now := s.now()
	a := Application{
		ID:     uuid.NewString(),
		UserID: userID,
		PersonalInfo: PersonalInfo{
			FullName: strings.TrimSpace(pi.FullName),
			Email:    strings.ToLower(strings.TrimSpace(pi.Email)),
			Phone:    strings.TrimSpace(pi.Phone),
			Address:  strings.TrimSpace(pi.Address),
		},
		Experience: Experience{
			Level:            strings.TrimSpace(in.Experience.Level),
			Details:          strings.TrimSpace(in.Experience.Details),
			OtherPets:        enrich.OrDefault(in.Experience.OtherPets, "no"),
			OtherPetsDetails: strings.TrimSpace(in.Experience.OtherPetsDetails),
		},
		VisitSchedule:  VisitSchedule{Date: visitDate, Time: strings.TrimSpace(in.VisitSchedule.Time)},
		AdoptionReason: strings.TrimSpace(in.AdoptionReason),
		Status:         lifecycle.ApplicationPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := validate.New().Match(a.PersonalInfo.Email, validate.EmailPattern, "Please provide a valid email").Err(); err != nil {
		return Application{}, err
	}
	if err := s.attachPet(ctx, &a, *in.Pet); err != nil {
		return Application{}, err
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Application{}, err
	}
	s.history.Track(ctx, history.RecordInput{
		Kind:     lifecycle.KindApplication,
		EntityID: a.ID,
		Type:     history.EventCreated,
		ToStatus: string(a.Status),
		Actor:    history.Actor{Type: history.ActorCustomer, ID: userID},
	})
	return a, nil
}

// attachPet prefiere los datos del catálogo; si la mascota no está publicada se
// guarda lo que mandó el cliente, con "Unknown" en los campos opcionales.
func (s *Service) attachPet(ctx context.Context, a *Application, submitted PetSnapshot) error {
	id := strings.TrimSpace(submitted.ID)
	if s.pets != nil {
		snap, err := s.pets.Snapshot(ctx, id)
		if err == nil {
			a.VendorID = snap.VendorID
			a.Pet = PetSnapshot{
				ID:      snap.PetID,
				Name:    snap.Name,
				Type:    snap.Type,
				Breed:   snap.Breed,
				Age:     enrich.OrDefault(snap.Age, unknown),
				Shelter: enrich.OrDefault(snap.Shelter, unknown),
			}
			return nil
		}
		if !errors.Is(err, apperr.ErrNotFound) {
			return err
		}
	}

	a.Pet = PetSnapshot{
		ID:      id,
		Name:    strings.TrimSpace(submitted.Name),
		Type:    strings.TrimSpace(submitted.Type),
		Breed:   strings.TrimSpace(submitted.Breed),
		Age:     enrich.OrDefault(submitted.Age, unknown),
		Shelter: enrich.OrDefault(submitted.Shelter, unknown),
	}
	return nil
}

func (s *Service) GetOwned(ctx context.Context, userID, id string) (Application, error) {
	a, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, apperr.ErrNotFound) || (err == nil && a.UserID != userID) {
		return Application{}, apperr.NotFound(errNotFound)
	}
	return a, err
}

func (s *Service) ListMine(ctx context.Context, userID string) ([]Application, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Update(ctx context.Context, userID, id string, in UpdateInput) (Application, error) {
	a, err := s.GetOwned(ctx, userID, id)
	if err != nil {
		return Application{}, err
	}
	if err := lifecycle.CheckApplicationEdit(a.Status); err != nil {
		metrics.ObserveRejection(string(lifecycle.KindApplication), string(lifecycle.OpEdit))
		return Application{}, err
	}

	if pi := in.PersonalInfo; pi != nil {
		setString(&a.PersonalInfo.FullName, pi.FullName)
		if e := strings.TrimSpace(pi.Email); e != "" {
			a.PersonalInfo.Email = strings.ToLower(e)
		}
		setString(&a.PersonalInfo.Phone, pi.Phone)
		setString(&a.PersonalInfo.Address, pi.Address)
	}
	if ex := in.Experience; ex != nil {
		setString(&a.Experience.Level, ex.Level)
		setString(&a.Experience.OtherPets, ex.OtherPets)
		if ex.Details != nil {
			a.Experience.Details = strings.TrimSpace(*ex.Details)
		}
		if ex.OtherPetsDetails != nil {
			a.Experience.OtherPetsDetails = strings.TrimSpace(*ex.OtherPetsDetails)
		}
	}
	if vs := in.VisitSchedule; vs != nil {
		if strings.TrimSpace(vs.Date) != "" {
			d, ok := validate.ParseDate(vs.Date)
			if !ok {
				return Application{}, apperr.Invalid("Invalid date format")
			}
			a.VisitSchedule.Date = d
		}
		setString(&a.VisitSchedule.Time, vs.Time)
	}
	if in.AdoptionReason != nil {
		reason := strings.TrimSpace(*in.AdoptionReason)
		if reason == "" {
			return Application{}, apperr.Invalid(errReasonRequired)
		}
		a.AdoptionReason = reason
	}
	if err := validate.New().Match(a.PersonalInfo.Email, validate.EmailPattern, "Please provide a valid email").Err(); err != nil {
		return Application{}, err
	}

	a.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, a); err != nil {
		return Application{}, err
	}
	s.history.Track(ctx, history.RecordInput{
		Kind:       lifecycle.KindApplication,
		EntityID:   a.ID,
		Type:       history.EventUpdated,
		FromStatus: string(a.Status),
		ToStatus:   string(a.Status),
		Actor:      history.Actor{Type: history.ActorCustomer, ID: userID},
	})
	return a, nil
}

// Revoke es la cancelación del solicitante: la solicitud pasa a rejected.
func (s *Service) Revoke(ctx context.Context, userID, id string) (Application, error) {
	a, err := s.GetOwned(ctx, userID, id)
	if err != nil {
		return Application{}, err
	}
	if err := lifecycle.CheckApplicationRevoke(a.Status); err != nil {
		metrics.ObserveRejection(string(lifecycle.KindApplication), string(lifecycle.OpRevoke))
		return Application{}, err
	}

	from := a.Status
	a.Status = lifecycle.ApplicationRejected
	a.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, a); err != nil {
		return Application{}, err
	}
	s.history.Track(ctx, history.RecordInput{
		Kind:       lifecycle.KindApplication,
		EntityID:   a.ID,
		Type:       history.EventRevoked,
		FromStatus: string(from),
		ToStatus:   string(a.Status),
		Actor:      history.Actor{Type: history.ActorCustomer, ID: userID},
	})
	return a, nil
}

// SetStatus acepta cualquier estado del enum, sin grafo de transiciones.
func (s *Service) SetStatus(ctx context.Context, actor auth.Claims, id, raw string) (Application, error) {
	status, err := lifecycle.ParseApplicationStatus(raw)
	if err != nil {
		return Application{}, err
	}
	a, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, apperr.ErrNotFound) {
		return Application{}, apperr.NotFound(errNotFound)
	}
	if err != nil {
		return Application{}, err
	}

	from := a.Status
	a.Status = status
	a.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, a); err != nil {
		return Application{}, err
	}
	s.history.Track(ctx, history.RecordInput{
		Kind:       lifecycle.KindApplication,
		EntityID:   a.ID,
		Type:       history.EventStatusChanged,
		FromStatus: string(from),
		ToStatus:   string(status),
		Actor:      history.ActorFromClaims(actor),
	})
	return a, nil
}

// Delete se permite en cualquier estado.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	a, err := s.GetOwned(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, a.ID)
}

// ListForVendor: vendor de la solicitud, mascota del catálogo propio o, para
// solicitudes viejas, nombre de mascota + refugio.
func (s *Service) ListForVendor(ctx context.Context, vendorID string) ([]Application, error) {
	listings, err := s.pets.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	direct, err := s.repo.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	var byPet, legacy []Application
	if len(listings) > 0 {
		byPet, err = s.repo.ListByPetIDs(ctx, vendorscope.IDs(listings, func(l adoptionpets.Listing) string { return l.ID }))
		if err != nil {
			return nil, err
		}

		names := vendorscope.NameSet(listings, func(l adoptionpets.Listing) string {
			return vendorscope.NameKey(l.Name, l.Shelter.Name)
		})
		unlinked, err := s.repo.ListUnlinked(ctx)
		if err != nil {
			return nil, err
		}
		for _, a := range unlinked {
			if _, ok := names[vendorscope.NameKey(a.Pet.Name, a.Pet.Shelter)]; ok {
				legacy = append(legacy, a)
			}
		}
	}

	return vendorscope.Union(applicationKeys,
		vendorscope.Result[Application]{Strategy: vendorscope.ByVendorField, Items: direct},
		vendorscope.Result[Application]{Strategy: vendorscope.ByCatalogID, Items: byPet},
		vendorscope.Result[Application]{Strategy: vendorscope.ByLegacyName, Items: legacy},
	), nil
}

var applicationKeys = vendorscope.Keys[Application]{
	ID:        func(a Application) string { return a.ID },
	CreatedAt: func(a Application) time.Time { return a.CreatedAt },
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}
