package daycare

import (
	"context"
	"errors"
	"strings"
	"time"

	"pawfam-api/internal/domain/daycarecenters"
	"pawfam-api/internal/domain/enrich"
	"pawfam-api/internal/domain/history"
	"pawfam-api/internal/domain/lifecycle"
	"pawfam-api/internal/domain/vendorscope"
	"pawfam-api/internal/platform/apperr"
	"pawfam-api/internal/platform/logger"
	"pawfam-api/internal/platform/metrics"
	"pawfam-api/internal/platform/validate"
	"pawfam-api/internal/ports/auth"

	"github.com/google/uuid"
)

const (
	errNotFound       = "Booking not found"
	errRequiredFields = "Please provide all required fields including email and mobile number"
	errCenterRequired = "Please select a daycare center"
	errInvalidDate    = "Invalid date format"
)

type Service struct {
	repo    Repository
	centers CenterCatalog
	history *history.Service
	now     func() time.Time
}

func NewService(repo Repository, centers CenterCatalog, hist *history.Service) *Service {
	return &Service{
		repo:    repo,
		centers: centers,
		history: hist,
		now:     time.Now,
	}
}

type CreateInput struct {
	DaycareCenterID     string
	Center              *CenterSnapshot
	PetName             string
	PetType             string
	PetAge              string
	Email               string
	MobileNumber        string
	StartDate           string
	EndDate             string
	SpecialInstructions string
}

// UpdateInput: strings vacíos no modifican; SpecialInstructions nil no modifica.
type UpdateInput struct {
	PetName             string
	PetType             string
	PetAge              string
	Email               string
	MobileNumber        string
	StartDate           string
	EndDate             string
	SpecialInstructions *string
}

func normalizePetType(raw string) (string, bool) {
	for _, t := range petTypes {
		if strings.EqualFold(strings.TrimSpace(raw), t) {
			return t, true
		}
	}
	return "", false
}

func validateContact(b Booking) error {
	return validate.Struct(b)
}

func parseRange(start, end string) (time.Time, time.Time, error) {
	s, ok := validate.ParseDate(start)
	if !ok {
		return time.Time{}, time.Time{}, apperr.Invalid(errInvalidDate)
	}
	e, ok := validate.ParseDate(end)
	if !ok {
		return time.Time{}, time.Time{}, apperr.Invalid(errInvalidDate)
	}
	return s, e, nil
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Booking, error) {
	for _, v := range []string{in.PetName, in.PetType, in.PetAge, in.Email, in.MobileNumber, in.StartDate, in.EndDate} {
		if strings.TrimSpace(v) == "" {
			return Booking{}, apperr.Invalid(errRequiredFields)
		}
	}
	petType, ok := normalizePetType(in.PetType)
	if !ok {
		return Booking{}, apperr.Invalid("petType must be one of: Dog, Cat, Bird, Other")
	}
	start, end, err := parseRange(in.StartDate, in.EndDate)
	if err != nil {
		return Booking{}, err
	}

	now := s.now()
	b := Booking{
		ID:                  uuid.NewString(),
		UserID:              userID,
		PetName:             strings.TrimSpace(in.PetName),
		PetType:             petType,
		PetAge:              strings.TrimSpace(in.PetAge),
		Email:               strings.ToLower(strings.TrimSpace(in.Email)),
		MobileNumber:        strings.TrimSpace(in.MobileNumber),
		StartDate:           start,
		EndDate:             end,
		SpecialInstructions: strings.TrimSpace(in.SpecialInstructions),
		Status:              lifecycle.BookingPending,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := validateContact(b); err != nil {
		return Booking{}, err
	}
	if err := s.attachCenter(ctx, &b, in); err != nil {
		return Booking{}, err
	}

	// el total nunca viene del cliente
	b.TotalAmount, err = enrich.StayTotal(b.StartDate, b.EndDate, b.Center.PricePerDay)
	if err != nil {
		return Booking{}, err
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return Booking{}, err
	}
	s.history.Track(ctx, history.RecordInput{
		Kind:     lifecycle.KindBooking,
		EntityID: b.ID,
		Type:     history.EventCreated,
		ToStatus: string(b.Status),
		Actor:    history.Actor{Type: history.ActorCustomer, ID: userID},
	})
	return b, nil
}

// attachCenter toma el snapshot del catálogo si el centro existe; si no, usa el
// que mandó el cliente (reservas contra centros que ya no están publicados).
func (s *Service) attachCenter(ctx context.Context, b *Booking, in CreateInput) error {
	if id := strings.TrimSpace(in.DaycareCenterID); id != "" && s.centers != nil {
		snap, err := s.centers.Snapshot(ctx, id)
		switch {
		case err == nil:
			b.DaycareCenterID = snap.CenterID
			b.VendorID = snap.VendorID
			b.Center = CenterSnapshot{Name: snap.Name, Location: snap.Location, PricePerDay: snap.PricePerDay}
			return nil
		case !errors.Is(err, apperr.ErrNotFound):
			return err
		}
		logger.FromContext(ctx).Warn("daycare center not found, using client snapshot", map[string]any{
			"center_id": id,
		})
	}

	if in.Center == nil || strings.TrimSpace(in.Center.Name) == "" {
		return apperr.Invalid(errCenterRequired)
	}
	if in.Center.PricePerDay < 0 {
		return apperr.Invalid("pricePerDay cannot be negative")
	}
	b.Center = CenterSnapshot{
		Name:        strings.TrimSpace(in.Center.Name),
		Location:    strings.TrimSpace(in.Center.Location),
		PricePerDay: in.Center.PricePerDay,
	}
	return nil
}

// GetOwned responde 404 tanto si no existe como si es de otro usuario.
func (s *Service) GetOwned(ctx context.Context, userID, id string) (Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, apperr.ErrNotFound) || (err == nil && b.UserID != userID) {
		return Booking{}, apperr.NotFound(errNotFound)
	}
	return b, err
}

// ListMine filtra por search (sin distinguir mayúsculas) sobre los campos visibles.
func (s *Service) ListMine(ctx context.Context, userID, search string) ([]Booking, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return items, nil
	}

	out := make([]Booking, 0, len(items))
	for _, b := range items {
		for _, f := range []string{b.PetName, b.PetType, b.Center.Name, b.Center.Location, b.SpecialInstructions, string(b.Status), b.Email, b.MobileNumber} {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, b)
				break
			}
		}
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, userID, id string, in UpdateInput) (Booking, error) {
	b, err := s.GetOwned(ctx, userID, id)
	if err != nil {
		return Booking{}, err
	}
	if err := lifecycle.CheckBookingEdit(b.Status); err != nil {
		metrics.ObserveRejection(string(lifecycle.KindBooking), string(lifecycle.OpEdit))
		return Booking{}, err
	}

	if v := strings.TrimSpace(in.PetName); v != "" {
		b.PetName = v
	}
	if strings.TrimSpace(in.PetType) != "" {
		pt, ok := normalizePetType(in.PetType)
		if !ok {
			return Booking{}, apperr.Invalid("petType must be one of: Dog, Cat, Bird, Other")
		}
		b.PetType = pt
	}
	if v := strings.TrimSpace(in.PetAge); v != "" {
		b.PetAge = v
	}
	if v := strings.TrimSpace(in.Email); v != "" {
		b.Email = strings.ToLower(v)
	}
	if v := strings.TrimSpace(in.MobileNumber); v != "" {
		b.MobileNumber = v
	}
	if in.SpecialInstructions != nil {
		b.SpecialInstructions = strings.TrimSpace(*in.SpecialInstructions)
	}
	if err := validateContact(b); err != nil {
		return Booking{}, err
	}

	datesChanged := false
	if strings.TrimSpace(in.StartDate) != "" {
		t, ok := validate.ParseDate(in.StartDate)
		if !ok {
			return Booking{}, apperr.Invalid(errInvalidDate)
		}
		b.StartDate, datesChanged = t, true
	}
	if strings.TrimSpace(in.EndDate) != "" {
		t, ok := validate.ParseDate(in.EndDate)
		if !ok {
			return Booking{}, apperr.Invalid(errInvalidDate)
		}
		b.EndDate, datesChanged = t, true
	}
	if datesChanged {
		// se recalcula con el precio del snapshot, nunca con el del catálogo actual
		b.TotalAmount, err = enrich.StayTotal(b.StartDate, b.EndDate, b.Center.PricePerDay)
		if err != nil {
			return Booking{}, err
		}
	}

	b.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, b); err != nil {
		return Booking{}, err
	}
	s.history.Track(ctx, history.RecordInput{
		Kind:       lifecycle.KindBooking,
		EntityID:   b.ID,
		Type:       history.EventUpdated,
		FromStatus: string(b.Status),
		ToStatus:   string(b.Status),
		Actor:      history.Actor{Type: history.ActorCustomer, ID: userID},
	})
	return b, nil
}

func (s *Service) Cancel(ctx context.Context, userID, id string) (Booking, error) {
	b, err := s.GetOwned(ctx, userID, id)
	if err != nil {
		return Booking{}, err
	}
	if err := lifecycle.CheckBookingCancel(b.Status); err != nil {
		metrics.ObserveRejection(string(lifecycle.KindBooking), string(lifecycle.OpCancel))
		return Booking{}, err
	}

	from := b.Status
	b.Status = lifecycle.BookingCancelled
	b.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, b); err != nil {
		return Booking{}, err
	}
	s.history.Track(ctx, history.RecordInput{
		Kind:       lifecycle.KindBooking,
		EntityID:   b.ID,
		Type:       history.EventCancelled,
		FromStatus: string(from),
		ToStatus:   string(b.Status),
		Actor:      history.Actor{Type: history.ActorCustomer, ID: userID},
	})
	return b, nil
}

// SetStatus es el patch administrativo: acepta cualquier estado del enum desde
// cualquier estado y no verifica ownership.
func (s *Service) SetStatus(ctx context.Context, actor auth.Claims, id, raw string) (Booking, error) {
	status, err := lifecycle.ParseBookingStatus(raw)
	if err != nil {
		return Booking{}, err
	}
	b, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, apperr.ErrNotFound) {
		return Booking{}, apperr.NotFound(errNotFound)
	}
	if err != nil {
		return Booking{}, err
	}

	from := b.Status
	b.Status = status
	b.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, b); err != nil {
		return Booking{}, err
	}
	s.history.Track(ctx, history.RecordInput{
		Kind:       lifecycle.KindBooking,
		EntityID:   b.ID,
		Type:       history.EventStatusChanged,
		FromStatus: string(from),
		ToStatus:   string(status),
		Actor:      history.ActorFromClaims(actor),
	})
	return b, nil
}

// Delete no pasa por el guard: se puede borrar en cualquier estado.
func (s *Service) Delete(ctx context.Context, userID, id string) (Booking, error) {
	b, err := s.GetOwned(ctx, userID, id)
	if err != nil {
		return Booking{}, err
	}
	if err := s.repo.Delete(ctx, b.ID); err != nil {
		return Booking{}, err
	}
	return b, nil
}

// ListForVendor une las tres formas de vínculo reserva-vendor: campo vendor,
// daycareCenterId de un centro propio y, para reservas viejas, nombre+ubicación.
func (s *Service) ListForVendor(ctx context.Context, vendorID string) ([]Booking, error) {
	centers, err := s.centers.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	direct, err := s.repo.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	var byCenter, legacy []Booking
	if len(centers) > 0 {
		byCenter, err = s.repo.ListByCenterIDs(ctx, vendorscope.IDs(centers, func(c daycarecenters.Center) string { return c.ID }))
		if err != nil {
			return nil, err
		}

		names := vendorscope.NameSet(centers, func(c daycarecenters.Center) string {
			return vendorscope.NameKey(c.Name, c.Location)
		})
		unlinked, err := s.repo.ListUnlinked(ctx)
		if err != nil {
			return nil, err
		}
		for _, b := range unlinked {
			if _, ok := names[vendorscope.NameKey(b.Center.Name, b.Center.Location)]; ok {
				legacy = append(legacy, b)
			}
		}
	}

	return vendorscope.Union(bookingKeys,
		vendorscope.Result[Booking]{Strategy: vendorscope.ByVendorField, Items: direct},
		vendorscope.Result[Booking]{Strategy: vendorscope.ByCatalogID, Items: byCenter},
		vendorscope.Result[Booking]{Strategy: vendorscope.ByLegacyName, Items: legacy},
	), nil
}

var bookingKeys = vendorscope.Keys[Booking]{
	ID:        func(b Booking) string { return b.ID },
	CreatedAt: func(b Booking) time.Time { return b.CreatedAt },
}
