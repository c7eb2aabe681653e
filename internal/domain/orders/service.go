package orders

import (
	"context"
	"errors"
	"strings"
	"time"

	"pawfam-api/internal/domain/accessories"
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
	errNotFound        = "Order not found"
	errRequiredFields  = "Please provide all required fields"
	errAddressRequired = "Please provide complete shipping address"
	errZipCode         = "ZIP Code must be exactly 6 digits"
)

type Service struct {
	repo     Repository
	products ProductCatalog
	history  *history.Service
	now      func() time.Time
}

func NewService(repo Repository, products ProductCatalog, hist *history.Service) *Service {
	return &Service{
		repo:     repo,
		products: products,
		history:  hist,
		now:      time.Now,
	}
}

type PaymentInput struct {
	CardNumber string
	ExpiryDate string
	CVV        string
}

type CreateInput struct {
	Items           []Item
	ShippingAddress *ShippingAddress
	PaymentInfo     *PaymentInput
	TotalAmount     float64
}

func trimAddress(a ShippingAddress) ShippingAddress {
	return ShippingAddress{
		FullName: strings.TrimSpace(a.FullName),
		Email:    strings.ToLower(strings.TrimSpace(a.Email)),
		Address:  strings.TrimSpace(a.Address),
		City:     strings.TrimSpace(a.City),
		State:    strings.TrimSpace(a.State),
		ZipCode:  strings.TrimSpace(a.ZipCode),
		Phone:    strings.TrimSpace(a.Phone),
	}
}

func validateAddress(a ShippingAddress) error {
	return validate.New().
		Match(a.ZipCode, validate.ZipCode6, errZipCode).
		MatchOptional(a.Email, validate.EmailPattern, "Please provide a valid email").
		MatchOptional(a.Phone, validate.Mobile10, "Phone number must be 10 digits").
		Err()
}

func normalizeItems(in []Item) ([]Item, error) {
	out := make([]Item, 0, len(in))
	for _, it := range in {
		it.ProductID = strings.TrimSpace(it.ProductID)
		it.Name = strings.TrimSpace(it.Name)
		it.Image = strings.TrimSpace(it.Image)
		// el vendor nunca se toma del cliente
		it.VendorID = ""
		if it.Quantity == 0 {
			it.Quantity = 1
		}
		err := validate.New().
			Check(it.Name != "", "Each item requires a name").
			NonNegative("price", it.Price).
			Check(it.Quantity > 0, "quantity must be at least 1").
			Err()
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, nil
}

// Create resuelve el vendor de cada línea y enmascara el pago antes de guardar.
// Un producto que no se puede resolver deja la línea sin vendor; el pedido sigue.
func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Order, error) {
	if len(in.Items) == 0 || in.ShippingAddress == nil || in.PaymentInfo == nil || in.TotalAmount <= 0 {
		return Order{}, apperr.Invalid(errRequiredFields)
	}
	addr := trimAddress(*in.ShippingAddress)
	if addr.FullName == "" || addr.Address == "" || addr.City == "" || addr.State == "" || addr.ZipCode == "" {
		return Order{}, apperr.Invalid(errAddressRequired)
	}
	if err := validateAddress(addr); err != nil {
		return Order{}, err
	}
	items, err := normalizeItems(in.Items)
	if err != nil {
		return Order{}, err
	}

	now := s.now()
	o := Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		Items:           items,
		ShippingAddress: addr,
		PaymentInfo: PaymentInfo{
			CardNumber: enrich.MaskCardNumber(in.PaymentInfo.CardNumber),
			ExpiryDate: strings.TrimSpace(in.PaymentInfo.ExpiryDate),
			CVV:        enrich.MaskedCVV,
		},
		TotalAmount: in.TotalAmount,
		Status:      lifecycle.OrderPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if s.products != nil {
		vendors, failures := enrich.ResolveVendors(ctx, s.products, o.productIDs())
		for i := range o.Items {
			o.Items[i].VendorID = vendors[i]
		}
		for _, f := range failures {
			logger.FromContext(ctx).Warn("order item vendor lookup failed", map[string]any{
				"order_id":   o.ID,
				"product_id": f.ProductID,
				"error":      f.Err.Error(),
			})
		}
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return Order{}, err
	}
	s.history.Track(ctx, history.RecordInput{
		Kind:     lifecycle.KindOrder,
		EntityID: o.ID,
		Type:     history.EventCreated,
		ToStatus: string(o.Status),
		Actor:    history.Actor{Type: history.ActorCustomer, ID: userID},
	})
	return o, nil
}

func (s *Service) GetOwned(ctx context.Context, userID, id string) (Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, apperr.ErrNotFound) || (err == nil && o.UserID != userID) {
		return Order{}, apperr.NotFound(errNotFound)
	}
	return o, err
}

func (s *Service) ListMine(ctx context.Context, userID string) ([]Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// UpdateAddress reemplaza la dirección completa. Bloqueado desde shipped en adelante.
func (s *Service) UpdateAddress(ctx context.Context, userID, id string, in ShippingAddress) (Order, error) {
	addr := trimAddress(in)
	if addr.FullName == "" || addr.Email == "" || addr.Address == "" || addr.City == "" || addr.State == "" || addr.ZipCode == "" {
		return Order{}, apperr.Invalid(errAddressRequired)
	}
	if err := validateAddress(addr); err != nil {
		return Order{}, err
	}

	o, err := s.GetOwned(ctx, userID, id)
	if err != nil {
		return Order{}, err
	}
	if err := lifecycle.CheckOrderAddressEdit(o.Status); err != nil {
		metrics.ObserveRejection(string(lifecycle.KindOrder), string(lifecycle.OpEditAddress))
		return Order{}, err
	}

	o.ShippingAddress = addr
	o.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, o); err != nil {
		return Order{}, err
	}
	s.history.Track(ctx, history.RecordInput{
		Kind:       lifecycle.KindOrder,
		EntityID:   o.ID,
		Type:       history.EventAddressUpdated,
		FromStatus: string(o.Status),
		ToStatus:   string(o.Status),
		Actor:      history.Actor{Type: history.ActorCustomer, ID: userID},
	})
	return o, nil
}

func (s *Service) Cancel(ctx context.Context, userID, id string) (Order, error) {
	o, err := s.GetOwned(ctx, userID, id)
	if err != nil {
		return Order{}, err
	}
	if err := lifecycle.CheckOrderCancel(o.Status); err != nil {
		metrics.ObserveRejection(string(lifecycle.KindOrder), string(lifecycle.OpCancel))
		return Order{}, err
	}

	from := o.Status
	o.Status = lifecycle.OrderCancelled
	o.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, o); err != nil {
		return Order{}, err
	}
	s.history.Track(ctx, history.RecordInput{
		Kind:       lifecycle.KindOrder,
		EntityID:   o.ID,
		Type:       history.EventCancelled,
		FromStatus: string(from),
		ToStatus:   string(o.Status),
		Actor:      history.Actor{Type: history.ActorCustomer, ID: userID},
	})
	return o, nil
}

// SetStatus acepta cualquier estado del enum, sin grafo de transiciones.
func (s *Service) SetStatus(ctx context.Context, actor auth.Claims, id, raw string) (Order, error) {
	status, err := lifecycle.ParseOrderStatus(raw)
	if err != nil {
		return Order{}, err
	}
	o, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, apperr.ErrNotFound) {
		return Order{}, apperr.NotFound(errNotFound)
	}
	if err != nil {
		return Order{}, err
	}

	from := o.Status
	o.Status = status
	o.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, o); err != nil {
		return Order{}, err
	}
	s.history.Track(ctx, history.RecordInput{
		Kind:       lifecycle.KindOrder,
		EntityID:   o.ID,
		Type:       history.EventStatusChanged,
		FromStatus: string(from),
		ToStatus:   string(status),
		Actor:      history.ActorFromClaims(actor),
	})
	return o, nil
}

// Delete se permite en cualquier estado.
func (s *Service) Delete(ctx context.Context, userID, id string) (Order, error) {
	o, err := s.GetOwned(ctx, userID, id)
	if err != nil {
		return Order{}, err
	}
	if err := s.repo.Delete(ctx, o.ID); err != nil {
		return Order{}, err
	}
	return o, nil
}

// ListForVendor: líneas con vendor, líneas con productId del catálogo propio y,
// para pedidos viejos, líneas sin productId que coinciden por nombre de producto.
func (s *Service) ListForVendor(ctx context.Context, vendorID string) ([]Order, error) {
	products, err := s.products.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	direct, err := s.repo.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	var byProduct, legacy []Order
	if len(products) > 0 {
		byProduct, err = s.repo.ListByProductIDs(ctx, vendorscope.IDs(products, func(p accessories.Product) string { return p.ID }))
		if err != nil {
			return nil, err
		}

		names := vendorscope.NameSet(products, func(p accessories.Product) string { return vendorscope.NameKey(p.Name) })
		unlinked, err := s.repo.ListUnlinked(ctx)
		if err != nil {
			return nil, err
		}
		for _, o := range unlinked {
			for _, it := range o.Items {
				if it.ProductID != "" || it.VendorID != "" {
					continue
				}
				if _, ok := names[vendorscope.NameKey(it.Name)]; ok {
					legacy = append(legacy, o)
					break
				}
			}
		}
	}

	return vendorscope.Union(orderKeys,
		vendorscope.Result[Order]{Strategy: vendorscope.ByVendorField, Items: direct},
		vendorscope.Result[Order]{Strategy: vendorscope.ByCatalogID, Items: byProduct},
		vendorscope.Result[Order]{Strategy: vendorscope.ByLegacyName, Items: legacy},
	), nil
}

var orderKeys = vendorscope.Keys[Order]{
	ID:        func(o Order) string { return o.ID },
	CreatedAt: func(o Order) time.Time { return o.CreatedAt },
}
