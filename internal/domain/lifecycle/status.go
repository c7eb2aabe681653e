// Package lifecycle decide qué operaciones admite cada estado de las entidades
// con ciclo de vida (solicitudes de adopción, reservas de guardería y pedidos).
// Todas las funciones son puras y totales: cualquier string, incluso uno fuera
// del enum, tiene una respuesta definida.
package lifecycle

type Kind string

const (
	KindApplication Kind = "application"
	KindBooking     Kind = "booking"
	KindOrder       Kind = "order"
)

type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationUnderReview ApplicationStatus = "under_review"
	ApplicationApproved    ApplicationStatus = "approved"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationScheduled   ApplicationStatus = "scheduled"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

var (
	applicationStatuses = []ApplicationStatus{
		ApplicationPending, ApplicationUnderReview, ApplicationApproved, ApplicationRejected, ApplicationScheduled,
	}
	bookingStatuses = []BookingStatus{
		BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted,
	}
	orderStatuses = []OrderStatus{
		OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled,
	}
)

func ApplicationStatuses() []ApplicationStatus {
	return append([]ApplicationStatus(nil), applicationStatuses...)
}
func BookingStatuses() []BookingStatus { return append([]BookingStatus(nil), bookingStatuses...) }
func OrderStatuses() []OrderStatus     { return append([]OrderStatus(nil), orderStatuses...) }

func (s ApplicationStatus) Valid() bool { return contains(applicationStatuses, s) }
func (s BookingStatus) Valid() bool     { return contains(bookingStatuses, s) }
func (s OrderStatus) Valid() bool       { return contains(orderStatuses, s) }

// Solicitud: approved/rejected son terminales.
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationApproved || s == ApplicationRejected
}
func (s ApplicationStatus) CanEdit() bool   { return !s.Terminal() }
func (s ApplicationStatus) CanRevoke() bool { return !s.Terminal() }

// Reserva: completed/cancelled son terminales.
func (s BookingStatus) Terminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}
func (s BookingStatus) CanEdit() bool   { return !s.Terminal() }
func (s BookingStatus) CanCancel() bool { return !s.Terminal() }

// Pedido: delivered/cancelled bloquean toda edición; shipped además bloquea
// cambio de dirección y cancelación.
func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}
func (s OrderStatus) CanEdit() bool        { return !s.Terminal() }
func (s OrderStatus) CanEditAddress() bool { return !s.Terminal() && s != OrderShipped }
func (s OrderStatus) CanCancel() bool      { return !s.Terminal() && s != OrderShipped }

// IsValidStatus es el chequeo de pertenencia al enum usado por el patch administrativo.
// No hay grafo de transiciones: cualquier miembro es alcanzable desde cualquier estado.
func IsValidStatus(kind Kind, candidate string) bool {
	switch kind {
	case KindApplication:
		return ApplicationStatus(candidate).Valid()
	case KindBooking:
		return BookingStatus(candidate).Valid()
	case KindOrder:
		return OrderStatus(candidate).Valid()
	default:
		return false
	}
}

func contains[S ~string](set []S, s S) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
