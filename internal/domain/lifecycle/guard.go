package lifecycle

import "pawfam-api/internal/platform/apperr"

// Operation nombra la acción que el guard evalúa (se usa también como label de métricas).
type Operation string

const (
	OpEdit        Operation = "edit"
	OpEditAddress Operation = "edit_address"
	OpRevoke      Operation = "revoke"
	OpCancel      Operation = "cancel"
)

func CheckApplicationEdit(s ApplicationStatus) error {
	if !s.CanEdit() {
		return apperr.Precondition("Cannot edit an application that has been approved or rejected")
	}
	return nil
}

func CheckApplicationRevoke(s ApplicationStatus) error {
	if !s.CanRevoke() {
		return apperr.Precondition("Cannot revoke an application that has been approved or rejected")
	}
	return nil
}

func CheckBookingEdit(s BookingStatus) error {
	if !s.CanEdit() {
		return apperr.Precondition("Cannot edit a booking that is completed or cancelled")
	}
	return nil
}

func CheckBookingCancel(s BookingStatus) error {
	if !s.CanCancel() {
		return apperr.Precondition("Cannot cancel a booking that is already completed or cancelled")
	}
	return nil
}

func CheckOrderAddressEdit(s OrderStatus) error {
	if s.Terminal() {
		return apperr.Precondition("Cannot edit an order that is delivered or cancelled")
	}
	if !s.CanEditAddress() {
		return apperr.Precondition("Cannot edit an order that has already been shipped")
	}
	return nil
}

func CheckOrderCancel(s OrderStatus) error {
	if s.Terminal() {
		return apperr.Precondition("Cannot cancel an order that is already delivered or cancelled")
	}
	if !s.CanCancel() {
		return apperr.Precondition("Cannot cancel an order that has already been shipped. Please contact support.")
	}
	return nil
}

// ParseApplicationStatus, ParseBookingStatus y ParseOrderStatus validan el
// destino de un patch administrativo.
func ParseApplicationStatus(raw string) (ApplicationStatus, error) {
	if !IsValidStatus(KindApplication, raw) {
		return "", apperr.Invalid("Invalid status")
	}
	return ApplicationStatus(raw), nil
}

func ParseBookingStatus(raw string) (BookingStatus, error) {
	if !IsValidStatus(KindBooking, raw) {
		return "", apperr.Invalid("Invalid status")
	}
	return BookingStatus(raw), nil
}

func ParseOrderStatus(raw string) (OrderStatus, error) {
	if !IsValidStatus(KindOrder, raw) {
		return "", apperr.Invalid("Invalid status")
	}
	return OrderStatus(raw), nil
}
