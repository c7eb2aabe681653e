package daycare

import (
	"time"

	"pawfam-api/internal/domain/lifecycle"
)

var petTypes = []string{"Dog", "Cat", "Bird", "Other"}

// CenterSnapshot se copia del catálogo al crear la reserva y no se vuelve a leer.
type CenterSnapshot struct {
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	PricePerDay float64 `json:"pricePerDay"`
}

type Booking struct {
	ID     string `json:"id"`
	UserID string `json:"user"`

	// vacíos en reservas viejas, previas al vínculo con el catálogo
	DaycareCenterID string         `json:"daycareCenterId,omitempty"`
	VendorID        string         `json:"vendor,omitempty"`
	Center          CenterSnapshot `json:"daycareCenter"`

	PetName             string    `json:"petName"`
	PetType             string    `json:"petType"`
	PetAge              string    `json:"petAge"`
	Email               string    `json:"email" validate:"emailaddr" msg:"Please provide a valid email"`
	MobileNumber        string    `json:"mobileNumber" validate:"mobile10" msg:"Mobile number must be exactly 10 digits"`
	StartDate           time.Time `json:"startDate"`
	EndDate             time.Time `json:"endDate"`
	SpecialInstructions string    `json:"specialInstructions"`
	TotalAmount         float64   `json:"totalAmount"`

	Status    lifecycle.BookingStatus `json:"status"`
	CreatedAt time.Time               `json:"createdAt"`
	UpdatedAt time.Time               `json:"updatedAt"`
}
